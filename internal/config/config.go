// Package config loads CLI configuration from file and environment.
package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"

	"github.com/naveenbxyz/spexplorer/pkg/spexplorer/parser"
)

// Config holds all spexplorer CLI configuration.
type Config struct {
	Log        LogConfig        `mapstructure:"log"`
	Classifier ClassifierConfig `mapstructure:"classifier"`
	Extract    ExtractConfig    `mapstructure:"extract"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// ExtractConfig holds extraction settings.
type ExtractConfig struct {
	IncludeFormatting bool `mapstructure:"include_formatting"`
}

// ClassifierConfig exposes every classifier heuristic as a tunable
// value; defaults mirror parser.DefaultWeights.
type ClassifierConfig struct {
	ComplexHeaderBase      float64 `mapstructure:"complex_header_base"`
	MultiRowHeaderBonus    float64 `mapstructure:"multi_row_header_bonus"`
	KeyValueStringRatio    float64 `mapstructure:"key_value_string_ratio"`
	KeyValuePlainBonus     float64 `mapstructure:"key_value_plain_bonus"`
	MaxKeyValueColumns     int     `mapstructure:"max_key_value_columns"`
	TableBase              float64 `mapstructure:"table_base"`
	TableHeaderFormatBonus float64 `mapstructure:"table_header_format_bonus"`
	TableUniqueHeaderBonus float64 `mapstructure:"table_unique_header_bonus"`
	RawThreshold           float64 `mapstructure:"raw_threshold"`
	HeaderScanRows         int     `mapstructure:"header_scan_rows"`
}

// Weights converts the configuration into classifier weights.
func (c ClassifierConfig) Weights() parser.Weights {
	return parser.Weights{
		ComplexHeaderBase:      c.ComplexHeaderBase,
		MultiRowHeaderBonus:    c.MultiRowHeaderBonus,
		KeyValueStringRatio:    c.KeyValueStringRatio,
		KeyValuePlainBonus:     c.KeyValuePlainBonus,
		MaxKeyValueColumns:     c.MaxKeyValueColumns,
		TableBase:              c.TableBase,
		TableHeaderFormatBonus: c.TableHeaderFormatBonus,
		TableUniqueHeaderBonus: c.TableUniqueHeaderBonus,
		RawThreshold:           c.RawThreshold,
		HeaderScanRows:         c.HeaderScanRows,
	}
}

// Load reads configuration from an optional config file and from
// environment variables with the SPEXPLORER_ prefix. A missing config
// file is not an error.
func Load(configFile string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("SPEXPLORER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	// Extract defaults
	v.SetDefault("extract.include_formatting", true)

	// Classifier defaults
	w := parser.DefaultWeights()
	v.SetDefault("classifier.complex_header_base", w.ComplexHeaderBase)
	v.SetDefault("classifier.multi_row_header_bonus", w.MultiRowHeaderBonus)
	v.SetDefault("classifier.key_value_string_ratio", w.KeyValueStringRatio)
	v.SetDefault("classifier.key_value_plain_bonus", w.KeyValuePlainBonus)
	v.SetDefault("classifier.max_key_value_columns", w.MaxKeyValueColumns)
	v.SetDefault("classifier.table_base", w.TableBase)
	v.SetDefault("classifier.table_header_format_bonus", w.TableHeaderFormatBonus)
	v.SetDefault("classifier.table_unique_header_bonus", w.TableUniqueHeaderBonus)
	v.SetDefault("classifier.raw_threshold", w.RawThreshold)
	v.SetDefault("classifier.header_scan_rows", w.HeaderScanRows)

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	} else {
		v.SetConfigName("spexplorer")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.spexplorer")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, err
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
