// Package main provides the CLI entry point for spexplorer.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/naveenbxyz/spexplorer/internal/config"
	"github.com/naveenbxyz/spexplorer/pkg/spexplorer"
	"github.com/naveenbxyz/spexplorer/pkg/spexplorer/models"
	"github.com/naveenbxyz/spexplorer/pkg/spexplorer/output"
)

var (
	outputPath    string
	pretty        bool
	signatureOnly bool
	configFile    string

	clientID    string
	clientName  string
	country     string
	product     string
	formVariant string
	isLatest    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "spexplorer [input.xlsx]",
		Short: "Extract a structured document from a spreadsheet workbook",
		Long: `spexplorer infers sections, field names, and a structural fingerprint
from one workbook's cell grid without prior knowledge of its template,
and outputs the resulting document as JSON.`,
		Args: cobra.ExactArgs(1),
		RunE: run,
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.Flags().BoolVar(&signatureOnly, "signature-only", false, "Print only the pattern signature")
	rootCmd.Flags().StringVar(&configFile, "config", "", "Config file path")
	rootCmd.Flags().StringVar(&clientID, "client-id", "", "Logical client id from the file selector")
	rootCmd.Flags().StringVar(&clientName, "client-name", "", "Client display name")
	rootCmd.Flags().StringVar(&country, "country", "", "Client country")
	rootCmd.Flags().StringVar(&product, "product", "", "Product the workbook belongs to")
	rootCmd.Flags().StringVar(&formVariant, "form-variant", "", "Upstream-detected form variant")
	rootCmd.Flags().BoolVar(&isLatest, "latest", false, "Mark the file as the client's current version")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	cfg, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := buildLogger(cfg.Log)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer logger.Sync()

	identity := models.ClientIdentity{
		ClientID:    clientID,
		ClientName:  clientName,
		Country:     country,
		Product:     product,
		Filename:    filepath.Base(inputPath),
		IsLatest:    isLatest,
		FormVariant: formVariant,
	}

	includeFormatting := cfg.Extract.IncludeFormatting
	opts := spexplorer.Options{
		Weights:           cfg.Classifier.Weights(),
		IncludeFormatting: &includeFormatting,
		Logger:            logger,
	}

	doc, err := spexplorer.Extract(inputPath, identity, opts)
	if err != nil {
		return fmt.Errorf("extraction failed (%s): %w", spexplorer.ClassifyFailure(err), err)
	}

	if signatureOnly {
		fmt.Println(doc.PatternSignature)
		return nil
	}

	jsonData, err := output.ToJSON(doc, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, jsonData, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	fmt.Println(string(jsonData))
	return nil
}

// buildLogger constructs a zap logger from the log config.
func buildLogger(cfg config.LogConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}

	var zcfg zap.Config
	if cfg.Format == "json" {
		zcfg = zap.NewProductionConfig()
	} else {
		zcfg = zap.NewDevelopmentConfig()
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)
	return zcfg.Build()
}
