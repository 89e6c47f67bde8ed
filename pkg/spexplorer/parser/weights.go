package parser

// Weights holds the heuristic constants driving section classification
// and header resolution. The defaults come from the original tuning;
// they are plain data so deployments can adjust them without a code
// change.
type Weights struct {
	// ComplexHeaderBase is the confidence for a span whose leading rows
	// intersect a merge range.
	ComplexHeaderBase float64 `json:"complex_header_base"`
	// MultiRowHeaderBonus is added when more than one header row
	// precedes the first data-shaped row.
	MultiRowHeaderBonus float64 `json:"multi_row_header_bonus"`
	// KeyValueStringRatio is the minimum fraction of populated
	// first-column cells that must be strings.
	KeyValueStringRatio float64 `json:"key_value_string_ratio"`
	// KeyValuePlainBonus is added when no header-like formatting is
	// present on the first data row.
	KeyValuePlainBonus float64 `json:"key_value_plain_bonus"`
	// MaxKeyValueColumns is the maximum populated column count for a
	// key_value span.
	MaxKeyValueColumns int `json:"max_key_value_columns"`
	// TableBase is the fallback table confidence.
	TableBase float64 `json:"table_base"`
	// TableHeaderFormatBonus is added when the first row shows
	// header-like formatting.
	TableHeaderFormatBonus float64 `json:"table_header_format_bonus"`
	// TableUniqueHeaderBonus is added when every first-row cell is a
	// unique non-empty string.
	TableUniqueHeaderBonus float64 `json:"table_unique_header_bonus"`
	// RawThreshold demotes any classification below it to raw.
	RawThreshold float64 `json:"raw_threshold"`
	// HeaderScanRows bounds both the merge lookup window and the number
	// of header rows a flattened header may consume.
	HeaderScanRows int `json:"header_scan_rows"`
}

// DefaultWeights returns the original heuristic constants.
func DefaultWeights() Weights {
	return Weights{
		ComplexHeaderBase:      0.8,
		MultiRowHeaderBonus:    0.2,
		KeyValueStringRatio:    0.7,
		KeyValuePlainBonus:     0.1,
		MaxKeyValueColumns:     2,
		TableBase:              0.5,
		TableHeaderFormatBonus: 0.2,
		TableUniqueHeaderBonus: 0.3,
		RawThreshold:           0.3,
		HeaderScanRows:         3,
	}
}
