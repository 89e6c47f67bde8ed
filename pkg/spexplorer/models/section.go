package models

// SectionType labels the structural shape of a section.
type SectionType string

const (
	// SectionKeyValue is a two-column block of label/value pairs.
	SectionKeyValue SectionType = "key_value"
	// SectionTable is a single header row followed by data rows.
	SectionTable SectionType = "table"
	// SectionComplexHeader is a table whose header spans multiple rows,
	// typically via merged cells.
	SectionComplexHeader SectionType = "complex_header"
	// SectionRaw is the fallback for blocks no other rule explains.
	SectionRaw SectionType = "raw"
)

// Region is the cell extent of a section within its sheet (1-based,
// inclusive bounds).
type Region struct {
	StartRow int `json:"start_row"`
	EndRow   int `json:"end_row"`
	StartCol int `json:"start_col"`
	EndCol   int `json:"end_col"`
}

// Width returns the number of columns covered by the region.
func (r Region) Width() int {
	if r.EndCol < r.StartCol {
		return 0
	}
	return r.EndCol - r.StartCol + 1
}

// Height returns the number of rows covered by the region.
func (r Region) Height() int {
	if r.EndRow < r.StartRow {
		return 0
	}
	return r.EndRow - r.StartRow + 1
}

// HeaderStructure describes a flattened multi-row header.
type HeaderStructure struct {
	// Levels is the number of header rows consumed.
	Levels int `json:"levels"`
	// FinalColumns is the flattened, de-duplicated field-name list.
	FinalColumns []string `json:"final_columns"`
}

// Section is one contiguous block of a sheet classified into a
// structural type. Exactly one payload group is populated depending on
// Type: Data for key_value, Headers+Rows for table, HeaderStructure+Rows
// for complex_header, RawData for raw.
type Section struct {
	// SectionID is the document-wide sequential id (e.g. "section_3").
	SectionID string `json:"section_id"`
	// Type is the classified structural type.
	Type SectionType `json:"section_type"`
	// Header is an optional section label detected above the data.
	Header string `json:"section_header,omitempty"`
	// Region is the section's cell extent (provenance).
	Region Region `json:"cell_coordinates"`
	// Confidence is the classifier's heuristic certainty in [0,1].
	Confidence float64 `json:"detection_confidence"`
	// HeaderFormatting carries formatting hints from the first header
	// cell when available.
	HeaderFormatting *CellFormat `json:"header_formatting,omitempty"`

	// Data is the key_value payload.
	Data *Record `json:"data,omitempty"`
	// Headers is the table payload field-name list.
	Headers []string `json:"headers,omitempty"`
	// HeaderStructure is the complex_header payload header description.
	HeaderStructure *HeaderStructure `json:"header_structure,omitempty"`
	// Rows holds table and complex_header data records.
	Rows []*Record `json:"rows,omitempty"`
	// RawData is the verbatim normalized sub-grid for raw sections.
	RawData [][]any `json:"raw_data,omitempty"`
}

// FieldNames returns the structural field names of the section: key
// names for key_value, resolved headers for table and complex_header,
// nothing for raw. The fingerprint generator consumes these.
func (s *Section) FieldNames() []string {
	switch s.Type {
	case SectionKeyValue:
		if s.Data != nil {
			return s.Data.Keys()
		}
	case SectionTable:
		return s.Headers
	case SectionComplexHeader:
		if s.HeaderStructure != nil {
			return s.HeaderStructure.FinalColumns
		}
	}
	return nil
}
