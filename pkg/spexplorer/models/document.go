package models

import "time"

// ClientIdentity is the resolved identity handed over by the upstream
// file selector alongside one workbook.
type ClientIdentity struct {
	// ClientID is the upstream-assigned logical client id.
	ClientID string
	// ClientName is the display name of the client.
	ClientName string
	// Country is the client's country code or name.
	Country string
	// Product is the product the workbook belongs to.
	Product string
	// Filename is the original workbook file name.
	Filename string
	// ExtractedDate is the date parsed from the filename upstream.
	ExtractedDate time.Time
	// IsLatest marks the file chosen as current for the client.
	IsLatest bool
	// FormVariant is the upstream-detected form variant, if any.
	FormVariant string
}

// FileInfo records provenance of the source workbook.
type FileInfo struct {
	// FilePath is the path the workbook was read from.
	FilePath string `json:"file_path"`
	// Filename is the original workbook file name.
	Filename string `json:"filename"`
	// ExtractedDate is the upstream file date in ISO-8601, if known.
	ExtractedDate string `json:"extracted_date,omitempty"`
	// IsLatest marks the file chosen as current for the client.
	IsLatest bool `json:"is_latest"`
	// FormVariant is the upstream-detected form variant, if any.
	FormVariant string `json:"form_variant,omitempty"`
}

// ProcessingMeta records how and when the document was produced.
type ProcessingMeta struct {
	// ProcessedAt is the extraction timestamp.
	ProcessedAt time.Time `json:"processed_at"`
	// ExtractionID uniquely identifies this extraction run.
	ExtractionID string `json:"extraction_id"`
	// Status is "success" for every returned document; unreadable
	// input surfaces as an error instead of a document.
	Status string `json:"status"`
	// Warnings lists locally-degraded conditions (dropped merge
	// ranges, unreadable sheets) that did not abort extraction.
	Warnings []string `json:"warnings,omitempty"`
}

// Document is the structured extraction result for one workbook.
// It is assembled bottom-up and immutable once returned.
type Document struct {
	ClientID   string   `json:"client_id"`
	ClientName string   `json:"client_name"`
	Country    string   `json:"country"`
	Product    string   `json:"product"`
	FileInfo   FileInfo `json:"file_info"`
	// Sheets are in workbook order.
	Sheets []*Sheet `json:"sheets"`
	// PatternSignature is the digest of the document's structural
	// shape; identical templates yield identical signatures.
	PatternSignature string         `json:"pattern_signature"`
	Processing       ProcessingMeta `json:"processing_metadata"`
}
