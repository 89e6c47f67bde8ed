package models

// Sheet is the ordered section list extracted from one worksheet.
type Sheet struct {
	// SheetName is the worksheet name.
	SheetName string `json:"sheet_name"`
	// Sections are the classified blocks in top-to-bottom order.
	Sections []*Section `json:"sections"`
}
