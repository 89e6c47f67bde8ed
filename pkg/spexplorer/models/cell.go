// Package models defines data structures for spreadsheet structural extraction.
package models

// CellRef identifies a single cell by 1-based row and column.
type CellRef struct {
	// Row is the row index (1-based).
	Row int `json:"row"`
	// Col is the column index (1-based).
	Col int `json:"col"`
}

// MergeRange is a rectangular span of merged cells. The top-left cell
// owns the authoritative value; every other coordinate resolves to it.
type MergeRange struct {
	// MinRow is the first row of the range (1-based).
	MinRow int `json:"min_row"`
	// MinCol is the first column of the range (1-based).
	MinCol int `json:"min_col"`
	// MaxRow is the last row of the range (1-based, inclusive).
	MaxRow int `json:"max_row"`
	// MaxCol is the last column of the range (1-based, inclusive).
	MaxCol int `json:"max_col"`
}

// Valid reports whether the range is well-formed and fits within a
// sheet of the given dimensions. Inverted or out-of-bounds ranges are
// treated as unmerged by the grid builder.
func (m MergeRange) Valid(rows, cols int) bool {
	if m.MinRow < 1 || m.MinCol < 1 {
		return false
	}
	if m.MaxRow < m.MinRow || m.MaxCol < m.MinCol {
		return false
	}
	return m.MaxRow <= rows && m.MaxCol <= cols
}

// Multi reports whether the range spans more than one cell.
func (m MergeRange) Multi() bool {
	return m.MaxRow > m.MinRow || m.MaxCol > m.MinCol
}

// IntersectsRows reports whether the range covers any row in [startRow, endRow].
func (m MergeRange) IntersectsRows(startRow, endRow int) bool {
	return m.MinRow <= endRow && m.MaxRow >= startRow
}

// IntersectsCols reports whether the range covers any column in [startCol, endCol].
func (m MergeRange) IntersectsCols(startCol, endCol int) bool {
	return m.MinCol <= endCol && m.MaxCol >= startCol
}

// CoversRow reports whether the range includes the given row.
func (m MergeRange) CoversRow(row int) bool {
	return m.MinRow <= row && row <= m.MaxRow
}

// CellFormat holds formatting hints for a cell, used by the section
// classifier to recognize header-like rows.
type CellFormat struct {
	// Bold indicates bold font.
	Bold bool `json:"bold,omitempty"`
	// Italic indicates italic font.
	Italic bool `json:"italic,omitempty"`
	// Filled indicates a pattern fill background.
	Filled bool `json:"filled,omitempty"`
	// Bordered indicates any styled border edge.
	Bordered bool `json:"bordered,omitempty"`
}

// HeaderLike reports whether the format suggests a header cell.
func (f CellFormat) HeaderLike() bool {
	return f.Bold || f.Filled
}

// Zero reports whether no formatting hint is set.
func (f CellFormat) Zero() bool {
	return f == CellFormat{}
}
