// Package parser implements the structural extraction pipeline: grid
// building, section segmentation, classification, header resolution,
// record extraction, and fingerprinting.
package parser

import (
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/naveenbxyz/spexplorer/pkg/spexplorer/models"
)

// RawSheet holds one worksheet's cell values, merge ranges, and
// formatting hints as read from an already-opened workbook. It is the
// only point where the pipeline touches excelize; everything after it
// is pure computation.
type RawSheet struct {
	// Name is the worksheet name.
	Name string
	// Cells is the dense value matrix; Cells[r][c] is the typed value
	// of row r+1, column c+1, nil when blank. Rows share one width.
	Cells [][]any
	// Merges are the declared merge ranges, unvalidated.
	Merges []models.MergeRange
	// Formats maps populated cells to their formatting hints.
	Formats map[models.CellRef]models.CellFormat
}

// ReadSheet reads a worksheet into a RawSheet. Cell values are typed
// via parseValue. Formatting hints are gathered per populated cell when
// includeFormats is set; style lookups are cached by style id since
// sheets reuse a handful of styles.
func ReadSheet(f *excelize.File, sheetName string, includeFormats bool) (*RawSheet, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}

	cells := make([][]any, len(rows))
	for r, row := range rows {
		cells[r] = make([]any, width)
		for c, v := range row {
			cells[r][c] = parseValue(v)
		}
	}

	raw := &RawSheet{
		Name:    sheetName,
		Cells:   cells,
		Formats: make(map[models.CellRef]models.CellFormat),
	}

	merges, err := f.GetMergeCells(sheetName)
	if err == nil {
		for _, mc := range merges {
			mr, ok := mergeRangeFromAxes(mc.GetStartAxis(), mc.GetEndAxis())
			if ok {
				raw.Merges = append(raw.Merges, mr)
			}
		}
	}

	if includeFormats {
		styleCache := make(map[int]models.CellFormat)
		for r, row := range cells {
			for c, v := range row {
				if v == nil {
					continue
				}
				cellName, err := excelize.CoordinatesToCellName(c+1, r+1)
				if err != nil {
					continue
				}
				styleID, err := f.GetCellStyle(sheetName, cellName)
				if err != nil {
					continue
				}
				format, ok := styleCache[styleID]
				if !ok {
					format = readStyle(f, styleID)
					styleCache[styleID] = format
				}
				if !format.Zero() {
					raw.Formats[models.CellRef{Row: r + 1, Col: c + 1}] = format
				}
			}
		}
	}

	return raw, nil
}

// mergeRangeFromAxes converts "A1"/"B3" style axes to a MergeRange.
func mergeRangeFromAxes(start, end string) (models.MergeRange, bool) {
	c1, r1, err := excelize.CellNameToCoordinates(start)
	if err != nil {
		return models.MergeRange{}, false
	}
	c2, r2, err := excelize.CellNameToCoordinates(end)
	if err != nil {
		return models.MergeRange{}, false
	}
	return models.MergeRange{MinRow: r1, MinCol: c1, MaxRow: r2, MaxCol: c2}, true
}

// readStyle extracts the formatting hints the classifier cares about.
func readStyle(f *excelize.File, styleID int) models.CellFormat {
	style, err := f.GetStyle(styleID)
	if err != nil || style == nil {
		return models.CellFormat{}
	}
	var format models.CellFormat
	if style.Font != nil {
		format.Bold = style.Font.Bold
		format.Italic = style.Font.Italic
	}
	if style.Fill.Type == "pattern" && style.Fill.Pattern > 0 {
		format.Filled = true
	}
	for _, b := range style.Border {
		if b.Style > 0 {
			format.Bordered = true
			break
		}
	}
	return format
}

// parseValue attempts to parse a string cell as a number.
// Returns int64 for integers, float64 for decimals, nil for the empty
// string, or the original string.
func parseValue(s string) any {
	if s == "" {
		return nil
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
