package parser

import (
	"github.com/naveenbxyz/spexplorer/pkg/spexplorer/models"
)

// BuildSection converts a classified span into a Section with its
// payload resolved. The section carries its region for provenance; the
// caller assigns the document-wide id.
func (a *Analyzer) BuildSection(g *Grid, span Span, cls Classification) *models.Section {
	sec := &models.Section{
		Type:       cls.Type,
		Header:     cls.Label,
		Confidence: cls.Confidence,
		Region: models.Region{
			StartRow: span.StartRow,
			EndRow:   span.EndRow,
			StartCol: span.StartCol,
			EndCol:   span.EndCol,
		},
	}

	switch cls.Type {
	case models.SectionKeyValue:
		sec.Data = a.keyValueData(g, span, cls.DataStart)
	case models.SectionTable:
		sec.Headers = a.TableHeaders(g, span, cls.DataStart)
		sec.Rows = a.rowRecords(g, span, cls.DataStart+1, sec.Headers)
		sec.HeaderFormatting = a.formatAt(cls.DataStart, span.StartCol)
	case models.SectionComplexHeader:
		levels, names := a.ComplexHeaders(g, span, cls.DataStart)
		sec.HeaderStructure = &models.HeaderStructure{Levels: levels, FinalColumns: names}
		sec.Rows = a.rowRecords(g, span, cls.DataStart+levels, names)
		sec.HeaderFormatting = a.formatAt(cls.DataStart, span.StartCol)
	default:
		sec.RawData = rawData(g, span)
	}

	return sec
}

// keyValueData pairs first-column labels with second-column values.
// Rows with a blank first column are skipped; a repeated label keeps
// its first position and takes the last value.
func (a *Analyzer) keyValueData(g *Grid, span Span, dataStart int) *models.Record {
	rec := models.NewRecord()
	for row := dataStart; row <= span.EndRow; row++ {
		key := cleanKey(g.At(row, span.StartCol))
		if key == "" {
			continue
		}
		rec.Set(key, NormalizeValue(g.At(row, span.StartCol+1)))
	}
	return rec
}

// rowRecords converts every post-header row into one ordered record.
// Fully blank rows produce no record.
func (a *Analyzer) rowRecords(g *Grid, span Span, firstRow int, fields []string) []*models.Record {
	var rows []*models.Record
	for row := firstRow; row <= span.EndRow; row++ {
		rec := models.NewRecord()
		blank := true
		for i, field := range fields {
			v := NormalizeValue(g.At(row, span.StartCol+i))
			if v != nil {
				blank = false
			}
			rec.Set(field, v)
		}
		if !blank {
			rows = append(rows, rec)
		}
	}
	return rows
}

// rawData copies the span's sub-grid verbatim, normalized for portable
// serialization.
func rawData(g *Grid, span Span) [][]any {
	out := make([][]any, 0, span.Height())
	for row := span.StartRow; row <= span.EndRow; row++ {
		line := make([]any, 0, span.Width())
		for col := span.StartCol; col <= span.EndCol; col++ {
			line = append(line, NormalizeValue(g.At(row, col)))
		}
		out = append(out, line)
	}
	return out
}

// formatAt returns the formatting hints for a cell, nil when none were
// recorded.
func (a *Analyzer) formatAt(row, col int) *models.CellFormat {
	format, ok := a.formats[models.CellRef{Row: row, Col: col}]
	if !ok || format.Zero() {
		return nil
	}
	return &format
}
