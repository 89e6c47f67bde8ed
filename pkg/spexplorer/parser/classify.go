package parser

import (
	"strings"

	"github.com/naveenbxyz/spexplorer/pkg/spexplorer/models"
)

// Analyzer classifies spans and resolves their headers and records for
// one sheet. It holds the sheet's merge ranges and formatting hints so
// the individual rules stay independently testable.
type Analyzer struct {
	weights Weights
	merges  []models.MergeRange
	formats map[models.CellRef]models.CellFormat
}

// NewAnalyzer creates an Analyzer for one sheet. merges should contain
// only ranges that survived grid building.
func NewAnalyzer(weights Weights, merges []models.MergeRange, formats map[models.CellRef]models.CellFormat) *Analyzer {
	if formats == nil {
		formats = make(map[models.CellRef]models.CellFormat)
	}
	return &Analyzer{weights: weights, merges: merges, formats: formats}
}

// Classification is the result of classifying one span.
type Classification struct {
	// Type is the winning structural type.
	Type models.SectionType
	// Confidence is the winning rule's score clamped to [0,1]; zero
	// for raw.
	Confidence float64
	// Label is the optional section title detected above the data.
	Label string
	// DataStart is the first span row holding header or data content
	// (the row after the label row, when one exists).
	DataStart int
}

// rule pairs a section type with its predicate-and-score function.
// Rules are evaluated in order and the first match wins, so rare but
// strong signals (merges, narrow shape) are never shadowed by the
// easy-to-satisfy table fallback.
type rule struct {
	typ   models.SectionType
	match func(g *Grid, span Span, dataStart int) (bool, float64)
}

func (a *Analyzer) rules() []rule {
	return []rule{
		{models.SectionComplexHeader, a.matchComplexHeader},
		{models.SectionKeyValue, a.matchKeyValue},
		{models.SectionTable, a.matchTable},
	}
}

// Classify runs the ordered rule chain over a span. Degenerate spans
// and matches scoring below the raw threshold resolve to raw with
// confidence zero; classification never fails.
func (a *Analyzer) Classify(g *Grid, span Span) Classification {
	label, dataStart := a.sectionLabel(g, span)
	cls := Classification{Type: models.SectionRaw, Label: label, DataStart: dataStart}

	if span.Width() == 0 || dataStart > span.EndRow {
		return cls
	}

	for _, r := range a.rules() {
		ok, conf := r.match(g, span, dataStart)
		if !ok {
			continue
		}
		if conf < a.weights.RawThreshold {
			break
		}
		cls.Type = r.typ
		cls.Confidence = clamp01(conf)
		break
	}

	return cls
}

// sectionLabel detects a leading title row: a first row holding exactly
// one non-empty string cell above at least one more row. The label is
// reported separately and excluded from the classified data.
func (a *Analyzer) sectionLabel(g *Grid, span Span) (string, int) {
	if span.Height() < 2 {
		return "", span.StartRow
	}
	populated := 0
	var only any
	for col := span.StartCol; col <= span.EndCol; col++ {
		if v := g.At(span.StartRow, col); !isBlank(v) {
			populated++
			only = v
		}
	}
	if populated != 1 {
		return "", span.StartRow
	}
	s, ok := only.(string)
	if !ok {
		return "", span.StartRow
	}
	return strings.TrimSpace(s), span.StartRow + 1
}

// matchComplexHeader fires when any multi-cell merge range intersects
// the span's leading rows.
func (a *Analyzer) matchComplexHeader(g *Grid, span Span, dataStart int) (bool, float64) {
	window := span.StartRow + a.weights.HeaderScanRows - 1
	if window > span.EndRow {
		window = span.EndRow
	}
	matched := false
	for _, m := range a.merges {
		if m.Multi() && m.IntersectsRows(span.StartRow, window) && m.IntersectsCols(span.StartCol, span.EndCol) {
			matched = true
			break
		}
	}
	if !matched {
		return false, 0
	}
	conf := a.weights.ComplexHeaderBase
	if a.headerRowCount(g, span, dataStart) > 1 {
		conf += a.weights.MultiRowHeaderBonus
	}
	return true, conf
}

// matchKeyValue fires on narrow spans whose first column is mostly
// string labels. The confidence equals the label fraction.
func (a *Analyzer) matchKeyValue(g *Grid, span Span, dataStart int) (bool, float64) {
	if a.populatedColumns(g, span, dataStart) > a.weights.MaxKeyValueColumns {
		return false, 0
	}

	populated, labels := 0, 0
	for row := dataStart; row <= span.EndRow; row++ {
		v := g.At(row, span.StartCol)
		if isBlank(v) {
			continue
		}
		populated++
		if _, ok := v.(string); ok {
			labels++
		}
	}
	if populated == 0 {
		return false, 0
	}

	fraction := float64(labels) / float64(populated)
	if fraction < a.weights.KeyValueStringRatio {
		return false, 0
	}

	conf := fraction
	if !a.rowHeaderFormatted(g, span, dataStart) {
		conf += a.weights.KeyValuePlainBonus
	}
	return true, conf
}

// matchTable is the default rule; it always fires.
func (a *Analyzer) matchTable(g *Grid, span Span, dataStart int) (bool, float64) {
	conf := a.weights.TableBase
	if a.rowHeaderFormatted(g, span, dataStart) {
		conf += a.weights.TableHeaderFormatBonus
	}
	if a.uniqueStringRow(g, span, dataStart) {
		conf += a.weights.TableUniqueHeaderBonus
	}
	return true, conf
}

// populatedColumns counts span columns holding at least one value in
// the data rows.
func (a *Analyzer) populatedColumns(g *Grid, span Span, fromRow int) int {
	count := 0
	for col := span.StartCol; col <= span.EndCol; col++ {
		for row := fromRow; row <= span.EndRow; row++ {
			if !g.IsBlank(row, col) {
				count++
				break
			}
		}
	}
	return count
}

// rowHeaderFormatted reports whether any populated cell of the row
// carries header-like (bold or filled) formatting.
func (a *Analyzer) rowHeaderFormatted(g *Grid, span Span, row int) bool {
	for col := span.StartCol; col <= span.EndCol; col++ {
		if g.IsBlank(row, col) {
			continue
		}
		if a.formats[models.CellRef{Row: row, Col: col}].HeaderLike() {
			return true
		}
	}
	return false
}

// uniqueStringRow reports whether every cell of the row is a unique
// non-empty string.
func (a *Analyzer) uniqueStringRow(g *Grid, span Span, row int) bool {
	seen := make(map[string]bool)
	for col := span.StartCol; col <= span.EndCol; col++ {
		v := g.At(row, col)
		s, ok := v.(string)
		if !ok || strings.TrimSpace(s) == "" {
			return false
		}
		if seen[s] {
			return false
		}
		seen[s] = true
	}
	return true
}

// rowHeaderLike reports whether a row still looks like header content:
// header formatting on any cell, or coverage by a multi-cell merge.
func (a *Analyzer) rowHeaderLike(g *Grid, span Span, row int) bool {
	if a.rowHeaderFormatted(g, span, row) {
		return true
	}
	for _, m := range a.merges {
		if m.Multi() && m.CoversRow(row) && m.IntersectsCols(span.StartCol, span.EndCol) {
			return true
		}
	}
	return false
}

// headerRowCount returns the number of leading rows consumed by the
// header: rows keep counting as header while they carry header-like
// formatting or share the type shape of the row above, stopping at the
// first data-shaped row. The count is bounded by HeaderScanRows and
// always leaves at least one data row when one exists.
func (a *Analyzer) headerRowCount(g *Grid, span Span, dataStart int) int {
	available := span.EndRow - dataStart + 1
	maxRows := a.weights.HeaderScanRows
	if maxRows > available-1 {
		maxRows = available - 1
	}
	if maxRows < 1 {
		return 1
	}

	count := 1
	for row := dataStart + 1; row < dataStart+maxRows; row++ {
		if a.rowHeaderLike(g, span, row) || sameTypeShape(g, span, row, row-1) {
			count++
			continue
		}
		break
	}
	return count
}

// sameTypeShape reports whether two rows have the same per-column value
// type profile.
func sameTypeShape(g *Grid, span Span, row, other int) bool {
	for col := span.StartCol; col <= span.EndCol; col++ {
		if typeClass(g.At(row, col)) != typeClass(g.At(other, col)) {
			return false
		}
	}
	return true
}

// typeClass buckets a cell value for shape comparison.
func typeClass(v any) string {
	if isBlank(v) {
		return "blank"
	}
	switch v.(type) {
	case string:
		return "string"
	case int64, float64, int:
		return "number"
	case bool:
		return "bool"
	default:
		return "other"
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
