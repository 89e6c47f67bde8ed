package parser

// Span is a candidate section: a contiguous run of non-empty rows
// trimmed to the bounding box of its populated columns.
type Span struct {
	StartRow int
	EndRow   int
	StartCol int
	EndCol   int
}

// Width returns the number of columns covered by the span.
func (s Span) Width() int {
	if s.EndCol < s.StartCol {
		return 0
	}
	return s.EndCol - s.StartCol + 1
}

// Height returns the number of rows covered by the span.
func (s Span) Height() int {
	if s.EndRow < s.StartRow {
		return 0
	}
	return s.EndRow - s.StartRow + 1
}

// Segment splits a grid into candidate spans. Rows are scanned top to
// bottom; any run of empty rows acts as a single separator, and each
// non-empty run between separators (or the grid edges) becomes one
// span. Leading and trailing empty runs produce no span, and a grid
// with no empty rows yields exactly one span.
func Segment(g *Grid) []Span {
	var spans []Span
	start := 0

	for row := 1; row <= g.Rows(); row++ {
		if g.RowEmpty(row) {
			if start > 0 {
				spans = append(spans, trimSpan(g, start, row-1))
				start = 0
			}
			continue
		}
		if start == 0 {
			start = row
		}
	}
	if start > 0 {
		spans = append(spans, trimSpan(g, start, g.Rows()))
	}

	return spans
}

// trimSpan narrows a row run to the bounding box of its populated
// columns. The rows are non-empty by construction, so the result has
// at least one column.
func trimSpan(g *Grid, startRow, endRow int) Span {
	minCol, maxCol := 0, 0
	for row := startRow; row <= endRow; row++ {
		for col := 1; col <= g.Cols(); col++ {
			if g.IsBlank(row, col) {
				continue
			}
			if minCol == 0 || col < minCol {
				minCol = col
			}
			if col > maxCol {
				maxCol = col
			}
		}
	}
	return Span{StartRow: startRow, EndRow: endRow, StartCol: minCol, EndCol: maxCol}
}
