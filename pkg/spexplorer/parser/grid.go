package parser

import (
	"fmt"
	"strings"

	"github.com/naveenbxyz/spexplorer/pkg/spexplorer/models"
)

// Grid is a dense per-cell value matrix for one sheet after merge
// propagation. Every coordinate inside a merge range resolves to the
// range's top-left value. Coordinates are 1-based.
type Grid struct {
	rows  int
	cols  int
	cells [][]any
}

// BuildGrid builds a Grid from a raw cell matrix and its declared merge
// ranges. Inverted or out-of-bounds ranges are dropped and reported as
// warnings rather than aborting the sheet. The input matrix is never
// mutated.
func BuildGrid(cells [][]any, merges []models.MergeRange) (*Grid, []string) {
	rows := len(cells)
	cols := 0
	if rows > 0 {
		cols = len(cells[0])
	}

	copied := make([][]any, rows)
	for r := range cells {
		copied[r] = make([]any, cols)
		copy(copied[r], cells[r])
	}
	g := &Grid{rows: rows, cols: cols, cells: copied}

	var warnings []string
	for _, m := range merges {
		if !m.Valid(rows, cols) {
			warnings = append(warnings, fmt.Sprintf(
				"dropping invalid merge range rows %d-%d cols %d-%d", m.MinRow, m.MaxRow, m.MinCol, m.MaxCol))
			continue
		}
		topLeft := g.At(m.MinRow, m.MinCol)
		for r := m.MinRow; r <= m.MaxRow; r++ {
			for c := m.MinCol; c <= m.MaxCol; c++ {
				g.cells[r-1][c-1] = topLeft
			}
		}
	}

	return g, warnings
}

// Rows returns the number of rows in the grid.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns in the grid.
func (g *Grid) Cols() int { return g.cols }

// At returns the resolved value at a 1-based coordinate, nil when the
// coordinate is blank or out of bounds.
func (g *Grid) At(row, col int) any {
	if row < 1 || row > g.rows || col < 1 || col > g.cols {
		return nil
	}
	return g.cells[row-1][col-1]
}

// IsBlank reports whether the cell holds no value. Whitespace-only
// strings count as blank.
func (g *Grid) IsBlank(row, col int) bool {
	return isBlank(g.At(row, col))
}

// RowEmpty reports whether every cell of the row is blank.
func (g *Grid) RowEmpty(row int) bool {
	for c := 1; c <= g.cols; c++ {
		if !g.IsBlank(row, c) {
			return false
		}
	}
	return true
}

// isBlank reports whether a cell value is empty.
func isBlank(v any) bool {
	if v == nil {
		return true
	}
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s) == ""
	}
	return false
}
