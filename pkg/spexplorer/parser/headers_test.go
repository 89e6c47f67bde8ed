package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/naveenbxyz/spexplorer/pkg/spexplorer/models"
)

func TestTableHeaders(t *testing.T) {
	g, _ := BuildGrid([][]any{
		{"Date", "Amount (USD)", "", "Amount (USD)"},
		{int64(1), int64(2), int64(3), int64(4)},
	}, nil)
	a := NewAnalyzer(DefaultWeights(), nil, nil)
	span := Span{StartRow: 1, EndRow: 2, StartCol: 1, EndCol: 4}

	headers := a.TableHeaders(g, span, 1)
	assert.Equal(t, []string{"Date", "Amount_USD", "Column_3", "Amount_USD_2"}, headers)
}

func TestTableHeadersIdempotent(t *testing.T) {
	g, _ := BuildGrid([][]any{
		{"A", "A", "", "B"},
		{int64(1), int64(2), int64(3), int64(4)},
	}, nil)
	a := NewAnalyzer(DefaultWeights(), nil, nil)
	span := Span{StartRow: 1, EndRow: 2, StartCol: 1, EndCol: 4}

	first := a.TableHeaders(g, span, 1)
	second := a.TableHeaders(g, span, 1)
	assert.Equal(t, first, second)
}

func TestComplexHeadersFlattening(t *testing.T) {
	merges := []models.MergeRange{
		{MinRow: 1, MinCol: 1, MaxRow: 1, MaxCol: 2},
		{MinRow: 1, MinCol: 3, MaxRow: 1, MaxCol: 4},
	}
	g, _ := BuildGrid([][]any{
		{"Category A", nil, "Category B", nil},
		{"Field1", "Field2", "Field3", "Field4"},
		{int64(1), int64(2), int64(3), int64(4)},
	}, merges)
	a := NewAnalyzer(DefaultWeights(), merges, nil)
	span := Span{StartRow: 1, EndRow: 3, StartCol: 1, EndCol: 4}

	levels, names := a.ComplexHeaders(g, span, 1)
	assert.Equal(t, 2, levels)
	assert.Equal(t, []string{
		"Category_A_Field1",
		"Category_A_Field2",
		"Category_B_Field3",
		"Category_B_Field4",
	}, names)

	// Flattening the same header twice yields identical names.
	levels2, names2 := a.ComplexHeaders(g, span, 1)
	assert.Equal(t, levels, levels2)
	assert.Equal(t, names, names2)
}

func TestComplexHeadersSkipsMergeRepeats(t *testing.T) {
	// A vertical merge repeats the same label on both header rows; the
	// flattened name must not duplicate it.
	merges := []models.MergeRange{
		{MinRow: 1, MinCol: 1, MaxRow: 2, MaxCol: 1},
		{MinRow: 1, MinCol: 2, MaxRow: 1, MaxCol: 3},
	}
	g, _ := BuildGrid([][]any{
		{"ID", "Totals", nil},
		{nil, "Net", "Gross"},
		{int64(1), int64(2), int64(3)},
	}, merges)
	a := NewAnalyzer(DefaultWeights(), merges, nil)
	span := Span{StartRow: 1, EndRow: 3, StartCol: 1, EndCol: 3}

	levels, names := a.ComplexHeaders(g, span, 1)
	require.Equal(t, 2, levels)
	assert.Equal(t, []string{"ID", "Totals_Net", "Totals_Gross"}, names)
}

func TestCleanKey(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{"Client Name", "Client_Name"},
		{"  padded  ", "padded"},
		{"Amount (USD)", "Amount_USD"},
		{"multi\nline\tkey", "multi_line_key"},
		{"__already__odd__", "already_odd"},
		{int64(42), "42"},
		{nil, ""},
		{"***", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, cleanKey(tt.in), "cleanKey(%v)", tt.in)
	}
}

func TestDedupeNames(t *testing.T) {
	in := []string{"Amount", "Amount", "Date", "Amount"}
	assert.Equal(t, []string{"Amount", "Amount_2", "Date", "Amount_3"}, dedupeNames(in))
}
