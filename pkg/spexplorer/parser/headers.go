package parser

import (
	"fmt"
	"slices"
	"strings"
	"unicode"
)

// TableHeaders resolves a table span's header row into field names:
// values are sanitized, blanks become positional placeholders, and
// duplicates get numeric suffixes in first-occurrence order. Resolution
// never fails.
func (a *Analyzer) TableHeaders(g *Grid, span Span, headerRow int) []string {
	names := make([]string, 0, span.Width())
	for col := span.StartCol; col <= span.EndCol; col++ {
		name := cleanKey(g.At(headerRow, col))
		if name == "" {
			name = placeholderName(col - span.StartCol + 1)
		}
		names = append(names, name)
	}
	return dedupeNames(names)
}

// ComplexHeaders flattens a multi-row header into one linear field-name
// list. For each column the non-empty labels are concatenated walking
// top-down across the header rows, skipping repeats introduced by merge
// propagation. Returns the header level count and the resolved names.
func (a *Analyzer) ComplexHeaders(g *Grid, span Span, dataStart int) (int, []string) {
	levels := a.headerRowCount(g, span, dataStart)

	names := make([]string, 0, span.Width())
	for col := span.StartCol; col <= span.EndCol; col++ {
		var parts []string
		for row := dataStart; row < dataStart+levels; row++ {
			part := cleanKey(g.At(row, col))
			if part == "" {
				continue
			}
			if !slices.Contains(parts, part) {
				parts = append(parts, part)
			}
		}
		if len(parts) == 0 {
			names = append(names, placeholderName(col-span.StartCol+1))
			continue
		}
		names = append(names, strings.Join(parts, "_"))
	}
	return levels, dedupeNames(names)
}

// cleanKey normalizes a cell value into field-name form: trimmed,
// non-alphanumeric runs collapsed to single underscores.
func cleanKey(v any) string {
	if v == nil {
		return ""
	}
	s := strings.TrimSpace(fmt.Sprint(v))
	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	out := b.String()
	for strings.Contains(out, "__") {
		out = strings.ReplaceAll(out, "__", "_")
	}
	return strings.Trim(out, "_")
}

// placeholderName names a blank header by its 1-based position within
// the span.
func placeholderName(pos int) string {
	return fmt.Sprintf("Column_%d", pos)
}

// dedupeNames disambiguates duplicate names with numeric suffixes in
// left-to-right first-occurrence order: the first keeps its name, later
// ones become name_2, name_3, and so on.
func dedupeNames(names []string) []string {
	counts := make(map[string]int, len(names))
	out := make([]string, len(names))
	for i, name := range names {
		counts[name]++
		if counts[name] == 1 {
			out[i] = name
			continue
		}
		out[i] = fmt.Sprintf("%s_%d", name, counts[name])
	}
	return out
}
