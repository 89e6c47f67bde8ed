package parser

import (
	"fmt"
	"strings"
	"time"
)

// dateLayouts are the date renderings seen across the source workbooks,
// including excelize's default short date style.
var dateLayouts = []string{
	"2006-01-02",
	"01/02/2006",
	"02-01-2006",
	"2006/01/02",
	"01-02-06",
}

// NormalizeValue converts a cell value into its portable serialized
// form: dates become ISO-8601 strings, numbers and booleans stay as-is,
// other values become trimmed text, blanks become nil.
func NormalizeValue(v any) any {
	switch t := v.(type) {
	case nil:
		return nil
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return nil
		}
		for _, layout := range dateLayouts {
			if d, err := time.Parse(layout, s); err == nil {
				return d.Format("2006-01-02")
			}
		}
		return s
	case time.Time:
		if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 {
			return t.Format("2006-01-02")
		}
		return t.Format(time.RFC3339)
	case bool, int, int64, float64:
		return t
	default:
		return strings.TrimSpace(fmt.Sprint(t))
	}
}
