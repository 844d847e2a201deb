// Package parser extracts typed records from the sale-event workbook.
package parser

import (
	"strconv"
	"strings"
)

// Coercion functions convert raw cell text into optional typed values.
// They are total: malformed input degrades to nil, never an error. A nil
// result means "absent", which downstream code must treat as distinct from
// zero or the empty string.

// Number parses a cell as a float. Currency formatting ("$", thousands
// separators) is tolerated because formatted workbooks surface it in the
// cached cell text.
func Number(raw string) *float64 {
	s := cleanNumeric(raw)
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}

// Integer parses a cell as an int, going through float first so that
// numeric text with a decimal point ("42.9") truncates instead of failing.
func Integer(raw string) *int {
	f := Number(raw)
	if f == nil {
		return nil
	}
	i := int(*f)
	return &i
}

// Text returns the trimmed cell text, or nil when the cell is empty.
func Text(raw string) *string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	return &s
}

func cleanNumeric(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	return s
}
