package util

import (
	"regexp"
	"strconv"
	"strings"
)

var numberPattern = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)

// ParseQuantity coerces a stock/quantity cell to a number. Blank or
// malformed input yields nil rather than an error.
func ParseQuantity(input string) *float64 {
	s := strings.TrimSpace(strings.ReplaceAll(input, "\u00a0", ""))
	if s == "" || !numberPattern.MatchString(s) {
		return nil
	}
	parsed, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return FloatPtr(parsed)
}

// FormatQuantity renders a parsed quantity without trailing zeros.
func FormatQuantity(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func FloatPtr(v float64) *float64 { return &v }
