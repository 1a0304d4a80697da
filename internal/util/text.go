package util

import (
	"strings"
	"unicode"
)

// IdentifierWidth is the canonical ISBN-13 width numeric identifiers are padded to.
const IdentifierWidth = 13

var invisibleReplacer = strings.NewReplacer("\u200b", "", "\u00a0", "", "\ufeff", "")

// NormalizeIdentifier turns a raw ISBN/EAN cell into a comparison key.
// Numeric codes shorter than 13 digits are zero padded; anything else is
// returned trimmed but otherwise untouched.
func NormalizeIdentifier(raw *string) string {
	if raw == nil {
		return ""
	}
	s := strings.TrimSpace(invisibleReplacer.Replace(*raw))
	n := len([]rune(s))
	if IsDigits(s) && n < IdentifierWidth {
		return strings.Repeat("0", IdentifierWidth-n) + s
	}
	return s
}

// NormalizeColumnName uppercases a header cell and drops punctuation, so
// "isbn-13", "ISBN#13" and " Isbn13 " all collapse to "ISBN13".
func NormalizeColumnName(input string) string {
	s := strings.ToUpper(strings.TrimSpace(input))
	return strings.TrimSpace(StripPunctuation(s))
}

// StripPunctuation keeps letters, digits, underscores and whitespace.
func StripPunctuation(input string) string {
	out := strings.Builder{}
	out.Grow(len(input))
	for _, r := range input {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || unicode.IsSpace(r) {
			out.WriteRune(r)
		}
	}
	return out.String()
}

// RemoveSpaces drops every whitespace rune.
func RemoveSpaces(input string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, input)
}

// IsDigits reports whether s is non-empty and made only of decimal digits.
func IsDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// ContainsAny reports whether s contains at least one of the probes.
func ContainsAny(s string, probes ...string) bool {
	for _, p := range probes {
		if strings.Contains(s, p) {
			return true
		}
	}
	return false
}

func StringPtr(v string) *string { return &v }
