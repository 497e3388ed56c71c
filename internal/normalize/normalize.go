// Package normalize canonicalizes raw cell values so that values from
// differently formatted spreadsheets can be compared. Two values are
// considered "the same" throughout the toolkit iff their normalized forms
// are equal.
package normalize

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// Normalize collapses whitespace, tab and newline runs to a single space,
// trims, and lower-cases. It is total and idempotent; empty input yields "".
// Only ASCII case folding is applied.
func Normalize(value string) string {
	if value == "" {
		return ""
	}
	s := whitespaceRun.ReplaceAllString(value, " ")
	return strings.ToLower(strings.TrimSpace(s))
}

// ParseAmount extracts a monetary amount from a raw cell value. Every
// character that is not a digit, '.' or '-' is discarded before parsing, so
// currency symbols, thousands separators and surrounding text are silently
// dropped. Returns 0 for anything that still does not parse to a finite
// number. Lossy on purpose; spreadsheets from non-technical sources carry
// irregular formatting and a usable partial result beats a hard failure.
func ParseAmount(value string) float64 {
	if value == "" {
		return 0
	}
	var b strings.Builder
	for _, r := range value {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}
	n, err := strconv.ParseFloat(b.String(), 64)
	if err != nil || math.IsInf(n, 0) || math.IsNaN(n) {
		return 0
	}
	return n
}

// DigitsOnly strips every non-digit character. Transaction and approval
// identifiers appear with or without dashes and spaces across sources;
// stripping to digits gives a stable join key.
func DigitsOnly(value string) string {
	var b strings.Builder
	for _, r := range value {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
