// Package datekey converts the heterogeneous date representations found in
// sales exports into normalized day and month keys. Every conversion is
// total: unparseable input yields ok=false, never an error.
package datekey

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

var (
	serialPattern = regexp.MustCompile(`^\d+(\.\d+)?$`)
	datePattern   = regexp.MustCompile(`(\d{4})[.\-/](\d{1,2})[.\-/](\d{1,2})`)
	nonDigit      = regexp.MustCompile(`[^0-9]`)
)

// Layouts tried for free-form date strings, most specific first.
var fallbackLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"Jan 2, 2006",
}

// DayKey converts a payment date cell to YYYY-MM-DD. Purely numeric values
// are treated as spreadsheet serial dates; strings are matched against a
// YYYY[.-/]MM[.-/]DD pattern first, then parsed with common layouts.
func DayKey(value string) (string, bool) {
	s := strings.TrimSpace(value)
	if s == "" {
		return "", false
	}
	if serialPattern.MatchString(s) {
		serial, err := strconv.ParseFloat(s, 64)
		if err == nil {
			t, err := excelize.ExcelDateToTime(serial, false)
			if err == nil && t.Year() > 0 {
				return t.Format("2006-01-02"), true
			}
		}
		return "", false
	}
	if m := datePattern.FindStringSubmatch(s); m != nil {
		month, _ := strconv.Atoi(m[2])
		day, _ := strconv.Atoi(m[3])
		return fmt.Sprintf("%s-%02d-%02d", m[1], month, day), true
	}
	for _, layout := range fallbackLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02"), true
		}
	}
	return "", false
}

// MonthKeyFromPurchase extracts YYYY-MM from a compact purchase timestamp
// shaped like yyyymmddhhmmss. Non-digits are stripped first; at least six
// digits and a month in 01-12 are required.
func MonthKeyFromPurchase(value string) (string, bool) {
	s := nonDigit.ReplaceAllString(strings.TrimSpace(value), "")
	if len(s) < 6 {
		return "", false
	}
	year, month := s[:4], s[4:6]
	if !validMonth(month) {
		return "", false
	}
	return year + "-" + month, true
}

// DayKeyFromPurchase extracts YYYY-MM-DD from a compact purchase timestamp.
// Requires at least eight digits; day is range-checked to 01-31 without
// calendar-aware validation.
func DayKeyFromPurchase(value string) (string, bool) {
	s := nonDigit.ReplaceAllString(strings.TrimSpace(value), "")
	if len(s) < 8 {
		return "", false
	}
	year, month, day := s[:4], s[4:6], s[6:8]
	if !validMonth(month) || !validDay(day) {
		return "", false
	}
	return year + "-" + month + "-" + day, true
}

func validMonth(mm string) bool {
	n, err := strconv.Atoi(mm)
	return err == nil && n >= 1 && n <= 12
}

func validDay(dd string) bool {
	n, err := strconv.Atoi(dd)
	return err == nil && n >= 1 && n <= 31
}
