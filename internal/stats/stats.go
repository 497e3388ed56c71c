// Package stats summarizes a sheet column by column: distinct value counts
// for every column, numeric aggregates where the values parse as numbers.
package stats

import (
	"sort"
	"strings"

	"github.com/lallafm1984/wil-store/internal/normalize"
	"github.com/lallafm1984/wil-store/internal/sheet"
)

// ValueCount is one distinct value and how often it occurs.
type ValueCount struct {
	Value string
	Count int
}

// Column is the summary of one column.
type Column struct {
	Header   string
	NonEmpty int
	Values   []ValueCount // sorted by count descending, then value

	// Numeric aggregates, valid only when Numeric is true. A column counts
	// as numeric when every non-empty value parses as a number.
	Numeric bool
	Min     float64
	Max     float64
	Sum     float64
	Avg     float64
}

// Summarize computes per-column statistics in header order.
func Summarize(s *sheet.Sheet) []Column {
	cols := make([]Column, 0, len(s.Headers))
	for _, h := range s.Headers {
		cols = append(cols, summarizeColumn(s, h))
	}
	return cols
}

func summarizeColumn(s *sheet.Sheet, header string) Column {
	col := Column{Header: header, Numeric: true}
	counts := make(map[string]int)
	var order []string
	for _, row := range s.Rows {
		v := strings.TrimSpace(row[header])
		if v == "" {
			continue
		}
		col.NonEmpty++
		if counts[v] == 0 {
			order = append(order, v)
		}
		counts[v]++
		if !isNumeric(v) {
			col.Numeric = false
		}
	}
	if col.NonEmpty == 0 {
		col.Numeric = false
	}

	col.Values = make([]ValueCount, 0, len(order))
	for _, v := range order {
		col.Values = append(col.Values, ValueCount{Value: v, Count: counts[v]})
	}
	sort.SliceStable(col.Values, func(i, j int) bool {
		if col.Values[i].Count != col.Values[j].Count {
			return col.Values[i].Count > col.Values[j].Count
		}
		return col.Values[i].Value < col.Values[j].Value
	})

	if col.Numeric {
		first := true
		for _, row := range s.Rows {
			v := strings.TrimSpace(row[header])
			if v == "" {
				continue
			}
			n := normalize.ParseAmount(v)
			if first {
				col.Min, col.Max = n, n
				first = false
			} else {
				if n < col.Min {
					col.Min = n
				}
				if n > col.Max {
					col.Max = n
				}
			}
			col.Sum += n
		}
		col.Avg = col.Sum / float64(col.NonEmpty)
	}
	return col
}

// isNumeric reports whether v looks like a plain number, optionally with
// currency formatting. A value qualifies when stripping to digits, dot and
// minus leaves something and the stripped text keeps at least one digit.
func isNumeric(v string) bool {
	hasDigit := false
	for _, r := range v {
		switch {
		case r >= '0' && r <= '9':
			hasDigit = true
		case r == '.' || r == '-' || r == ',' || r == ' ':
		case r == '₩' || r == '원':
		default:
			return false
		}
	}
	return hasDigit
}
