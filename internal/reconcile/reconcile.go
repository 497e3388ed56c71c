// Package reconcile matches two independently sourced settlement exports by
// normalized approval key and classifies every key as matched, mismatched
// or present on one side only. Amounts are carried as decimals so sub-unit
// rounding noise never flips a classification.
package reconcile

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/lallafm1984/wil-store/internal/normalize"
	"github.com/lallafm1984/wil-store/internal/sheet"
)

// Status classifies one reconciliation key.
type Status string

const (
	StatusMatched    Status = "matched"
	StatusMismatched Status = "mismatched"
	StatusOnlyA      Status = "onlyA"
	StatusOnlyB      Status = "onlyB"
)

// tolerance is the amount difference below which two sides are considered
// equal. Exports round independently, so sub-unit noise is expected.
var tolerance = decimal.NewFromInt(1)

// Entry is the aggregate for one normalized key on one side.
type Entry struct {
	Amount decimal.Decimal
	Sample sheet.Row // first row seen for the key, for display fields
}

// Row is the reconciliation result for one key.
type Row struct {
	Key        string
	AmountA    decimal.Decimal
	AmountB    decimal.Decimal
	InA        bool
	InB        bool
	Difference decimal.Decimal // AmountA - AmountB, absent side counted as 0
	Status     Status
	SampleA    sheet.Row
	SampleB    sheet.Row
}

// AggregateByKey folds rows into per-key amount totals. Keys are normalized
// to digits only; rows whose normalized key is empty are dropped and
// counted. Duplicate keys sum their amounts; the first row seen for a key
// is kept as the sample.
func AggregateByKey(rows []sheet.Row, keyCol, amountCol string) (map[string]Entry, int) {
	entries := make(map[string]Entry)
	dropped := 0
	for _, row := range rows {
		key := normalize.DigitsOnly(row[keyCol])
		if key == "" {
			dropped++
			continue
		}
		amount := decimal.NewFromFloat(normalize.ParseAmount(row[amountCol]))
		e, ok := entries[key]
		if !ok {
			entries[key] = Entry{Amount: amount, Sample: row}
			continue
		}
		e.Amount = e.Amount.Add(amount)
		entries[key] = e
	}
	return entries, dropped
}

// Reconcile joins the two sides over the union of their keys and classifies
// each key. Both sides present: matched when the absolute difference is
// under one unit, mismatched otherwise. One side present: onlyA or onlyB.
// Output is sorted by key ascending.
func Reconcile(a, b map[string]Entry) []Row {
	keys := make(map[string]bool, len(a)+len(b))
	for k := range a {
		keys[k] = true
	}
	for k := range b {
		keys[k] = true
	}

	rows := make([]Row, 0, len(keys))
	for k := range keys {
		ea, inA := a[k]
		eb, inB := b[k]
		r := Row{
			Key:     k,
			AmountA: ea.Amount,
			AmountB: eb.Amount,
			InA:     inA,
			InB:     inB,
			SampleA: ea.Sample,
			SampleB: eb.Sample,
		}
		r.Difference = r.AmountA.Sub(r.AmountB)
		switch {
		case inA && inB:
			if r.Difference.Abs().Cmp(tolerance) < 0 {
				r.Status = StatusMatched
			} else {
				r.Status = StatusMismatched
			}
		case inA:
			r.Status = StatusOnlyA
		default:
			r.Status = StatusOnlyB
		}
		rows = append(rows, r)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Key < rows[j].Key })
	return rows
}

// Summary aggregates totals over reconciliation rows, skipping excluded
// keys. Excluded rows stay in the displayed list; they only leave the
// totals.
type Summary struct {
	TotalA          decimal.Decimal
	TotalB          decimal.Decimal
	TotalDifference decimal.Decimal
	Matched         int
	Mismatched      int
	OnlyA           int
	OnlyB           int
	Excluded        int
}

// Summarize computes side totals and per-status counts over the rows whose
// key is not in excluded.
func Summarize(rows []Row, excluded map[string]bool) Summary {
	var s Summary
	for _, r := range rows {
		if excluded[r.Key] {
			s.Excluded++
			continue
		}
		s.TotalA = s.TotalA.Add(r.AmountA)
		s.TotalB = s.TotalB.Add(r.AmountB)
		s.TotalDifference = s.TotalDifference.Add(r.Difference)
		switch r.Status {
		case StatusMatched:
			s.Matched++
		case StatusMismatched:
			s.Mismatched++
		case StatusOnlyA:
			s.OnlyA++
		case StatusOnlyB:
			s.OnlyB++
		}
	}
	return s
}
