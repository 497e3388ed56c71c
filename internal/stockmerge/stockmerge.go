// Package stockmerge overlays one inventory sheet's values onto another by
// a detected join key, routing each base row to the overlay columns that
// belong to its store location. Mutated cells carry the prior value under a
// bookkeeping column so a diff can be rendered; the bookkeeping columns are
// stripped on export.
package stockmerge

import (
	"strings"

	"github.com/lallafm1984/wil-store/internal/header"
	"github.com/lallafm1984/wil-store/internal/normalize"
	"github.com/lallafm1984/wil-store/internal/sheet"
)

// Bookkeeping column prefixes attached to merged rows. A mutated column C
// gets ChangedPrefix+C = "1" and PrevPrefix+C = the prior raw value. The
// sheet encoder only writes the supplied header order, so these never reach
// an exported file.
const (
	ChangedPrefix = "__changed__"
	PrevPrefix    = "__prev__"
)

// Result is the outcome of one merge pass.
type Result struct {
	Rows         []sheet.Row
	ChangedCells int
	ChangedRows  int
}

// Merge applies the overlay sheet onto the base rows using mapping. For
// each base row the overlay row with the same normalized join-key value is
// looked up (first overlay match wins on duplicate keys); the quantity and
// location fields selected for the row's vendor are compared under
// normalization and overwritten with the incoming raw value when different.
// Rows without an overlay match pass through unchanged. The base sheet's
// row order is preserved.
func Merge(base, overlay *sheet.Sheet, mapping header.MergeMapping) Result {
	overlayByKey := indexOverlay(overlay, mapping.JoinKey)

	var res Result
	res.Rows = make([]sheet.Row, 0, len(base.Rows))
	for _, baseRow := range base.Rows {
		key := normalize.Normalize(baseRow[mapping.JoinKey])
		overlayRow, ok := overlayByKey[key]
		if !ok || key == "" {
			res.Rows = append(res.Rows, baseRow)
			continue
		}

		srcQty, srcLoc := mapping.SourceFieldsFor(baseRow)
		merged := cloneRow(baseRow)
		changed := false
		changed = applyField(merged, mapping.BaseQuantity, overlayRow, srcQty, &res.ChangedCells) || changed
		changed = applyField(merged, mapping.BaseLocation, overlayRow, srcLoc, &res.ChangedCells) || changed
		if changed {
			res.ChangedRows++
		}
		res.Rows = append(res.Rows, merged)
	}
	return res
}

// indexOverlay builds the normalized-key lookup. Duplicate keys keep the
// first row; later duplicates are routine in exports and not an error.
func indexOverlay(overlay *sheet.Sheet, joinKey string) map[string]sheet.Row {
	sourceKey := joinKey
	if _, ok := overlay.Column(joinKey); !ok {
		// The overlay may spell the join column differently; fall back to
		// the header whose normalized form matches.
		for _, h := range overlay.Headers {
			if normalize.Normalize(h) == normalize.Normalize(joinKey) {
				sourceKey = h
				break
			}
		}
	}
	byKey := make(map[string]sheet.Row, len(overlay.Rows))
	for _, row := range overlay.Rows {
		key := normalize.Normalize(row[sourceKey])
		if key == "" {
			continue
		}
		if _, seen := byKey[key]; !seen {
			byKey[key] = row
		}
	}
	return byKey
}

// applyField overwrites targetCol in merged with the overlay's sourceCol
// value when the two differ under normalization, recording the prior value.
// Missing columns on either side skip the field.
func applyField(merged sheet.Row, targetCol string, overlayRow sheet.Row, sourceCol string, cells *int) bool {
	if targetCol == "" || sourceCol == "" {
		return false
	}
	incoming, ok := overlayRow[sourceCol]
	if !ok {
		return false
	}
	current := merged[targetCol]
	if normalize.Normalize(current) == normalize.Normalize(incoming) {
		return false
	}
	merged[PrevPrefix+targetCol] = current
	merged[ChangedPrefix+targetCol] = "1"
	merged[targetCol] = incoming
	*cells++
	return true
}

// Changed reports whether col was mutated in row during a merge, and the
// prior value if so.
func Changed(row sheet.Row, col string) (prev string, changed bool) {
	if row[ChangedPrefix+col] != "1" {
		return "", false
	}
	return row[PrevPrefix+col], true
}

// StripBookkeeping returns rows without the changed/previous markers, for
// callers that hand rows to anything other than the header-ordered encoder.
func StripBookkeeping(rows []sheet.Row) []sheet.Row {
	out := make([]sheet.Row, len(rows))
	for i, row := range rows {
		clean := make(sheet.Row, len(row))
		for k, v := range row {
			if strings.HasPrefix(k, ChangedPrefix) || strings.HasPrefix(k, PrevPrefix) {
				continue
			}
			clean[k] = v
		}
		out[i] = clean
	}
	return out
}

func cloneRow(row sheet.Row) sheet.Row {
	out := make(sheet.Row, len(row))
	for k, v := range row {
		out[k] = v
	}
	return out
}
