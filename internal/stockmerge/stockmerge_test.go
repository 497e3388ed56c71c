package stockmerge

import (
	"testing"

	"github.com/lallafm1984/wil-store/internal/config"
	"github.com/lallafm1984/wil-store/internal/header"
	"github.com/lallafm1984/wil-store/internal/sheet"
)

func mergeColumns() config.MergeColumns {
	return config.MergeColumns{
		BaseQuantity:   []string{"수량"},
		BaseLocation:   []string{"위치"},
		BaseVendor:     []string{"매장"},
		SourceQuantity: []string{"재고"},
		SourceLocation: []string{"보관위치"},
		Segments: []config.VendorSegment{
			{Vendor: "라페어 신논현점", Quantity: []string{"신논현재고"}, Location: []string{"신논현위치"}},
			{Vendor: "라페어 논현점", Quantity: []string{"논현재고"}, Location: []string{"논현위치"}},
		},
	}
}

var joinGroups = [][]string{{"상품명"}, {"바코드"}}

func buildMapping(base, overlay *sheet.Sheet) header.MergeMapping {
	return header.ComputeFieldMapping(base.Headers, overlay.Headers, mergeColumns(), joinGroups)
}

func TestMerge_VendorSpecificColumnWins(t *testing.T) {
	base := &sheet.Sheet{
		Headers: []string{"상품명", "수량", "매장"},
		Rows: []sheet.Row{
			{"상품명": "가방", "수량": "1", "매장": "라페어 논현점"},
		},
	}
	overlay := &sheet.Sheet{
		Headers: []string{"상품명", "논현재고", "재고"},
		Rows: []sheet.Row{
			{"상품명": "가방", "논현재고": "7", "재고": "3"},
		},
	}
	res := Merge(base, overlay, buildMapping(base, overlay))
	if res.ChangedRows != 1 || res.ChangedCells != 1 {
		t.Fatalf("counters: rows=%d cells=%d", res.ChangedRows, res.ChangedCells)
	}
	if got := res.Rows[0]["수량"]; got != "7" {
		t.Fatalf("quantity = %q, want vendor-specific 7 over generic 3", got)
	}
	prev, changed := Changed(res.Rows[0], "수량")
	if !changed || prev != "1" {
		t.Fatalf("prior value not tracked: prev=%q changed=%v", prev, changed)
	}
}

func TestMerge_GenericFallbackWhenSegmentColumnMissing(t *testing.T) {
	base := &sheet.Sheet{
		Headers: []string{"상품명", "수량", "매장"},
		Rows: []sheet.Row{
			{"상품명": "모자", "수량": "2", "매장": "라페어 논현점"},
		},
	}
	overlay := &sheet.Sheet{
		Headers: []string{"상품명", "재고"},
		Rows: []sheet.Row{
			{"상품명": "모자", "재고": "9"},
		},
	}
	res := Merge(base, overlay, buildMapping(base, overlay))
	if got := res.Rows[0]["수량"]; got != "9" {
		t.Fatalf("quantity = %q, want generic 9", got)
	}
}

func TestMerge_EqualUnderNormalizationPassesThrough(t *testing.T) {
	base := &sheet.Sheet{
		Headers: []string{"상품명", "수량"},
		Rows: []sheet.Row{
			{"상품명": "가방", "수량": "5"},
		},
	}
	overlay := &sheet.Sheet{
		Headers: []string{"상품명", "재고"},
		Rows: []sheet.Row{
			{"상품명": "가방", "재고": " 5 "},
		},
	}
	res := Merge(base, overlay, buildMapping(base, overlay))
	if res.ChangedCells != 0 || res.ChangedRows != 0 {
		t.Fatalf("whitespace-only difference counted as change: %+v", res)
	}
	if res.Rows[0]["수량"] != "5" {
		t.Fatalf("value mutated: %q", res.Rows[0]["수량"])
	}
}

func TestMerge_NoOverlayMatchPassesThrough(t *testing.T) {
	base := &sheet.Sheet{
		Headers: []string{"상품명", "수량"},
		Rows: []sheet.Row{
			{"상품명": "없는상품", "수량": "4"},
		},
	}
	overlay := &sheet.Sheet{
		Headers: []string{"상품명", "재고"},
		Rows: []sheet.Row{
			{"상품명": "가방", "재고": "1"},
		},
	}
	res := Merge(base, overlay, buildMapping(base, overlay))
	if res.ChangedRows != 0 {
		t.Fatalf("unmatched row counted as changed")
	}
	if res.Rows[0]["수량"] != "4" {
		t.Fatalf("unmatched row mutated")
	}
}

func TestMerge_DuplicateOverlayKeysFirstWins(t *testing.T) {
	base := &sheet.Sheet{
		Headers: []string{"상품명", "수량"},
		Rows: []sheet.Row{
			{"상품명": "가방", "수량": "0"},
		},
	}
	overlay := &sheet.Sheet{
		Headers: []string{"상품명", "재고"},
		Rows: []sheet.Row{
			{"상품명": "가방", "재고": "11"},
			{"상품명": "가방", "재고": "99"},
		},
	}
	res := Merge(base, overlay, buildMapping(base, overlay))
	if got := res.Rows[0]["수량"]; got != "11" {
		t.Fatalf("quantity = %q, want first duplicate 11", got)
	}
}

func TestMerge_PreservesRowOrder(t *testing.T) {
	base := &sheet.Sheet{
		Headers: []string{"상품명", "수량"},
		Rows: []sheet.Row{
			{"상품명": "c", "수량": "1"},
			{"상품명": "a", "수량": "2"},
			{"상품명": "b", "수량": "3"},
		},
	}
	overlay := &sheet.Sheet{
		Headers: []string{"상품명", "재고"},
		Rows: []sheet.Row{
			{"상품명": "a", "재고": "20"},
		},
	}
	res := Merge(base, overlay, buildMapping(base, overlay))
	if res.Rows[0]["상품명"] != "c" || res.Rows[1]["상품명"] != "a" || res.Rows[2]["상품명"] != "b" {
		t.Fatalf("row order changed")
	}
}

func TestStripBookkeeping(t *testing.T) {
	rows := []sheet.Row{
		{"수량": "7", ChangedPrefix + "수량": "1", PrevPrefix + "수량": "1"},
	}
	clean := StripBookkeeping(rows)
	if len(clean[0]) != 1 || clean[0]["수량"] != "7" {
		t.Fatalf("bookkeeping keys survived: %+v", clean[0])
	}
	// Source rows are untouched.
	if len(rows[0]) != 3 {
		t.Fatalf("input mutated")
	}
}
