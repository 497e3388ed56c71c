package header

import (
	"testing"

	"github.com/lallafm1984/wil-store/internal/config"
	"github.com/lallafm1984/wil-store/internal/sheet"
)

var joinGroups = [][]string{
	{"상품명", "상품이름", "제품명", "name", "product", "title"},
	{"바코드", "barcode", "ean"},
	{"상품코드", "sku", "품번"},
}

func TestResolve_NormalizedMatch(t *testing.T) {
	headers := []string{"No", " 상품  이름", "재고 수량"}
	got, ok := Resolve(headers, []string{"상품 이름"})
	if !ok || got != " 상품  이름" {
		t.Fatalf("Resolve() = %q, %v; want original header, true", got, ok)
	}
}

func TestResolve_SynonymOrderWins(t *testing.T) {
	headers := []string{"수량", "재고수량"}
	got, ok := Resolve(headers, []string{"재고수량", "수량"})
	if !ok || got != "재고수량" {
		t.Fatalf("Resolve() = %q, want 재고수량 (earlier synonym takes priority)", got)
	}
}

func TestResolve_Absent(t *testing.T) {
	if got, ok := Resolve([]string{"a", "b"}, []string{"c"}); ok {
		t.Fatalf("Resolve() = %q, want not ok", got)
	}
}

func TestDetectJoinKey_GroupMatchBothSides(t *testing.T) {
	base := []string{"No", "상품명", "가격"}
	source := []string{"제품명", "재고"}
	got, ok := DetectJoinKey(base, source, joinGroups)
	if !ok || got != "상품명" {
		t.Fatalf("DetectJoinKey() = %q, %v; want 상품명, true", got, ok)
	}
}

func TestDetectJoinKey_GroupNeedsBothSides(t *testing.T) {
	// Name group resolves only on the base side; the barcode group resolves
	// on both and must win.
	base := []string{"상품명", "바코드"}
	source := []string{"barcode", "수량"}
	got, ok := DetectJoinKey(base, source, joinGroups)
	if !ok || got != "바코드" {
		t.Fatalf("DetectJoinKey() = %q, want 바코드", got)
	}
}

func TestDetectJoinKey_IdenticalHeaderFallback(t *testing.T) {
	base := []string{"열쇠", "값"}
	source := []string{"다른것", "값"}
	got, ok := DetectJoinKey(base, source, joinGroups)
	if !ok || got != "값" {
		t.Fatalf("DetectJoinKey() = %q, want 값", got)
	}
}

func TestDetectJoinKey_FirstColumnFallback(t *testing.T) {
	base := []string{"left-a", "left-b"}
	source := []string{"right-a"}
	got, ok := DetectJoinKey(base, source, joinGroups)
	if !ok || got != "left-a" {
		t.Fatalf("DetectJoinKey() = %q, want first base header", got)
	}
}

func TestDetectJoinKey_Deterministic(t *testing.T) {
	base := []string{"상품명", "바코드", "상품코드"}
	source := []string{"상품코드", "barcode", "제품명"}
	first, _ := DetectJoinKey(base, source, joinGroups)
	for i := 0; i < 50; i++ {
		if got, _ := DetectJoinKey(base, source, joinGroups); got != first {
			t.Fatalf("DetectJoinKey() not deterministic: %q then %q", first, got)
		}
	}
}

func TestResolveContains(t *testing.T) {
	headers := []string{"승인일자", "매출금액(배송비포함)", "비고"}
	got, ok := ResolveContains(headers, []string{"매출금액(배송비포함)", "결제금액"})
	if !ok || got != "매출금액(배송비포함)" {
		t.Fatalf("ResolveContains() = %q, %v", got, ok)
	}
	if _, ok := ResolveContains(headers, []string{"없는컬럼"}); ok {
		t.Fatal("ResolveContains() matched a missing substring")
	}
}

func testMergeColumns() config.MergeColumns {
	return config.MergeColumns{
		BaseQuantity:   []string{"재고수량", "수량"},
		BaseLocation:   []string{"진열 위치"},
		BaseVendor:     []string{"업체"},
		SourceQuantity: []string{"신논현재고"},
		SourceLocation: []string{"진열위치 (신논현)"},
		Segments: []config.VendorSegment{
			{Vendor: "라페어 신논현점", Quantity: []string{"신논현재고"}, Location: []string{"진열위치(신논현)"}},
			{Vendor: "라페어 논현점", Quantity: []string{"논현재고"}, Location: []string{"진열위치(논현)"}},
		},
	}
}

func TestComputeFieldMapping_VendorSegments(t *testing.T) {
	base := []string{"상품명", "재고수량", "진열 위치", "업체"}
	source := []string{"상품명", "신논현재고", "논현재고", "진열위치(신논현)", "진열위치(논현)"}
	m := ComputeFieldMapping(base, source, testMergeColumns(), joinGroups)
	if m.JoinKey != "상품명" {
		t.Fatalf("JoinKey = %q", m.JoinKey)
	}
	if m.BaseQuantity != "재고수량" || m.BaseVendor != "업체" {
		t.Fatalf("base mapping = %+v", m)
	}
	if len(m.Segments) != 2 || m.Segments[1].SourceQuantity != "논현재고" {
		t.Fatalf("segments = %+v", m.Segments)
	}
}

func TestComputeFieldMapping_SameSchemaPassthrough(t *testing.T) {
	base := []string{"상품명", "재고수량"}
	source := []string{"상품명", "재고수량"}
	mc := testMergeColumns()
	m := ComputeFieldMapping(base, source, mc, joinGroups)
	if m.SourceQuantity != "재고수량" {
		t.Fatalf("SourceQuantity = %q, want same-schema passthrough to 재고수량", m.SourceQuantity)
	}
}

func TestSourceFieldsFor_VendorSpecificBeatsGeneric(t *testing.T) {
	base := []string{"상품명", "재고수량", "업체"}
	source := []string{"상품명", "논현재고", "신논현재고"}
	m := ComputeFieldMapping(base, source, testMergeColumns(), joinGroups)
	row := sheet.Row{"업체": "라페어 논현점"}
	qty, _ := m.SourceFieldsFor(row)
	if qty != "논현재고" {
		t.Fatalf("qty field = %q, want vendor-specific 논현재고", qty)
	}
}

func TestSourceFieldsFor_FallsBackAcrossVendors(t *testing.T) {
	base := []string{"상품명", "재고수량", "업체"}
	// Overlay only carries the other vendor's column.
	source := []string{"상품명", "신논현재고"}
	m := ComputeFieldMapping(base, source, testMergeColumns(), joinGroups)
	row := sheet.Row{"업체": "라페어 논현점"}
	qty, _ := m.SourceFieldsFor(row)
	if qty != "신논현재고" {
		t.Fatalf("qty field = %q, want cross-vendor fallback 신논현재고", qty)
	}
}
