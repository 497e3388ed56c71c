package refdata

import (
	"strings"
	"testing"
)

const sample = `상품명,상품코드,품목번호
가방,BG-001,1001
모자,HT-002,1002
,XX-999,9999
발목양말,SK-003,1003
`

func TestParse_SkipsHeaderAndBlankNames(t *testing.T) {
	table, err := Parse(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if table.Len() != 3 {
		t.Fatalf("expected 3 entries, got %d", table.Len())
	}
	e, ok := table.Lookup("가방")
	if !ok || e.Code != "BG-001" || e.ItemNumber != "1001" {
		t.Fatalf("unexpected entry: %+v ok=%v", e, ok)
	}
}

func TestLookup_Normalized(t *testing.T) {
	table, _ := Parse(strings.NewReader(sample))
	if _, ok := table.Lookup("  가방 "); !ok {
		t.Fatalf("normalized lookup failed")
	}
}

func TestLookupWithFallback(t *testing.T) {
	table, _ := Parse(strings.NewReader(sample))
	e, ok := table.LookupWithFallback("발목양말_블랙", "발목양말")
	if !ok || e.Code != "SK-003" {
		t.Fatalf("variant should inherit base entry: %+v ok=%v", e, ok)
	}
	if _, ok := table.LookupWithFallback("없음_S", "없음"); ok {
		t.Fatalf("unknown names should miss")
	}
}

func TestParse_ShortRows(t *testing.T) {
	table, err := Parse(strings.NewReader("name,code,item\n장갑,GL-01\n"))
	if err != nil {
		t.Fatalf("short row should parse: %v", err)
	}
	e, _ := table.Lookup("장갑")
	if e.Code != "GL-01" || e.ItemNumber != "" {
		t.Fatalf("unexpected entry: %+v", e)
	}
}
