package datekey

import "testing"

func TestDayKey_DottedAndSlashedDates(t *testing.T) {
	cases := map[string]string{
		"2024.1.5":            "2024-01-05",
		"2024-11-30":          "2024-11-30",
		"2024/07/09 14:22:31": "2024-07-09",
	}
	for in, want := range cases {
		got, ok := DayKey(in)
		if !ok || got != want {
			t.Fatalf("DayKey(%q) = %q, %v; want %q, true", in, got, ok, want)
		}
	}
}

func TestDayKey_SerialDate(t *testing.T) {
	// 45292 is 2024-01-01 in the 1900 date system.
	got, ok := DayKey("45292")
	if !ok || got != "2024-01-01" {
		t.Fatalf("DayKey(45292) = %q, %v; want 2024-01-01, true", got, ok)
	}
}

func TestDayKey_Unparseable(t *testing.T) {
	for _, in := range []string{"", "없음", "date unknown"} {
		if got, ok := DayKey(in); ok {
			t.Fatalf("DayKey(%q) = %q, want not ok", in, got)
		}
	}
}

func TestMonthKeyFromPurchase(t *testing.T) {
	got, ok := MonthKeyFromPurchase("20240115093012")
	if !ok || got != "2024-01" {
		t.Fatalf("MonthKeyFromPurchase() = %q, %v; want 2024-01, true", got, ok)
	}
}

func TestMonthKeyFromPurchase_StripsSeparators(t *testing.T) {
	got, ok := MonthKeyFromPurchase("2024-01-15 09:30")
	if !ok || got != "2024-01" {
		t.Fatalf("MonthKeyFromPurchase() = %q, %v; want 2024-01, true", got, ok)
	}
}

func TestMonthKeyFromPurchase_RejectsBadMonth(t *testing.T) {
	if got, ok := MonthKeyFromPurchase("20241301"); ok {
		t.Fatalf("MonthKeyFromPurchase(month 13) = %q, want not ok", got)
	}
	if _, ok := MonthKeyFromPurchase("2024"); ok {
		t.Fatal("MonthKeyFromPurchase accepted fewer than six digits")
	}
}

func TestDayKeyFromPurchase(t *testing.T) {
	got, ok := DayKeyFromPurchase("20240115093012")
	if !ok || got != "2024-01-15" {
		t.Fatalf("DayKeyFromPurchase() = %q, %v; want 2024-01-15, true", got, ok)
	}
}

func TestDayKeyFromPurchase_RangeChecks(t *testing.T) {
	if _, ok := DayKeyFromPurchase("20240132"); ok {
		t.Fatal("DayKeyFromPurchase accepted day 32")
	}
	if _, ok := DayKeyFromPurchase("2024011"); ok {
		t.Fatal("DayKeyFromPurchase accepted fewer than eight digits")
	}
	// Day 31 passes the range check even for short months; there is no
	// calendar-aware validation.
	if got, ok := DayKeyFromPurchase("20240231"); !ok || got != "2024-02-31" {
		t.Fatalf("DayKeyFromPurchase(20240231) = %q, %v; want 2024-02-31, true", got, ok)
	}
}
