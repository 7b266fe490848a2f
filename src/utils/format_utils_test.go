package utils

import "testing"

func TestFormatCurrencyShort(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{1_500_000, "1.5M"},
		{999, "999"},
		{1_000, "1.0K"},
		{10_000, "10.0K"},
		{2_300_000_000, "2.3B"},
		{-1_500_000, "-1.5M"},
		{0, "0"},
		{999.5, "999.5"},
	}
	for _, c := range cases {
		if got := FormatCurrencyShort(c.in); got != c.want {
			t.Fatalf("FormatCurrencyShort(%v): expected %q, got %q", c.in, c.want, got)
		}
	}
}

func TestFormatIRR(t *testing.T) {
	if got := FormatIRR(0.1234); got != "12.34" {
		t.Fatalf("expected 12.34, got %q", got)
	}
	if got := FormatIRR(0); got != "0" {
		t.Fatalf("expected fallback 0, got %q", got)
	}
}

func TestFormatPIC(t *testing.T) {
	if got := FormatPIC(1234567); got != "1,234,567" {
		t.Fatalf("expected 1,234,567, got %q", got)
	}
	if got := FormatPIC(0); got != "0" {
		t.Fatalf("expected fallback 0, got %q", got)
	}
}

func TestFormatDPI(t *testing.T) {
	if got := FormatDPI(1.23456); got != "1.235" {
		t.Fatalf("expected 1.235, got %q", got)
	}
	if got := FormatDPI(0); got != "0" {
		t.Fatalf("expected fallback 0, got %q", got)
	}
}

func TestFormatDateShort(t *testing.T) {
	if got := FormatDateShort("2023-02-01"); got != "Feb 23" {
		t.Fatalf("expected Feb 23, got %q", got)
	}
	if got := FormatDateShort("not-a-date"); got != "not-a-date" {
		t.Fatalf("expected passthrough for unparseable date, got %q", got)
	}
}
