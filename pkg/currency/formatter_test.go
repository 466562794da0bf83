package currency

import "testing"

func TestFormatUSD(t *testing.T) {
	cases := []struct {
		amount float64
		want   string
	}{
		{0, "$0"},
		{450, "$450"},
		{1234, "$1,234"},
		{1234567, "$1,234,567"},
		{449.6, "$450"},
		{-380, "-$380"},
	}

	for _, tc := range cases {
		if got := FormatUSD(tc.amount); got != tc.want {
			t.Fatalf("FormatUSD(%v) = %q, want %q", tc.amount, got, tc.want)
		}
	}
}

func TestFormat(t *testing.T) {
	if got := Format(450, "USD"); got != "$450" {
		t.Fatalf("Format USD = %q", got)
	}
	if got := Format(450, ""); got != "$450" {
		t.Fatalf("Format empty code = %q", got)
	}
	if got := Format(12500, "EUR"); got != "EUR 12,500" {
		t.Fatalf("Format EUR = %q", got)
	}
}
