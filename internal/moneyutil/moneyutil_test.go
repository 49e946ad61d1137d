package moneyutil

import (
	"math"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		code   string
		want   string
	}{
		{"plain dollars", 500, "USD", "$500.00"},
		{"grouped thousands", 1234.5, "USD", "$1,234.50"},
		{"millions", 1000000, "USD", "$1,000,000.00"},
		{"euro symbol", 99.9, "EUR", "€99.90"},
		{"naira symbol", 2500, "NGN", "₦2,500.00"},
		{"unknown ISO code", 40, "CHF", "CHF 40.00"},
		{"lowercase code normalized", 500, "usd", "$500.00"},
		{"empty code defaults to USD", 500, "", "$500.00"},
		{"junk code defaults to USD", 500, "??", "$500.00"},
		{"negative amount", -75.25, "USD", "-$75.25"},
		{"zero", 0, "USD", "$0.00"},
		{"NaN formats as zero", math.NaN(), "USD", "$0.00"},
		{"infinity formats as zero", math.Inf(1), "USD", "$0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.amount, tt.code); got != tt.want {
				t.Errorf("Format(%v, %q) = %q, want %q", tt.amount, tt.code, got, tt.want)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"USD", "USD"},
		{"eur", "EUR"},
		{" gbp ", "GBP"},
		{"", DefaultCurrency},
		{"US", DefaultCurrency},
		{"DOLLARS", DefaultCurrency},
		{"U$D", DefaultCurrency},
	}

	for _, tt := range tests {
		if got := Normalize(tt.input); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
