package currency_test

import (
	"testing"

	"github.com/arpitsharma-bit/peextrap/internal/pkg/currency"
)

func TestByCodeFallsBackToUSD(t *testing.T) {
	t.Parallel()

	c := currency.ByCode("XYZ")
	if c.Code != "USD" {
		t.Fatalf("expected USD fallback, got %s", c.Code)
	}
}

func TestFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		amount float64
		code   string
		want   string
	}{
		{name: "small amount", amount: 123, code: "USD", want: "$123"},
		{name: "four digits", amount: 1234, code: "USD", want: "$1,234"},
		{name: "indian grouping", amount: 1234567, code: "INR", want: "₹12,34,567"},
		{name: "seven digits euro", amount: 1000000, code: "EUR", want: "€10,00,000"},
		{name: "rounds halves up", amount: 99.5, code: "USD", want: "$100"},
		{name: "rounds down", amount: 99.4, code: "GBP", want: "£99"},
		{name: "negative", amount: -1500, code: "INR", want: "-₹1,500"},
		{name: "zero", amount: 0, code: "JPY", want: "¥0"},
		{name: "unknown code uses dollar", amount: 42, code: "ZZZ", want: "$42"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := currency.Format(tt.amount, tt.code)
			if got != tt.want {
				t.Fatalf("Format(%v, %s) = %q, want %q", tt.amount, tt.code, got, tt.want)
			}
		})
	}
}

func TestDetectFromTimezone(t *testing.T) {
	t.Parallel()

	tests := []struct {
		tz   string
		want string
	}{
		{tz: "Asia/Kolkata", want: "INR"},
		{tz: "Asia/Calcutta", want: "INR"},
		{tz: "Europe/London", want: "GBP"},
		{tz: "Europe/Berlin", want: "EUR"},
		{tz: "Europe/Paris", want: "EUR"},
		{tz: "Asia/Tokyo", want: "JPY"},
		{tz: "America/New_York", want: "USD"},
		{tz: "", want: "USD"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.tz, func(t *testing.T) {
			t.Parallel()

			if got := currency.DetectFromTimezone(tt.tz); got != tt.want {
				t.Fatalf("DetectFromTimezone(%q) = %s, want %s", tt.tz, got, tt.want)
			}
		})
	}
}
