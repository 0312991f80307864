package services

import (
	"testing"
)

func TestCalculateTax(t *testing.T) {
	tests := []struct {
		name       string
		subtotal   string
		rate       string
		wantAmount string
		wantTotal  string
	}{
		{"gst_10pct", "1000", "0.10", "100", "1100"},
		{"rounds_half_up", "100.05", "0.10", "10.01", "110.06"},
		{"rounds_once", "33.33", "0.10", "3.33", "36.66"},
		{"zero_rate", "1000", "0", "0", "1000"},
		{"zero_subtotal", "0", "0.10", "0", "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateTax(d(tt.subtotal), d(tt.rate))
			assertDecimal(t, "Amount", got.Amount, d(tt.wantAmount))
			assertDecimal(t, "Total", got.Total, d(tt.wantTotal))
			assertDecimal(t, "Rate", got.Rate, d(tt.rate))
		})
	}
}

func TestCalculateTax_TotalReconciles(t *testing.T) {
	got := CalculateTax(d("1234.56"), d("0.10"))

	// Grand total is subtotal plus the rounded tax amount, never a
	// separately-rounded subtotal × (1 + rate).
	assertDecimal(t, "Total", got.Total, d("1234.56").Add(got.Amount))
}
