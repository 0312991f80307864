package services

import (
	"testing"
)

func TestCalculateChemicalCost_PerSqmRates(t *testing.T) {
	chemicals := ChemicalBreakdown{
		AntiMicrobialSqm:    d("25"),
		MouldRemediationSqm: d("10"),
	}

	got := CalculateChemicalCost(chemicals, testCatalog())

	// 25×8 + 10×14
	assertDecimal(t, "Total", got.Total, d("340"))
	assertDecimal(t, "TotalArea", got.TotalArea, d("35"))
	if len(got.Items) != 2 {
		t.Fatalf("expected 2 line items, got %d", len(got.Items))
	}
	want := "Anti-Microbial Treatment: 25 sqm @ $8.00/sqm = $200.00"
	if got.Breakdown[0] != want {
		t.Errorf("breakdown line = %q, want %q", got.Breakdown[0], want)
	}
}

func TestCalculateChemicalCost_FractionalAreaRounded(t *testing.T) {
	got := CalculateChemicalCost(ChemicalBreakdown{BioHazardSqm: d("7.125")}, testCatalog())

	// 7.125 × 20 = 142.50
	assertDecimal(t, "Total", got.Total, d("142.50"))
}

func TestCalculateChemicalCost_ZeroAreaSuppressed(t *testing.T) {
	got := CalculateChemicalCost(ChemicalBreakdown{MouldRemediationSqm: d("12")}, testCatalog())

	if len(got.Items) != 1 {
		t.Fatalf("expected 1 line item, got %d", len(got.Items))
	}
	if got.Items[0].Description != "Mould Remediation" {
		t.Errorf("line description = %q", got.Items[0].Description)
	}

	empty := CalculateChemicalCost(ChemicalBreakdown{}, testCatalog())
	if len(empty.Items) != 0 {
		t.Errorf("expected no lines for empty breakdown, got %d", len(empty.Items))
	}
	assertDecimal(t, "Total", empty.Total, d("0"))
}
