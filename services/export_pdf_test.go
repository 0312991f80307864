package services

import (
	"testing"
)

func TestGenerateEstimatePDF_Complete(t *testing.T) {
	data := exportTestData(t)

	result, err := GenerateEstimatePDF(data)
	if err != nil {
		t.Fatalf("GenerateEstimatePDF() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GenerateEstimatePDF() returned empty bytes")
	}
	if len(result) > 5 && string(result[:5]) != "%PDF-" {
		t.Errorf("result does not start with PDF header")
	}
}

func TestGenerateEstimatePDF_EmptyEstimate(t *testing.T) {
	result, err := CalculateEstimation(EstimationInput{}, testCatalog(), DefaultBenchmarks())
	if err != nil {
		t.Fatalf("CalculateEstimation() error = %v", err)
	}
	data := EstimateExportData{Title: "Empty Estimate", CreatedDate: "15 Jan 2025", Result: result}

	out, err := GenerateEstimatePDF(data)
	if err != nil {
		t.Fatalf("GenerateEstimatePDF() error = %v", err)
	}
	if len(out) == 0 {
		t.Fatal("GenerateEstimatePDF() returned empty bytes")
	}
}

func TestGenerateEstimatePDF_NoClientOrClaim(t *testing.T) {
	data := exportTestData(t)
	data.ClientName = ""
	data.ClaimNumber = ""

	out, err := GenerateEstimatePDF(data)
	if err != nil {
		t.Fatalf("GenerateEstimatePDF() error = %v", err)
	}
	if len(out) == 0 {
		t.Fatal("GenerateEstimatePDF() returned empty bytes")
	}
}

func TestEstimateSections_SkipsEmptyCategories(t *testing.T) {
	result, err := CalculateEstimation(EstimationInput{
		Labour: LabourBreakdown{Labourer: TierHours{Normal: d("2")}},
	}, testCatalog(), DefaultBenchmarks())
	if err != nil {
		t.Fatalf("CalculateEstimation() error = %v", err)
	}

	sections := estimateSections(result)
	if len(sections) != 1 {
		t.Fatalf("expected 1 section, got %d", len(sections))
	}
	if sections[0].Title != "Labour" {
		t.Errorf("section title = %q, want %q", sections[0].Title, "Labour")
	}
}

func TestEstimateTotalRows(t *testing.T) {
	result, err := CalculateEstimation(fullInput(), testCatalog(), DefaultBenchmarks())
	if err != nil {
		t.Fatalf("CalculateEstimation() error = %v", err)
	}

	rows := estimateTotalRows(result)

	// Subtotal, one modifier line, adjusted subtotal, GST, grand total.
	if len(rows) != 5 {
		t.Fatalf("expected 5 total rows, got %d", len(rows))
	}
	if rows[0].Label != "Subtotal" {
		t.Errorf("row 0 label = %q", rows[0].Label)
	}
	if rows[2].Label != "Adjusted Subtotal" {
		t.Errorf("row 2 label = %q", rows[2].Label)
	}
	if rows[3].Label != "GST (10%)" {
		t.Errorf("row 3 label = %q", rows[3].Label)
	}
	if !rows[4].Grand || rows[4].Label != "Grand Total" {
		t.Errorf("row 4 = %+v, want grand total", rows[4])
	}
}

func TestEstimateTotalRows_NoModifiers(t *testing.T) {
	input := fullInput()
	input.Modifiers = nil

	result, err := CalculateEstimation(input, testCatalog(), DefaultBenchmarks())
	if err != nil {
		t.Fatalf("CalculateEstimation() error = %v", err)
	}

	rows := estimateTotalRows(result)

	// No adjustments: subtotal, GST, grand total only.
	if len(rows) != 3 {
		t.Fatalf("expected 3 total rows, got %d", len(rows))
	}
	if rows[1].Label != "GST (10%)" {
		t.Errorf("row 1 label = %q", rows[1].Label)
	}
}
