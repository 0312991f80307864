package services

import (
	"testing"
)

func TestCalculateLabourCost_SingleRoleSingleTier(t *testing.T) {
	labour := LabourBreakdown{
		MasterTechnician: TierHours{Normal: d("10")},
	}

	got := CalculateLabourCost(labour, testCatalog())

	assertDecimal(t, "Total", got.Total, d("1000"))
	assertDecimal(t, "TotalHours", got.TotalHours, d("10"))
	if len(got.Items) != 1 {
		t.Fatalf("expected exactly 1 line item, got %d", len(got.Items))
	}
	if got.Items[0].Description != "Master Technician" {
		t.Errorf("line description = %q, want %q", got.Items[0].Description, "Master Technician")
	}
	if len(got.Breakdown) != 1 {
		t.Fatalf("expected exactly 1 breakdown line, got %d", len(got.Breakdown))
	}
	want := "Master Technician: 10 hrs @ mixed rates = $1,000.00"
	if got.Breakdown[0] != want {
		t.Errorf("breakdown line = %q, want %q", got.Breakdown[0], want)
	}
}

func TestCalculateLabourCost_MixedTiers(t *testing.T) {
	labour := LabourBreakdown{
		QualifiedTechnician: TierHours{
			Normal:     d("8"),
			AfterHours: d("2"),
			Saturday:   d("4"),
			Sunday:     d("1"),
		},
	}

	got := CalculateLabourCost(labour, testCatalog())

	// 8×85 + 2×110 + 4×125 + 1×145 = 680 + 220 + 500 + 145
	assertDecimal(t, "Total", got.Total, d("1545"))
	assertDecimal(t, "TotalHours", got.TotalHours, d("15"))
}

func TestCalculateLabourCost_AllRoles(t *testing.T) {
	labour := LabourBreakdown{
		MasterTechnician:    TierHours{Normal: d("2")},
		QualifiedTechnician: TierHours{Normal: d("4")},
		Labourer:            TierHours{Normal: d("8")},
	}

	got := CalculateLabourCost(labour, testCatalog())

	// 200 + 340 + 480
	assertDecimal(t, "Total", got.Total, d("1020"))
	assertDecimal(t, "TotalHours", got.TotalHours, d("14"))
	if len(got.Items) != 3 {
		t.Errorf("expected 3 line items, got %d", len(got.Items))
	}

	// Category total must equal the exact sum of its line items.
	sum := d("0")
	for _, item := range got.Items {
		sum = sum.Add(item.Cost)
	}
	assertDecimal(t, "sum(items)", sum, got.Total)
}

func TestCalculateLabourCost_RoundsOncePerRole(t *testing.T) {
	rates := testCatalog()
	rates.Labourer = LabourRateTiers{
		Normal:     d("33.33"),
		AfterHours: d("33.33"),
		Saturday:   d("33.33"),
		Sunday:     d("33.33"),
	}
	labour := LabourBreakdown{
		Labourer: TierHours{Normal: d("0.1"), AfterHours: d("0.1"), Saturday: d("0.1"), Sunday: d("0.1")},
	}

	got := CalculateLabourCost(labour, rates)

	// 4 × 3.333 = 13.332, rounded once to 13.33. Rounding per tier first
	// (4 × 3.33) would give 13.32.
	assertDecimal(t, "Total", got.Total, d("13.33"))
}

func TestCalculateLabourCost_ZeroHoursSuppressed(t *testing.T) {
	tests := []struct {
		name      string
		labour    LabourBreakdown
		wantLines int
	}{
		{"all_zero", LabourBreakdown{}, 0},
		{"one_role", LabourBreakdown{Labourer: TierHours{Saturday: d("3")}}, 1},
		{"two_roles", LabourBreakdown{
			MasterTechnician: TierHours{Normal: d("1")},
			Labourer:         TierHours{Normal: d("1")},
		}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateLabourCost(tt.labour, testCatalog())
			if len(got.Items) != tt.wantLines {
				t.Errorf("line items = %d, want %d", len(got.Items), tt.wantLines)
			}
			if len(got.Breakdown) != tt.wantLines {
				t.Errorf("breakdown lines = %d, want %d", len(got.Breakdown), tt.wantLines)
			}
		})
	}
}

func TestCalculateLabourCost_ZeroRatesStillEmitLine(t *testing.T) {
	rates := testCatalog()
	rates.Labourer = LabourRateTiers{}

	got := CalculateLabourCost(LabourBreakdown{Labourer: TierHours{Normal: d("5")}}, rates)

	// Hours were worked, so the line appears even though it costs nothing.
	if len(got.Items) != 1 {
		t.Fatalf("expected 1 line item, got %d", len(got.Items))
	}
	assertDecimal(t, "Total", got.Total, d("0"))
	assertDecimal(t, "TotalHours", got.TotalHours, d("5"))
}
