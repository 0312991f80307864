package collections_test

import (
	"testing"

	"github.com/CleanExpo/RestoreAssist-sub007/collections"
	"github.com/CleanExpo/RestoreAssist-sub007/testhelpers"
)

func TestSeed_CreatesData(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	if err := collections.Seed(app); err != nil {
		t.Fatalf("Seed() error: %v", err)
	}

	// Verify default pricing profile
	profilesCol, _ := app.FindCollectionByNameOrId("pricing_profiles")
	profiles, err := app.FindAllRecords(profilesCol)
	if err != nil {
		t.Fatalf("query pricing_profiles error: %v", err)
	}
	if len(profiles) != 1 {
		t.Fatalf("expected 1 pricing profile, got %d", len(profiles))
	}
	if profiles[0].GetString("name") != "default" {
		t.Errorf("profile name = %q, want %q", profiles[0].GetString("name"), "default")
	}
	if got := profiles[0].GetFloat("labour_master_normal"); got != 120 {
		t.Errorf("labour_master_normal = %v, want 120", got)
	}
	if got := profiles[0].GetFloat("tax_rate"); got != 0.10 {
		t.Errorf("tax_rate = %v, want 0.10", got)
	}

	// Verify benchmark settings
	benchCol, _ := app.FindCollectionByNameOrId("benchmark_settings")
	settings, _ := app.FindAllRecords(benchCol)
	if len(settings) != 1 {
		t.Fatalf("expected 1 benchmark settings record, got %d", len(settings))
	}
	if got := settings[0].GetFloat("labour_cost_per_hour"); got != 95 {
		t.Errorf("labour_cost_per_hour = %v, want 95", got)
	}
	if got := settings[0].GetFloat("equipment_cost_per_day"); got != 85 {
		t.Errorf("equipment_cost_per_day = %v, want 85", got)
	}
	if got := settings[0].GetFloat("chemical_cost_per_sqm"); got != 42 {
		t.Errorf("chemical_cost_per_sqm = %v, want 42", got)
	}
}

func TestSeed_Idempotent(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	if err := collections.Seed(app); err != nil {
		t.Fatalf("first Seed() error: %v", err)
	}
	if err := collections.Seed(app); err != nil {
		t.Fatalf("second Seed() error: %v", err)
	}

	profilesCol, _ := app.FindCollectionByNameOrId("pricing_profiles")
	profiles, _ := app.FindAllRecords(profilesCol)
	if len(profiles) != 1 {
		t.Errorf("expected 1 pricing profile after idempotent seed, got %d", len(profiles))
	}

	benchCol, _ := app.FindCollectionByNameOrId("benchmark_settings")
	settings, _ := app.FindAllRecords(benchCol)
	if len(settings) != 1 {
		t.Errorf("expected 1 benchmark settings record after idempotent seed, got %d", len(settings))
	}
}

func TestSeed_SkipsExistingProfile(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestPricingProfile(t, app, "Pre-Existing Rates")

	if err := collections.Seed(app); err != nil {
		t.Fatalf("Seed() error: %v", err)
	}

	profilesCol, _ := app.FindCollectionByNameOrId("pricing_profiles")
	profiles, _ := app.FindAllRecords(profilesCol)
	if len(profiles) != 1 {
		t.Fatalf("expected the pre-existing profile only, got %d records", len(profiles))
	}
	if profiles[0].GetString("name") != "Pre-Existing Rates" {
		t.Errorf("profile name = %q, want the pre-existing one", profiles[0].GetString("name"))
	}
}
