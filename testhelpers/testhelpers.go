// Package testhelpers provides utilities for testing PocketBase-based
// applications.
package testhelpers

import (
	"testing"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"github.com/CleanExpo/RestoreAssist-sub007/collections"
)

// NewTestApp creates a PocketBase instance backed by a temporary directory.
// It bootstraps the app and runs collections.Setup to create all tables.
// The temporary directory is cleaned up automatically when the test finishes.
func NewTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	tmpDir := t.TempDir()
	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: tmpDir,
	})

	if err := app.Bootstrap(); err != nil {
		t.Fatalf("failed to bootstrap test app: %v", err)
	}

	collections.Setup(app)

	return app
}

// CreateTestPricingProfile creates a pricing profile record with the default
// seeded rates and returns it.
func CreateTestPricingProfile(t *testing.T, app *pocketbase.PocketBase, name string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("pricing_profiles")
	if err != nil {
		t.Fatalf("failed to find pricing_profiles collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("name", name)

	rates := map[string]float64{
		"labour_master_normal":      100,
		"labour_master_after_hours": 130,
		"labour_master_saturday":    145,
		"labour_master_sunday":      170,

		"labour_qualified_normal":      85,
		"labour_qualified_after_hours": 110,
		"labour_qualified_saturday":    125,
		"labour_qualified_sunday":      145,

		"labour_labourer_normal":      60,
		"labour_labourer_after_hours": 80,
		"labour_labourer_saturday":    90,
		"labour_labourer_sunday":      105,

		"dehumidifier_lgr":       50,
		"dehumidifier_medium":    40,
		"dehumidifier_desiccant": 120,

		"air_mover_axial":       20,
		"air_mover_centrifugal": 28,
		"air_mover_layflat":     34,

		"afd_500":  55,
		"afd_2000": 100,

		"extraction_truck_mount": 140,
		"extraction_portable":    90,

		"thermal_camera_fee": 200,

		"anti_microbial":    8,
		"mould_remediation": 14,
		"bio_hazard":        20,

		"callout_fee": 150,
		"admin_fee":   95,

		"tax_rate": 0.10,
	}
	for field, rate := range rates {
		record.Set(field, rate)
	}

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test pricing profile: %v", err)
	}

	return record
}

// SetProfileRate overrides a single rate field on a pricing profile record.
func SetProfileRate(t *testing.T, app *pocketbase.PocketBase, profile *core.Record, field string, value float64) {
	t.Helper()

	profile.Set(field, value)
	if err := app.Save(profile); err != nil {
		t.Fatalf("failed to update pricing profile field %q: %v", field, err)
	}
}

// CreateTestReport creates a report record with the given title and returns it.
func CreateTestReport(t *testing.T, app *pocketbase.PocketBase, title string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("reports")
	if err != nil {
		t.Fatalf("failed to find reports collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("title", title)
	record.Set("client_name", "Test Client")
	record.Set("claim_number", "CLM-2026-0042")
	record.Set("property_address", "12 Example St, Brisbane QLD")
	record.Set("status", "draft")

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test report: %v", err)
	}

	return record
}

// CreateTestBenchmarkSettings creates a benchmark_settings record with the
// given reference averages.
func CreateTestBenchmarkSettings(t *testing.T, app *pocketbase.PocketBase, perHour, perDay, perSqm float64) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("benchmark_settings")
	if err != nil {
		t.Fatalf("failed to find benchmark_settings collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("labour_cost_per_hour", perHour)
	record.Set("equipment_cost_per_day", perDay)
	record.Set("chemical_cost_per_sqm", perSqm)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test benchmark settings: %v", err)
	}

	return record
}
