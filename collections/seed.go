package collections

import (
	"fmt"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// Default AUD pricing for the seeded profile. Labour is per hour, equipment
// per rental day (extraction per hour, thermal camera flat), chemicals per
// square metre; GST at 10%.
var defaultPricingRates = map[string]float64{
	"labour_master_normal":      120,
	"labour_master_after_hours": 150,
	"labour_master_saturday":    165,
	"labour_master_sunday":      190,

	"labour_qualified_normal":      95,
	"labour_qualified_after_hours": 120,
	"labour_qualified_saturday":    135,
	"labour_qualified_sunday":      155,

	"labour_labourer_normal":      65,
	"labour_labourer_after_hours": 85,
	"labour_labourer_saturday":    95,
	"labour_labourer_sunday":      110,

	"dehumidifier_lgr":       95,
	"dehumidifier_medium":    70,
	"dehumidifier_desiccant": 140,

	"air_mover_axial":       35,
	"air_mover_centrifugal": 42,
	"air_mover_layflat":     48,

	"afd_500":  60,
	"afd_2000": 110,

	"extraction_truck_mount": 150,
	"extraction_portable":    95,

	"thermal_camera_fee": 250,

	"anti_microbial":    8.50,
	"mould_remediation": 14.75,
	"bio_hazard":        22,

	"callout_fee": 150,
	"admin_fee":   95,

	"tax_rate": 0.10,
}

// Seed creates the default pricing profile and benchmark settings if none
// exist yet. It is safe to run on every startup.
func Seed(app *pocketbase.PocketBase) error {
	if err := seedPricingProfile(app); err != nil {
		return err
	}
	return seedBenchmarkSettings(app)
}

func seedPricingProfile(app *pocketbase.PocketBase) error {
	col, err := app.FindCollectionByNameOrId("pricing_profiles")
	if err != nil {
		return fmt.Errorf("pricing_profiles collection not found: %w", err)
	}

	existing, err := app.FindRecordsByFilter(col, "id != ''", "", 1, 0)
	if err == nil && len(existing) > 0 {
		return nil
	}

	record := core.NewRecord(col)
	record.Set("name", "default")
	for field, rate := range defaultPricingRates {
		record.Set(field, rate)
	}

	if err := app.Save(record); err != nil {
		return fmt.Errorf("failed to seed default pricing profile: %w", err)
	}
	fmt.Println("Seeded default pricing profile")
	return nil
}

func seedBenchmarkSettings(app *pocketbase.PocketBase) error {
	col, err := app.FindCollectionByNameOrId("benchmark_settings")
	if err != nil {
		return fmt.Errorf("benchmark_settings collection not found: %w", err)
	}

	existing, err := app.FindRecordsByFilter(col, "id != ''", "", 1, 0)
	if err == nil && len(existing) > 0 {
		return nil
	}

	record := core.NewRecord(col)
	record.Set("labour_cost_per_hour", 95)
	record.Set("equipment_cost_per_day", 85)
	record.Set("chemical_cost_per_sqm", 42)

	if err := app.Save(record); err != nil {
		return fmt.Errorf("failed to seed benchmark settings: %w", err)
	}
	fmt.Println("Seeded benchmark settings")
	return nil
}
