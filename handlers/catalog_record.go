package handlers

import (
	"fmt"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	"github.com/shopspring/decimal"

	"github.com/CleanExpo/RestoreAssist-sub007/services"
)

// catalogFromRecord maps a pricing_profiles record onto the engine's
// RateCatalog value. The collection marks every rate field required, so a
// stored profile can never be missing one; negative values are still
// rejected later by RateCatalog.Validate.
func catalogFromRecord(r *core.Record) services.RateCatalog {
	rate := func(field string) decimal.Decimal {
		return decimal.NewFromFloat(r.GetFloat(field))
	}
	tiers := func(role string) services.LabourRateTiers {
		return services.LabourRateTiers{
			Normal:     rate("labour_" + role + "_normal"),
			AfterHours: rate("labour_" + role + "_after_hours"),
			Saturday:   rate("labour_" + role + "_saturday"),
			Sunday:     rate("labour_" + role + "_sunday"),
		}
	}

	return services.RateCatalog{
		MasterTechnician:    tiers("master"),
		QualifiedTechnician: tiers("qualified"),
		Labourer:            tiers("labourer"),

		DehumidifierLGR:       rate("dehumidifier_lgr"),
		DehumidifierMedium:    rate("dehumidifier_medium"),
		DehumidifierDesiccant: rate("dehumidifier_desiccant"),

		AirMoverAxial:       rate("air_mover_axial"),
		AirMoverCentrifugal: rate("air_mover_centrifugal"),
		AirMoverLayflat:     rate("air_mover_layflat"),

		AFD500:  rate("afd_500"),
		AFD2000: rate("afd_2000"),

		ExtractionTruckMount: rate("extraction_truck_mount"),
		ExtractionPortable:   rate("extraction_portable"),

		ThermalCameraFee: rate("thermal_camera_fee"),

		AntiMicrobial:    rate("anti_microbial"),
		MouldRemediation: rate("mould_remediation"),
		BioHazard:        rate("bio_hazard"),

		CalloutFee: rate("callout_fee"),
		AdminFee:   rate("admin_fee"),

		TaxRate: rate("tax_rate"),
	}
}

// applyCatalogToRecord writes a RateCatalog back onto a pricing_profiles
// record.
func applyCatalogToRecord(r *core.Record, rc services.RateCatalog) {
	set := func(field string, v decimal.Decimal) {
		r.Set(field, v.InexactFloat64())
	}
	setTiers := func(role string, t services.LabourRateTiers) {
		set("labour_"+role+"_normal", t.Normal)
		set("labour_"+role+"_after_hours", t.AfterHours)
		set("labour_"+role+"_saturday", t.Saturday)
		set("labour_"+role+"_sunday", t.Sunday)
	}

	setTiers("master", rc.MasterTechnician)
	setTiers("qualified", rc.QualifiedTechnician)
	setTiers("labourer", rc.Labourer)

	set("dehumidifier_lgr", rc.DehumidifierLGR)
	set("dehumidifier_medium", rc.DehumidifierMedium)
	set("dehumidifier_desiccant", rc.DehumidifierDesiccant)

	set("air_mover_axial", rc.AirMoverAxial)
	set("air_mover_centrifugal", rc.AirMoverCentrifugal)
	set("air_mover_layflat", rc.AirMoverLayflat)

	set("afd_500", rc.AFD500)
	set("afd_2000", rc.AFD2000)

	set("extraction_truck_mount", rc.ExtractionTruckMount)
	set("extraction_portable", rc.ExtractionPortable)

	set("thermal_camera_fee", rc.ThermalCameraFee)

	set("anti_microbial", rc.AntiMicrobial)
	set("mould_remediation", rc.MouldRemediation)
	set("bio_hazard", rc.BioHazard)

	set("callout_fee", rc.CalloutFee)
	set("admin_fee", rc.AdminFee)

	set("tax_rate", rc.TaxRate)
}

// findPricingProfile resolves the pricing profile for a report: the report's
// linked profile when set, otherwise the first (seeded) profile.
func findPricingProfile(app *pocketbase.PocketBase, report *core.Record) (*core.Record, error) {
	if report != nil {
		if profileID := report.GetString("pricing_profile"); profileID != "" {
			return app.FindRecordById("pricing_profiles", profileID)
		}
	}

	col, err := app.FindCollectionByNameOrId("pricing_profiles")
	if err != nil {
		return nil, fmt.Errorf("pricing_profiles collection not found: %w", err)
	}

	profiles, err := app.FindRecordsByFilter(col, "id != ''", "created", 1, 0)
	if err != nil || len(profiles) == 0 {
		return nil, fmt.Errorf("no pricing profile configured")
	}
	return profiles[0], nil
}

// loadBenchmarkConfig reads the benchmark_settings record, falling back to
// the stock reference averages when none exists.
func loadBenchmarkConfig(app *pocketbase.PocketBase) services.BenchmarkConfig {
	col, err := app.FindCollectionByNameOrId("benchmark_settings")
	if err != nil {
		return services.DefaultBenchmarks()
	}

	records, err := app.FindRecordsByFilter(col, "id != ''", "", 1, 0)
	if err != nil || len(records) == 0 {
		return services.DefaultBenchmarks()
	}

	r := records[0]
	return services.BenchmarkConfig{
		LabourCostPerHour:   decimal.NewFromFloat(r.GetFloat("labour_cost_per_hour")),
		EquipmentCostPerDay: decimal.NewFromFloat(r.GetFloat("equipment_cost_per_day")),
		ChemicalCostPerSqm:  decimal.NewFromFloat(r.GetFloat("chemical_cost_per_sqm")),
	}
}
