package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// Setup programmatically creates/ensures the pricing_profiles, reports,
// estimates and benchmark_settings collections exist.
func Setup(app *pocketbase.PocketBase) {
	pricingProfiles := ensureCollection(app, "pricing_profiles", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "name", Required: true})

		// Labour hourly rates per role and pay tier.
		for _, role := range []string{"master", "qualified", "labourer"} {
			for _, tier := range []string{"normal", "after_hours", "saturday", "sunday"} {
				c.Fields.Add(&core.NumberField{Name: fmt.Sprintf("labour_%s_%s", role, tier), Required: true})
			}
		}

		// Equipment rates: per rental day, extraction units per hour,
		// thermal camera flat per claim.
		for _, field := range []string{
			"dehumidifier_lgr", "dehumidifier_medium", "dehumidifier_desiccant",
			"air_mover_axial", "air_mover_centrifugal", "air_mover_layflat",
			"afd_500", "afd_2000",
			"extraction_truck_mount", "extraction_portable",
			"thermal_camera_fee",
		} {
			c.Fields.Add(&core.NumberField{Name: field, Required: true})
		}

		// Chemical per-sqm rates and flat fees.
		for _, field := range []string{"anti_microbial", "mould_remediation", "bio_hazard", "callout_fee", "admin_fee"} {
			c.Fields.Add(&core.NumberField{Name: field, Required: true})
		}

		c.Fields.Add(&core.NumberField{Name: "tax_rate", Required: true})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	reports := ensureCollection(app, "reports", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "title", Required: true})
		c.Fields.Add(&core.TextField{Name: "client_name", Required: false})
		c.Fields.Add(&core.TextField{Name: "claim_number", Required: false})
		c.Fields.Add(&core.TextField{Name: "property_address", Required: false})
		c.Fields.Add(&core.SelectField{
			Name:      "status",
			Required:  true,
			Values:    []string{"draft", "final"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.RelationField{
			Name:         "pricing_profile",
			Required:     false,
			CollectionId: pricingProfiles.Id,
			MaxSelect:    1,
		})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	ensureCollection(app, "estimates", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:          "report",
			Required:      true,
			CollectionId:  reports.Id,
			CascadeDelete: true,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.JSONField{Name: "result", Required: true, MaxSize: 1 << 20})
		c.Fields.Add(&core.NumberField{Name: "subtotal", Required: false})
		c.Fields.Add(&core.NumberField{Name: "grand_total", Required: false})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
	})

	ensureCollection(app, "benchmark_settings", func(c *core.Collection) {
		c.Fields.Add(&core.NumberField{Name: "labour_cost_per_hour", Required: true})
		c.Fields.Add(&core.NumberField{Name: "equipment_cost_per_day", Required: true})
		c.Fields.Add(&core.NumberField{Name: "chemical_cost_per_sqm", Required: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})
}

// ensureCollection checks if a collection already exists by name. If it does,
// the existing collection is returned. Otherwise a new base collection is
// created, the addFields callback is invoked to populate its fields, and the
// collection is saved.
func ensureCollection(app *pocketbase.PocketBase, name string, addFields func(*core.Collection)) *core.Collection {
	existing, err := app.FindCollectionByNameOrId(name)
	if err == nil && existing != nil {
		log.Printf("Collection %q already exists, skipping creation.\n", name)
		return existing
	}

	collection := core.NewBaseCollection(name)
	addFields(collection)

	if err := app.Save(collection); err != nil {
		log.Fatalf("Failed to create collection %q: %v", name, err)
	}

	fmt.Printf("Created collection %q (id=%s)\n", name, collection.Id)
	return collection
}
