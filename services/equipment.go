package services

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// EquipmentCostResult holds the reconciled equipment rental cost. TotalDays
// sums the day-billed families (dehumidifiers, air movers, AFDs); extraction
// units are metered in hours and tracked separately in TotalHours.
type EquipmentCostResult struct {
	Total      decimal.Decimal `json:"total"`
	TotalDays  decimal.Decimal `json:"total_days"`
	TotalHours decimal.Decimal `json:"total_hours"`
	Items      []LineItem      `json:"items"`
	Breakdown  []string        `json:"breakdown"`
}

// subtypeCharge is one (duration, rate) pair within an equipment family.
type subtypeCharge struct {
	qty  decimal.Decimal
	rate decimal.Decimal
}

// CalculateEquipmentCost converts rental durations by equipment subtype into
// an equipment cost. Subtypes aggregate into their family: one line item per
// family, costed as the sum of subtype charges rounded once per family.
// Families with zero duration emit no line; the thermal camera is a flat
// per-claim fee independent of duration.
func CalculateEquipmentCost(equipment EquipmentBreakdown, rates RateCatalog) EquipmentCostResult {
	families := []struct {
		name     string
		unit     string
		subtypes []subtypeCharge
	}{
		{"Dehumidifiers", "days", []subtypeCharge{
			{equipment.DehumidifierLGRDays, rates.DehumidifierLGR},
			{equipment.DehumidifierMediumDays, rates.DehumidifierMedium},
			{equipment.DehumidifierDesiccantDays, rates.DehumidifierDesiccant},
		}},
		{"Air Movers", "days", []subtypeCharge{
			{equipment.AirMoverAxialDays, rates.AirMoverAxial},
			{equipment.AirMoverCentrifugalDays, rates.AirMoverCentrifugal},
			{equipment.AirMoverLayflatDays, rates.AirMoverLayflat},
		}},
		{"Air Filtration Devices", "days", []subtypeCharge{
			{equipment.AFD500Days, rates.AFD500},
			{equipment.AFD2000Days, rates.AFD2000},
		}},
		{"Extraction Units", "hrs", []subtypeCharge{
			{equipment.ExtractionTruckMountHours, rates.ExtractionTruckMount},
			{equipment.ExtractionPortableHours, rates.ExtractionPortable},
		}},
	}

	var result EquipmentCostResult
	for _, f := range families {
		var duration, cost decimal.Decimal
		for _, s := range f.subtypes {
			duration = duration.Add(s.qty)
			cost = cost.Add(s.qty.Mul(s.rate))
		}
		if duration.IsZero() {
			continue
		}
		cost = cost.Round(2)

		result.Items = append(result.Items, LineItem{
			Description: f.name,
			Quantity:    duration,
			Unit:        f.unit,
			Cost:        cost,
		})
		result.Breakdown = append(result.Breakdown,
			fmt.Sprintf("%s: %s %s = %s", f.name, FormatQty(duration), f.unit, FormatAUD(cost)))

		result.Total = result.Total.Add(cost)
		if f.unit == "days" {
			result.TotalDays = result.TotalDays.Add(duration)
		} else {
			result.TotalHours = result.TotalHours.Add(duration)
		}
	}

	if equipment.ThermalCamera {
		cost := rates.ThermalCameraFee.Round(2)
		result.Items = append(result.Items, LineItem{
			Description: "Thermal Imaging Camera",
			Quantity:    decimal.NewFromInt(1),
			Unit:        "claim",
			Cost:        cost,
		})
		result.Breakdown = append(result.Breakdown,
			fmt.Sprintf("Thermal Imaging Camera: flat fee = %s", FormatAUD(cost)))
		result.Total = result.Total.Add(cost)
	}

	return result
}
