// Package services implements the cost estimation engine for water-damage
// restoration claims, plus the document export generators built on top of
// its results.
//
// The engine is a pure function over immutable inputs: a RateCatalog loaded
// from a pricing profile and a work-breakdown snapshot captured by the
// report editor. It performs no I/O and holds no state; persistence and
// rendering belong to the callers in handlers.
package services

import (
	"github.com/shopspring/decimal"
)

// LineItem is a single emitted (description, quantity, cost) tuple within a
// category breakdown. Lines are suppressed for zero-quantity inputs.
type LineItem struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	Unit        string          `json:"unit"`
	Cost        decimal.Decimal `json:"cost"`
}

// EstimationSummary carries the headline metrics shown on the estimate
// summary panel.
type EstimationSummary struct {
	TotalLabourHours   decimal.Decimal `json:"total_labour_hours"`
	TotalEquipmentDays decimal.Decimal `json:"total_equipment_days"`
	CostPerDay         decimal.Decimal `json:"cost_per_day"`
	CostPerHour        decimal.Decimal `json:"cost_per_hour"`
}

// CostEstimationResult is the fully reconciled estimate. The following hold
// for every result the engine returns:
//
//	Subtotal         = Labour.Total + Equipment.Total + Chemicals.Total + Fees.Total
//	AdjustedSubtotal = Subtotal + Modifiers.TotalAdjustment
//	Tax.Amount       = round(AdjustedSubtotal × Tax.Rate)
//	GrandTotal       = AdjustedSubtotal + Tax.Amount
//
// and every category total equals the exact sum of its line items.
type CostEstimationResult struct {
	Labour    LabourCostResult   `json:"labour"`
	Equipment EquipmentCostResult `json:"equipment"`
	Chemicals ChemicalCostResult `json:"chemicals"`
	Fees      FeeCostResult      `json:"fees"`

	Subtotal         decimal.Decimal `json:"subtotal"`
	Modifiers        ModifierResult  `json:"modifiers"`
	AdjustedSubtotal decimal.Decimal `json:"adjusted_subtotal"`
	Tax              TaxResult       `json:"tax"`
	GrandTotal       decimal.Decimal `json:"grand_total"`

	Benchmarks []BenchmarkComparison `json:"benchmarks"`
	Summary    EstimationSummary     `json:"summary"`
}

// CalculateEstimation runs the full estimation pipeline: the four category
// calculators over disjoint inputs, modifier stacking against the subtotal,
// GST against the adjusted subtotal, summary metrics, and benchmark
// comparisons over the final category costs.
//
// The catalog and input are validated up front; on any invalid rate or
// quantity the whole computation is rejected and no partial result is
// returned.
func CalculateEstimation(input EstimationInput, rates RateCatalog, benchmarks BenchmarkConfig) (*CostEstimationResult, error) {
	if err := rates.Validate(); err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	labour := CalculateLabourCost(input.Labour, rates)
	equipment := CalculateEquipmentCost(input.Equipment, rates)
	chemicals := CalculateChemicalCost(input.Chemicals, rates)
	fees := CalculateFeeCost(input.Fees, rates)

	subtotal := labour.Total.Add(equipment.Total).Add(chemicals.Total).Add(fees.Total)

	modifiers := CalculateModifiers(subtotal, input.Modifiers)
	adjustedSubtotal := subtotal.Add(modifiers.TotalAdjustment)

	tax := CalculateTax(adjustedSubtotal, rates.TaxRate)
	grandTotal := tax.Total

	// Clamp the day denominator so a labour-only or fee-only estimate still
	// has a meaningful cost-per-day.
	totalDays := equipment.TotalDays
	if totalDays.LessThan(decimal.NewFromInt(1)) {
		totalDays = decimal.NewFromInt(1)
	}

	costPerHour := decimal.Zero
	if !labour.TotalHours.IsZero() {
		costPerHour = grandTotal.Div(labour.TotalHours).Round(2)
	}

	result := &CostEstimationResult{
		Labour:    labour,
		Equipment: equipment,
		Chemicals: chemicals,
		Fees:      fees,

		Subtotal:         subtotal,
		Modifiers:        modifiers,
		AdjustedSubtotal: adjustedSubtotal,
		Tax:              tax,
		GrandTotal:       grandTotal,

		Summary: EstimationSummary{
			TotalLabourHours:   labour.TotalHours,
			TotalEquipmentDays: totalDays,
			CostPerDay:         grandTotal.Div(totalDays).Round(2),
			CostPerHour:        costPerHour,
		},
	}

	result.Benchmarks = CompareBenchmarks(labour, equipment, chemicals, benchmarks)

	return result, nil
}
