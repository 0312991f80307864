package services

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Fixed adjustment percentages per modifier dimension. The sets are closed:
// a selection outside these tables is rejected during input validation.
var (
	waterClassAdjustmentPct = map[WaterClass]decimal.Decimal{
		1: decimal.Zero,
		2: decimal.NewFromInt(15),
		3: decimal.NewFromInt(35),
		4: decimal.NewFromInt(65),
	}

	hazardAdjustmentPct = map[HazardLevel]decimal.Decimal{
		HazardStandard: decimal.Zero,
		HazardModerate: decimal.NewFromInt(10),
		HazardHigh:     decimal.NewFromInt(25),
		HazardExtreme:  decimal.NewFromInt(50),
	}
)

// ModifierResult holds the situational adjustments applied on top of the
// pre-modifier subtotal.
type ModifierResult struct {
	TotalAdjustment      decimal.Decimal `json:"total_adjustment"`
	AdjustmentPercentage decimal.Decimal `json:"adjustment_percentage"`
	Items                []LineItem      `json:"items"`
	Breakdown            []string        `json:"breakdown"`
}

// CalculateModifiers computes the dollar adjustments for the selected
// modifier dimensions.
//
// Each dimension is taken as a percentage of the ORIGINAL subtotal and the
// resulting dollar amounts are summed; the dimensions never compound against
// each other. Water class +15% and hazard +25% together yield +40% of
// subtotal, not +43.75%. Historical estimates were priced this way, so the
// additive stacking must not be changed to multiplicative.
//
// A nil ModifierBreakdown, or a selection that maps to 0%, contributes no
// adjustment and no breakdown line.
func CalculateModifiers(subtotal decimal.Decimal, modifiers *ModifierBreakdown) ModifierResult {
	var result ModifierResult
	if modifiers == nil {
		return result
	}

	hundred := decimal.NewFromInt(100)
	apply := func(label string, pct decimal.Decimal) {
		if pct.IsZero() {
			return
		}
		amount := subtotal.Mul(pct).Div(hundred).Round(2)

		result.Items = append(result.Items, LineItem{
			Description: label,
			Quantity:    pct,
			Unit:        "%",
			Cost:        amount,
		})
		result.Breakdown = append(result.Breakdown,
			fmt.Sprintf("%s: +%s%% of subtotal = %s", label, FormatQty(pct), FormatAUD(amount)))
		result.TotalAdjustment = result.TotalAdjustment.Add(amount)
	}

	if modifiers.WaterClass != nil {
		apply(fmt.Sprintf("Water Class %d", *modifiers.WaterClass), waterClassAdjustmentPct[*modifiers.WaterClass])
	}
	if modifiers.HazardLevel != nil {
		apply(fmt.Sprintf("Hazard Level (%s)", *modifiers.HazardLevel), hazardAdjustmentPct[*modifiers.HazardLevel])
	}
	if modifiers.TimelineExtensionPct != nil {
		apply("Timeline Extension", *modifiers.TimelineExtensionPct)
	}
	if modifiers.ComplexityMultiplier != nil {
		pct := modifiers.ComplexityMultiplier.Sub(decimal.NewFromInt(1)).Mul(hundred)
		apply(fmt.Sprintf("Complexity Multiplier (%sx)", FormatQty(*modifiers.ComplexityMultiplier)), pct)
	}

	if !subtotal.IsZero() {
		result.AdjustmentPercentage = result.TotalAdjustment.Div(subtotal).Mul(decimal.NewFromInt(100)).Round(2)
	}

	return result
}
