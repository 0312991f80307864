package services

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// FeeCostResult holds the flat fees applied to a claim.
type FeeCostResult struct {
	Total     decimal.Decimal `json:"total"`
	Items     []LineItem      `json:"items"`
	Breakdown []string        `json:"breakdown"`
}

// CalculateFeeCost applies the boolean-gated flat fees. No proration, no
// quantity: a fee is either included at its full catalog rate or absent.
func CalculateFeeCost(fees FeeBreakdown, rates RateCatalog) FeeCostResult {
	gated := []struct {
		name    string
		include bool
		rate    decimal.Decimal
	}{
		{"Callout Fee", fees.IncludeCallout, rates.CalloutFee},
		{"Administration Fee", fees.IncludeAdministration, rates.AdminFee},
	}

	var result FeeCostResult
	for _, g := range gated {
		if !g.include {
			continue
		}
		cost := g.rate.Round(2)

		result.Items = append(result.Items, LineItem{
			Description: g.name,
			Quantity:    decimal.NewFromInt(1),
			Unit:        "flat",
			Cost:        cost,
		})
		result.Breakdown = append(result.Breakdown,
			fmt.Sprintf("%s: %s", g.name, FormatAUD(cost)))
		result.Total = result.Total.Add(cost)
	}

	return result
}
