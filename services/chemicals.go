package services

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ChemicalCostResult holds the reconciled chemical treatment cost. TotalArea
// is the summed treated area across types, used for cost-per-sqm
// benchmarking.
type ChemicalCostResult struct {
	Total     decimal.Decimal `json:"total"`
	TotalArea decimal.Decimal `json:"total_area"`
	Items     []LineItem      `json:"items"`
	Breakdown []string        `json:"breakdown"`
}

// CalculateChemicalCost converts treated area per treatment type into a
// chemical cost. Cost per type = area × per-sqm rate, rounded once per type;
// zero-area types emit no line item.
func CalculateChemicalCost(chemicals ChemicalBreakdown, rates RateCatalog) ChemicalCostResult {
	treatments := []struct {
		name string
		area decimal.Decimal
		rate decimal.Decimal
	}{
		{"Anti-Microbial Treatment", chemicals.AntiMicrobialSqm, rates.AntiMicrobial},
		{"Mould Remediation", chemicals.MouldRemediationSqm, rates.MouldRemediation},
		{"Bio-Hazard Treatment", chemicals.BioHazardSqm, rates.BioHazard},
	}

	var result ChemicalCostResult
	for _, tr := range treatments {
		if tr.area.IsZero() {
			continue
		}
		cost := tr.area.Mul(tr.rate).Round(2)

		result.Items = append(result.Items, LineItem{
			Description: tr.name,
			Quantity:    tr.area,
			Unit:        "sqm",
			Cost:        cost,
		})
		result.Breakdown = append(result.Breakdown,
			fmt.Sprintf("%s: %s sqm @ %s/sqm = %s", tr.name, FormatQty(tr.area), FormatAUD(tr.rate), FormatAUD(cost)))

		result.Total = result.Total.Add(cost)
		result.TotalArea = result.TotalArea.Add(tr.area)
	}

	return result
}
