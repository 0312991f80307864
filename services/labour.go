package services

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// LabourCostResult holds the reconciled labour cost for a claim.
type LabourCostResult struct {
	Total      decimal.Decimal `json:"total"`
	TotalHours decimal.Decimal `json:"total_hours"`
	Items      []LineItem      `json:"items"`
	Breakdown  []string        `json:"breakdown"`
}

// CalculateLabourCost converts hours-by-role-and-tier into a labour cost.
// Each (role, tier) pair is an independent rate lookup; the four tier costs
// for a role are summed and rounded once per role, so rounding error never
// compounds across tiers. Roles with zero hours emit no line item.
func CalculateLabourCost(labour LabourBreakdown, rates RateCatalog) LabourCostResult {
	roles := []struct {
		name  string
		hours TierHours
		tiers LabourRateTiers
	}{
		{"Master Technician", labour.MasterTechnician, rates.MasterTechnician},
		{"Qualified Technician", labour.QualifiedTechnician, rates.QualifiedTechnician},
		{"Labourer", labour.Labourer, rates.Labourer},
	}

	var result LabourCostResult
	for _, r := range roles {
		hours := r.hours.Sum()
		if hours.IsZero() {
			continue
		}

		cost := r.hours.Normal.Mul(r.tiers.Normal).
			Add(r.hours.AfterHours.Mul(r.tiers.AfterHours)).
			Add(r.hours.Saturday.Mul(r.tiers.Saturday)).
			Add(r.hours.Sunday.Mul(r.tiers.Sunday)).
			Round(2)

		result.Items = append(result.Items, LineItem{
			Description: r.name,
			Quantity:    hours,
			Unit:        "hrs",
			Cost:        cost,
		})
		result.Breakdown = append(result.Breakdown,
			fmt.Sprintf("%s: %s hrs @ mixed rates = %s", r.name, FormatQty(hours), FormatAUD(cost)))

		result.Total = result.Total.Add(cost)
		result.TotalHours = result.TotalHours.Add(hours)
	}

	return result
}
