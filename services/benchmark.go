package services

import "github.com/shopspring/decimal"

// Benchmark classifications. Variance beyond ±10% of the reference average
// is flagged; anything inside the band is "within".
const (
	BenchmarkBelow  = "below"
	BenchmarkWithin = "within"
	BenchmarkAbove  = "above"
)

// BenchmarkConfig holds the reference industry-average per-unit costs the
// computed estimate is compared against. Values are injected by the caller
// (seeded settings record, falling back to DefaultBenchmarks) rather than
// hard-coded in the comparison stage.
type BenchmarkConfig struct {
	LabourCostPerHour   decimal.Decimal `json:"labour_cost_per_hour"`
	EquipmentCostPerDay decimal.Decimal `json:"equipment_cost_per_day"`
	ChemicalCostPerSqm  decimal.Decimal `json:"chemical_cost_per_sqm"`
}

// DefaultBenchmarks returns the stock reference averages used when no
// benchmark settings record exists.
func DefaultBenchmarks() BenchmarkConfig {
	return BenchmarkConfig{
		LabourCostPerHour:   decimal.NewFromInt(95),
		EquipmentCostPerDay: decimal.NewFromInt(85),
		ChemicalCostPerSqm:  decimal.NewFromInt(42),
	}
}

// BenchmarkComparison is one advisory row comparing an actual per-unit cost
// against its reference average. It never affects the estimate totals.
type BenchmarkComparison struct {
	Category       string          `json:"category"`
	Metric         string          `json:"metric"`
	Actual         decimal.Decimal `json:"actual"`
	Reference      decimal.Decimal `json:"reference"`
	Variance       decimal.Decimal `json:"variance"`
	VariancePct    decimal.Decimal `json:"variance_pct"`
	Classification string          `json:"classification"`
}

// CompareBenchmarks computes the per-unit cost of each category with a
// meaningful denominator and compares it against the configured reference.
// Categories with a zero denominator (or a non-positive reference) are
// omitted entirely rather than reported as spurious zero-cost rows.
func CompareBenchmarks(labour LabourCostResult, equipment EquipmentCostResult, chemicals ChemicalCostResult, cfg BenchmarkConfig) []BenchmarkComparison {
	rows := []struct {
		category    string
		metric      string
		cost        decimal.Decimal
		denominator decimal.Decimal
		reference   decimal.Decimal
	}{
		{"labour", "cost_per_hour", labour.Total, labour.TotalHours, cfg.LabourCostPerHour},
		{"equipment", "cost_per_day", equipment.Total, equipment.TotalDays, cfg.EquipmentCostPerDay},
		{"chemicals", "cost_per_sqm", chemicals.Total, chemicals.TotalArea, cfg.ChemicalCostPerSqm},
	}

	threshold := decimal.NewFromInt(10)
	hundred := decimal.NewFromInt(100)

	var comparisons []BenchmarkComparison
	for _, r := range rows {
		if r.denominator.IsZero() || !r.reference.IsPositive() {
			continue
		}

		actual := r.cost.Div(r.denominator).Round(2)
		variance := actual.Sub(r.reference)
		variancePct := variance.Div(r.reference).Mul(hundred).Round(2)

		classification := BenchmarkWithin
		switch {
		case variancePct.LessThan(threshold.Neg()):
			classification = BenchmarkBelow
		case variancePct.GreaterThan(threshold):
			classification = BenchmarkAbove
		}

		comparisons = append(comparisons, BenchmarkComparison{
			Category:       r.category,
			Metric:         r.metric,
			Actual:         actual,
			Reference:      r.reference,
			Variance:       variance,
			VariancePct:    variancePct,
			Classification: classification,
		})
	}

	return comparisons
}
