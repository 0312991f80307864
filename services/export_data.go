package services

import "github.com/shopspring/decimal"

// EstimateExportData bundles report metadata with a computed estimate for
// document generation. The exporters iterate the category breakdown strings
// and the benchmark list verbatim; they never recompute costs.
type EstimateExportData struct {
	Title       string
	ClaimNumber string
	ClientName  string
	CreatedDate string
	Result      *CostEstimationResult
}

// estimateSection is one category block in an exported document.
type estimateSection struct {
	Title string
	Lines []string
	Total decimal.Decimal
}

// estimateSections flattens the per-category breakdowns into export order,
// skipping categories with no line items.
func estimateSections(r *CostEstimationResult) []estimateSection {
	all := []estimateSection{
		{"Labour", r.Labour.Breakdown, r.Labour.Total},
		{"Equipment", r.Equipment.Breakdown, r.Equipment.Total},
		{"Chemical Treatments", r.Chemicals.Breakdown, r.Chemicals.Total},
		{"Fees", r.Fees.Breakdown, r.Fees.Total},
	}

	var sections []estimateSection
	for _, s := range all {
		if len(s.Lines) == 0 {
			continue
		}
		sections = append(sections, s)
	}
	return sections
}

// totalRow is one line of the document totals block.
type totalRow struct {
	Label string
	Value decimal.Decimal
	Grand bool
}

// estimateTotalRows builds the subtotal → adjustments → GST → grand total
// block shared by the Excel and PDF exports.
func estimateTotalRows(r *CostEstimationResult) []totalRow {
	rows := []totalRow{{Label: "Subtotal", Value: r.Subtotal}}

	for _, item := range r.Modifiers.Items {
		rows = append(rows, totalRow{Label: item.Description, Value: item.Cost})
	}
	if len(r.Modifiers.Items) > 0 {
		rows = append(rows, totalRow{Label: "Adjusted Subtotal", Value: r.AdjustedSubtotal})
	}

	rows = append(rows,
		totalRow{Label: "GST (" + FormatQty(r.Tax.Rate.Mul(decimal.NewFromInt(100))) + "%)", Value: r.Tax.Amount},
		totalRow{Label: "Grand Total", Value: r.GrandTotal, Grand: true},
	)
	return rows
}
