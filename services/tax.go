package services

import "github.com/shopspring/decimal"

// TaxResult holds the GST applied to the adjusted subtotal.
type TaxResult struct {
	Rate   decimal.Decimal `json:"rate"`
	Amount decimal.Decimal `json:"amount"`
	Total  decimal.Decimal `json:"total"`
}

// CalculateTax applies the single flat tax rate. The amount is rounded once,
// here, on the already-rounded adjusted subtotal; it is never recomputed
// from unrounded intermediate sums.
func CalculateTax(adjustedSubtotal, taxRate decimal.Decimal) TaxResult {
	amount := adjustedSubtotal.Mul(taxRate).Round(2)
	return TaxResult{
		Rate:   taxRate,
		Amount: amount,
		Total:  adjustedSubtotal.Add(amount),
	}
}
