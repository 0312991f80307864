package services

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatAUD formats a monetary amount as Australian dollars, e.g.
// $1,234,567.89. The result always includes exactly 2 decimal places.
// Formatting is a presentation concern: the engine itself only ever returns
// plain numeric values.
func FormatAUD(amount decimal.Decimal) string {
	negative := amount.IsNegative()

	raw := amount.Abs().StringFixed(2)
	parts := strings.SplitN(raw, ".", 2)
	intPart := parts[0]
	decPart := parts[1]

	result := "$" + groupThousands(intPart) + "." + decPart
	if negative {
		result = "-" + result
	}
	return result
}

// groupThousands inserts commas into an integer string every 3 digits from
// the right.
func groupThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}

	result := s[n-3:]
	remaining := s[:n-3]
	for len(remaining) > 3 {
		result = remaining[len(remaining)-3:] + "," + result
		remaining = remaining[:len(remaining)-3]
	}
	return remaining + "," + result
}

// FormatQty formats a quantity value: whole numbers without decimals, others
// with 2 decimals.
func FormatQty(val decimal.Decimal) string {
	if val.IsInteger() {
		return val.StringFixed(0)
	}
	return val.StringFixed(2)
}
