package draft

import (
	"strings"

	"github.com/billforge/billforge-api/internal/domain/enum"
	"github.com/shopspring/decimal"
)

// ParseAmount coerces free-form user input into a non-negative decimal amount.
// Non-numeric input and negative values become zero rather than an error,
// matching the lenient coercion the editing flow expects.
func ParseAmount(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil || d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// clampAmount forces a decimal into the non-negative range
func clampAmount(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// Format renders an amount for display: currency symbol plus the amount
// rounded to two decimal places. Rounding happens here and only here;
// intermediate arithmetic keeps full precision.
func Format(amount decimal.Decimal, currency enum.Currency) string {
	return currency.Symbol() + amount.StringFixed(2)
}
