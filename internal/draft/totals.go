package draft

import (
	"github.com/billforge/billforge-api/internal/domain/enum"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LineItem is a named, priced entry the biller charges for
type LineItem struct {
	ID   uuid.UUID       `json:"id"`
	Name string          `json:"name"`
	Cost decimal.Decimal `json:"cost"`
}

// ExtraCharge is a surcharge on top of the line-item subtotal. A percentage
// charge interprets Value as a percent of the subtotal; a fixed charge
// interprets it as a flat amount in the invoice currency.
type ExtraCharge struct {
	ID    uuid.UUID       `json:"id"`
	Name  string          `json:"name"`
	Kind  enum.ChargeKind `json:"kind"`
	Value decimal.Decimal `json:"value"`
}

// Amount resolves the charge to a concrete monetary amount against the given
// subtotal. Every charge is evaluated against the same subtotal so charges
// never tax each other.
func (c ExtraCharge) Amount(subtotal decimal.Decimal) decimal.Decimal {
	if c.Kind == enum.ChargePercentage {
		return subtotal.Mul(c.Value).Div(decimal.NewFromInt(100))
	}
	return c.Value
}

// Totals holds the derived amounts for the current state of a draft.
// It is a pure function of the items and charges; nothing caches it.
type Totals struct {
	Subtotal     decimal.Decimal `json:"subtotal"`
	ChargesTotal decimal.Decimal `json:"charges_total"`
	GrandTotal   decimal.Decimal `json:"grand_total"`
}

// ComputeTotals derives the subtotal and grand total from scratch.
// The subtotal is fixed first, then every charge is resolved against that
// single value, then the charge amounts are summed. No rounding happens
// here; presentation rounds to two decimals.
func ComputeTotals(items []LineItem, charges []ExtraCharge) Totals {
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.Cost)
	}

	chargesTotal := decimal.Zero
	for _, charge := range charges {
		chargesTotal = chargesTotal.Add(charge.Amount(subtotal))
	}

	return Totals{
		Subtotal:     subtotal,
		ChargesTotal: chargesTotal,
		GrandTotal:   subtotal.Add(chargesTotal),
	}
}
