package draft

import (
	"testing"

	"github.com/billforge/billforge-api/internal/domain/enum"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func item(name string, cost string) LineItem {
	return LineItem{ID: uuid.New(), Name: name, Cost: decimal.RequireFromString(cost)}
}

func charge(name string, kind enum.ChargeKind, value string) ExtraCharge {
	return ExtraCharge{ID: uuid.New(), Name: name, Kind: kind, Value: decimal.RequireFromString(value)}
}

func TestComputeTotals(t *testing.T) {
	tests := []struct {
		name         string
		items        []LineItem
		charges      []ExtraCharge
		subtotal     string
		chargesTotal string
		grandTotal   string
	}{
		{
			name:         "no items no charges",
			subtotal:     "0",
			chargesTotal: "0",
			grandTotal:   "0",
		},
		{
			name:         "design item with gst percentage",
			items:        []LineItem{item("Design", "500")},
			charges:      []ExtraCharge{charge("GST", enum.ChargePercentage, "18")},
			subtotal:     "500",
			chargesTotal: "90",
			grandTotal:   "590",
		},
		{
			name:         "two items with fixed charge",
			items:        []LineItem{item("A", "100"), item("B", "50")},
			charges:      []ExtraCharge{charge("Handling", enum.ChargeFixed, "25")},
			subtotal:     "150",
			chargesTotal: "25",
			grandTotal:   "175",
		},
		{
			name:         "hundred percent charge doubles the subtotal",
			items:        []LineItem{item("A", "200")},
			charges:      []ExtraCharge{charge("Markup", enum.ChargePercentage, "100")},
			subtotal:     "200",
			chargesTotal: "200",
			grandTotal:   "400",
		},
		{
			name: "percentage charges do not tax each other",
			items: []LineItem{
				item("A", "100"),
			},
			charges: []ExtraCharge{
				charge("GST", enum.ChargePercentage, "10"),
				charge("Service", enum.ChargePercentage, "10"),
				charge("Shipping", enum.ChargeFixed, "5"),
			},
			subtotal:     "100",
			chargesTotal: "25",
			grandTotal:   "125",
		},
		{
			name:         "fractional costs keep full precision",
			items:        []LineItem{item("A", "0.10"), item("B", "0.20")},
			charges:      []ExtraCharge{charge("GST", enum.ChargePercentage, "18")},
			subtotal:     "0.30",
			chargesTotal: "0.054",
			grandTotal:   "0.354",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			totals := ComputeTotals(tc.items, tc.charges)
			assert.True(t, totals.Subtotal.Equal(decimal.RequireFromString(tc.subtotal)),
				"subtotal: got %s", totals.Subtotal)
			assert.True(t, totals.ChargesTotal.Equal(decimal.RequireFromString(tc.chargesTotal)),
				"charges total: got %s", totals.ChargesTotal)
			assert.True(t, totals.GrandTotal.Equal(decimal.RequireFromString(tc.grandTotal)),
				"grand total: got %s", totals.GrandTotal)
		})
	}
}

func TestComputeTotalsOrderIndependentSubtotal(t *testing.T) {
	a := []LineItem{item("A", "12.34"), item("B", "0.66"), item("C", "7")}
	b := []LineItem{a[2], a[0], a[1]}

	assert.True(t, ComputeTotals(a, nil).Subtotal.Equal(ComputeTotals(b, nil).Subtotal))
}

func TestComputeTotalsIdempotent(t *testing.T) {
	items := []LineItem{item("A", "99.99")}
	charges := []ExtraCharge{charge("GST", enum.ChargePercentage, "18")}

	first := ComputeTotals(items, charges)
	second := ComputeTotals(items, charges)

	assert.True(t, first.Subtotal.Equal(second.Subtotal))
	assert.True(t, first.ChargesTotal.Equal(second.ChargesTotal))
	assert.True(t, first.GrandTotal.Equal(second.GrandTotal))
}

func TestFixedChargeDeltaMovesTotalByDelta(t *testing.T) {
	items := []LineItem{item("A", "80")}
	before := ComputeTotals(items, []ExtraCharge{charge("Fee", enum.ChargeFixed, "10")})
	after := ComputeTotals(items, []ExtraCharge{charge("Fee", enum.ChargeFixed, "17.50")})

	delta := after.ChargesTotal.Sub(before.ChargesTotal)
	assert.True(t, delta.Equal(decimal.RequireFromString("7.50")))
}

func TestPercentageChargeDeltaScalesWithSubtotal(t *testing.T) {
	items := []LineItem{item("A", "250")}
	before := ComputeTotals(items, []ExtraCharge{charge("GST", enum.ChargePercentage, "10")})
	after := ComputeTotals(items, []ExtraCharge{charge("GST", enum.ChargePercentage, "14")})

	// delta * subtotal / 100 = 4 * 250 / 100 = 10
	delta := after.ChargesTotal.Sub(before.ChargesTotal)
	assert.True(t, delta.Equal(decimal.NewFromInt(10)))
}

func TestFormatRoundsAtPresentationOnly(t *testing.T) {
	totals := ComputeTotals(
		[]LineItem{item("A", "0.10"), item("B", "0.20")},
		[]ExtraCharge{charge("GST", enum.ChargePercentage, "18")},
	)

	assert.Equal(t, "₹0.35", Format(totals.GrandTotal, enum.CurrencyINR))
	assert.Equal(t, "$0.35", Format(totals.GrandTotal, enum.CurrencyUSD))
}
