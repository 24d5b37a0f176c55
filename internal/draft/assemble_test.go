package draft

import (
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/billforge/billforge-api/internal/domain/enum"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func editedSession(t *testing.T) *Session {
	t.Helper()

	s := NewSession()
	s.BillFrom = Party{Name: "Acme Studio", Email: "billing@acme.test", GSTNumber: "29ABCDE1234F1Z5"}
	s.BillTo = Party{Name: "Globex", Address: "12 Market Rd", Phone: "+91 98765 43210"}
	s.InvoiceName = "March Website Design"
	s.InvoiceDate = time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	s.Currency = enum.CurrencyUSD

	id := s.Items()[0].ID
	require.NoError(t, s.RenameItem(id, "Design"))
	require.NoError(t, s.RecostItem(id, decimal.NewFromInt(500)))

	gst := s.AddCharge()
	require.NoError(t, s.RenameCharge(gst.ID, "GST"))
	require.NoError(t, s.RevalueCharge(gst.ID, decimal.NewFromInt(18)))

	shipping := s.AddCharge()
	require.NoError(t, s.RenameCharge(shipping.ID, "Shipping"))
	require.NoError(t, s.RetypeCharge(shipping.ID, enum.ChargeFixed))
	require.NoError(t, s.RevalueCharge(shipping.ID, decimal.NewFromInt(25)))

	return s
}

func TestAssembleResolvesChargesAgainstSubtotal(t *testing.T) {
	s := editedSession(t)

	d := s.Assemble()

	require.Len(t, d.Entries, 3)
	assert.Equal(t, "Design", d.Entries[0].Name)
	assert.False(t, d.Entries[0].IsExtraCost)

	gst := d.Entries[1]
	assert.True(t, gst.IsExtraCost)
	assert.True(t, gst.Cost.Equal(decimal.NewFromInt(90)), "18 percent of 500, not of the grand total")
	assert.Equal(t, enum.ChargePercentage, gst.ChargeKind)
	assert.True(t, gst.ChargeValue.Equal(decimal.NewFromInt(18)))

	shipping := d.Entries[2]
	assert.True(t, shipping.IsExtraCost)
	assert.True(t, shipping.Cost.Equal(decimal.NewFromInt(25)))
	assert.Equal(t, enum.ChargeFixed, shipping.ChargeKind)
}

func TestAssembleMintsNumberOnceAndPreservesIt(t *testing.T) {
	s := editedSession(t)
	require.Empty(t, s.InvoiceNumber)

	first := s.Assemble()
	assert.True(t, strings.HasPrefix(first.InvoiceNumber, "INV-"))

	second := s.Assemble()
	assert.Equal(t, first.InvoiceNumber, second.InvoiceNumber)
}

func TestAssembleKeepsExistingNumber(t *testing.T) {
	s := editedSession(t)
	s.InvoiceNumber = "INV-1757000000000"

	d := s.Assemble()

	assert.Equal(t, "INV-1757000000000", d.InvoiceNumber)
}

func TestAssembleDefaultsBlankNames(t *testing.T) {
	s := NewSession()
	require.NoError(t, s.RecostItem(s.Items()[0].ID, decimal.NewFromInt(10)))
	s.AddCharge()
	fixed := s.AddCharge()
	require.NoError(t, s.RetypeCharge(fixed.ID, enum.ChargeFixed))

	d := s.Assemble()

	assert.Equal(t, "Item", d.Entries[0].Name)
	assert.Equal(t, "Percent charge", d.Entries[1].Name)
	assert.Equal(t, "Fixed charge", d.Entries[2].Name)
}

func TestRestoreRoundTrip(t *testing.T) {
	s := editedSession(t)
	wantTotals := s.Totals()
	d := s.Assemble()

	restored := Restore(d)
	again := restored.Assemble()

	gotTotals := restored.Totals()
	assert.True(t, gotTotals.Subtotal.Equal(wantTotals.Subtotal))
	assert.True(t, gotTotals.ChargesTotal.Equal(wantTotals.ChargesTotal))
	assert.True(t, gotTotals.GrandTotal.Equal(wantTotals.GrandTotal))

	assert.Equal(t, d.InvoiceNumber, again.InvoiceNumber)
	assert.Equal(t, d.Currency, restored.Currency)
	assert.Equal(t, d.BillFrom, restored.BillFrom)
	assert.Equal(t, d.BillTo, restored.BillTo)
	assert.Equal(t, entryKeys(d.Entries), entryKeys(again.Entries))
}

// entryKeys reduces entries to a sorted (name, cost, kind, value) multiset
func entryKeys(entries []Entry) []string {
	keys := make([]string, 0, len(entries))
	for _, e := range entries {
		keys = append(keys, strings.Join([]string{
			e.Name, e.Cost.StringFixed(4), string(e.ChargeKind), e.ChargeValue.StringFixed(4),
		}, "|"))
	}
	sort.Strings(keys)
	return keys
}

func TestRestorePercentageChargeKeepsKind(t *testing.T) {
	s := editedSession(t)
	restored := Restore(s.Assemble())

	charges := restored.Charges()
	require.Len(t, charges, 2)
	assert.Equal(t, enum.ChargePercentage, charges[0].Kind)
	assert.True(t, charges[0].Value.Equal(decimal.NewFromInt(18)))
	assert.Equal(t, enum.ChargeFixed, charges[1].Kind)
}

func TestRestoreLegacyEntryFallsBackToFixed(t *testing.T) {
	d := Draft{
		InvoiceNumber: "INV-1",
		Currency:      enum.CurrencyINR,
		InvoiceDate:   time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC),
		Entries: []Entry{
			{Name: "Design", Cost: decimal.NewFromInt(500)},
			// row persisted before charge kinds were stored
			{Name: "GST", Cost: decimal.NewFromInt(90), IsExtraCost: true},
		},
	}

	restored := Restore(d)

	charges := restored.Charges()
	require.Len(t, charges, 1)
	assert.Equal(t, enum.ChargeFixed, charges[0].Kind)
	assert.True(t, charges[0].Value.Equal(decimal.NewFromInt(90)))
	assert.True(t, restored.Totals().GrandTotal.Equal(decimal.NewFromInt(590)))
}

func TestRestoreChargeOnlyDraftKeepsPlaceholderItem(t *testing.T) {
	d := Draft{
		InvoiceNumber: "INV-2",
		Currency:      enum.CurrencyINR,
		Entries: []Entry{
			{Name: "Handling", Cost: decimal.NewFromInt(40), IsExtraCost: true, ChargeKind: enum.ChargeFixed, ChargeValue: decimal.NewFromInt(40)},
		},
	}

	restored := Restore(d)

	assert.Len(t, restored.Items(), 1)
	assert.Len(t, restored.Charges(), 1)
}
