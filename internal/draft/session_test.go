package draft

import (
	"testing"

	"github.com/billforge/billforge-api/internal/domain/enum"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSessionStartsWithPlaceholderItem(t *testing.T) {
	s := NewSession()

	items := s.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "", items[0].Name)
	assert.True(t, items[0].Cost.IsZero())
	assert.Empty(t, s.Charges())
	assert.Equal(t, enum.CurrencyINR, s.Currency)
}

func TestAddItemAssignsFreshIDs(t *testing.T) {
	s := NewSession()
	a := s.AddItem()
	b := s.AddItem()

	assert.NotEqual(t, a.ID, b.ID)
	assert.Len(t, s.Items(), 3)
}

func TestRemoveLastItemRefused(t *testing.T) {
	s := NewSession()
	only := s.Items()[0]

	err := s.RemoveItem(only.ID)

	assert.ErrorIs(t, err, ErrLastLineItem)
	assert.Len(t, s.Items(), 1)
}

func TestRemoveLastItemAllowedByPolicy(t *testing.T) {
	s := NewSession()
	s.AllowEmptyItems = true

	err := s.RemoveItem(s.Items()[0].ID)

	require.NoError(t, err)
	assert.Empty(t, s.Items())
}

func TestRemoveItemKeepsInsertionOrder(t *testing.T) {
	s := NewSession()
	require.NoError(t, s.RenameItem(s.Items()[0].ID, "first"))
	second := s.AddItem()
	third := s.AddItem()
	require.NoError(t, s.RenameItem(third.ID, "third"))

	require.NoError(t, s.RemoveItem(second.ID))

	items := s.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "first", items[0].Name)
	assert.Equal(t, "third", items[1].Name)
}

func TestRecostItemClampsNegative(t *testing.T) {
	s := NewSession()
	id := s.Items()[0].ID

	require.NoError(t, s.RecostItem(id, decimal.NewFromInt(-5)))

	assert.True(t, s.Items()[0].Cost.IsZero())
}

func TestItemUpdatesUnknownID(t *testing.T) {
	s := NewSession()

	assert.ErrorIs(t, s.RenameItem(uuid.New(), "x"), ErrItemNotFound)
	assert.ErrorIs(t, s.RecostItem(uuid.New(), decimal.Zero), ErrItemNotFound)
	assert.ErrorIs(t, s.RemoveItem(uuid.New()), ErrItemNotFound)
}

func TestAddChargeDefaultsToZeroPercentage(t *testing.T) {
	s := NewSession()
	c := s.AddCharge()

	assert.Equal(t, enum.ChargePercentage, c.Kind)
	assert.True(t, c.Value.IsZero())
}

func TestRemoveChargeUnrestricted(t *testing.T) {
	s := NewSession()
	c := s.AddCharge()

	require.NoError(t, s.RemoveCharge(c.ID))

	assert.Empty(t, s.Charges())
	assert.ErrorIs(t, s.RemoveCharge(c.ID), ErrChargeNotFound)
}

func TestChargeUpdates(t *testing.T) {
	s := NewSession()
	c := s.AddCharge()

	require.NoError(t, s.RenameCharge(c.ID, "GST"))
	require.NoError(t, s.RetypeCharge(c.ID, enum.ChargeFixed))
	require.NoError(t, s.RevalueCharge(c.ID, decimal.NewFromInt(50)))

	got := s.Charges()[0]
	assert.Equal(t, "GST", got.Name)
	assert.Equal(t, enum.ChargeFixed, got.Kind)
	assert.True(t, got.Value.Equal(decimal.NewFromInt(50)))
}

func TestRevalueChargeClampsNegative(t *testing.T) {
	s := NewSession()
	c := s.AddCharge()

	require.NoError(t, s.RevalueCharge(c.ID, decimal.NewFromInt(-18)))

	assert.True(t, s.Charges()[0].Value.IsZero())
}

func TestSessionTotalsTrackMutations(t *testing.T) {
	s := NewSession()
	id := s.Items()[0].ID
	require.NoError(t, s.RenameItem(id, "Design"))
	require.NoError(t, s.RecostItem(id, decimal.NewFromInt(500)))

	c := s.AddCharge()
	require.NoError(t, s.RevalueCharge(c.ID, decimal.NewFromInt(18)))

	totals := s.Totals()
	assert.True(t, totals.Subtotal.Equal(decimal.NewFromInt(500)))
	assert.True(t, totals.ChargesTotal.Equal(decimal.NewFromInt(90)))
	assert.True(t, totals.GrandTotal.Equal(decimal.NewFromInt(590)))

	require.NoError(t, s.RemoveCharge(c.ID))
	assert.True(t, s.Totals().GrandTotal.Equal(decimal.NewFromInt(500)))
}

func TestParseAmountCoercion(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"500", "500"},
		{" 12.75 ", "12.75"},
		{"", "0"},
		{"abc", "0"},
		{"12abc", "0"},
		{"-3", "0"},
	}

	for _, tc := range tests {
		got := ParseAmount(tc.input)
		assert.True(t, got.Equal(decimal.RequireFromString(tc.want)),
			"ParseAmount(%q) = %s, want %s", tc.input, got, tc.want)
	}
}
