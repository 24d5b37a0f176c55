package draft

import (
	"errors"
	"time"

	"github.com/billforge/billforge-api/internal/domain/enum"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	// ErrLastLineItem is returned when a removal would leave the item store empty
	ErrLastLineItem = errors.New("cannot remove the last line item")
	// ErrItemNotFound is returned when no line item matches the given id
	ErrItemNotFound = errors.New("line item not found")
	// ErrChargeNotFound is returned when no extra charge matches the given id
	ErrChargeNotFound = errors.New("extra charge not found")
)

// Party identifies one side of an invoice (biller or client)
type Party struct {
	Name      string `json:"name"`
	Address   string `json:"address,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Email     string `json:"email,omitempty"`
	GSTNumber string `json:"gst_number,omitempty"`
}

// Session owns the mutable state of one invoice being edited: the line items,
// the extra charges, both parties and the invoice metadata. There is exactly
// one writer per session, so it is deliberately not goroutine-safe.
type Session struct {
	BillFrom      Party
	BillTo        Party
	InvoiceNumber string
	InvoiceName   string
	InvoiceDate   time.Time
	Currency      enum.Currency

	// AllowEmptyItems lifts the at-least-one-item guard. The authoring UI
	// keeps a placeholder row, so the default is false.
	AllowEmptyItems bool

	items   []LineItem
	charges []ExtraCharge
}

// NewSession creates an empty editing session with a single placeholder line
// item, no charges and today's date, mirroring a fresh create-invoice form.
func NewSession() *Session {
	s := &Session{
		InvoiceDate: time.Now().Truncate(24 * time.Hour),
		Currency:    enum.CurrencyINR,
	}
	s.AddItem()
	return s
}

// Items returns a copy of the line items in insertion order
func (s *Session) Items() []LineItem {
	out := make([]LineItem, len(s.items))
	copy(out, s.items)
	return out
}

// Charges returns a copy of the extra charges in insertion order
func (s *Session) Charges() []ExtraCharge {
	out := make([]ExtraCharge, len(s.charges))
	copy(out, s.charges)
	return out
}

// AddItem appends a fresh line item with an empty name and zero cost
func (s *Session) AddItem() LineItem {
	item := LineItem{ID: uuid.New(), Cost: decimal.Zero}
	s.items = append(s.items, item)
	return item
}

// RemoveItem deletes the line item with the given id. Removing the sole
// remaining item is refused unless the session allows an empty store.
func (s *Session) RemoveItem(id uuid.UUID) error {
	idx := s.itemIndex(id)
	if idx < 0 {
		return ErrItemNotFound
	}
	if len(s.items) == 1 && !s.AllowEmptyItems {
		return ErrLastLineItem
	}
	s.items = append(s.items[:idx], s.items[idx+1:]...)
	return nil
}

// RenameItem replaces the name of the line item with the given id
func (s *Session) RenameItem(id uuid.UUID, name string) error {
	idx := s.itemIndex(id)
	if idx < 0 {
		return ErrItemNotFound
	}
	s.items[idx].Name = name
	return nil
}

// RecostItem replaces the cost of the line item with the given id.
// Negative costs clamp to zero.
func (s *Session) RecostItem(id uuid.UUID, cost decimal.Decimal) error {
	idx := s.itemIndex(id)
	if idx < 0 {
		return ErrItemNotFound
	}
	s.items[idx].Cost = clampAmount(cost)
	return nil
}

// AddCharge appends a fresh extra charge, defaulting to a zero percentage
func (s *Session) AddCharge() ExtraCharge {
	charge := ExtraCharge{ID: uuid.New(), Kind: enum.ChargePercentage, Value: decimal.Zero}
	s.charges = append(s.charges, charge)
	return charge
}

// RemoveCharge deletes the charge with the given id. An empty charge store is
// the normal "no extra charges" state, so removal is unrestricted.
func (s *Session) RemoveCharge(id uuid.UUID) error {
	idx := s.chargeIndex(id)
	if idx < 0 {
		return ErrChargeNotFound
	}
	s.charges = append(s.charges[:idx], s.charges[idx+1:]...)
	return nil
}

// RenameCharge replaces the name of the charge with the given id
func (s *Session) RenameCharge(id uuid.UUID, name string) error {
	idx := s.chargeIndex(id)
	if idx < 0 {
		return ErrChargeNotFound
	}
	s.charges[idx].Name = name
	return nil
}

// RetypeCharge switches how the charge's value is interpreted
func (s *Session) RetypeCharge(id uuid.UUID, kind enum.ChargeKind) error {
	idx := s.chargeIndex(id)
	if idx < 0 {
		return ErrChargeNotFound
	}
	s.charges[idx].Kind = kind
	return nil
}

// RevalueCharge replaces the charge's value. Negative values clamp to zero.
func (s *Session) RevalueCharge(id uuid.UUID, value decimal.Decimal) error {
	idx := s.chargeIndex(id)
	if idx < 0 {
		return ErrChargeNotFound
	}
	s.charges[idx].Value = clampAmount(value)
	return nil
}

// Totals recomputes the derived amounts from the current state
func (s *Session) Totals() Totals {
	return ComputeTotals(s.items, s.charges)
}

func (s *Session) itemIndex(id uuid.UUID) int {
	for i, item := range s.items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

func (s *Session) chargeIndex(id uuid.UUID) int {
	for i, charge := range s.charges {
		if charge.ID == id {
			return i
		}
	}
	return -1
}
