package draft

import (
	"fmt"
	"time"

	"github.com/billforge/billforge-api/internal/domain/enum"
	"github.com/shopspring/decimal"
)

// Entry is one row of an assembled draft. Line items come first, followed by
// the extra charges resolved to concrete amounts and flagged IsExtraCost so a
// reload can tell billable items from derived surcharges. ChargeKind and
// ChargeValue keep the charge's original form so a percentage charge survives
// a round trip instead of degrading to a fixed amount.
type Entry struct {
	Name        string
	Cost        decimal.Decimal
	IsExtraCost bool
	ChargeKind  enum.ChargeKind
	ChargeValue decimal.Decimal
}

// Draft is the persistence-shaped snapshot of an editing session, built on
// save or export and not retained beyond the action.
type Draft struct {
	BillFrom      Party
	BillTo        Party
	InvoiceNumber string
	InvoiceName   string
	InvoiceDate   time.Time
	Currency      enum.Currency
	Entries       []Entry
}

// Assemble maps the session into the draft payload the persistence layer
// consumes. Charges resolve against the subtotal, never the grand total.
// A session without an invoice number gets a fresh one; an existing number
// is preserved so updates keep the invoice's identity.
func (s *Session) Assemble() Draft {
	if s.InvoiceNumber == "" {
		s.InvoiceNumber = NewInvoiceNumber()
	}

	totals := s.Totals()
	entries := make([]Entry, 0, len(s.items)+len(s.charges))

	for _, item := range s.items {
		name := item.Name
		if name == "" {
			name = "Item"
		}
		entries = append(entries, Entry{Name: name, Cost: item.Cost})
	}

	for _, charge := range s.charges {
		name := charge.Name
		if name == "" {
			if charge.Kind == enum.ChargePercentage {
				name = "Percent charge"
			} else {
				name = "Fixed charge"
			}
		}
		entries = append(entries, Entry{
			Name:        name,
			Cost:        charge.Amount(totals.Subtotal),
			IsExtraCost: true,
			ChargeKind:  charge.Kind,
			ChargeValue: charge.Value,
		})
	}

	return Draft{
		BillFrom:      s.BillFrom,
		BillTo:        s.BillTo,
		InvoiceNumber: s.InvoiceNumber,
		InvoiceName:   s.InvoiceName,
		InvoiceDate:   s.InvoiceDate,
		Currency:      s.Currency,
		Entries:       entries,
	}
}

// Restore rebuilds an editing session from a previously assembled draft so the
// invoice can be reopened for editing. Extra-cost entries that carry a charge
// kind come back in their original form; entries without one (rows written
// before the kind was stored) become fixed charges at their resolved cost.
func Restore(d Draft) *Session {
	s := &Session{
		BillFrom:      d.BillFrom,
		BillTo:        d.BillTo,
		InvoiceNumber: d.InvoiceNumber,
		InvoiceName:   d.InvoiceName,
		InvoiceDate:   d.InvoiceDate,
		Currency:      d.Currency,
	}

	for _, e := range d.Entries {
		if e.IsExtraCost {
			charge := s.AddCharge()
			_ = s.RenameCharge(charge.ID, e.Name)
			if e.ChargeKind.Valid() {
				_ = s.RetypeCharge(charge.ID, e.ChargeKind)
				_ = s.RevalueCharge(charge.ID, e.ChargeValue)
			} else {
				_ = s.RetypeCharge(charge.ID, enum.ChargeFixed)
				_ = s.RevalueCharge(charge.ID, e.Cost)
			}
			continue
		}
		item := s.AddItem()
		_ = s.RenameItem(item.ID, e.Name)
		_ = s.RecostItem(item.ID, e.Cost)
	}

	// An invoice with no regular items still needs the placeholder row
	// the authoring flow assumes.
	if len(s.items) == 0 {
		s.AddItem()
	}

	return s
}

// NewInvoiceNumber mints an invoice number from the current time in
// millisecond resolution. Uniqueness within one user's invoice set is the
// only requirement.
func NewInvoiceNumber() string {
	return fmt.Sprintf("INV-%d", time.Now().UnixMilli())
}
