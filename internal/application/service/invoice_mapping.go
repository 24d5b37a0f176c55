package service

import (
	"github.com/billforge/billforge-api/internal/domain/entity"
	"github.com/billforge/billforge-api/internal/draft"
	"github.com/shopspring/decimal"
)

// applyDraft copies an assembled draft onto an invoice entity. On update the
// entity keeps its ID, owner and billing party row IDs; everything the draft
// covers is replaced, items included.
func applyDraft(invoice *entity.Invoice, d draft.Draft, total decimal.Decimal) {
	invoice.InvoiceNumber = d.InvoiceNumber
	invoice.InvoiceDate = d.InvoiceDate
	invoice.Currency = d.Currency
	invoice.TotalCost = total

	invoice.InvoiceName = nil
	if d.InvoiceName != "" {
		name := d.InvoiceName
		invoice.InvoiceName = &name
	}

	invoice.BillFrom = partyEntity(d.BillFrom)
	invoice.BillTo = partyEntity(d.BillTo)

	items := make([]entity.InvoiceItem, 0, len(d.Entries))
	for i, e := range d.Entries {
		item := entity.InvoiceItem{
			Name:        e.Name,
			Cost:        e.Cost,
			IsExtraCost: e.IsExtraCost,
			Position:    i,
		}
		if e.IsExtraCost && e.ChargeKind.Valid() {
			kind := e.ChargeKind
			value := e.ChargeValue
			item.ChargeKind = &kind
			item.ChargeValue = &value
		}
		items = append(items, item)
	}
	invoice.Items = items
}

func partyEntity(p draft.Party) *entity.BillingParty {
	return &entity.BillingParty{
		Name:      p.Name,
		Address:   optional(p.Address),
		Phone:     optional(p.Phone),
		Email:     optional(p.Email),
		GSTNumber: optional(p.GSTNumber),
	}
}

// draftFromInvoice rebuilds the draft payload from stored rows so an invoice
// can be reopened for editing or replayed for export.
func draftFromInvoice(invoice *entity.Invoice) draft.Draft {
	d := draft.Draft{
		InvoiceNumber: invoice.InvoiceNumber,
		InvoiceDate:   invoice.InvoiceDate,
		Currency:      invoice.Currency,
	}
	if invoice.InvoiceName != nil {
		d.InvoiceName = *invoice.InvoiceName
	}
	if invoice.BillFrom != nil {
		d.BillFrom = partyFromEntity(invoice.BillFrom)
	}
	if invoice.BillTo != nil {
		d.BillTo = partyFromEntity(invoice.BillTo)
	}

	d.Entries = make([]draft.Entry, 0, len(invoice.Items))
	for _, item := range invoice.Items {
		e := draft.Entry{
			Name:        item.Name,
			Cost:        item.Cost,
			IsExtraCost: item.IsExtraCost,
		}
		if item.ChargeKind != nil {
			e.ChargeKind = *item.ChargeKind
		}
		if item.ChargeValue != nil {
			e.ChargeValue = *item.ChargeValue
		}
		d.Entries = append(d.Entries, e)
	}
	return d
}

func partyFromEntity(p *entity.BillingParty) draft.Party {
	party := draft.Party{Name: p.Name}
	if p.Address != nil {
		party.Address = *p.Address
	}
	if p.Phone != nil {
		party.Phone = *p.Phone
	}
	if p.Email != nil {
		party.Email = *p.Email
	}
	if p.GSTNumber != nil {
		party.GSTNumber = *p.GSTNumber
	}
	return party
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
