package pdf

import (
	"context"
	"io"
)

// Provider renders a finished invoice document.
type Provider interface {
	GenerateInvoice(ctx context.Context, data InvoiceData) (io.Reader, error)
}

// InvoiceData carries everything the renderer needs, with amounts already
// formatted in the invoice's currency.
type InvoiceData struct {
	InvoiceNumber string
	InvoiceName   string
	InvoiceDate   string

	BillFrom PartyData
	BillTo   PartyData

	Items []ItemData

	Subtotal     string
	ChargesTotal string
	GrandTotal   string
}

// PartyData is one side of the invoice header.
type PartyData struct {
	Name      string
	Address   string
	Phone     string
	Email     string
	GSTNumber string
}

// ItemData is one table row. Extra charges arrive resolved to their amount
// and flagged so the renderer can set them apart from billable items.
type ItemData struct {
	Name        string
	Amount      string
	IsExtraCost bool
}
