package service

import (
	"context"
	"io"

	"github.com/billforge/billforge-api/internal/domain/repository"
	"github.com/billforge/billforge-api/internal/draft"
	"github.com/billforge/billforge-api/internal/providers/pdf"
	"github.com/billforge/billforge-api/pkg/apperror"
	"github.com/google/uuid"
)

// ExportService renders saved invoices as PDF documents
type ExportService struct {
	invoiceRepo repository.InvoiceRepository
	pdfProvider pdf.Provider
}

// NewExportService creates a new export service
func NewExportService(invoiceRepo repository.InvoiceRepository, pdfProvider pdf.Provider) *ExportService {
	return &ExportService{
		invoiceRepo: invoiceRepo,
		pdfProvider: pdfProvider,
	}
}

// GenerateInvoicePDF renders one invoice and returns the document along with
// a download filename. Totals are recomputed from the stored rows by the same
// replay the save path uses, so the document never shows stale amounts.
func (s *ExportService) GenerateInvoicePDF(ctx context.Context, userID, id uuid.UUID) (io.Reader, string, error) {
	invoice, err := s.invoiceRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, "", err
	}
	if invoice == nil || invoice.UserID != userID {
		return nil, "", apperror.NewNotFoundError("Invoice")
	}

	d := draftFromInvoice(invoice)
	session := draft.Restore(d)
	totals := session.Totals()
	currency := invoice.Currency

	data := pdf.InvoiceData{
		InvoiceNumber: invoice.InvoiceNumber,
		InvoiceDate:   invoice.InvoiceDate.Format("02 Jan 2006"),
		BillFrom:      pdfParty(d.BillFrom),
		BillTo:        pdfParty(d.BillTo),
		Subtotal:      draft.Format(totals.Subtotal, currency),
		ChargesTotal:  draft.Format(totals.ChargesTotal, currency),
		GrandTotal:    draft.Format(totals.GrandTotal, currency),
	}
	if invoice.InvoiceName != nil {
		data.InvoiceName = *invoice.InvoiceName
	}

	assembled := session.Assemble()
	data.Items = make([]pdf.ItemData, 0, len(assembled.Entries))
	for _, e := range assembled.Entries {
		data.Items = append(data.Items, pdf.ItemData{
			Name:        e.Name,
			Amount:      draft.Format(e.Cost, currency),
			IsExtraCost: e.IsExtraCost,
		})
	}

	doc, err := s.pdfProvider.GenerateInvoice(ctx, data)
	if err != nil {
		return nil, "", err
	}

	return doc, invoice.InvoiceNumber + ".pdf", nil
}

func pdfParty(p draft.Party) pdf.PartyData {
	return pdf.PartyData{
		Name:      p.Name,
		Address:   p.Address,
		Phone:     p.Phone,
		Email:     p.Email,
		GSTNumber: p.GSTNumber,
	}
}
