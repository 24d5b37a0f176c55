package service

import (
	"context"
	"time"

	"github.com/billforge/billforge-api/internal/domain/entity"
	"github.com/billforge/billforge-api/internal/domain/enum"
	"github.com/billforge/billforge-api/internal/domain/repository"
	"github.com/billforge/billforge-api/internal/draft"
	"github.com/billforge/billforge-api/pkg/apperror"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const invoiceDateLayout = "2006-01-02"

// InvoiceService handles invoice persistence. Incoming payloads are replayed
// through an editing session before saving, so totals and charge amounts are
// always recomputed server-side and never trusted from the client.
type InvoiceService struct {
	invoiceRepo repository.InvoiceRepository
}

// NewInvoiceService creates a new invoice service
func NewInvoiceService(invoiceRepo repository.InvoiceRepository) *InvoiceService {
	return &InvoiceService{invoiceRepo: invoiceRepo}
}

// PartyInput is one side of the invoice in an incoming payload
type PartyInput struct {
	Name      string
	Address   string
	Phone     string
	Email     string
	GSTNumber string
}

// ItemInput is one row of an incoming payload. Extra-cost rows may carry the
// charge's original kind and value; rows without them are treated as fixed
// charges at their stated cost.
type ItemInput struct {
	Name        string
	Cost        string
	IsExtraCost bool
	ChargeKind  string
	ChargeValue string
}

// InvoiceInput represents an invoice create or update payload
type InvoiceInput struct {
	BillFrom      PartyInput
	BillTo        PartyInput
	InvoiceNumber string
	InvoiceName   string
	InvoiceDate   string
	Currency      string
	Items         []ItemInput
}

// Create saves a new invoice. The invoice number is minted here when the
// payload does not carry one.
func (s *InvoiceService) Create(ctx context.Context, userID uuid.UUID, input *InvoiceInput) (*entity.Invoice, error) {
	assembled, total, err := replay(input)
	if err != nil {
		return nil, err
	}

	invoice := &entity.Invoice{UserID: userID}
	applyDraft(invoice, assembled, total)

	if err := s.invoiceRepo.Create(ctx, invoice); err != nil {
		return nil, err
	}
	return invoice, nil
}

// Get returns one invoice with its items, scoped to the owning user
func (s *InvoiceService) Get(ctx context.Context, userID, id uuid.UUID) (*entity.Invoice, error) {
	invoice, err := s.invoiceRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil || invoice.UserID != userID {
		return nil, apperror.NewNotFoundError("Invoice")
	}
	return invoice, nil
}

// List returns the user's invoices with pagination and filtering
func (s *InvoiceService) List(ctx context.Context, userID uuid.UUID, params *repository.InvoiceFilterParams) ([]entity.Invoice, int64, error) {
	return s.invoiceRepo.List(ctx, userID, params)
}

// Update replaces an invoice's content. The stored invoice number survives
// the update even when the payload omits it, so the invoice keeps its
// identity across edits.
func (s *InvoiceService) Update(ctx context.Context, userID, id uuid.UUID, input *InvoiceInput) (*entity.Invoice, error) {
	existing, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil || existing.UserID != userID {
		return nil, apperror.NewNotFoundError("Invoice")
	}

	if input.InvoiceNumber == "" {
		input.InvoiceNumber = existing.InvoiceNumber
	}

	assembled, total, err := replay(input)
	if err != nil {
		return nil, err
	}

	applyDraft(existing, assembled, total)

	if err := s.invoiceRepo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return s.invoiceRepo.GetWithItems(ctx, id)
}

// Delete removes an invoice, scoped to the owning user
func (s *InvoiceService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	invoice, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if invoice == nil || invoice.UserID != userID {
		return apperror.NewNotFoundError("Invoice")
	}
	return s.invoiceRepo.Delete(ctx, id)
}

// replay runs the payload through an editing session and assembles the result.
// Item costs and charge values get the same lenient coercion as the editor,
// and charge amounts are resolved against the recomputed subtotal.
func replay(input *InvoiceInput) (draft.Draft, decimal.Decimal, error) {
	currency := enum.CurrencyINR
	if input.Currency != "" {
		parsed, err := enum.ParseCurrency(input.Currency)
		if err != nil {
			return draft.Draft{}, decimal.Zero, apperror.NewBadRequestError("Unsupported currency")
		}
		currency = parsed
	}

	invoiceDate := time.Now().Truncate(24 * time.Hour)
	if input.InvoiceDate != "" {
		parsed, err := time.Parse(invoiceDateLayout, input.InvoiceDate)
		if err != nil {
			return draft.Draft{}, decimal.Zero, apperror.NewBadRequestError("Invoice date must be in YYYY-MM-DD format")
		}
		invoiceDate = parsed
	}

	entries := make([]draft.Entry, 0, len(input.Items))
	for _, item := range input.Items {
		entry := draft.Entry{
			Name:        item.Name,
			Cost:        draft.ParseAmount(item.Cost),
			IsExtraCost: item.IsExtraCost,
		}
		if item.IsExtraCost && item.ChargeKind != "" {
			kind, err := enum.ParseChargeKind(item.ChargeKind)
			if err != nil {
				return draft.Draft{}, decimal.Zero, apperror.NewBadRequestError("Unsupported charge kind")
			}
			entry.ChargeKind = kind
			entry.ChargeValue = draft.ParseAmount(item.ChargeValue)
		}
		entries = append(entries, entry)
	}

	session := draft.Restore(draft.Draft{
		BillFrom:      partyFromInput(input.BillFrom),
		BillTo:        partyFromInput(input.BillTo),
		InvoiceNumber: input.InvoiceNumber,
		InvoiceName:   input.InvoiceName,
		InvoiceDate:   invoiceDate,
		Currency:      currency,
		Entries:       entries,
	})

	assembled := session.Assemble()
	return assembled, session.Totals().GrandTotal, nil
}

func partyFromInput(p PartyInput) draft.Party {
	return draft.Party{
		Name:      p.Name,
		Address:   p.Address,
		Phone:     p.Phone,
		Email:     p.Email,
		GSTNumber: p.GSTNumber,
	}
}
