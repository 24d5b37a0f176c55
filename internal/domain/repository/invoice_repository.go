package repository

import (
	"context"

	"github.com/billforge/billforge-api/internal/domain/entity"
	"github.com/billforge/billforge-api/internal/domain/enum"
	"github.com/billforge/billforge-api/pkg/pagination"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceRepository defines the interface for invoice data operations
type InvoiceRepository interface {
	// Create persists the invoice together with its billing parties and items
	Create(ctx context.Context, invoice *entity.Invoice) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error)
	GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Invoice, error)
	// Update replaces the invoice's fields, billing parties and items in one transaction
	Update(ctx context.Context, invoice *entity.Invoice) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID, params *InvoiceFilterParams) ([]entity.Invoice, int64, error)
	Stats(ctx context.Context, userID uuid.UUID) (*InvoiceStats, error)
}

// InvoiceFilterParams contains filtering parameters for invoice queries
type InvoiceFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	Currency   *enum.Currency
	SortBy     string
	SortOrder  string
}

// InvoiceStats aggregates a user's invoices for the dashboard
type InvoiceStats struct {
	InvoiceCount     int64                            `json:"invoice_count"`
	TotalsByCurrency map[enum.Currency]decimal.Decimal `json:"totals_by_currency"`
}
