package service

import (
	"context"

	"github.com/billforge/billforge-api/internal/domain/entity"
	"github.com/billforge/billforge-api/internal/domain/repository"
	"github.com/billforge/billforge-api/pkg/pagination"
	"github.com/google/uuid"
)

// DashboardService aggregates the user's invoicing activity
type DashboardService struct {
	invoiceRepo repository.InvoiceRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(invoiceRepo repository.InvoiceRepository) *DashboardService {
	return &DashboardService{invoiceRepo: invoiceRepo}
}

// DashboardStats is the dashboard page payload
type DashboardStats struct {
	*repository.InvoiceStats
	RecentInvoices []entity.Invoice `json:"recent_invoices"`
}

// GetStats returns the invoice count, billed totals grouped by currency and
// the most recent invoices. Totals are never summed across currencies; a
// rupee invoice and a dollar invoice stay in separate buckets.
func (s *DashboardService) GetStats(ctx context.Context, userID uuid.UUID) (*DashboardStats, error) {
	stats, err := s.invoiceRepo.Stats(ctx, userID)
	if err != nil {
		return nil, err
	}

	recent, _, err := s.invoiceRepo.List(ctx, userID, &repository.InvoiceFilterParams{
		Pagination: &pagination.PaginationParams{Page: 1, PerPage: 5},
		SortBy:     "created_at",
		SortOrder:  "DESC",
	})
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		InvoiceStats:   stats,
		RecentInvoices: recent,
	}, nil
}
