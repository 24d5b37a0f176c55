package repository

import (
	"context"
	"errors"

	"github.com/billforge/billforge-api/internal/domain/entity"
	"github.com/billforge/billforge-api/internal/domain/enum"
	domainRepo "github.com/billforge/billforge-api/internal/domain/repository"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type invoiceRepository struct {
	db *gorm.DB
}

// NewInvoiceRepository creates a new invoice repository
func NewInvoiceRepository(db *gorm.DB) domainRepo.InvoiceRepository {
	return &invoiceRepository{db: db}
}

// Create persists the invoice with its billing parties and items in one
// transaction so a failed insert never leaves orphaned party rows behind.
func (r *invoiceRepository) Create(ctx context.Context, invoice *entity.Invoice) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if invoice.BillFrom != nil {
			if err := tx.Create(invoice.BillFrom).Error; err != nil {
				return err
			}
			invoice.BillFromID = invoice.BillFrom.ID
		}
		if invoice.BillTo != nil {
			if err := tx.Create(invoice.BillTo).Error; err != nil {
				return err
			}
			invoice.BillToID = invoice.BillTo.ID
		}

		items := invoice.Items
		invoice.Items = nil
		if err := tx.Omit("BillFrom", "BillTo", "User").Create(invoice).Error; err != nil {
			return err
		}
		invoice.Items = items

		for i := range invoice.Items {
			invoice.Items[i].InvoiceID = invoice.ID
			invoice.Items[i].Position = i
		}
		if len(invoice.Items) > 0 {
			if err := tx.Create(&invoice.Items).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *invoiceRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	var invoice entity.Invoice
	err := r.db.WithContext(ctx).
		Preload("BillFrom").
		Preload("BillTo").
		First(&invoice, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &invoice, err
}

func (r *invoiceRepository) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	var invoice entity.Invoice
	err := r.db.WithContext(ctx).
		Preload("BillFrom").
		Preload("BillTo").
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		First(&invoice, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &invoice, err
}

// Update rewrites the invoice's own fields and billing parties in place and
// replaces the item rows wholesale, all inside one transaction.
func (r *invoiceRepository) Update(ctx context.Context, invoice *entity.Invoice) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if invoice.BillFrom != nil {
			invoice.BillFrom.ID = invoice.BillFromID
			if err := tx.Save(invoice.BillFrom).Error; err != nil {
				return err
			}
		}
		if invoice.BillTo != nil {
			invoice.BillTo.ID = invoice.BillToID
			if err := tx.Save(invoice.BillTo).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("invoice_id = ?", invoice.ID).
			Delete(&entity.InvoiceItem{}).Error; err != nil {
			return err
		}

		for i := range invoice.Items {
			invoice.Items[i].ID = uuid.Nil
			invoice.Items[i].InvoiceID = invoice.ID
			invoice.Items[i].Position = i
		}

		items := invoice.Items
		invoice.Items = nil
		err := tx.Omit("BillFrom", "BillTo", "User").Save(invoice).Error
		invoice.Items = items
		if err != nil {
			return err
		}

		if len(invoice.Items) > 0 {
			if err := tx.Create(&invoice.Items).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *invoiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Invoice{}, "id = ?", id).Error
}

func (r *invoiceRepository) List(ctx context.Context, userID uuid.UUID, params *domainRepo.InvoiceFilterParams) ([]entity.Invoice, int64, error) {
	var invoices []entity.Invoice
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Invoice{}).
		Where("user_id = ?", userID)

	if params.Search != "" {
		// LOWER + LIKE instead of ILIKE so the query also runs on SQLite in tests
		pattern := "%" + params.Search + "%"
		query = query.Where("LOWER(invoice_number) LIKE LOWER(?) OR LOWER(invoice_name) LIKE LOWER(?)",
			pattern, pattern)
	}

	if params.Currency != nil {
		query = query.Where("currency = ?", *params.Currency)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Sorting
	sortBy := "created_at"
	sortOrder := "DESC"
	switch params.SortBy {
	case "invoice_date", "invoice_number", "total_cost", "created_at":
		sortBy = params.SortBy
	}
	if params.SortOrder == "ASC" || params.SortOrder == "asc" {
		sortOrder = "ASC"
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("BillFrom").
		Preload("BillTo").
		Order(sortBy + " " + sortOrder).
		Find(&invoices).Error

	return invoices, total, err
}

func (r *invoiceRepository) Stats(ctx context.Context, userID uuid.UUID) (*domainRepo.InvoiceStats, error) {
	stats := &domainRepo.InvoiceStats{
		TotalsByCurrency: make(map[enum.Currency]decimal.Decimal),
	}

	if err := r.db.WithContext(ctx).Model(&entity.Invoice{}).
		Where("user_id = ?", userID).
		Count(&stats.InvoiceCount).Error; err != nil {
		return nil, err
	}

	type currencyTotal struct {
		Currency enum.Currency
		Total    decimal.Decimal
	}
	var rows []currencyTotal
	if err := r.db.WithContext(ctx).Model(&entity.Invoice{}).
		Select("currency, COALESCE(SUM(total_cost), 0) AS total").
		Where("user_id = ?", userID).
		Group("currency").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	for _, row := range rows {
		stats.TotalsByCurrency[row.Currency] = row.Total
	}
	return stats, nil
}
