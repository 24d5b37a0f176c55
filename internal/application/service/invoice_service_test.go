package service

import (
	"context"
	"testing"

	"github.com/billforge/billforge-api/internal/domain/entity"
	"github.com/billforge/billforge-api/internal/domain/enum"
	domainRepo "github.com/billforge/billforge-api/internal/domain/repository"
	infraRepo "github.com/billforge/billforge-api/internal/infrastructure/repository"
	"github.com/billforge/billforge-api/pkg/pagination"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupInvoiceService(t *testing.T) (*InvoiceService, uuid.UUID) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.BillingParty{},
		&entity.Invoice{},
		&entity.InvoiceItem{},
	))

	user := &entity.User{FirstName: "Asha", Email: "asha@example.com"}
	require.NoError(t, db.Create(user).Error)

	return NewInvoiceService(infraRepo.NewInvoiceRepository(db)), user.ID
}

func saveInput() *InvoiceInput {
	return &InvoiceInput{
		BillFrom: PartyInput{Name: "Asha Designs", GSTNumber: "29ABCDE1234F1Z5"},
		BillTo:   PartyInput{Name: "Acme Traders", Email: "billing@acme.example"},
		Currency: "INR",
		Items: []ItemInput{
			{Name: "Logo design", Cost: "300"},
			{Name: "Brand guide", Cost: "200"},
			{Name: "GST", Cost: "ignored", IsExtraCost: true, ChargeKind: "percentage", ChargeValue: "18"},
		},
	}
}

func TestCreateRecomputesTotalsServerSide(t *testing.T) {
	svc, userID := setupInvoiceService(t)
	ctx := context.Background()

	invoice, err := svc.Create(ctx, userID, saveInput())
	require.NoError(t, err)

	// 18% of the 500 subtotal, regardless of what the payload claimed
	assert.Equal(t, "590", invoice.TotalCost.String())
	assert.NotEmpty(t, invoice.InvoiceNumber)
	assert.Equal(t, enum.CurrencyINR, invoice.Currency)
}

func TestCreatePersistsChargeKind(t *testing.T) {
	svc, userID := setupInvoiceService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, userID, saveInput())
	require.NoError(t, err)

	loaded, err := svc.Get(ctx, userID, created.ID)
	require.NoError(t, err)
	require.Len(t, loaded.Items, 3)

	charge := loaded.Items[2]
	assert.True(t, charge.IsExtraCost)
	require.NotNil(t, charge.ChargeKind)
	assert.Equal(t, enum.ChargePercentage, *charge.ChargeKind)
	require.NotNil(t, charge.ChargeValue)
	assert.Equal(t, "18", charge.ChargeValue.String())
	// the stored cost is the resolved amount
	assert.Equal(t, "90", charge.Cost.String())
}

func TestCreateCoercesJunkAmountsToZero(t *testing.T) {
	svc, userID := setupInvoiceService(t)
	ctx := context.Background()

	input := saveInput()
	input.Items = []ItemInput{
		{Name: "Valid", Cost: "100"},
		{Name: "Junk", Cost: "abc"},
		{Name: "Negative", Cost: "-50"},
	}

	invoice, err := svc.Create(ctx, userID, input)
	require.NoError(t, err)
	assert.Equal(t, "100", invoice.TotalCost.String())
}

func TestCreateRejectsUnknownCurrency(t *testing.T) {
	svc, userID := setupInvoiceService(t)

	input := saveInput()
	input.Currency = "EUR"

	_, err := svc.Create(context.Background(), userID, input)
	assert.Error(t, err)
}

func TestUpdatePreservesInvoiceNumber(t *testing.T) {
	svc, userID := setupInvoiceService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, userID, saveInput())
	require.NoError(t, err)
	number := created.InvoiceNumber

	input := saveInput()
	input.InvoiceNumber = ""
	input.Items = []ItemInput{{Name: "Revised work", Cost: "1000"}}

	updated, err := svc.Update(ctx, userID, created.ID, input)
	require.NoError(t, err)

	assert.Equal(t, number, updated.InvoiceNumber)
	assert.Equal(t, "1000", updated.TotalCost.String())
	require.Len(t, updated.Items, 1)
	assert.Equal(t, "Revised work", updated.Items[0].Name)
}

func TestGetScopedToOwner(t *testing.T) {
	svc, userID := setupInvoiceService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, userID, saveInput())
	require.NoError(t, err)

	_, err = svc.Get(ctx, uuid.New(), created.ID)
	assert.Error(t, err)
}

func TestDeleteRemovesInvoice(t *testing.T) {
	svc, userID := setupInvoiceService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, userID, saveInput())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, userID, created.ID))

	_, err = svc.Get(ctx, userID, created.ID)
	assert.Error(t, err)
}

func TestListFiltersAndPaginates(t *testing.T) {
	svc, userID := setupInvoiceService(t)
	ctx := context.Background()

	first := saveInput()
	first.InvoiceName = "Website project"
	_, err := svc.Create(ctx, userID, first)
	require.NoError(t, err)

	second := saveInput()
	second.InvoiceName = "Retainer"
	second.Currency = "USD"
	_, err = svc.Create(ctx, userID, second)
	require.NoError(t, err)

	params := &domainRepo.InvoiceFilterParams{
		Pagination: &pagination.PaginationParams{Page: 1, PerPage: 10},
		Search:     "website",
	}
	invoices, total, err := svc.List(ctx, userID, params)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, invoices, 1)
	assert.Equal(t, "Website project", *invoices[0].InvoiceName)

	usd := enum.CurrencyUSD
	params = &domainRepo.InvoiceFilterParams{
		Pagination: &pagination.PaginationParams{Page: 1, PerPage: 10},
		Currency:   &usd,
	}
	invoices, total, err = svc.List(ctx, userID, params)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, invoices, 1)
	assert.Equal(t, enum.CurrencyUSD, invoices[0].Currency)
}

func TestLegacyChargeRowReloadsAsFixed(t *testing.T) {
	svc, userID := setupInvoiceService(t)
	ctx := context.Background()

	// A payload whose extra-cost row carries no kind, like rows saved
	// before the kind was stored.
	input := saveInput()
	input.Items = []ItemInput{
		{Name: "Work", Cost: "200"},
		{Name: "Old surcharge", Cost: "25", IsExtraCost: true},
	}

	invoice, err := svc.Create(ctx, userID, input)
	require.NoError(t, err)
	assert.Equal(t, "225", invoice.TotalCost.String())

	loaded, err := svc.Get(ctx, userID, invoice.ID)
	require.NoError(t, err)
	require.Len(t, loaded.Items, 2)
	assert.True(t, loaded.Items[1].IsExtraCost)
	require.NotNil(t, loaded.Items[1].ChargeKind)
	assert.Equal(t, enum.ChargeFixed, *loaded.Items[1].ChargeKind)
}
