package service

import (
	"context"
	"testing"

	"github.com/billforge/billforge-api/internal/domain/entity"
	"github.com/billforge/billforge-api/internal/domain/enum"
	infraRepo "github.com/billforge/billforge-api/internal/infrastructure/repository"
	"github.com/billforge/billforge-api/pkg/pagination"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entity.User{}, &entity.Contact{}, &entity.UserSettings{}))
	return db
}

func TestContactCRUD(t *testing.T) {
	db := setupDB(t)
	svc := NewContactService(infraRepo.NewContactRepository(db))
	ctx := context.Background()
	userID := uuid.New()

	created, err := svc.Create(ctx, userID, &ContactInput{
		Name:  "Acme Traders",
		Email: "billing@acme.example",
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, userID, created.ID, &ContactInput{
		Name:  "Acme Traders Pvt Ltd",
		Phone: "+91 98765 43210",
	})
	require.NoError(t, err)
	assert.Equal(t, "Acme Traders Pvt Ltd", updated.Name)
	// blank fields clear on update
	assert.Nil(t, updated.Email)

	contacts, total, err := svc.List(ctx, userID, &pagination.PaginationParams{Page: 1, PerPage: 10}, "acme")
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, contacts, 1)

	// other users see nothing
	_, err = svc.Get(ctx, uuid.New(), created.ID)
	assert.Error(t, err)

	require.NoError(t, svc.Delete(ctx, userID, created.ID))
	_, err = svc.Get(ctx, userID, created.ID)
	assert.Error(t, err)
}

func TestGetSettingsCreatesDefaults(t *testing.T) {
	db := setupDB(t)
	svc := NewSettingsService(infraRepo.NewSettingsRepository(db))
	ctx := context.Background()
	userID := uuid.New()

	settings, err := svc.GetSettings(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, enum.CurrencyINR, settings.DefaultCurrency)
	assert.Equal(t, "light", settings.Theme)

	// second call returns the same row
	again, err := svc.GetSettings(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, settings.ID, again.ID)
}

func TestUpdateSettingsRejectsUnknownCurrency(t *testing.T) {
	db := setupDB(t)
	svc := NewSettingsService(infraRepo.NewSettingsRepository(db))

	_, err := svc.UpdateSettings(context.Background(), &UpdateSettingsInput{
		UserID:          uuid.New(),
		DefaultCurrency: "EUR",
		DateFormat:      "YYYY-MM-DD",
	})
	assert.Error(t, err)
}
