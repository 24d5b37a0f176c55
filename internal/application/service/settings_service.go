package service

import (
	"context"

	"github.com/billforge/billforge-api/internal/domain/entity"
	"github.com/billforge/billforge-api/internal/domain/enum"
	"github.com/billforge/billforge-api/internal/domain/repository"
	"github.com/billforge/billforge-api/pkg/apperror"
	"github.com/google/uuid"
)

// SettingsService handles the user's invoicing defaults
type SettingsService struct {
	settingsRepo repository.SettingsRepository
}

// NewSettingsService creates a new settings service
func NewSettingsService(settingsRepo repository.SettingsRepository) *SettingsService {
	return &SettingsService{
		settingsRepo: settingsRepo,
	}
}

// GetSettings retrieves user settings, creating defaults if not exists
func (s *SettingsService) GetSettings(ctx context.Context, userID uuid.UUID) (*entity.UserSettings, error) {
	settings, err := s.settingsRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	// If no settings exist, create default settings
	if settings == nil {
		settings = &entity.UserSettings{
			UserID:          userID,
			DefaultCurrency: enum.CurrencyINR,
			DateFormat:      "YYYY-MM-DD",
			Theme:           "light",
		}
		if err := s.settingsRepo.Create(ctx, settings); err != nil {
			return nil, err
		}
	}

	return settings, nil
}

// UpdateSettingsInput represents the input for updating settings
type UpdateSettingsInput struct {
	UserID          uuid.UUID
	DefaultCurrency string
	DateFormat      string
	BusinessName    string
	BusinessAddress string
	BusinessPhone   string
	BusinessEmail   string
	BusinessGST     string
	Theme           string
}

// UpdateSettings updates user settings
func (s *SettingsService) UpdateSettings(ctx context.Context, input *UpdateSettingsInput) (*entity.UserSettings, error) {
	settings, err := s.settingsRepo.GetByUserID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	// If no settings exist, create new
	if settings == nil {
		settings = &entity.UserSettings{
			UserID: input.UserID,
		}
	}

	currency, err := enum.ParseCurrency(input.DefaultCurrency)
	if err != nil {
		return nil, apperror.NewBadRequestError("Unsupported currency")
	}

	settings.DefaultCurrency = currency
	settings.DateFormat = input.DateFormat
	settings.BusinessName = optional(input.BusinessName)
	settings.BusinessAddress = optional(input.BusinessAddress)
	settings.BusinessPhone = optional(input.BusinessPhone)
	settings.BusinessEmail = optional(input.BusinessEmail)
	settings.BusinessGST = optional(input.BusinessGST)
	settings.Theme = input.Theme

	if settings.ID == uuid.Nil {
		if err := s.settingsRepo.Create(ctx, settings); err != nil {
			return nil, err
		}
	} else {
		if err := s.settingsRepo.Update(ctx, settings); err != nil {
			return nil, err
		}
	}

	return settings, nil
}
