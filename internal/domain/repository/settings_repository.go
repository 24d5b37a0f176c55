package repository

import (
	"context"

	"github.com/billforge/billforge-api/internal/domain/entity"
	"github.com/google/uuid"
)

// SettingsRepository persists each user's invoicing defaults. Every user
// has at most one settings row.
type SettingsRepository interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*entity.UserSettings, error)
	Create(ctx context.Context, settings *entity.UserSettings) error
	Update(ctx context.Context, settings *entity.UserSettings) error
}
