package repository

import (
	"context"

	"github.com/billforge/billforge-api/internal/domain/entity"
	"github.com/google/uuid"
)

// IdempotencyRepository stores recorded responses keyed by the
// Idempotency-Key header, scoped per user.
type IdempotencyRepository interface {
	GetByKey(ctx context.Context, key string, userID uuid.UUID) (*entity.IdempotencyKey, error)
	Create(ctx context.Context, ikey *entity.IdempotencyKey) error
	DeleteExpired(ctx context.Context) error
}
