package repository

import (
	"context"

	"github.com/billforge/billforge-api/internal/domain/entity"
	"github.com/billforge/billforge-api/pkg/pagination"
	"github.com/google/uuid"
)

// ContactRepository defines the interface for contact data operations
type ContactRepository interface {
	Create(ctx context.Context, contact *entity.Contact) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Contact, error)
	Update(ctx context.Context, contact *entity.Contact) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID, params *pagination.PaginationParams, search string) ([]entity.Contact, int64, error)
}
