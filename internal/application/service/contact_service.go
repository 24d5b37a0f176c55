package service

import (
	"context"

	"github.com/billforge/billforge-api/internal/domain/entity"
	"github.com/billforge/billforge-api/internal/domain/repository"
	"github.com/billforge/billforge-api/pkg/apperror"
	"github.com/billforge/billforge-api/pkg/pagination"
	"github.com/google/uuid"
)

// ContactService handles the user's saved billing parties
type ContactService struct {
	contactRepo repository.ContactRepository
}

// NewContactService creates a new contact service
func NewContactService(contactRepo repository.ContactRepository) *ContactService {
	return &ContactService{contactRepo: contactRepo}
}

// ContactInput represents a contact create or update payload
type ContactInput struct {
	Name      string
	Address   string
	Phone     string
	Email     string
	GSTNumber string
}

// Create saves a new contact for the user
func (s *ContactService) Create(ctx context.Context, userID uuid.UUID, input *ContactInput) (*entity.Contact, error) {
	contact := &entity.Contact{UserID: userID}
	applyContactInput(contact, input)

	if err := s.contactRepo.Create(ctx, contact); err != nil {
		return nil, err
	}
	return contact, nil
}

// Get returns one contact, scoped to the owning user
func (s *ContactService) Get(ctx context.Context, userID, id uuid.UUID) (*entity.Contact, error) {
	contact, err := s.contactRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if contact == nil || contact.UserID != userID {
		return nil, apperror.NewNotFoundError("Contact")
	}
	return contact, nil
}

// List returns the user's contacts with pagination and search
func (s *ContactService) List(ctx context.Context, userID uuid.UUID, params *pagination.PaginationParams, search string) ([]entity.Contact, int64, error) {
	return s.contactRepo.List(ctx, userID, params, search)
}

// Update replaces a contact's fields
func (s *ContactService) Update(ctx context.Context, userID, id uuid.UUID, input *ContactInput) (*entity.Contact, error) {
	contact, err := s.contactRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if contact == nil || contact.UserID != userID {
		return nil, apperror.NewNotFoundError("Contact")
	}

	applyContactInput(contact, input)

	if err := s.contactRepo.Update(ctx, contact); err != nil {
		return nil, err
	}
	return contact, nil
}

// Delete removes a contact, scoped to the owning user
func (s *ContactService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	contact, err := s.contactRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if contact == nil || contact.UserID != userID {
		return apperror.NewNotFoundError("Contact")
	}
	return s.contactRepo.Delete(ctx, id)
}

func applyContactInput(contact *entity.Contact, input *ContactInput) {
	contact.Name = input.Name
	contact.Address = optional(input.Address)
	contact.Phone = optional(input.Phone)
	contact.Email = optional(input.Email)
	contact.GSTNumber = optional(input.GSTNumber)
}
