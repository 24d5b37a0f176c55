package entity

import (
	"time"

	"github.com/billforge/billforge-api/internal/domain/enum"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserSettings represents user-specific invoicing defaults
type UserSettings struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Invoicing defaults applied when a new draft is opened
	DefaultCurrency enum.Currency `gorm:"size:3;default:'INR'" json:"default_currency"`
	DateFormat      string        `gorm:"size:20;default:'YYYY-MM-DD'" json:"date_format"`

	// Prefilled bill-from details
	BusinessName    *string `gorm:"size:255" json:"business_name,omitempty"`
	BusinessAddress *string `gorm:"type:text" json:"business_address,omitempty"`
	BusinessPhone   *string `gorm:"size:50" json:"business_phone,omitempty"`
	BusinessEmail   *string `gorm:"size:255" json:"business_email,omitempty"`
	BusinessGST     *string `gorm:"size:50;column:business_gst" json:"business_gst,omitempty"`

	// Appearance
	Theme string `gorm:"size:20;default:'light'" json:"theme"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeCreate generates a UUID before creating new settings
func (s *UserSettings) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the UserSettings model
func (UserSettings) TableName() string {
	return "user_settings"
}
