package entity

import (
	"time"

	"github.com/billforge/billforge-api/internal/domain/enum"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Invoice represents a saved invoice draft
type Invoice struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID        uuid.UUID       `gorm:"type:uuid;not null;index;uniqueIndex:ux_invoices_user_number,priority:1" json:"user_id"`
	InvoiceNumber string          `gorm:"size:100;not null;uniqueIndex:ux_invoices_user_number,priority:2" json:"invoice_number"`
	InvoiceName   *string         `gorm:"size:255" json:"invoice_name,omitempty"`
	InvoiceDate   time.Time       `gorm:"type:date;not null" json:"invoice_date"`
	Currency      enum.Currency   `gorm:"size:3;not null;default:'INR'" json:"currency"`
	TotalCost     decimal.Decimal `gorm:"type:decimal(15,2);default:0" json:"total_cost"`
	BillFromID    uuid.UUID       `gorm:"type:uuid;not null" json:"-"`
	BillToID      uuid.UUID       `gorm:"type:uuid;not null" json:"-"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	DeletedAt     gorm.DeletedAt  `gorm:"index" json:"-"`

	// Relationships
	User     User          `gorm:"foreignKey:UserID" json:"-"`
	BillFrom *BillingParty `gorm:"foreignKey:BillFromID" json:"bill_from_entity,omitempty"`
	BillTo   *BillingParty `gorm:"foreignKey:BillToID" json:"bill_to_entity,omitempty"`
	Items    []InvoiceItem `gorm:"foreignKey:InvoiceID" json:"items,omitempty"`
}

// BeforeCreate generates a UUID before creating a new invoice
func (i *Invoice) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Invoice model
func (Invoice) TableName() string {
	return "invoices"
}

// BillingParty identifies one side of an invoice. Each invoice owns its own
// bill-from and bill-to rows so later edits to a saved contact never rewrite
// history on already-issued invoices.
type BillingParty struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"-"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Address   *string   `gorm:"type:text" json:"address,omitempty"`
	Phone     *string   `gorm:"size:50" json:"phone,omitempty"`
	Email     *string   `gorm:"size:255" json:"email,omitempty"`
	GSTNumber *string   `gorm:"size:50;column:gst_number" json:"gst_number,omitempty"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// BeforeCreate generates a UUID before creating a new billing party
func (p *BillingParty) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the BillingParty model
func (BillingParty) TableName() string {
	return "billing_parties"
}

// InvoiceItem is one row of a saved invoice: a billable line item, or an
// extra charge resolved to its monetary amount and flagged IsExtraCost.
// ChargeKind and ChargeValue preserve the original form of an extra charge
// so a percentage charge reloads as a percentage charge; both are nil on
// regular items and on rows written before the kind was stored.
type InvoiceItem struct {
	ID          uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	InvoiceID   uuid.UUID        `gorm:"type:uuid;not null;index" json:"invoice_id"`
	Name        string           `gorm:"size:255;not null" json:"name"`
	Cost        decimal.Decimal  `gorm:"type:decimal(15,2);not null" json:"cost"`
	IsExtraCost bool             `gorm:"not null;default:false" json:"is_extra_cost"`
	ChargeKind  *enum.ChargeKind `gorm:"size:20" json:"charge_kind,omitempty"`
	ChargeValue *decimal.Decimal `gorm:"type:decimal(15,4)" json:"charge_value,omitempty"`
	Position    int              `gorm:"not null;default:0" json:"-"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"-"`

	// Relationships
	Invoice Invoice `gorm:"foreignKey:InvoiceID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new invoice item
func (it *InvoiceItem) BeforeCreate(tx *gorm.DB) error {
	if it.ID == uuid.Nil {
		it.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the InvoiceItem model
func (InvoiceItem) TableName() string {
	return "invoice_items"
}
