package request

// BillingPartyRequest is one side of the invoice in a save payload
type BillingPartyRequest struct {
	Name      string `json:"name" binding:"required,max=255"`
	Address   string `json:"address" binding:"max=2000"`
	Phone     string `json:"phone" binding:"max=50"`
	Email     string `json:"email" binding:"omitempty,email"`
	GSTNumber string `json:"gst_number" binding:"max=50"`
}

// InvoiceItemRequest is one row of a save payload. Costs come in as strings
// and are coerced server-side; junk and negatives save as zero rather than
// failing the request.
type InvoiceItemRequest struct {
	Name        string `json:"name" binding:"max=255"`
	Cost        string `json:"cost"`
	IsExtraCost bool   `json:"is_extra_cost"`
	ChargeKind  string `json:"charge_kind" binding:"omitempty,oneof=percentage fixed"`
	ChargeValue string `json:"charge_value"`
}

// SaveInvoiceRequest represents an invoice create or update payload
type SaveInvoiceRequest struct {
	BillFrom      BillingPartyRequest  `json:"bill_from" binding:"required"`
	BillTo        BillingPartyRequest  `json:"bill_to" binding:"required"`
	InvoiceNumber string               `json:"invoice_number" binding:"max=100"`
	InvoiceName   string               `json:"invoice_name" binding:"max=255"`
	InvoiceDate   string               `json:"invoice_date"`
	Currency      string               `json:"currency" binding:"omitempty,oneof=INR USD"`
	Items         []InvoiceItemRequest `json:"items" binding:"required,min=1,dive"`
}

// ListInvoicesRequest represents invoice list query parameters
type ListInvoicesRequest struct {
	Page      int    `form:"page"`
	Limit     int    `form:"limit"`
	Search    string `form:"search"`
	Currency  string `form:"currency" binding:"omitempty,oneof=INR USD"`
	SortBy    string `form:"sort_by" binding:"omitempty,oneof=invoice_date invoice_number total_cost created_at"`
	SortOrder string `form:"sort_order" binding:"omitempty,oneof=asc desc ASC DESC"`
}
