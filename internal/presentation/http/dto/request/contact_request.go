package request

// SaveContactRequest represents a contact create or update payload
type SaveContactRequest struct {
	Name      string `json:"name" binding:"required,max=255"`
	Address   string `json:"address" binding:"max=2000"`
	Phone     string `json:"phone" binding:"max=50"`
	Email     string `json:"email" binding:"omitempty,email"`
	GSTNumber string `json:"gst_number" binding:"max=50"`
}

// ListContactsRequest represents contact list query parameters
type ListContactsRequest struct {
	Page   int    `form:"page"`
	Limit  int    `form:"limit"`
	Search string `form:"search"`
}
