package request

// UpdateSettingsRequest represents a settings update payload
type UpdateSettingsRequest struct {
	DefaultCurrency string `json:"default_currency" binding:"required,oneof=INR USD"`
	DateFormat      string `json:"date_format" binding:"required,max=20"`
	BusinessName    string `json:"business_name" binding:"max=255"`
	BusinessAddress string `json:"business_address" binding:"max=2000"`
	BusinessPhone   string `json:"business_phone" binding:"max=50"`
	BusinessEmail   string `json:"business_email" binding:"omitempty,email"`
	BusinessGST     string `json:"business_gst" binding:"max=50"`
	Theme           string `json:"theme" binding:"omitempty,oneof=light dark"`
}
