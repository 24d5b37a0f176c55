package apperror

import (
	"errors"
	"net/http"
)

// AppError is an error that maps directly onto an HTTP response.
type AppError struct {
	Code    int          `json:"code"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// FieldError describes a validation failure on a single request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	return e.Message
}

var (
	ErrNotFound           = New(http.StatusNotFound, "Resource not found")
	ErrInvalidCredentials = New(http.StatusUnauthorized, "Invalid email or password")
	ErrInvalidToken       = New(http.StatusUnauthorized, "Invalid token")
)

// New creates an error carrying an HTTP status code.
func New(code int, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// NewNotFoundError builds a 404 for a named resource.
func NewNotFoundError(resource string) *AppError {
	return New(http.StatusNotFound, resource+" not found")
}

// NewConflictError builds a 409 with a custom message.
func NewConflictError(message string) *AppError {
	return New(http.StatusConflict, message)
}

// NewBadRequestError builds a 400 with a custom message.
func NewBadRequestError(message string) *AppError {
	return New(http.StatusBadRequest, message)
}

// GetAppError unwraps err into an AppError, defaulting to a 500 when the
// error carries no status of its own.
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return New(http.StatusInternalServerError, err.Error())
}
