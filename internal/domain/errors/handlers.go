package errors

import "time"

// ErrorResponse is the JSON envelope written for every failed request.
type ErrorResponse struct {
	Timestamp time.Time `json:"timestamp"`
	Status    int       `json:"status"`
	Category  string    `json:"category"`
	Message   string    `json:"message"`
	Details   any       `json:"details,omitempty"`
}

// FieldError describes a single rejected request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// NewErrorResponse builds the envelope for an application error.
func NewErrorResponse(appErr AppError, now time.Time) *ErrorResponse {
	return &ErrorResponse{
		Timestamp: now.UTC(),
		Status:    appErr.HTTPCode(),
		Category:  appErr.ErrorCode(),
		Message:   appErr.Message(),
		Details:   appErr.Details(),
	}
}
