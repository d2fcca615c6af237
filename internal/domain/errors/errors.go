package errors

import (
	"fmt"
	"net/http"

	"github.com/trinex-it/blackout/internal/errors"
)

// Error categories exposed to clients in the error envelope.
const (
	CategoryUnauthorized        = "UNAUTHORIZED"
	CategoryAccountNotActive    = "ACCOUNT_NOT_ACTIVE"
	CategoryInvalidToken        = "INVALID_TOKEN"
	CategoryInvalidTOTP         = "INVALID_TOTP"
	CategoryInvalidRecoveryCode = "INVALID_RECOVERY_CODE"
	CategoryTFAAlreadyEnabled   = "TFA_ALREADY_ENABLED"
	CategoryTFANotEnabled       = "TFA_NOT_ENABLED"
	CategoryDuplicateKey        = "DUPLICATE_KEY"
	CategoryPasswordsMismatch   = "PASSWORDS_DO_NOT_MATCH"
	CategoryValidation          = "VALIDATION"
	CategoryUserNotFound        = "USER_NOT_FOUND"
	CategoryInvalidArgument     = "INVALID_ARGUMENT"
	CategoryAuthorization       = "AUTHORIZATION"
	CategoryInternal            = "INTERNAL_ERROR"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Error category
	Message() string   // Client-facing message
	Details() any      // Field-level details (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   any
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message string, details any) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// Is matches any BaseError of the same category, so derived errors
// (WithDetails, WithMessage) still satisfy errors.Is against the sentinel.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the error category
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the client-facing message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns field-level error information
func (e *BaseError) Details() any {
	return e.details
}

// WithDetails returns a copy of the error carrying details
func (e *BaseError) WithDetails(details any) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// WithMessage returns a copy of the error with a different client-facing message
func (e *BaseError) WithMessage(message string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   message,
		details:   e.details,
	}
}

// Predefined error types
var (
	// Credential and session errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		CategoryUnauthorized,
		"Invalid username or password",
		nil,
	)

	ErrUnauthenticated = NewBaseError(
		http.StatusUnauthorized,
		CategoryUnauthorized,
		"User is not authenticated",
		nil,
	)

	ErrAccountNotActive = NewBaseError(
		http.StatusUnauthorized,
		CategoryAccountNotActive,
		"Account is not active",
		nil,
	)

	ErrInvalidToken = NewBaseError(
		http.StatusUnauthorized,
		CategoryInvalidToken,
		"Refresh token is invalid or expired",
		nil,
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		CategoryAuthorization,
		"Access denied",
		nil,
	)

	// Second factor errors
	ErrInvalidTOTP = NewBaseError(
		http.StatusUnauthorized,
		CategoryInvalidTOTP,
		"Invalid TOTP code",
		nil,
	)

	ErrInvalidRecoveryCode = NewBaseError(
		http.StatusBadRequest,
		CategoryInvalidRecoveryCode,
		"Recovery code is not valid",
		nil,
	)

	ErrTFAAlreadyEnabled = NewBaseError(
		http.StatusConflict,
		CategoryTFAAlreadyEnabled,
		"2FA is already enabled for this account",
		nil,
	)

	ErrTFANotEnabled = NewBaseError(
		http.StatusConflict,
		CategoryTFANotEnabled,
		"2FA is not enabled for this account",
		nil,
	)

	// Account errors
	ErrDuplicateKey = NewBaseError(
		http.StatusConflict,
		CategoryDuplicateKey,
		"A record with these values already exists",
		nil,
	)

	ErrPasswordsDoNotMatch = NewBaseError(
		http.StatusBadRequest,
		CategoryPasswordsMismatch,
		"Passwords do not match",
		nil,
	)

	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		CategoryUserNotFound,
		"User not found",
		nil,
	)

	ErrMissingIdentifier = NewBaseError(
		http.StatusBadRequest,
		CategoryInvalidArgument,
		"Either username or email must be provided",
		nil,
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		CategoryValidation,
		"Validation failed",
		nil,
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		CategoryInternal,
		"Internal server error",
		nil,
	)
)

// NewDuplicateKeyError reports the unique field that collided.
func NewDuplicateKeyError(field, value string) *BaseError {
	return ErrDuplicateKey.WithMessage(fmt.Sprintf("An entry with %s '%s' already exists", field, value))
}

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the error category
func (e *DatabaseExecuteError) ErrorCode() string {
	return CategoryInternal
}

// Message returns the client-facing message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() any {
	return e.details
}
