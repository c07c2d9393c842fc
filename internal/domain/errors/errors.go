package errors

import (
	"net/http"

	"authgate/internal/errors"
)

// AppError defines the interface for application-specific errors.
// Operational errors are expected, user-facing failures with a defined
// status; non-operational errors are unanticipated system faults.
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-facing error message
	Operational() bool // Whether the failure is an expected, user-facing condition
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode    int
	errorCode   string
	message     string
	operational bool
}

// NewBaseError creates a new operational error with an explicit status code.
func NewBaseError(httpCode int, errorCode, message string) *BaseError {
	return &BaseError{
		httpCode:    httpCode,
		errorCode:   errorCode,
		message:     message,
		operational: true,
	}
}

// NewInternalError creates a non-operational 500 error for unclassified system faults.
func NewInternalError(errorCode, message string) *BaseError {
	return &BaseError{
		httpCode:    http.StatusInternalServerError,
		errorCode:   errorCode,
		message:     message,
		operational: false,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-facing error message
func (e *BaseError) Message() string {
	return e.message
}

// Operational reports whether this is an expected, user-facing failure.
func (e *BaseError) Operational() bool {
	return e.operational
}

// Predefined error types. Each is constructed at the point of detection and
// carried unchanged to the response boundary, which is its sole consumer.
var (
	// Signup
	ErrEmailTaken = NewBaseError(
		http.StatusConflict,
		"EMAIL_TAKEN",
		"User with this email already exists",
	)

	// Login collapses "unknown email" and "wrong password" into this single
	// error so the response leaks no account-enumeration signal.
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid email or password",
	)

	// Token gate
	ErrTokenMissing = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_MISSING",
		"Access token is required",
	)

	ErrTokenInvalid = NewBaseError(
		http.StatusForbidden,
		"TOKEN_INVALID",
		"Invalid or expired token",
	)

	ErrNotAuthenticated = NewBaseError(
		http.StatusUnauthorized,
		"NOT_AUTHENTICATED",
		"User not authenticated",
	)

	// Profile
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
	)

	// Validation
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Invalid request body",
	)

	// System faults. A token decode failure that is not a recognized token
	// error is a fault, not a bad credential, and maps to 500 rather than 403.
	ErrTokenVerification = NewInternalError(
		"TOKEN_VERIFICATION_FAILED",
		"Token verification failed",
	)

	ErrInternal = NewInternalError(
		"INTERNAL_ERROR",
		"Internal Server Error",
	)
)

// NewValidationError creates a 400 error carrying a specific validation message.
func NewValidationError(message string) *BaseError {
	return NewBaseError(http.StatusBadRequest, "VALIDATION_FAILED", message)
}
