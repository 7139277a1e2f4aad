// Package errors provides custom error types for the Brickshare gateway.
// All service-layer errors should use AppError to ensure consistent,
// secure error responses that never leak internal details to clients.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// Authentication & authorization errors.
var (
	ErrUnauthorized = &AppError{Code: "UNAUTHORIZED", Message: "Authentication required", StatusCode: http.StatusUnauthorized}
	ErrForbidden    = &AppError{Code: "FORBIDDEN", Message: "Access denied", StatusCode: http.StatusForbidden}
)

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// Property errors. A missing or unknown property is deliberately distinct
// from a sold-out one so the caller can render specific guidance.
var (
	ErrPropertyNotFound    = &AppError{Code: "PROPERTY_NOT_FOUND", Message: "Property not found", StatusCode: http.StatusNotFound}
	ErrPropertyUnavailable = &AppError{Code: "PROPERTY_UNAVAILABLE", Message: "Property unavailable", StatusCode: http.StatusBadRequest}
)

// Purchase errors.
var (
	ErrSoldOut             = &AppError{Code: "SOLD_OUT", Message: "No slots are available for this property", StatusCode: http.StatusConflict}
	ErrPriceUnavailable    = &AppError{Code: "PRICE_UNAVAILABLE", Message: "No price per slot is available for this property", StatusCode: http.StatusConflict}
	ErrPurchaseRejected    = &AppError{Code: "PURCHASE_REJECTED", Message: "The marketplace rejected this purchase", StatusCode: http.StatusConflict}
	ErrUpstreamUnreachable = &AppError{Code: "UPSTREAM_UNREACHABLE", Message: "The marketplace API could not be reached", StatusCode: http.StatusBadGateway}
)

// User errors.
var (
	ErrUserNotFound = &AppError{Code: "USER_NOT_FOUND", Message: "User not found", StatusCode: http.StatusNotFound}
)
