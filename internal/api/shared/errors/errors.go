package errors

import (
	"encoding/json"
	"net/http"

	"github.com/steel-suvidha/marketplace-api/internal/domain"
)

// ErrorCode represents a standardized error code
type ErrorCode string

const (
	// Client errors (4xx)
	ErrCodeValidationFailed ErrorCode = ErrorCode(domain.KindValidation)
	ErrCodeUnauthorized     ErrorCode = ErrorCode(domain.KindUnauthorized)
	ErrCodeNotFound         ErrorCode = ErrorCode(domain.KindNotFound)
	ErrCodeConflict         ErrorCode = ErrorCode(domain.KindConflict)
	ErrCodeTooManyRequests  ErrorCode = "too_many_requests"

	// Server errors (5xx)
	ErrCodeInternalError ErrorCode = ErrorCode(domain.KindInternal)
)

// APIError is the failure envelope returned by every endpoint
type APIError struct {
	Message string    `json:"error"`
	Code    ErrorCode `json:"code"`
}

func (e *APIError) Error() string {
	jsonErr, _ := json.Marshal(e)
	return string(jsonErr)
}

// Error constructors for common error types
func NewValidationError(message string) *APIError {
	return &APIError{Code: ErrCodeValidationFailed, Message: message}
}

func NewUnauthorizedError(message string) *APIError {
	return &APIError{Code: ErrCodeUnauthorized, Message: message}
}

func NewNotFoundError(message string) *APIError {
	return &APIError{Code: ErrCodeNotFound, Message: message}
}

func NewConflictError(message string) *APIError {
	return &APIError{Code: ErrCodeConflict, Message: message}
}

func NewTooManyRequestsError(message string) *APIError {
	return &APIError{Code: ErrCodeTooManyRequests, Message: message}
}

func NewInternalError(message string) *APIError {
	return &APIError{Code: ErrCodeInternalError, Message: message}
}

// FromError converts a classified domain error into its HTTP status and envelope.
// Unclassified errors become a generic internal error.
func FromError(err error) (int, *APIError) {
	apiErr := &APIError{
		Code:    ErrorCode(domain.KindOf(err)),
		Message: domain.MessageOf(err),
	}
	return StatusOf(apiErr.Code), apiErr
}

// StatusOf returns the HTTP status of an error code
func StatusOf(code ErrorCode) int {
	switch code {
	case ErrCodeValidationFailed:
		return http.StatusBadRequest
	case ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case ErrCodeNotFound:
		return http.StatusNotFound
	case ErrCodeConflict:
		return http.StatusConflict
	case ErrCodeTooManyRequests:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
