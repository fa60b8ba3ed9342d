package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotConnected is returned by the store before it is opened or after it is closed
	ErrNotConnected = errors.New("store is not connected")

	// ErrQuoteNotFound is returned when a quote request does not exist
	ErrQuoteNotFound = errors.New("quote not found")

	// ErrOfferNotFound is returned when an offer does not belong to the quote
	ErrOfferNotFound = errors.New("offer not found")

	// ErrQuoteClosed is returned when a quote is past the state the operation needs
	ErrQuoteClosed = errors.New("quote is closed")
)

// DuplicateKeyError is the structured signal raised by the store on a
// unique constraint violation
type DuplicateKeyError struct {
	Field string
	Err   error
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate value for %s", e.Field)
}

func (e *DuplicateKeyError) Unwrap() error {
	return e.Err
}

// ErrorKind classifies a failure for callers
type ErrorKind string

const (
	KindValidation   ErrorKind = "validation_failed"
	KindConflict     ErrorKind = "conflict"
	KindUnauthorized ErrorKind = "unauthorized"
	KindNotFound     ErrorKind = "not_found"
	KindInternal     ErrorKind = "internal_error"
)

// Error is a classified, user-presentable failure
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewValidationError creates a validation failure
func NewValidationError(format string, args ...any) error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// NewConflictError creates a conflict failure
func NewConflictError(format string, args ...any) error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

// NewUnauthorizedError creates an authentication failure
func NewUnauthorizedError(message string) error {
	return &Error{Kind: KindUnauthorized, Message: message}
}

// NewNotFoundError creates a not-found failure
func NewNotFoundError(format string, args ...any) error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// NewInternalError wraps an unexpected failure. The message is what callers see;
// err is kept for logging only.
func NewInternalError(message string, err error) error {
	return &Error{Kind: KindInternal, Message: message, Err: err}
}

// KindOf returns the kind of err, defaulting to KindInternal
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// MessageOf returns the user-presentable message of err
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "Internal server error"
}
