// Package common defines the shared error taxonomy and small helpers used
// across the Plant Care client. Callers should use errors.Is / errors.As to
// match these values.
package common

import (
	"errors"
	"fmt"
)

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Session-level errors. ErrNoSession means the user must sign in again.
	ErrNoSession = errors.New("no active session")

	// Token lifecycle errors.
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

// ValidationError reports a locally detected form problem. It is raised
// before any network call is made and keeps the user on the current screen.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// NewValidationError builds a ValidationError with the given message.
func NewValidationError(msg string) *ValidationError {
	return &ValidationError{Msg: msg}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// StoreError wraps a backend or transport failure. Message carries the
// backend's own text, which the screens surface verbatim.
type StoreError struct {
	Message string
	Err     error
}

func (e *StoreError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "store error"
}

func (e *StoreError) Unwrap() error { return e.Err }

// NewStoreError builds a StoreError preserving the backend message.
func NewStoreError(message string, err error) *StoreError {
	return &StoreError{Message: message, Err: err}
}

// FormatUserMessage renders err the way screens present failures: validation
// and store messages verbatim, the no-session case with a sign-in hint.
func FormatUserMessage(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, ErrNoSession) {
		return "No active session. Please sign in again."
	}
	var se *StoreError
	if errors.As(err, &se) {
		return se.Error()
	}
	return fmt.Sprintf("%v", err)
}
