package common

import (
	"errors"
	"fmt"
	"testing"
)

func TestIsValidation(t *testing.T) {
	ve := NewValidationError("name is required")
	if !IsValidation(ve) {
		t.Fatalf("expected IsValidation to match a ValidationError")
	}
	wrapped := fmt.Errorf("submit: %w", ve)
	if !IsValidation(wrapped) {
		t.Fatalf("expected IsValidation to match a wrapped ValidationError")
	}
	if IsValidation(errors.New("plain")) {
		t.Fatalf("plain error must not match")
	}
}

func TestStoreError_MessagePreserved(t *testing.T) {
	se := NewStoreError("duplicate key value violates unique constraint", nil)
	if se.Error() != "duplicate key value violates unique constraint" {
		t.Fatalf("backend message not preserved: %q", se.Error())
	}
}

func TestStoreError_Unwrap(t *testing.T) {
	inner := errors.New("connection refused")
	se := NewStoreError("", inner)
	if !errors.Is(se, inner) {
		t.Fatalf("expected StoreError to unwrap to inner error")
	}
	if se.Error() != "connection refused" {
		t.Fatalf("expected fallback to inner error text, got %q", se.Error())
	}
}

func TestFormatUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"no session", ErrNoSession, "No active session. Please sign in again."},
		{"no session wrapped", fmt.Errorf("load: %w", ErrNoSession), "No active session. Please sign in again."},
		{"store", NewStoreError("permission denied for table plants", nil), "permission denied for table plants"},
		{"validation", NewValidationError("name is required"), "name is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatUserMessage(tt.err); got != tt.want {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWipeByteArray_ZerosBuffer(t *testing.T) {
	buf := []byte{1, 2, 3, 4, 5}
	WipeByteArray(buf)
	for i, v := range buf {
		if v != 0 {
			t.Fatalf("expected buf[%d]==0, got %d", i, v)
		}
	}
}

func TestWipeByteArray_NilSafe(t *testing.T) {
	WipeByteArray(nil)
}
