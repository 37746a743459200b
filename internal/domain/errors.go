// internal/domain/errors.go
package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// General errors
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")

	// Cache-related errors
	ErrInvalidNonce = errors.New("invalid nonce")

	// User-related errors
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Tenant-related errors
	ErrNoOrganization = errors.New("no organization linked to this account")

	// ErrWeddingNotFound deliberately covers both "does not exist" and
	// "belongs to another organization" so callers cannot probe for
	// weddings owned by other tenants.
	ErrWeddingNotFound = errors.New("wedding not found or unauthorized")

	// Wedding-related errors
	ErrSlugTaken = errors.New("slug sudah digunakan, silakan pilih slug lain")

	// Guest-related errors
	ErrGuestNotFound = errors.New("guest does not belong to this wedding")

	// Check-in errors
	ErrTokenNotFound    = errors.New("QR code tidak valid atau tamu tidak ditemukan")
	ErrAlreadyCheckedIn = errors.New("tamu sudah check-in sebelumnya")
)

// ValidationError carries per-field messages so forms can surface them
// verbatim next to the offending input.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}

	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s: %s", name, e.Fields[name]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// NewValidationError builds a single-field validation error.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

// AsValidationError unwraps err into a *ValidationError if it is one.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
