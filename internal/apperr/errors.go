package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound covers both a missing record and a record owned by a
	// different user; callers must not be able to tell the two apart.
	ErrNotFound = errors.New("not found")

	ErrValidation = errors.New("validation error")

	ErrConflict = errors.New("already exists")

	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Validationf wraps ErrValidation with a client-facing detail message.
func Validationf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
