// Package apperr defines the error taxonomy shared by every service and
// translated to HTTP exactly once, in pkg/response.
//
// Services and repositories wrap these sentinels with %w so callers can
// classify with errors.Is while the message stays descriptive:
//
//	return fmt.Errorf("order %s: %w", id, apperr.ErrNotFound)
package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound: no such entity.
	ErrNotFound = errors.New("not found")
	// ErrConflict: duplicate unique key.
	ErrConflict = errors.New("conflict")
	// ErrUnauthenticated: missing, invalid or expired credential.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrForbidden: valid identity, insufficient role or ownership.
	ErrForbidden = errors.New("forbidden")
	// ErrInternal: store unavailable or unexpected failure.
	ErrInternal = errors.New("internal error")
)

// ValidationError carries field-level detail for malformed input.
// It is terminal for the request and maps to a 400 with the field map.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %d invalid field(s)", len(e.Fields))
}

// Validation builds a ValidationError from a field-to-message map.
func Validation(fields map[string]string) error {
	return &ValidationError{Fields: fields}
}

// ValidationField builds a single-field ValidationError.
func ValidationField(field, msg string) error {
	return &ValidationError{Fields: map[string]string{field: msg}}
}

// AsValidation unwraps a ValidationError, if err is one.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	ok := errors.As(err, &ve)
	return ve, ok
}

// NotFound wraps ErrNotFound with a subject, e.g. NotFound("order").
func NotFound(subject string) error {
	return fmt.Errorf("%s: %w", subject, ErrNotFound)
}

// Conflict wraps ErrConflict with a subject.
func Conflict(subject string) error {
	return fmt.Errorf("%s: %w", subject, ErrConflict)
}

// Unauthenticated wraps ErrUnauthenticated with a reason.
func Unauthenticated(reason string) error {
	return fmt.Errorf("%s: %w", reason, ErrUnauthenticated)
}

// Forbidden wraps ErrForbidden with a reason.
func Forbidden(reason string) error {
	return fmt.Errorf("%s: %w", reason, ErrForbidden)
}

// Internal wraps an unexpected failure so the cause stays inspectable in
// logs while the response layer only ever reveals ErrInternal.
func Internal(err error) error {
	return fmt.Errorf("%w: %v", ErrInternal, err)
}
