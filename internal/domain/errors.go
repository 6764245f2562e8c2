package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for errors.Is() checking.
var (
	ErrValidation  = errors.New("validation error")
	ErrConflict    = errors.New("conflict")
	ErrUnavailable = errors.New("unavailable")
)

// Field-level validation messages shared by entity sub-packages.
const (
	MsgRequired = "is required"
	MsgInvalid  = "is invalid"
)

// ValidationError provides programmatic access to field-level validation failures.
// Use errors.Is(err, ErrValidation) for simple checks, or errors.As(err, &verr) to
// access verr.Fields for per-field error details.
//
// Message, when set, is the client-facing summary; otherwise callers fall back
// to a generic validation message.
type ValidationError struct {
	Message string
	Fields  map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		keys = append(keys, field)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, field := range keys {
		parts = append(parts, field+": "+e.Fields[field])
	}

	prefix := ErrValidation.Error()
	if e.Message != "" {
		prefix = e.Message
	}
	if len(parts) == 0 {
		return prefix
	}
	return fmt.Sprintf("%s: %s", prefix, strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// MissingFields builds a ValidationError for absent required fields. The
// field order is kept in the message so clients see them as listed.
func MissingFields(fields ...string) *ValidationError {
	m := make(map[string]string, len(fields))
	for _, f := range fields {
		m[f] = MsgRequired
	}
	return &ValidationError{
		Message: "Missing required fields: " + strings.Join(fields, ", "),
		Fields:  m,
	}
}
