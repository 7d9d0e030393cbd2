package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for errors.Is() checking.
var (
	ErrNotFound    = errors.New("not found")
	ErrValidation  = errors.New("validation error")
	ErrUnavailable = errors.New("unavailable")
)

// MsgNotInteger is the field message for input that does not parse as an
// integer.
const MsgNotInteger = "must be a valid integer"

// Error codes carried in problem responses so that callers on the other side
// of a process boundary can tell error kinds apart.
const (
	CodeInvalidNumber = "invalid_number"
	CodeInputTooLarge = "input_too_large"
)

// Coded is implemented by errors that carry a machine-readable error code.
type Coded interface {
	ErrorCode() string
}

// ValidationError provides programmatic access to field-level validation failures.
// Use errors.Is(err, ErrValidation) for simple checks, or errors.As(err, &verr) to
// access verr.Fields for per-field error details.
//
// Source names where the fields came from ("path", "query", "form", "body").
// An empty Source is reported as "body".
type ValidationError struct {
	Source string
	Code   string
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	sort.Strings(parts)
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// ErrorCode implements Coded.
func (e *ValidationError) ErrorCode() string {
	return e.Code
}
