package domain

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// MsgRequired is the validation message for mandatory fields.
const MsgRequired = "is required"

// Sentinel errors for errors.Is() checking.
var (
	ErrNotFound    = errors.New("not found")
	ErrValidation  = errors.New("validation error")
	ErrConflict    = errors.New("conflict")
	ErrLocked      = errors.New("locked")
	ErrStorage     = errors.New("storage failure")
	ErrUnavailable = errors.New("unavailable")
)

// ValidationError provides programmatic access to field-level validation failures.
// Use errors.Is(err, ErrValidation) for simple checks, or errors.As(err, &verr) to
// access verr.Fields for per-field error details.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	slices.Sort(parts)
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// Failure is a tracker operation failure carrying the user-facing message.
// Kind is one of the sentinel errors above, so callers branch with
// errors.Is(err, ErrLocked) and surface Error() verbatim.
type Failure struct {
	Kind    error
	Message string
}

// Fail returns a *Failure of the given kind with a formatted message.
func Fail(kind error, format string, args ...any) *Failure {
	return &Failure{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func (f *Failure) Error() string {
	return f.Message
}

func (f *Failure) Unwrap() error {
	return f.Kind
}

// Result is the outcome of a tracker mutation as reported to callers.
type Result struct {
	Success bool
	Message string
}

// Succeeded returns a successful Result with a formatted message.
func Succeeded(format string, args ...any) Result {
	return Result{Success: true, Message: fmt.Sprintf(format, args...)}
}

// ResultOf converts an operation error into a failed Result. A nil error is
// not expected here; callers check it first.
func ResultOf(err error) Result {
	return Result{Success: false, Message: err.Error()}
}
