package form

import (
	"errors"
	"fmt"
)

// Validation errors for form fields.
var (
	// ErrFieldRequired indicates an empty field that must be filled in.
	ErrFieldRequired = errors.New("form: field required")

	// ErrNotANumber indicates a value that does not parse as a real number.
	ErrNotANumber = errors.New("form: value is not a number")

	// ErrNotFinite indicates a parsed value that is NaN or infinite.
	ErrNotFinite = errors.New("form: value is not finite")
)

// FieldError wraps a validation error with the name of the offending field.
type FieldError struct {
	Field   string
	Wrapped error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Wrapped.Error())
}

func (e *FieldError) Unwrap() error {
	return e.Wrapped
}

// FieldErrors collects validation failures keyed by field name, so each
// error can be rendered next to its own input.
type FieldErrors map[string]*FieldError

func (fe FieldErrors) Has(field string) bool {
	_, ok := fe[field]
	return ok
}

// Any reports whether at least one field failed validation.
func (fe FieldErrors) Any() bool {
	return len(fe) > 0
}
