package validate

import (
	"errors"
	"strings"
)

var (
	ErrInvalidName     = errors.New("name must be at least 2 characters")
	ErrInvalidPhone    = errors.New("phone must contain 7 to 15 digits")
	ErrInvalidContact  = errors.New("contact must be at least 3 characters")
	ErrInvalidDate     = errors.New("date must be today or later")
	ErrInvalidTimeSlot = errors.New("time must be one of the available slots")
	ErrInvalidGuests   = errors.New("guests must be between 1 and 20")
	ErrEmptyCart       = errors.New("cart is empty")
	ErrInvalidPlan     = errors.New("plan is required")
)

// FieldError ties a validation failure to the form field that caused it.
type FieldError struct {
	Field string `json:"field"`
	Err   error  `json:"-"`
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.Err.Error()
}

func (e FieldError) Unwrap() error {
	return e.Err
}

// Errors collects every failing field of a form. Validators are run up front
// and all failures are reported together.
type Errors []FieldError

// Check records err against field when ok is false.
func (e *Errors) Check(field string, ok bool, err error) {
	if !ok {
		*e = append(*e, FieldError{Field: field, Err: err})
	}
}

// Err returns nil when no field failed.
func (e Errors) Err() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

func (e Errors) Error() string {
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, fe.Error())
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e Errors) Unwrap() []error {
	errs := make([]error, 0, len(e))
	for _, fe := range e {
		errs = append(errs, fe)
	}
	return errs
}

// Fields lists the failing field names in the order they were checked.
func (e Errors) Fields() []string {
	fields := make([]string, 0, len(e))
	for _, fe := range e {
		fields = append(fields, fe.Field)
	}
	return fields
}
