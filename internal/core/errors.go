package core

import (
	"errors"
	"fmt"
)

var (
	ErrValidation       = errors.New("validation error")
	ErrRange            = errors.New("range error")
	ErrInsufficientData = errors.New("insufficient data")

	ErrInvalidAmount   = errors.New("amount must be a positive decimal")
	ErrInvalidCategory = errors.New("category must be Income or Expense")
	ErrInvalidDate     = errors.New("date must be a valid DD-MM-YYYY date")
	ErrInvalidRecord   = errors.New("malformed record")

	ErrInvalidRange = errors.New("start date is after end date")
	ErrInvalidMonth = errors.New("month must be between 1 and 12")
	ErrInvalidYear  = errors.New("year must be between 1000 and 9999")
)

// ValidationError reports a rejected input field. errors.Is matches both
// ErrValidation and the wrapped reason.
type ValidationError struct {
	Field string
	Value string
	Err   error
}

func (e *ValidationError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("invalid %s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("invalid %s %q: %v", e.Field, e.Value, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// RangeError reports a rejected date range or period request.
type RangeError struct {
	Detail string
	Err    error
}

func (e *RangeError) Error() string {
	if e.Detail == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%v: %s", e.Err, e.Detail)
}

func (e *RangeError) Unwrap() error { return e.Err }

func (e *RangeError) Is(target error) bool { return target == ErrRange }
