package flow

import (
	"errors"
	"fmt"

	"github.com/nurpe/agroexchange/internal/model"
)

var (
	ErrInvalidTransition = errors.New("invalid transition")
	ErrInvalidArgument   = errors.New("invalid argument")
)

// ValidationError reports the first form field that failed validation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// TransitionError is returned when an operation is invoked from a view that does not offer it.
// Presentation code should never trigger one.
type TransitionError struct {
	Op   string
	From model.View
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s not allowed from %s", e.Op, e.From)
}

func (e *TransitionError) Unwrap() error {
	return ErrInvalidTransition
}

func invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}
