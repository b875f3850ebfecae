package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound          = errors.New("not found")
	ErrAlreadyExists     = errors.New("already exists")
	ErrValidation        = errors.New("validation error")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrForbidden         = errors.New("forbidden")
	ErrConflict          = errors.New("conflict")
	ErrInvalidTransition = errors.New("invalid transition")
	ErrAlreadyUsed       = errors.New("ticket already used")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// QuotaViolation reports a brigade whose approved participants exceed its quota.
type QuotaViolation struct {
	BrigadeID uuid.UUID
	Allowed   int
	Approved  int
}

// InvalidTransitionError is returned when an event lifecycle transition is not
// permitted from the current state or its guard fails.
type InvalidTransitionError struct {
	Transition Transition
	From       EventState
	Reason     string
	Violations []QuotaViolation
}

func (e *InvalidTransitionError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "invalid transition %s from %s", e.Transition, e.From)
	if e.Reason != "" {
		b.WriteString(": ")
		b.WriteString(e.Reason)
	}
	for _, v := range e.Violations {
		fmt.Fprintf(&b, "; brigade %s allowed %d approved %d", v.BrigadeID, v.Allowed, v.Approved)
	}
	return b.String()
}

func (e *InvalidTransitionError) Unwrap() error { return ErrInvalidTransition }

// AlreadyUsedError is returned when a ticket with a final scan is scanned again.
// ScannedAt is the time of the final scan that made the ticket used.
type AlreadyUsedError struct {
	TicketID  uuid.UUID
	ScannedAt time.Time
}

func (e *AlreadyUsedError) Error() string {
	return fmt.Sprintf("ticket %s already scanned at %s", e.TicketID, e.ScannedAt.Format(time.RFC3339))
}

func (e *AlreadyUsedError) Unwrap() error { return ErrAlreadyUsed }
