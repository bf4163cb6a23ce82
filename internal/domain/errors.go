package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")
)

// Vote-domain errors.
var (
	// ErrCandidateNotFound is returned when a cast references an unknown candidate.
	// It matches ErrNotFound as well.
	ErrCandidateNotFound = fmt.Errorf("candidate %w", ErrNotFound)

	// ErrAlreadyVoted is returned when the voter already holds a ballot for the
	// candidate's election type.
	ErrAlreadyVoted = errors.New("already voted in this election")

	// ErrTransient marks a store failure that is safe to retry
	// (serialization failure, deadlock, lock or statement timeout, dropped connection).
	ErrTransient = errors.New("transient store failure")

	// ErrInconsistency marks a tally that no longer matches its ballots.
	// It is raised by reconciliation and escalated to operators, never to voters.
	ErrInconsistency = errors.New("tally inconsistency")
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
