package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an ID is malformed or invalid.
	ErrInvalidID = errors.New("invalid ID")

	// ErrInvalidEmail is returned when an email address is malformed.
	ErrInvalidEmail = errors.New("invalid email format")

	// ErrEmptyNotes is returned when notes submitted for generation are
	// empty or whitespace-only.
	ErrEmptyNotes = errors.New("notes cannot be empty")

	// ErrUnauthorized is returned when an operation is not permitted for
	// the acting user.
	ErrUnauthorized = errors.New("unauthorized operation")
)
