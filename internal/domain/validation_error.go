package domain

import "fmt"

// ValidationError carries the field that failed validation alongside the
// underlying sentinel error, so the API layer can map it to a status code
// with errors.Is while still reporting which field was at fault.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError creates a ValidationError wrapping the given sentinel.
func NewValidationError(field, message string, err error) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
		Err:     err,
	}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
