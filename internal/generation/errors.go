package generation

import (
	"errors"
	"fmt"
)

// Common errors returned by the generation package
var (
	// ErrEmptyNotes is returned when notes submitted for generation are
	// empty or whitespace-only. Checked before any external call so an
	// invalid request never spends provider quota.
	ErrEmptyNotes = errors.New("notes cannot be empty")

	// ErrGenerationFailed is returned when the external completion call
	// itself fails (network, quota, auth). Never retried automatically;
	// the caller decides whether a retry is worth the cost.
	ErrGenerationFailed = errors.New("completion request failed")

	// ErrUnparsableResponse is returned when model output cannot be
	// recovered into a card list even after repair.
	ErrUnparsableResponse = errors.New("unparsable model response")

	// ErrInvalidConfig is returned when a provider client is constructed
	// with invalid configuration.
	ErrInvalidConfig = errors.New("invalid generation configuration")
)

// excerptLimit bounds how much raw model output a ParseError carries.
// Enough for diagnosis without ballooning logs or error responses.
const excerptLimit = 600

// ParseError reports that model output could not be recovered into a card
// list. It carries a bounded excerpt of the raw output for diagnostics and
// wraps ErrUnparsableResponse so callers can match with errors.Is.
type ParseError struct {
	Reason  string // what stage of recovery gave up
	Excerpt string // leading slice of the raw output, at most excerptLimit bytes
	Err     error  // underlying decode error, if any
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%v: %s: %v", ErrUnparsableResponse, e.Reason, e.Err)
	}
	return fmt.Sprintf("%v: %s", ErrUnparsableResponse, e.Reason)
}

// Unwrap supports errors.Is(err, ErrUnparsableResponse).
func (e *ParseError) Unwrap() error {
	return ErrUnparsableResponse
}

// newParseError builds a ParseError with a bounded excerpt of raw.
func newParseError(reason, raw string, err error) *ParseError {
	excerpt := raw
	if len(excerpt) > excerptLimit {
		excerpt = excerpt[:excerptLimit]
	}
	return &ParseError{
		Reason:  reason,
		Excerpt: excerpt,
		Err:     err,
	}
}
