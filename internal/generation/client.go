package generation

import "context"

// Params carries the generation parameters for a single completion call.
// Providers map these onto their own request shapes.
type Params struct {
	// Model is the provider-specific model identifier.
	Model string

	// MaxOutputTokens caps the completion length. Truncation at this cap
	// is exactly what the parser's repair stage exists to absorb.
	MaxOutputTokens int32

	// Temperature controls sampling randomness.
	Temperature float32

	// CandidateCount is the number of completions to request. The engine
	// always asks for one; the field exists because providers default it
	// differently.
	CandidateCount int32
}

// Client is the boundary between the generation pipeline and external
// completion services. A single synchronous call with no internal retry:
// any transport or provider-side error propagates wrapped in
// ErrGenerationFailed, carrying the provider's message.
//
// Implementations must be safe for concurrent use and must honor context
// cancellation on the outbound call.
type Client interface {
	// Complete sends an instruction to the model and returns its raw text
	// output, unmodified.
	Complete(ctx context.Context, instruction string, params Params) (string, error)
}
