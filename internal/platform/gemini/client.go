package gemini

import (
	"context"
	"fmt"
	"log/slog"

	"google.golang.org/genai"

	"github.com/cramdeck/cramdeck-api/internal/config"
	"github.com/cramdeck/cramdeck-api/internal/generation"
)

// Client implements generation.Client against the Gemini API.
type Client struct {
	client *genai.Client
	logger *slog.Logger
}

// Ensure Client implements generation.Client
var _ generation.Client = (*Client)(nil)

// NewClient creates a Gemini-backed completion client.
//
// Parameters:
//   - ctx: Context for client initialization, which can be used for cancellation
//   - cfg: LLM configuration containing the Gemini API key
//   - logger: A structured logger for operation logging; nil means default
//
// Returns an error wrapping generation.ErrInvalidConfig if the API key is
// missing or the SDK client cannot be constructed.
func NewClient(ctx context.Context, cfg config.LLMConfig, logger *slog.Logger) (*Client, error) {
	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
	}
	if logger == nil {
		logger = slog.Default()
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v",
			generation.ErrInvalidConfig, err)
	}

	return &Client{
		client: client,
		logger: logger.With(slog.String("component", "gemini_client")),
	}, nil
}

// Complete implements generation.Client. A single synchronous call with no
// internal retry; any API error propagates wrapped in ErrGenerationFailed
// with the provider's message.
func (c *Client) Complete(
	ctx context.Context,
	instruction string,
	params generation.Params,
) (string, error) {
	cfg := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(params.Temperature),
		MaxOutputTokens: params.MaxOutputTokens,
		CandidateCount:  params.CandidateCount,
	}

	c.logger.Debug("calling Gemini API",
		slog.String("model", params.Model),
		slog.Int("instruction_length", len(instruction)))

	resp, err := c.client.Models.GenerateContent(
		ctx,
		params.Model,
		genai.Text(instruction),
		cfg,
	)
	if err != nil {
		c.logger.Error("Gemini API call failed",
			slog.String("model", params.Model),
			slog.String("error", err.Error()))
		return "", fmt.Errorf("%w: %v", generation.ErrGenerationFailed, err)
	}

	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("%w: no candidates in response", generation.ErrGenerationFailed)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("%w: empty content in response", generation.ErrGenerationFailed)
	}

	c.logger.Debug("Gemini API call successful",
		slog.Int("response_length", len(text)))
	return text, nil
}
