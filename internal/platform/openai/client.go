package openai

import (
	"context"
	"fmt"
	"log/slog"

	openai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"github.com/cramdeck/cramdeck-api/internal/config"
	"github.com/cramdeck/cramdeck-api/internal/generation"
)

// Client implements generation.Client against the OpenAI chat completions
// API. The SDK's own retry machinery is disabled: the engine's contract is
// a single call per request, with retries left to the end user because
// they cost money.
type Client struct {
	client openai.Client
	logger *slog.Logger
}

// Ensure Client implements generation.Client
var _ generation.Client = (*Client)(nil)

// NewClient creates an OpenAI-backed completion client.
// Returns an error wrapping generation.ErrInvalidConfig if the API key is
// missing.
func NewClient(cfg config.LLMConfig, logger *slog.Logger) (*Client, error) {
	if cfg.OpenAIAPIKey == "" {
		return nil, fmt.Errorf("%w: openai API key cannot be empty", generation.ErrInvalidConfig)
	}
	if logger == nil {
		logger = slog.Default()
	}

	client := openai.NewClient(
		option.WithAPIKey(cfg.OpenAIAPIKey),
		option.WithMaxRetries(0),
	)

	return &Client{
		client: client,
		logger: logger.With(slog.String("component", "openai_client")),
	}, nil
}

// Complete implements generation.Client. Any transport or API error
// propagates wrapped in ErrGenerationFailed with the provider's message.
func (c *Client) Complete(
	ctx context.Context,
	instruction string,
	params generation.Params,
) (string, error) {
	c.logger.Debug("calling OpenAI API",
		slog.String("model", params.Model),
		slog.Int("instruction_length", len(instruction)))

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: params.Model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(instruction),
		},
		Temperature:         openai.Float(float64(params.Temperature)),
		MaxCompletionTokens: openai.Int(int64(params.MaxOutputTokens)),
		N:                   openai.Int(int64(params.CandidateCount)),
	})
	if err != nil {
		c.logger.Error("OpenAI API call failed",
			slog.String("model", params.Model),
			slog.String("error", err.Error()))
		return "", fmt.Errorf("%w: %v", generation.ErrGenerationFailed, err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices in response", generation.ErrGenerationFailed)
	}

	text := resp.Choices[0].Message.Content
	if text == "" {
		return "", fmt.Errorf("%w: empty content in response", generation.ErrGenerationFailed)
	}

	c.logger.Debug("OpenAI API call successful",
		slog.Int("response_length", len(text)))
	return text, nil
}
