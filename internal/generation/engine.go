package generation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/cramdeck/cramdeck-api/internal/config"
	"github.com/cramdeck/cramdeck-api/internal/domain"
	"github.com/cramdeck/cramdeck-api/internal/platform/logger"
)

// Engine orchestrates prompt construction, the completion call, and
// response parsing for both flashcard and study-guide generation. It is
// stateless between calls: no caching, no retry. A failed external call is
// surfaced immediately so the caller can decide whether retrying is worth
// the quota it costs.
type Engine struct {
	client  Client
	prompts *PromptBuilder
	parser  *Parser
	params  Params
	logger  *slog.Logger
}

// NewEngine creates an Engine using the given completion client and the
// generation parameters from cfg. If log is nil, the default logger is used.
func NewEngine(client Client, cfg config.LLMConfig, log *slog.Logger) (*Engine, error) {
	if client == nil {
		return nil, errors.New("client cannot be nil")
	}
	if cfg.ModelName == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", ErrInvalidConfig)
	}
	if log == nil {
		log = slog.Default()
	}

	return &Engine{
		client:  client,
		prompts: NewPromptBuilder(),
		parser:  NewParser(),
		params: Params{
			Model:           cfg.ModelName,
			MaxOutputTokens: int32(cfg.MaxOutputTokens),
			Temperature:     cfg.Temperature,
			CandidateCount:  1,
		},
		logger: log.With(slog.String("component", "generation_engine")),
	}, nil
}

// GenerateFlashcards turns notes into an ordered list of flashcards.
// Returns ErrEmptyNotes for empty or whitespace-only notes, checked before
// any external call. An empty card list is a valid result meaning nothing
// usable was generated.
func (e *Engine) GenerateFlashcards(
	ctx context.Context,
	notes string,
	amount int,
	detail Detail,
) ([]domain.Flashcard, error) {
	log := logger.FromContextOrDefault(ctx, e.logger)

	if strings.TrimSpace(notes) == "" {
		return nil, ErrEmptyNotes
	}

	instruction := e.prompts.Flashcards(notes, amount, detail)
	log.Debug("generating flashcards",
		slog.Int("notes_length", len(notes)),
		slog.Int("amount", amount),
		slog.String("detail", string(detail)))

	raw, err := e.complete(ctx, instruction)
	if err != nil {
		return nil, err
	}

	cards, err := e.parser.ParseFlashcards(raw)
	if err != nil {
		var parseErr *ParseError
		if errors.As(err, &parseErr) {
			log.Error("failed to parse model output",
				slog.String("reason", parseErr.Reason),
				slog.String("excerpt", parseErr.Excerpt))
		}
		return nil, err
	}

	if len(cards) == 0 {
		// Valid but empty: the model produced a list with no usable
		// entries. Surfaced as a warning, not a failure.
		log.Warn("model output contained no usable flashcards",
			slog.Int("raw_length", len(raw)))
	} else {
		log.Info("flashcards generated", slog.Int("card_count", len(cards)))
	}

	return cards, nil
}

// GenerateStudyGuide turns notes into a structured plain-text study guide.
// Same emptiness precondition as GenerateFlashcards; the guide path does no
// structural parsing and returns the model's text trimmed.
func (e *Engine) GenerateStudyGuide(ctx context.Context, notes string) (string, error) {
	log := logger.FromContextOrDefault(ctx, e.logger)

	if strings.TrimSpace(notes) == "" {
		return "", ErrEmptyNotes
	}

	instruction := e.prompts.StudyGuide(notes)
	log.Debug("generating study guide", slog.Int("notes_length", len(notes)))

	raw, err := e.complete(ctx, instruction)
	if err != nil {
		return "", err
	}

	guide := e.parser.ParseStudyGuide(raw)
	log.Info("study guide generated", slog.Int("guide_length", len(guide)))
	return guide, nil
}

// complete performs the single synchronous completion call. Provider
// errors are guaranteed to wrap ErrGenerationFailed on the way out.
func (e *Engine) complete(ctx context.Context, instruction string) (string, error) {
	raw, err := e.client.Complete(ctx, instruction, e.params)
	if err != nil {
		if errors.Is(err, ErrGenerationFailed) {
			return "", err
		}
		return "", fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}
	return raw, nil
}
