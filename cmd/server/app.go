package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/cramdeck/cramdeck-api/internal/config"
	"github.com/cramdeck/cramdeck-api/internal/generation"
	"github.com/cramdeck/cramdeck-api/internal/platform/gemini"
	"github.com/cramdeck/cramdeck-api/internal/platform/openai"
	"github.com/cramdeck/cramdeck-api/internal/platform/postgres"
	"github.com/cramdeck/cramdeck-api/internal/service/auth"
	"github.com/cramdeck/cramdeck-api/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	// Configuration
	config *config.Config

	// Core services
	logger *slog.Logger
	db     *sql.DB

	// Stores (using interfaces for proper abstraction)
	userStore  store.UserStore
	setStore   store.FlashcardSetStore
	guideStore store.StudyGuideStore

	// Service interfaces
	jwtService       auth.JWTService
	passwordVerifier auth.PasswordVerifier

	// Content generation
	engine *generation.Engine
}

// newApplication creates a new application instance with all dependencies
// initialized. It accepts core dependencies like configuration, logger, and
// database connection that must be established before initialization.
func newApplication(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
	db *sql.DB,
) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	// Initialize JWT service
	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	// Initialize password verifier
	app.passwordVerifier = auth.NewBcryptVerifier()

	// Initialize stores
	app.userStore = postgres.NewPostgresUserStore(db, cfg.Auth.BcryptCost, logger)
	app.setStore = postgres.NewPostgresFlashcardSetStore(db, logger)
	app.guideStore = postgres.NewPostgresStudyGuideStore(db, logger)

	// Create the LLM client for the configured provider
	client, err := setupGenerationClient(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize LLM client: %w", err)
	}

	// Create the generation engine on top of the client
	app.engine, err = generation.NewEngine(client, cfg.LLM, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize generation engine: %w", err)
	}
	logger.Info("generation engine initialized",
		"provider", cfg.LLM.Provider,
		"model", cfg.LLM.ModelName)

	logger.Info("Application initialized successfully")
	return app, nil
}

// setupGenerationClient selects and constructs the LLM provider client
// named in the configuration.
func setupGenerationClient(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
) (generation.Client, error) {
	switch cfg.LLM.Provider {
	case config.ProviderGemini:
		return gemini.NewClient(ctx, cfg.LLM, logger.With("component", "gemini_client"))
	case config.ProviderOpenAI:
		return openai.NewClient(cfg.LLM, logger.With("component", "openai_client"))
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.LLM.Provider)
	}
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
