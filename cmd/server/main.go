// Package main implements the entry point for the cramdeck API server,
// which turns raw study notes into flashcards and study guides via LLM
// providers and persists saved material per user.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/cramdeck/cramdeck-api/internal/config"
	"github.com/cramdeck/cramdeck-api/internal/platform/logger"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}
}

// run wires configuration, logging, storage, and the HTTP server, then
// blocks until shutdown. Split from main so it can return errors.
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"llm_provider", cfg.LLM.Provider)

	if cfg.Database.URL != "" {
		slog.Debug("Database configuration", "url_present", true)
	}

	db, err := setupAppDatabase(cfg, appLogger)
	if err != nil {
		return fmt.Errorf("failed to set up database: %w", err)
	}

	if err := runStartupMigrations(db, appLogger); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	ctx := context.Background()
	app, err := newApplication(ctx, cfg, appLogger, db)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.Run(ctx)
}
