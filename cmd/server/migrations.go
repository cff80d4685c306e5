package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/pressly/goose/v3"

	"github.com/cramdeck/cramdeck-api/internal/platform/postgres"
)

// slogGooseLogger adapts the goose logger interface to slog.
type slogGooseLogger struct{}

func (l *slogGooseLogger) Printf(format string, v ...interface{}) {
	slog.Info(fmt.Sprintf(format, v...), "component", "migrations")
}

func (l *slogGooseLogger) Fatalf(format string, v ...interface{}) {
	slog.Error(fmt.Sprintf(format, v...), "component", "migrations")
}

// runStartupMigrations applies any pending embedded migrations against the
// connected database. The schema is small enough that applying at startup
// keeps deployments to a single step.
func runStartupMigrations(db *sql.DB, logger *slog.Logger) error {
	migrationLogger := logger.With(slog.String("component", "migrations"))

	goose.SetLogger(&slogGooseLogger{})
	goose.SetBaseFS(postgres.MigrationsFS)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set migration dialect: %w", err)
	}

	startTime := time.Now()
	migrationLogger.Info("applying database migrations")

	if err := goose.Up(db, postgres.MigrationsDir); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	migrationLogger.Info("database migrations applied",
		slog.Int64("duration_ms", time.Since(startTime).Milliseconds()))
	return nil
}
