package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/cramdeck/cramdeck-api/internal/domain"
	"github.com/cramdeck/cramdeck-api/internal/platform/logger"
	"github.com/cramdeck/cramdeck-api/internal/store"
)

// PostgresFlashcardSetStore implements the store.FlashcardSetStore
// interface using a PostgreSQL database as the storage backend. Cards are
// stored as a JSONB array on the set row: sets are immutable and always
// read whole, so there is nothing to gain from a separate cards table.
type PostgresFlashcardSetStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresFlashcardSetStore creates a new PostgreSQL implementation of
// the FlashcardSetStore interface. It accepts a database connection or
// transaction that should be initialized and managed by the caller.
// If log is nil, a default logger will be used.
func NewPostgresFlashcardSetStore(db store.DBTX, log *slog.Logger) *PostgresFlashcardSetStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &PostgresFlashcardSetStore{
		db:     db,
		logger: log.With(slog.String("component", "flashcard_set_store")),
	}
}

// Ensure PostgresFlashcardSetStore implements store.FlashcardSetStore
var _ store.FlashcardSetStore = (*PostgresFlashcardSetStore)(nil)

// Create implements store.FlashcardSetStore.Create
func (s *PostgresFlashcardSetStore) Create(ctx context.Context, set *domain.FlashcardSet) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := set.Validate(); err != nil {
		log.Warn("flashcard set validation failed during create",
			slog.String("error", err.Error()),
			slog.String("set_id", set.ID.String()))
		return err
	}

	cardsJSON, err := json.Marshal(set.Cards)
	if err != nil {
		return fmt.Errorf("failed to marshal cards to JSON: %w", err)
	}

	query := `
		INSERT INTO flashcard_sets (id, user_id, title, cards, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err = s.db.ExecContext(
		ctx,
		query,
		set.ID,
		set.UserID,
		set.Title,
		cardsJSON,
		set.CreatedAt,
	)

	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Warn("foreign key violation during set creation",
				slog.String("set_id", set.ID.String()),
				slog.String("user_id", set.UserID.String()))
			return fmt.Errorf("%w: user with ID %s not found",
				store.ErrInvalidEntity, set.UserID)
		}
		log.Error("failed to create flashcard set",
			slog.String("error", err.Error()),
			slog.String("set_id", set.ID.String()))
		return err
	}

	log.Info("flashcard set created successfully",
		slog.String("set_id", set.ID.String()),
		slog.String("user_id", set.UserID.String()),
		slog.Int("card_count", len(set.Cards)))
	return nil
}

// ListByUser implements store.FlashcardSetStore.ListByUser
func (s *PostgresFlashcardSetStore) ListByUser(
	ctx context.Context,
	userID uuid.UUID,
) ([]*domain.FlashcardSet, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, user_id, title, cards, created_at
		FROM flashcard_sets
		WHERE user_id = $1
		ORDER BY created_at
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		log.Error("failed to list flashcard sets",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, err
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			log.Warn("failed to close rows", slog.String("error", closeErr.Error()))
		}
	}()

	sets := make([]*domain.FlashcardSet, 0)
	for rows.Next() {
		var set domain.FlashcardSet
		var cardsJSON []byte

		if err := rows.Scan(&set.ID, &set.UserID, &set.Title, &cardsJSON, &set.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan flashcard set row: %w", err)
		}

		if err := json.Unmarshal(cardsJSON, &set.Cards); err != nil {
			return nil, fmt.Errorf("failed to unmarshal cards for set %s: %w", set.ID, err)
		}

		if set.Title == "" {
			set.Title = domain.DefaultSetTitle
		}

		sets = append(sets, &set)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	log.Debug("flashcard sets listed",
		slog.String("user_id", userID.String()),
		slog.Int("set_count", len(sets)))
	return sets, nil
}

// Delete implements store.FlashcardSetStore.Delete
// The user ID is part of the WHERE clause, so deleting another user's set
// reports ErrSetNotFound rather than touching it.
func (s *PostgresFlashcardSetStore) Delete(ctx context.Context, userID, setID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		DELETE FROM flashcard_sets
		WHERE id = $1 AND user_id = $2
	`

	result, err := s.db.ExecContext(ctx, query, setID, userID)
	if err != nil {
		log.Error("failed to delete flashcard set",
			slog.String("error", err.Error()),
			slog.String("set_id", setID.String()))
		return err
	}

	if err := CheckRowsAffected(result, store.ErrSetNotFound); err != nil {
		return err
	}

	log.Info("flashcard set deleted",
		slog.String("set_id", setID.String()),
		slog.String("user_id", userID.String()))
	return nil
}
