package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/cramdeck/cramdeck-api/internal/domain"
	"github.com/cramdeck/cramdeck-api/internal/platform/logger"
	"github.com/cramdeck/cramdeck-api/internal/store"
)

// PostgresStudyGuideStore implements the store.StudyGuideStore interface
// using a PostgreSQL database as the storage backend.
type PostgresStudyGuideStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresStudyGuideStore creates a new PostgreSQL implementation of
// the StudyGuideStore interface. It accepts a database connection or
// transaction that should be initialized and managed by the caller.
// If log is nil, a default logger will be used.
func NewPostgresStudyGuideStore(db store.DBTX, log *slog.Logger) *PostgresStudyGuideStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &PostgresStudyGuideStore{
		db:     db,
		logger: log.With(slog.String("component", "study_guide_store")),
	}
}

// Ensure PostgresStudyGuideStore implements store.StudyGuideStore
var _ store.StudyGuideStore = (*PostgresStudyGuideStore)(nil)

// Create implements store.StudyGuideStore.Create
func (s *PostgresStudyGuideStore) Create(ctx context.Context, guide *domain.StudyGuide) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := guide.Validate(); err != nil {
		log.Warn("study guide validation failed during create",
			slog.String("error", err.Error()),
			slog.String("guide_id", guide.ID.String()))
		return err
	}

	query := `
		INSERT INTO study_guides (id, user_id, title, content, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		guide.ID,
		guide.UserID,
		guide.Title,
		guide.Content,
		guide.CreatedAt,
	)

	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Warn("foreign key violation during guide creation",
				slog.String("guide_id", guide.ID.String()),
				slog.String("user_id", guide.UserID.String()))
			return fmt.Errorf("%w: user with ID %s not found",
				store.ErrInvalidEntity, guide.UserID)
		}
		log.Error("failed to create study guide",
			slog.String("error", err.Error()),
			slog.String("guide_id", guide.ID.String()))
		return err
	}

	log.Info("study guide created successfully",
		slog.String("guide_id", guide.ID.String()),
		slog.String("user_id", guide.UserID.String()))
	return nil
}

// ListByUser implements store.StudyGuideStore.ListByUser
func (s *PostgresStudyGuideStore) ListByUser(
	ctx context.Context,
	userID uuid.UUID,
) ([]*domain.StudyGuide, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, user_id, title, content, created_at
		FROM study_guides
		WHERE user_id = $1
		ORDER BY created_at
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		log.Error("failed to list study guides",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, err
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			log.Warn("failed to close rows", slog.String("error", closeErr.Error()))
		}
	}()

	guides := make([]*domain.StudyGuide, 0)
	for rows.Next() {
		var guide domain.StudyGuide

		if err := rows.Scan(&guide.ID, &guide.UserID, &guide.Title, &guide.Content, &guide.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan study guide row: %w", err)
		}

		if guide.Title == "" {
			guide.Title = domain.DefaultGuideTitle
		}

		guides = append(guides, &guide)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	log.Debug("study guides listed",
		slog.String("user_id", userID.String()),
		slog.Int("guide_count", len(guides)))
	return guides, nil
}

// Delete implements store.StudyGuideStore.Delete
func (s *PostgresStudyGuideStore) Delete(ctx context.Context, userID, guideID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		DELETE FROM study_guides
		WHERE id = $1 AND user_id = $2
	`

	result, err := s.db.ExecContext(ctx, query, guideID, userID)
	if err != nil {
		log.Error("failed to delete study guide",
			slog.String("error", err.Error()),
			slog.String("guide_id", guideID.String()))
		return err
	}

	if err := CheckRowsAffected(result, store.ErrGuideNotFound); err != nil {
		return err
	}

	log.Info("study guide deleted",
		slog.String("guide_id", guideID.String()),
		slog.String("user_id", userID.String()))
	return nil
}
