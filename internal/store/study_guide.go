package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/cramdeck/cramdeck-api/internal/domain"
)

// StudyGuideStore defines the interface for study guide persistence.
// Mirrors FlashcardSetStore: uid-scoped, immutable once saved.
type StudyGuideStore interface {
	// Create saves a new study guide.
	// Returns ErrInvalidEntity if the owning user does not exist.
	Create(ctx context.Context, guide *domain.StudyGuide) error

	// ListByUser retrieves all study guides owned by the given user,
	// ordered by creation time. Guides missing a title are returned with
	// domain.DefaultGuideTitle.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.StudyGuide, error)

	// Delete removes the identified guide if it belongs to the given
	// user. Returns ErrGuideNotFound if no such guide exists under the
	// user's partition.
	Delete(ctx context.Context, userID, guideID uuid.UUID) error
}
