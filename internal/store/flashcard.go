package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/cramdeck/cramdeck-api/internal/domain"
)

// FlashcardSetStore defines the interface for flashcard set persistence.
// Every operation is scoped by the owning user's ID: a user can only ever
// read or delete sets under their own partition. This is the sole
// authorization rule in the system.
type FlashcardSetStore interface {
	// Create saves a new flashcard set. Sets are immutable once saved;
	// there is no update operation, and re-saving creates a new set.
	// Returns ErrInvalidEntity if the owning user does not exist.
	Create(ctx context.Context, set *domain.FlashcardSet) error

	// ListByUser retrieves all flashcard sets owned by the given user,
	// ordered by creation time. Sets missing a title are returned with
	// domain.DefaultSetTitle.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.FlashcardSet, error)

	// Delete removes the identified set if it belongs to the given user.
	// Returns ErrSetNotFound if no such set exists under the user's
	// partition, including when the set belongs to someone else.
	Delete(ctx context.Context, userID, setID uuid.UUID) error
}
