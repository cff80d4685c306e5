package mocks

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/cramdeck/cramdeck-api/internal/domain"
	"github.com/cramdeck/cramdeck-api/internal/store"
)

// MockFlashcardSetStore implements store.FlashcardSetStore for testing.
// The default implementation keeps sets in memory and enforces the same
// user-scoping rules as the real store.
type MockFlashcardSetStore struct {
	// Function fields for customizable behavior
	CreateFn     func(ctx context.Context, set *domain.FlashcardSet) error
	ListByUserFn func(ctx context.Context, userID uuid.UUID) ([]*domain.FlashcardSet, error)
	DeleteFn     func(ctx context.Context, userID, setID uuid.UUID) error

	// Data for default implementation, keyed by set ID
	Sets map[uuid.UUID]*domain.FlashcardSet

	// Errors returned by the default implementations when set
	CreateError error
	ListError   error
}

// NewMockFlashcardSetStore creates a new mock store with initialized defaults
func NewMockFlashcardSetStore() *MockFlashcardSetStore {
	return &MockFlashcardSetStore{
		Sets: make(map[uuid.UUID]*domain.FlashcardSet),
	}
}

// Ensure MockFlashcardSetStore implements store.FlashcardSetStore
var _ store.FlashcardSetStore = (*MockFlashcardSetStore)(nil)

// Create implements the store.FlashcardSetStore interface
func (m *MockFlashcardSetStore) Create(ctx context.Context, set *domain.FlashcardSet) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, set)
	}

	if m.CreateError != nil {
		return m.CreateError
	}

	m.Sets[set.ID] = set
	return nil
}

// ListByUser implements the store.FlashcardSetStore interface
func (m *MockFlashcardSetStore) ListByUser(
	ctx context.Context,
	userID uuid.UUID,
) ([]*domain.FlashcardSet, error) {
	if m.ListByUserFn != nil {
		return m.ListByUserFn(ctx, userID)
	}

	if m.ListError != nil {
		return nil, m.ListError
	}

	sets := make([]*domain.FlashcardSet, 0)
	for _, set := range m.Sets {
		if set.UserID == userID {
			sets = append(sets, set)
		}
	}
	sort.Slice(sets, func(i, j int) bool {
		return sets[i].CreatedAt.Before(sets[j].CreatedAt)
	})
	return sets, nil
}

// Delete implements the store.FlashcardSetStore interface
func (m *MockFlashcardSetStore) Delete(ctx context.Context, userID, setID uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, userID, setID)
	}

	set, exists := m.Sets[setID]
	if !exists || set.UserID != userID {
		return store.ErrSetNotFound
	}

	delete(m.Sets, setID)
	return nil
}
