package mocks

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/cramdeck/cramdeck-api/internal/domain"
	"github.com/cramdeck/cramdeck-api/internal/store"
)

// MockStudyGuideStore implements store.StudyGuideStore for testing.
type MockStudyGuideStore struct {
	// Function fields for customizable behavior
	CreateFn     func(ctx context.Context, guide *domain.StudyGuide) error
	ListByUserFn func(ctx context.Context, userID uuid.UUID) ([]*domain.StudyGuide, error)
	DeleteFn     func(ctx context.Context, userID, guideID uuid.UUID) error

	// Data for default implementation, keyed by guide ID
	Guides map[uuid.UUID]*domain.StudyGuide

	// Errors returned by the default implementations when set
	CreateError error
	ListError   error
}

// NewMockStudyGuideStore creates a new mock store with initialized defaults
func NewMockStudyGuideStore() *MockStudyGuideStore {
	return &MockStudyGuideStore{
		Guides: make(map[uuid.UUID]*domain.StudyGuide),
	}
}

// Ensure MockStudyGuideStore implements store.StudyGuideStore
var _ store.StudyGuideStore = (*MockStudyGuideStore)(nil)

// Create implements the store.StudyGuideStore interface
func (m *MockStudyGuideStore) Create(ctx context.Context, guide *domain.StudyGuide) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, guide)
	}

	if m.CreateError != nil {
		return m.CreateError
	}

	m.Guides[guide.ID] = guide
	return nil
}

// ListByUser implements the store.StudyGuideStore interface
func (m *MockStudyGuideStore) ListByUser(
	ctx context.Context,
	userID uuid.UUID,
) ([]*domain.StudyGuide, error) {
	if m.ListByUserFn != nil {
		return m.ListByUserFn(ctx, userID)
	}

	if m.ListError != nil {
		return nil, m.ListError
	}

	guides := make([]*domain.StudyGuide, 0)
	for _, guide := range m.Guides {
		if guide.UserID == userID {
			guides = append(guides, guide)
		}
	}
	sort.Slice(guides, func(i, j int) bool {
		return guides[i].CreatedAt.Before(guides[j].CreatedAt)
	})
	return guides, nil
}

// Delete implements the store.StudyGuideStore interface
func (m *MockStudyGuideStore) Delete(ctx context.Context, userID, guideID uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, userID, guideID)
	}

	guide, exists := m.Guides[guideID]
	if !exists || guide.UserID != userID {
		return store.ErrGuideNotFound
	}

	delete(m.Guides, guideID)
	return nil
}
