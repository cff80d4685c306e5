package domain_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cramdeck/cramdeck-api/internal/domain"
)

func TestNewStudyGuide(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	t.Run("valid guide", func(t *testing.T) {
		t.Parallel()
		guide, err := domain.NewStudyGuide(userID, "Cell Biology", "1. Cells\n- stuff")
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, guide.ID)
		assert.Equal(t, userID, guide.UserID)
		assert.Equal(t, "Cell Biology", guide.Title)
		assert.False(t, guide.CreatedAt.IsZero())
	})

	t.Run("empty title defaults", func(t *testing.T) {
		t.Parallel()
		guide, err := domain.NewStudyGuide(userID, "", "content")
		require.NoError(t, err)
		assert.Equal(t, domain.DefaultGuideTitle, guide.Title)
	})

	t.Run("missing user", func(t *testing.T) {
		t.Parallel()
		_, err := domain.NewStudyGuide(uuid.Nil, "Title", "content")
		assert.ErrorIs(t, err, domain.ErrGuideUserIDEmpty)
	})

	t.Run("empty content", func(t *testing.T) {
		t.Parallel()
		_, err := domain.NewStudyGuide(userID, "Title", "")
		assert.ErrorIs(t, err, domain.ErrGuideContentEmpty)
	})

	t.Run("whitespace content", func(t *testing.T) {
		t.Parallel()
		_, err := domain.NewStudyGuide(userID, "Title", " \n\t ")
		assert.ErrorIs(t, err, domain.ErrGuideContentEmpty)
	})

	t.Run("fresh ID on every save", func(t *testing.T) {
		t.Parallel()
		first, err := domain.NewStudyGuide(userID, "T", "c")
		require.NoError(t, err)
		second, err := domain.NewStudyGuide(userID, "T", "c")
		require.NoError(t, err)
		assert.NotEqual(t, first.ID, second.ID)
	})
}
