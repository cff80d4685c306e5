package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cramdeck/cramdeck-api/internal/domain"
	"github.com/cramdeck/cramdeck-api/internal/mocks"
)

func TestSaveGuide(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	t.Run("valid guide", func(t *testing.T) {
		t.Parallel()
		guideStore := mocks.NewMockStudyGuideStore()
		handler := NewStudyGuideHandler(guideStore, nil)

		w := postJSONAs(t, handler.SaveGuide, userID, map[string]interface{}{
			"title":   "Cell Biology",
			"content": "1. Cells\n- membranes",
		})
		assert.Equal(t, http.StatusCreated, w.Code)

		var resp StudyGuideResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, "Cell Biology", resp.Title)
		assert.NotEmpty(t, resp.ID)

		require.Len(t, guideStore.Guides, 1)
	})

	t.Run("missing title defaults", func(t *testing.T) {
		t.Parallel()
		handler := NewStudyGuideHandler(mocks.NewMockStudyGuideStore(), nil)

		w := postJSONAs(t, handler.SaveGuide, userID, map[string]interface{}{
			"content": "1. Topic",
		})
		assert.Equal(t, http.StatusCreated, w.Code)

		var resp StudyGuideResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, domain.DefaultGuideTitle, resp.Title)
	})

	t.Run("missing content", func(t *testing.T) {
		t.Parallel()
		handler := NewStudyGuideHandler(mocks.NewMockStudyGuideStore(), nil)

		w := postJSONAs(t, handler.SaveGuide, userID, map[string]interface{}{
			"title": "No Content",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		t.Parallel()
		handler := NewStudyGuideHandler(mocks.NewMockStudyGuideStore(), nil)

		w := postJSON(t, handler.SaveGuide, map[string]interface{}{
			"content": "1. Topic",
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestListGuides_ScopedToUser(t *testing.T) {
	t.Parallel()

	owner := uuid.New()
	other := uuid.New()

	guideStore := mocks.NewMockStudyGuideStore()
	own, err := domain.NewStudyGuide(owner, "Mine", "content")
	require.NoError(t, err)
	theirs, err := domain.NewStudyGuide(other, "Theirs", "content")
	require.NoError(t, err)
	require.NoError(t, guideStore.Create(context.Background(), own))
	require.NoError(t, guideStore.Create(context.Background(), theirs))

	handler := NewStudyGuideHandler(guideStore, nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = requestWithUser(req, owner)
	w := httptest.NewRecorder()
	handler.ListGuides(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []StudyGuideResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "Mine", resp[0].Title)
}

func TestDeleteGuide(t *testing.T) {
	t.Parallel()

	owner := uuid.New()
	stranger := uuid.New()

	guideStore := mocks.NewMockStudyGuideStore()
	guide, err := domain.NewStudyGuide(owner, "Mine", "content")
	require.NoError(t, err)
	require.NoError(t, guideStore.Create(context.Background(), guide))

	handler := NewStudyGuideHandler(guideStore, nil)

	r := chi.NewRouter()
	r.Delete("/api/study-guides/{id}", handler.DeleteGuide)

	doDelete := func(userID uuid.UUID, guideID string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodDelete, "/api/study-guides/"+guideID, nil)
		req = requestWithUser(req, userID)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	// A stranger cannot delete it
	w := doDelete(stranger, guide.ID.String())
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Len(t, guideStore.Guides, 1)

	// The owner can
	w = doDelete(owner, guide.ID.String())
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, guideStore.Guides)
}
