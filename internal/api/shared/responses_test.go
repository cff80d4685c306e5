package shared_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cramdeck/cramdeck-api/internal/api/shared"
)

func TestRespondWithJSON(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	shared.RespondWithJSON(w, req, http.StatusCreated, map[string]string{"status": "ok"})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var body map[string]string
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "ok", body["status"])
}

func TestRespondWithError(t *testing.T) {
	t.Parallel()

	t.Run("includes trace id when present", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req = req.WithContext(shared.SetTraceID(req.Context()))
		w := httptest.NewRecorder()

		shared.RespondWithError(w, req, http.StatusNotFound, "Not found")

		assert.Equal(t, http.StatusNotFound, w.Code)

		var resp shared.ErrorResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, "Not found", resp.Error)
		assert.Len(t, resp.TraceID, 32)
	})

	t.Run("omits trace id when absent", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		w := httptest.NewRecorder()

		shared.RespondWithError(w, req, http.StatusBadRequest, "Bad request")

		var raw map[string]interface{}
		require.NoError(t, json.NewDecoder(w.Body).Decode(&raw))
		assert.NotContains(t, raw, "trace_id")
	})
}

func TestRespondWithErrorAndLog(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	internal := errors.New("pgx: connection refused host=db.internal port=5432")
	shared.RespondWithErrorAndLog(w, req, http.StatusInternalServerError, "An unexpected error occurred", internal)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	// Only the safe message reaches the client
	body := w.Body.String()
	assert.Contains(t, body, "An unexpected error occurred")
	assert.NotContains(t, body, "connection refused")
	assert.NotContains(t, body, "db.internal")
}
