package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cramdeck/cramdeck-api/internal/config"
	"github.com/cramdeck/cramdeck-api/internal/generation"
	"github.com/cramdeck/cramdeck-api/internal/mocks"
)

func newTestGenerationHandler(t *testing.T, client *mocks.MockGenerationClient) *GenerationHandler {
	t.Helper()

	engine, err := generation.NewEngine(client, config.LLMConfig{
		Provider:        config.ProviderGemini,
		GeminiAPIKey:    "test-key",
		ModelName:       "test-model",
		MaxOutputTokens: 1024,
		Temperature:     0.5,
	}, nil)
	require.NoError(t, err)

	return NewGenerationHandler(engine)
}

func TestGenerateFlashcardsEndpoint(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		client := &mocks.MockGenerationClient{
			Response: `[{"question": "q1", "answer": "a1"}]`,
		}
		handler := newTestGenerationHandler(t, client)

		w := postJSON(t, handler.GenerateFlashcards, map[string]interface{}{
			"notes":  "photosynthesis converts light to chemical energy",
			"amount": 1,
		})
		assert.Equal(t, http.StatusOK, w.Code)

		var resp GenerateFlashcardsResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		require.Len(t, resp.Flashcards, 1)
		assert.Equal(t, "q1", resp.Flashcards[0].Question)
	})

	t.Run("detail option forwarded", func(t *testing.T) {
		t.Parallel()
		client := &mocks.MockGenerationClient{Response: `[]`}
		handler := newTestGenerationHandler(t, client)

		w := postJSON(t, handler.GenerateFlashcards, map[string]interface{}{
			"notes":  "some notes",
			"detail": "detailed",
		})
		assert.Equal(t, http.StatusOK, w.Code)

		require.Equal(t, 1, client.CallCount())
		assert.Contains(t, client.CompleteCalls.Instructions[0], "detailed, in-depth answers")
	})

	t.Run("missing notes", func(t *testing.T) {
		t.Parallel()
		client := &mocks.MockGenerationClient{}
		handler := newTestGenerationHandler(t, client)

		w := postJSON(t, handler.GenerateFlashcards, map[string]interface{}{
			"amount": 5,
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, 0, client.CallCount())
	})

	t.Run("whitespace notes rejected before provider call", func(t *testing.T) {
		t.Parallel()
		client := &mocks.MockGenerationClient{}
		handler := newTestGenerationHandler(t, client)

		w := postJSON(t, handler.GenerateFlashcards, map[string]interface{}{
			"notes": "   \n\t ",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, 0, client.CallCount())
	})

	t.Run("invalid detail value", func(t *testing.T) {
		t.Parallel()
		handler := newTestGenerationHandler(t, &mocks.MockGenerationClient{})

		w := postJSON(t, handler.GenerateFlashcards, map[string]interface{}{
			"notes":  "notes",
			"detail": "verbose",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unparsable model output", func(t *testing.T) {
		t.Parallel()
		client := &mocks.MockGenerationClient{
			Response: "no json here at all",
		}
		handler := newTestGenerationHandler(t, client)

		w := postJSON(t, handler.GenerateFlashcards, map[string]interface{}{
			"notes": "notes",
		})
		assert.Equal(t, http.StatusInternalServerError, w.Code)

		// The raw model output never reaches the client
		var resp map[string]interface{}
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.NotContains(t, resp["error"], "no json here")
	})

	t.Run("empty generation is a success", func(t *testing.T) {
		t.Parallel()
		client := &mocks.MockGenerationClient{Response: `[]`}
		handler := newTestGenerationHandler(t, client)

		w := postJSON(t, handler.GenerateFlashcards, map[string]interface{}{
			"notes": "notes",
		})
		assert.Equal(t, http.StatusOK, w.Code)

		var resp GenerateFlashcardsResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.NotNil(t, resp.Flashcards)
		assert.Empty(t, resp.Flashcards)
	})
}

func TestGenerateStudyGuideEndpoint(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		client := &mocks.MockGenerationClient{
			Response: "1. Photosynthesis\n- light reactions\n- dark reactions",
		}
		handler := newTestGenerationHandler(t, client)

		w := postJSON(t, handler.GenerateStudyGuide, map[string]interface{}{
			"notes": "photosynthesis notes",
		})
		assert.Equal(t, http.StatusOK, w.Code)

		var resp GenerateStudyGuideResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Contains(t, resp.StudyGuide, "1. Photosynthesis")
	})

	t.Run("missing notes", func(t *testing.T) {
		t.Parallel()
		client := &mocks.MockGenerationClient{}
		handler := newTestGenerationHandler(t, client)

		w := postJSON(t, handler.GenerateStudyGuide, map[string]interface{}{})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, 0, client.CallCount())
	})
}
