package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/cramdeck/cramdeck-api/internal/api/shared"
	"github.com/cramdeck/cramdeck-api/internal/generation"
)

// GenerationHandler handles AI generation HTTP requests. Generation is
// stateless: callers submit notes and receive content back without any
// persistence side effects.
type GenerationHandler struct {
	engine    *generation.Engine
	validator *validator.Validate
}

// NewGenerationHandler creates a new GenerationHandler.
func NewGenerationHandler(engine *generation.Engine) *GenerationHandler {
	return &GenerationHandler{
		engine:    engine,
		validator: validator.New(),
	}
}

// GenerateFlashcards handles POST /api/generate/flashcards requests.
func (h *GenerationHandler) GenerateFlashcards(w http.ResponseWriter, r *http.Request) {
	var req GenerateFlashcardsRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	detail := generation.DetailBrief
	if req.Detail == string(generation.DetailDetailed) {
		detail = generation.DetailDetailed
	}

	cards, err := h.engine.GenerateFlashcards(r.Context(), req.Notes, req.Amount, detail)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, GenerateFlashcardsResponse{
		Flashcards: cards,
	})
}

// GenerateStudyGuide handles POST /api/generate/study-guide requests.
func (h *GenerationHandler) GenerateStudyGuide(w http.ResponseWriter, r *http.Request) {
	var req GenerateStudyGuideRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	guide, err := h.engine.GenerateStudyGuide(r.Context(), req.Notes)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, GenerateStudyGuideResponse{
		StudyGuide: guide,
	})
}
