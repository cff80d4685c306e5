package api

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/cramdeck/cramdeck-api/internal/api/shared"
	"github.com/cramdeck/cramdeck-api/internal/domain"
	"github.com/cramdeck/cramdeck-api/internal/platform/logger"
	"github.com/cramdeck/cramdeck-api/internal/store"
)

// StudyGuideHandler handles study guide persistence HTTP requests.
// Mirrors FlashcardSetHandler: authenticated, user-scoped, immutable rows.
type StudyGuideHandler struct {
	guideStore store.StudyGuideStore
	validator  *validator.Validate
	logger     *slog.Logger
}

// NewStudyGuideHandler creates a new StudyGuideHandler.
func NewStudyGuideHandler(guideStore store.StudyGuideStore, log *slog.Logger) *StudyGuideHandler {
	if log == nil {
		log = slog.Default()
	}
	return &StudyGuideHandler{
		guideStore: guideStore,
		validator:  validator.New(),
		logger:     log.With(slog.String("component", "study_guide_handler")),
	}
}

// SaveGuide handles POST /api/study-guides requests.
func (h *StudyGuideHandler) SaveGuide(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	var req SaveStudyGuideRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	guide, err := domain.NewStudyGuide(userID, req.Title, req.Content)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid study guide", err)
		return
	}

	if err := h.guideStore.Create(r.Context(), guide); err != nil {
		HandleAPIError(w, r, err, "Failed to save study guide")
		return
	}

	log.Info("study guide saved",
		slog.String("guide_id", guide.ID.String()),
		slog.String("user_id", userID.String()))

	shared.RespondWithJSON(w, r, http.StatusCreated, guideToResponse(guide))
}

// ListGuides handles GET /api/study-guides requests.
func (h *StudyGuideHandler) ListGuides(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	guides, err := h.guideStore.ListByUser(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list study guides")
		return
	}

	responses := make([]StudyGuideResponse, 0, len(guides))
	for _, guide := range guides {
		responses = append(responses, guideToResponse(guide))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, responses)
}

// DeleteGuide handles DELETE /api/study-guides/{id} requests.
func (h *StudyGuideHandler) DeleteGuide(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, guideID, ok := handleUserIDAndPathUUID(w, r, "id", log)
	if !ok {
		return
	}

	if err := h.guideStore.Delete(r.Context(), userID, guideID); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
