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

// FlashcardSetHandler handles flashcard set persistence HTTP requests.
// All routes require authentication; every store call is scoped by the
// authenticated user's ID.
type FlashcardSetHandler struct {
	setStore  store.FlashcardSetStore
	validator *validator.Validate
	logger    *slog.Logger
}

// NewFlashcardSetHandler creates a new FlashcardSetHandler.
func NewFlashcardSetHandler(setStore store.FlashcardSetStore, log *slog.Logger) *FlashcardSetHandler {
	if log == nil {
		log = slog.Default()
	}
	return &FlashcardSetHandler{
		setStore:  setStore,
		validator: validator.New(),
		logger:    log.With(slog.String("component", "flashcard_set_handler")),
	}
}

// SaveSet handles POST /api/flashcard-sets requests. Saving always creates
// a new set with a fresh ID; sets are immutable once stored.
func (h *FlashcardSetHandler) SaveSet(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	var req SaveFlashcardSetRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	cards := make([]domain.Flashcard, 0, len(req.Cards))
	for _, c := range req.Cards {
		cards = append(cards, domain.Flashcard{Question: c.Question, Answer: c.Answer})
	}

	set, err := domain.NewFlashcardSet(userID, req.Title, cards)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid flashcard set", err)
		return
	}

	if err := h.setStore.Create(r.Context(), set); err != nil {
		HandleAPIError(w, r, err, "Failed to save flashcard set")
		return
	}

	log.Info("flashcard set saved",
		slog.String("set_id", set.ID.String()),
		slog.String("user_id", userID.String()),
		slog.Int("card_count", len(set.Cards)))

	shared.RespondWithJSON(w, r, http.StatusCreated, setToResponse(set))
}

// ListSets handles GET /api/flashcard-sets requests.
func (h *FlashcardSetHandler) ListSets(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	sets, err := h.setStore.ListByUser(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list flashcard sets")
		return
	}

	responses := make([]FlashcardSetResponse, 0, len(sets))
	for _, set := range sets {
		responses = append(responses, setToResponse(set))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, responses)
}

// DeleteSet handles DELETE /api/flashcard-sets/{id} requests. Deleting a
// set that does not exist under the caller's partition returns 404, even
// if the set exists under another user.
func (h *FlashcardSetHandler) DeleteSet(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, setID, ok := handleUserIDAndPathUUID(w, r, "id", log)
	if !ok {
		return
	}

	if err := h.setStore.Delete(r.Context(), userID, setID); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
