package api

import (
	"time"

	"github.com/google/uuid"

	"github.com/cramdeck/cramdeck-api/internal/domain"
)

// Common request/response structures

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=12,max=72"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// AuthResponse defines the successful response for authentication endpoints.
type AuthResponse struct {
	// UserID is the unique identifier for the authenticated user
	UserID uuid.UUID `json:"user_id"`

	// AccessToken is the JWT token used for API authorization
	AccessToken string `json:"token"`

	// RefreshToken is the JWT token used to obtain new access tokens
	RefreshToken string `json:"refresh_token,omitempty"`

	// ExpiresAt is the ISO 8601 timestamp when the access token expires
	ExpiresAt string `json:"expires_at,omitempty"`
}

// RefreshTokenRequest defines the payload for the token refresh endpoint.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// RefreshTokenResponse defines the successful response for the token
// refresh endpoint.
type RefreshTokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresAt    string `json:"expires_at"`
}

// GenerateFlashcardsRequest defines the payload for flashcard generation.
// Amount defaults to generation.DefaultCardCount when omitted; Detail
// defaults to brief.
type GenerateFlashcardsRequest struct {
	Notes  string `json:"notes"  validate:"required"`
	Amount int    `json:"amount,omitempty" validate:"omitempty,min=1,max=50"`
	Detail string `json:"detail,omitempty" validate:"omitempty,oneof=brief detailed"`
}

// GenerateFlashcardsResponse carries the generated cards.
type GenerateFlashcardsResponse struct {
	Flashcards []domain.Flashcard `json:"flashcards"`
}

// GenerateStudyGuideRequest defines the payload for study guide generation.
type GenerateStudyGuideRequest struct {
	Notes string `json:"notes" validate:"required"`
}

// GenerateStudyGuideResponse carries the generated guide text.
type GenerateStudyGuideResponse struct {
	StudyGuide string `json:"study_guide"`
}

// CardPayload is the client-facing shape of a single flashcard.
type CardPayload struct {
	Question string `json:"question" validate:"required,min=1"`
	Answer   string `json:"answer"   validate:"required,min=1"`
}

// SaveFlashcardSetRequest defines the payload for saving a flashcard set.
type SaveFlashcardSetRequest struct {
	Title string        `json:"title,omitempty" validate:"omitempty,max=200"`
	Cards []CardPayload `json:"cards" validate:"required,min=1,dive"`
}

// FlashcardSetResponse is the client-facing shape of a stored set.
type FlashcardSetResponse struct {
	ID        string             `json:"id"`
	Title     string             `json:"title"`
	Cards     []domain.Flashcard `json:"cards"`
	CreatedAt time.Time          `json:"created_at"`
}

// SaveStudyGuideRequest defines the payload for saving a study guide.
type SaveStudyGuideRequest struct {
	Title   string `json:"title,omitempty" validate:"omitempty,max=200"`
	Content string `json:"content" validate:"required,min=1"`
}

// StudyGuideResponse is the client-facing shape of a stored guide.
type StudyGuideResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// setToResponse converts a domain.FlashcardSet to its response DTO.
func setToResponse(set *domain.FlashcardSet) FlashcardSetResponse {
	return FlashcardSetResponse{
		ID:        set.ID.String(),
		Title:     set.Title,
		Cards:     set.Cards,
		CreatedAt: set.CreatedAt,
	}
}

// guideToResponse converts a domain.StudyGuide to its response DTO.
func guideToResponse(guide *domain.StudyGuide) StudyGuideResponse {
	return StudyGuideResponse{
		ID:        guide.ID.String(),
		Title:     guide.Title,
		Content:   guide.Content,
		CreatedAt: guide.CreatedAt,
	}
}
