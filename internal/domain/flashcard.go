package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Flashcard validation errors
var (
	ErrFlashcardQuestionEmpty = errors.New("flashcard question cannot be empty")
	ErrFlashcardAnswerEmpty   = errors.New("flashcard answer cannot be empty")

	ErrSetIDEmpty     = errors.New("flashcard set ID cannot be empty")
	ErrSetUserIDEmpty = errors.New("flashcard set user ID cannot be empty")
	ErrSetCardsEmpty  = errors.New("flashcard set must contain at least one card")
)

// DefaultSetTitle is used when a flashcard set is loaded without a title.
const DefaultSetTitle = "Untitled Set"

// Flashcard is a single question/answer pair. Both fields are non-empty
// trimmed strings; the generation parser enforces this before a Flashcard
// is ever constructed, and Validate re-checks it at the persistence boundary.
type Flashcard struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Validate checks that both sides of the card carry content.
func (f Flashcard) Validate() error {
	if strings.TrimSpace(f.Question) == "" {
		return ErrFlashcardQuestionEmpty
	}
	if strings.TrimSpace(f.Answer) == "" {
		return ErrFlashcardAnswerEmpty
	}
	return nil
}

// FlashcardSet is a named, ordered collection of flashcards owned by one
// user. Sets are immutable once saved; re-saving creates a new set rather
// than mutating an existing one.
type FlashcardSet struct {
	ID        uuid.UUID   `json:"id"`
	UserID    uuid.UUID   `json:"user_id"`
	Title     string      `json:"title"`
	Cards     []Flashcard `json:"cards"`
	CreatedAt time.Time   `json:"created_at"`
}

// NewFlashcardSet creates a new FlashcardSet owned by the given user.
// An empty title falls back to DefaultSetTitle. Returns an error if
// validation fails.
func NewFlashcardSet(userID uuid.UUID, title string, cards []Flashcard) (*FlashcardSet, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		title = DefaultSetTitle
	}

	set := &FlashcardSet{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     title,
		Cards:     cards,
		CreatedAt: time.Now().UTC(),
	}

	if err := set.Validate(); err != nil {
		return nil, err
	}

	return set, nil
}

// Validate checks if the FlashcardSet has valid data.
func (s *FlashcardSet) Validate() error {
	if s.ID == uuid.Nil {
		return ErrSetIDEmpty
	}
	if s.UserID == uuid.Nil {
		return ErrSetUserIDEmpty
	}
	if len(s.Cards) == 0 {
		return ErrSetCardsEmpty
	}
	for _, card := range s.Cards {
		if err := card.Validate(); err != nil {
			return err
		}
	}
	return nil
}
