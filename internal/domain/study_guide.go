package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Study guide validation errors
var (
	ErrGuideIDEmpty      = errors.New("study guide ID cannot be empty")
	ErrGuideUserIDEmpty  = errors.New("study guide user ID cannot be empty")
	ErrGuideContentEmpty = errors.New("study guide content cannot be empty")
)

// DefaultGuideTitle is used when a study guide is loaded without a title.
const DefaultGuideTitle = "Untitled Guide"

// StudyGuide is a single generated structured-text document owned by one
// user. Content is plain outline text, never markdown. Guides share the
// set lifecycle: created on save, read on load, destroyed on delete.
type StudyGuide struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// NewStudyGuide creates a new StudyGuide owned by the given user.
// An empty title falls back to DefaultGuideTitle. Returns an error if
// validation fails.
func NewStudyGuide(userID uuid.UUID, title, content string) (*StudyGuide, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		title = DefaultGuideTitle
	}

	guide := &StudyGuide{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     title,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}

	if err := guide.Validate(); err != nil {
		return nil, err
	}

	return guide, nil
}

// Validate checks if the StudyGuide has valid data.
func (g *StudyGuide) Validate() error {
	if g.ID == uuid.Nil {
		return ErrGuideIDEmpty
	}
	if g.UserID == uuid.Nil {
		return ErrGuideUserIDEmpty
	}
	if strings.TrimSpace(g.Content) == "" {
		return ErrGuideContentEmpty
	}
	return nil
}
