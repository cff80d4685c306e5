package generation

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPromptBuilder_Flashcards(t *testing.T) {
	t.Parallel()

	b := NewPromptBuilder()

	t.Run("includes notes and amount", func(t *testing.T) {
		t.Parallel()
		prompt := b.Flashcards("mitochondria are the powerhouse", 5, DetailBrief)

		assert.Contains(t, prompt, "mitochondria are the powerhouse")
		assert.Contains(t, prompt, "exactly 5 flashcards")
		assert.Contains(t, prompt, "ONLY valid JSON")
	})

	t.Run("defaults amount when non-positive", func(t *testing.T) {
		t.Parallel()
		prompt := b.Flashcards("notes", 0, DetailBrief)
		assert.Contains(t, prompt, "exactly "+strconv.Itoa(DefaultCardCount)+" flashcards")

		prompt = b.Flashcards("notes", -3, DetailBrief)
		assert.Contains(t, prompt, "exactly "+strconv.Itoa(DefaultCardCount)+" flashcards")
	})

	t.Run("brief style", func(t *testing.T) {
		t.Parallel()
		prompt := b.Flashcards("notes", 1, DetailBrief)
		assert.Contains(t, prompt, "short, succinct answers")
	})

	t.Run("detailed style", func(t *testing.T) {
		t.Parallel()
		prompt := b.Flashcards("notes", 1, DetailDetailed)
		assert.Contains(t, prompt, "detailed, in-depth answers")
	})

	t.Run("unknown detail falls back to detailed", func(t *testing.T) {
		t.Parallel()
		prompt := b.Flashcards("notes", 1, Detail("whatever"))
		assert.Contains(t, prompt, "detailed, in-depth answers")
	})
}

func TestPromptBuilder_StudyGuide(t *testing.T) {
	t.Parallel()

	b := NewPromptBuilder()
	prompt := b.StudyGuide("the krebs cycle")

	assert.Contains(t, prompt, "the krebs cycle")
	assert.Contains(t, prompt, "study guide")
	assert.Contains(t, prompt, "Do NOT use *")
}

func TestDetailStyle(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "short, succinct answers", DetailBrief.Style())
	assert.Equal(t, "detailed, in-depth answers", DetailDetailed.Style())
}
