package generation

import (
	"strings"
	"text/template"
)

// DefaultCardCount is the number of flashcards requested when the caller
// does not specify an amount.
const DefaultCardCount = 10

// Detail selects the answer style for generated flashcards.
type Detail string

const (
	// DetailBrief asks for short, succinct answers.
	DetailBrief Detail = "brief"

	// DetailDetailed asks for longer, in-depth answers.
	DetailDetailed Detail = "detailed"
)

// Style returns the style directive interpolated into the flashcard prompt.
// Anything other than brief gets the detailed directive.
func (d Detail) Style() string {
	if d == DetailBrief {
		return "short, succinct answers"
	}
	return "detailed, in-depth answers"
}

// flashcardTemplate constrains the model to emit only a JSON array of
// {question, answer} objects. The notes are interpolated verbatim: the
// model, not this component, is responsible for treating them as data.
var flashcardTemplate = template.Must(template.New("flashcards").Parse(
	`Return ONLY valid JSON. Format: [{"question": "...", "answer": "..."}]
Generate exactly {{.Amount}} flashcards. Answers should be {{.Style}}.
Notes:
{{.Notes}}`))

// studyGuideTemplate asks for a hierarchically numbered plain-text outline
// and explicitly forbids markdown markup, since the guide body is rendered
// as-is. Comprehensiveness is requested over brevity.
var studyGuideTemplate = template.Must(template.New("study_guide").Parse(
	`Convert the following notes into a detailed, structured study guide.

Formatting rules (strict!):
- Only use numbers for topics and subtopics (e.g. 1., 2.1, 2.2, 3.)
- Use plain bullet points (• or -) for all info under each heading
- Do NOT use *, #, =, _, >, ~, or any extra symbols or markdown
- NO bolding, ALL CAPS, or font/size tricks
- Include more detail and core ideas, not one-liners!

Make the guide as comprehensive and organized as possible.

NOTES:
{{.Notes}}`))

// PromptBuilder turns (notes, options) into model instruction strings.
// It performs no validation of its own: emptiness of notes is rejected
// upstream by the engine, before any paid call is made.
type PromptBuilder struct{}

// NewPromptBuilder creates a PromptBuilder.
func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// Flashcards builds the instruction for flashcard generation. A
// non-positive amount falls back to DefaultCardCount.
func (b *PromptBuilder) Flashcards(notes string, amount int, detail Detail) string {
	if amount < 1 {
		amount = DefaultCardCount
	}

	var sb strings.Builder
	// Template execution over a strings.Builder with literal-only actions
	// cannot fail; Must at parse time covers the template itself.
	_ = flashcardTemplate.Execute(&sb, struct {
		Amount int
		Style  string
		Notes  string
	}{
		Amount: amount,
		Style:  detail.Style(),
		Notes:  notes,
	})

	return sb.String()
}

// StudyGuide builds the instruction for study-guide generation.
func (b *PromptBuilder) StudyGuide(notes string) string {
	var sb strings.Builder
	_ = studyGuideTemplate.Execute(&sb, struct{ Notes string }{Notes: notes})
	return sb.String()
}
