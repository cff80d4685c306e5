package generation

import (
	"encoding/json"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/cramdeck/cramdeck-api/internal/domain"
)

// Parser recovers structured flashcards from raw model output. Models
// reliably produce JSON-shaped but not strictly valid JSON: truncated
// arrays, trailing commas, wrapper objects, surrounding prose. Recovery is
// multi-stage and increasingly permissive, each stage attempted only when
// the previous one fails:
//
//  1. strict decode of the entire output
//  2. bracket extraction (first '[' to last ']')
//  3. repair: drop a truncated trailing fragment, strip trailing commas,
//     close unbalanced delimiters, then decode again
//  4. give up with a ParseError carrying a bounded excerpt
//
// Whatever stage produces a candidate list, a final projection filter keeps
// only entries carrying both a question and an answer, coercing values to
// strings and silently dropping malformed entries. Nine good cards and one
// bad one yield nine cards, not a failure.
type Parser struct{}

// NewParser creates a Parser.
func NewParser() *Parser {
	return &Parser{}
}

// ParseFlashcards extracts an ordered list of flashcards from raw model
// output. An empty list after filtering is a valid result, not an error:
// it signals that nothing usable was generated.
func (p *Parser) ParseFlashcards(raw string) ([]domain.Flashcard, error) {
	candidates, ok := decodeCandidates(raw)
	if !ok {
		// Strict decode failed; fall back to bracket extraction.
		start := strings.Index(raw, "[")
		if start == -1 {
			// Without even an opening bracket there is nothing to repair.
			return nil, newParseError("no JSON array found in output", raw, nil)
		}

		end := strings.LastIndex(raw, "]")
		var sliced string
		if end > start {
			sliced = raw[start : end+1]
		} else {
			// Truncated before the closing bracket; take everything and
			// let repair close the delimiters.
			sliced = raw[start:]
		}

		candidates, ok = decodeCandidates(sliced)
		if !ok {
			repaired := repairJSON(sliced)
			var err error
			candidates, err = decodeList(repaired)
			if err != nil {
				return nil, newParseError("repair failed", raw, err)
			}
		}
	}

	return projectFlashcards(candidates), nil
}

// ParseStudyGuide returns the model's study-guide text unmodified apart
// from trimming. The guide path performs no structural parsing.
func (p *Parser) ParseStudyGuide(raw string) string {
	return strings.TrimSpace(raw)
}

// decodeCandidates attempts a strict decode of text and normalizes the
// result into a candidate list. Accepts whatever shape is plausible:
// a bare array, an object wrapping the array under a "flashcards" key, or
// a single bare object treated as a one-element list. Returns ok=false if
// the text is not a single well-formed JSON value.
func decodeCandidates(text string) ([]any, bool) {
	value, err := decodeValue(text)
	if err != nil {
		return nil, false
	}

	switch v := value.(type) {
	case []any:
		return v, true
	case map[string]any:
		if inner, found := v["flashcards"]; found {
			if list, isList := inner.([]any); isList {
				return list, true
			}
		}
		return []any{v}, true
	default:
		return nil, false
	}
}

// decodeList is decodeCandidates for the repair path, where the input is
// known to be array-shaped and a failure must carry the decode error.
func decodeList(text string) ([]any, error) {
	value, err := decodeValue(text)
	if err != nil {
		return nil, err
	}
	list, ok := value.([]any)
	if !ok {
		return nil, errors.New("repaired text is not a JSON array")
	}
	return list, nil
}

// decodeValue decodes text as exactly one JSON value. Numbers decode as
// json.Number so coercion to string preserves what the model wrote.
// Trailing non-whitespace content is an error, which is what pushes output
// with surrounding prose into the bracket-extraction stage.
func decodeValue(text string) (any, error) {
	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()

	var value any
	if err := dec.Decode(&value); err != nil {
		return nil, err
	}

	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("trailing content after JSON value")
	}

	return value, nil
}

// repairJSON applies heuristic repairs to near-valid JSON array text:
//
//   - a fragment truncated mid-string (output-length limits cut anywhere)
//     is dropped back to the last complete object, never completed, so no
//     content is fabricated
//   - trailing commas before a closing bracket or brace are stripped
//   - unclosed delimiters are closed in stack order
//
// The result is not guaranteed to decode; the caller handles that.
func repairJSON(text string) string {
	text = dropTruncatedTail(text)
	text = stripTrailingCommas(text)
	return closeDelimiters(text)
}

// dropTruncatedTail removes an incomplete trailing fragment if the text
// ends inside a string literal, cutting back to the last completed object.
func dropTruncatedTail(text string) string {
	inString := false
	escaped := false
	lastClose := -1

	for i := 0; i < len(text); i++ {
		c := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '}':
			lastClose = i
		}
	}

	if inString && lastClose >= 0 {
		return text[:lastClose+1]
	}
	if inString {
		// No complete object at all; keep just the array opener so the
		// result repairs to an empty list.
		if start := strings.IndexByte(text, '['); start >= 0 {
			return text[:start+1]
		}
	}
	return text
}

// stripTrailingCommas removes commas that directly precede (modulo
// whitespace) a closing bracket or brace, which standard JSON forbids but
// models emit anyway. It also drops a dangling comma at the end of
// truncated text so closing delimiters can be appended cleanly.
func stripTrailingCommas(text string) string {
	inString := false
	escaped := false
	pendingComma := -1 // index into out of a comma that may need removal

	out := make([]byte, 0, len(text))
	for i := 0; i < len(text); i++ {
		c := text[i]
		if inString {
			out = append(out, c)
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			inString = true
			out = append(out, c)
			pendingComma = -1
		case ',':
			out = append(out, c)
			pendingComma = len(out) - 1
		case ' ', '\t', '\n', '\r':
			out = append(out, c)
		case ']', '}':
			if pendingComma >= 0 {
				// Remove the comma, keeping any whitespace after it.
				out = append(out[:pendingComma], out[pendingComma+1:]...)
			}
			out = append(out, c)
			pendingComma = -1
		default:
			out = append(out, c)
			pendingComma = -1
		}
	}

	// A comma at the very end of truncated text has nothing to separate.
	if pendingComma >= 0 {
		out = append(out[:pendingComma], out[pendingComma+1:]...)
	}

	return string(out)
}

// closeDelimiters appends the closers for any delimiters left open,
// innermost first.
func closeDelimiters(text string) string {
	inString := false
	escaped := false
	var stack []byte

	for i := 0; i < len(text); i++ {
		c := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{', '[':
			stack = append(stack, c)
		case '}', ']':
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		}
	}

	if len(stack) == 0 {
		return text
	}

	var sb strings.Builder
	sb.Grow(len(text) + len(stack))
	sb.WriteString(text)
	for i := len(stack) - 1; i >= 0; i-- {
		if stack[i] == '{' {
			sb.WriteByte('}')
		} else {
			sb.WriteByte(']')
		}
	}
	return sb.String()
}

// projectFlashcards keeps only candidate entries that are objects carrying
// both a question and an answer, coercing values to strings. Non-conforming
// entries are dropped silently, preserving the order of the rest.
func projectFlashcards(candidates []any) []domain.Flashcard {
	cards := make([]domain.Flashcard, 0, len(candidates))
	for _, entry := range candidates {
		record, ok := entry.(map[string]any)
		if !ok {
			continue
		}

		question, ok := coerceString(record["question"])
		if !ok {
			continue
		}
		answer, ok := coerceString(record["answer"])
		if !ok {
			continue
		}

		cards = append(cards, domain.Flashcard{
			Question: question,
			Answer:   answer,
		})
	}
	return cards
}

// coerceString converts a decoded JSON value to a non-empty trimmed string.
// Models occasionally emit numbers or booleans where strings belong; those
// are kept rather than dropped. Structured values and nulls are rejected.
func coerceString(value any) (string, bool) {
	var s string
	switch v := value.(type) {
	case string:
		s = v
	case json.Number:
		s = v.String()
	case bool:
		s = strconv.FormatBool(v)
	default:
		return "", false
	}

	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	return s, true
}
