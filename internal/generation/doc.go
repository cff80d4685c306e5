// Package generation contains the flashcard and study-guide generation
// pipeline: prompt construction, the completion-client boundary to external
// LLM services, and the tolerant parser that recovers structured cards from
// probabilistically well-behaved model output. It abstracts the details of
// provider integration (Gemini, OpenAI), allowing the application to turn
// user notes into study material without coupling to any specific vendor.
package generation
