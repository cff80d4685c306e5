// Package openai implements the generation.Client interface using the
// OpenAI chat completions API via the official Go SDK.
package openai
