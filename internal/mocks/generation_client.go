package mocks

import (
	"context"
	"sync"

	"github.com/cramdeck/cramdeck-api/internal/generation"
)

// MockGenerationClient implements generation.Client for testing
type MockGenerationClient struct {
	// CompleteFn allows test cases to mock the Complete behavior
	CompleteFn func(ctx context.Context, instruction string, params generation.Params) (string, error)

	// Default values used when CompleteFn isn't defined
	Response string
	Err      error

	// Call tracking for verification
	CompleteCalls struct {
		mu           sync.Mutex
		Count        int
		Instructions []string
		Params       []generation.Params
	}
}

// Complete implements the generation.Client interface
func (m *MockGenerationClient) Complete(
	ctx context.Context,
	instruction string,
	params generation.Params,
) (string, error) {
	// Track call details for verification
	m.CompleteCalls.mu.Lock()
	m.CompleteCalls.Count++
	m.CompleteCalls.Instructions = append(m.CompleteCalls.Instructions, instruction)
	m.CompleteCalls.Params = append(m.CompleteCalls.Params, params)
	m.CompleteCalls.mu.Unlock()

	// Use custom function if provided
	if m.CompleteFn != nil {
		return m.CompleteFn(ctx, instruction, params)
	}

	// Return default values
	return m.Response, m.Err
}

// CallCount returns the number of times Complete was invoked.
func (m *MockGenerationClient) CallCount() int {
	m.CompleteCalls.mu.Lock()
	defer m.CompleteCalls.mu.Unlock()
	return m.CompleteCalls.Count
}
