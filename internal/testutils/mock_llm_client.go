// Package testutils provides shared test doubles for the scoring
// pipeline.
package testutils

import (
	"context"
	"sync"

	"github.com/ahrav/go-lmscore/internal/ports"
)

// MockLLMClient implements ports.LLMClient with scripted responses
// consumed in FIFO order. It records every prompt it receives so tests
// can assert on call counts and exact prompt bytes.
type MockLLMClient struct {
	mu        sync.Mutex
	model     string
	responses []string
	err       error
	failAfter int
	prompts   []string
}

// Compile-time interface check.
var _ ports.LLMClient = (*MockLLMClient)(nil)

// NewMockLLMClient creates a mock that returns the given responses in
// order. When the script runs out, the last response repeats.
func NewMockLLMClient(model string, responses ...string) *MockLLMClient {
	return &MockLLMClient{model: model, responses: responses, failAfter: -1}
}

// FailWith makes every subsequent call return err instead of a
// response.
func (m *MockLLMClient) FailWith(err error) *MockLLMClient {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
	m.failAfter = 0
	return m
}

// FailAfter makes calls succeed n times, then return err.
func (m *MockLLMClient) FailAfter(n int, err error) *MockLLMClient {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
	m.failAfter = n
	return m
}

// Complete returns the next scripted response, honoring any configured
// failure and context cancellation.
func (m *MockLLMClient) Complete(ctx context.Context, prompt string, options map[string]any) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.err != nil && len(m.prompts) >= m.failAfter {
		return "", m.err
	}

	m.prompts = append(m.prompts, prompt)

	idx := len(m.prompts) - 1
	if idx >= len(m.responses) {
		idx = len(m.responses) - 1
	}
	if idx < 0 {
		return "", nil
	}
	return m.responses[idx], nil
}

// EstimateTokens approximates tokens as one per four characters.
func (m *MockLLMClient) EstimateTokens(text string) (int, error) {
	return (len(text) + 3) / 4, nil
}

// GetModel returns the mock's model identifier.
func (m *MockLLMClient) GetModel() string { return m.model }

// CallCount reports how many successful calls the mock served.
func (m *MockLLMClient) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.prompts)
}

// Prompts returns a copy of all prompts received, in call order.
func (m *MockLLMClient) Prompts() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.prompts))
	copy(out, m.prompts)
	return out
}
