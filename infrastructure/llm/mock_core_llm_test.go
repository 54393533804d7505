package llm

import (
	"context"
	"sync"
	"time"
)

// stubCoreLLM is a minimal CoreLLM for middleware tests.
type stubCoreLLM struct {
	mu       sync.Mutex
	model    string
	response string
	err      error
	delay    time.Duration
	calls    int
}

func (s *stubCoreLLM) DoRequest(ctx context.Context, prompt string, opts map[string]any) (string, int, int, error) {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()

	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return "", 0, 0, ctx.Err()
		}
	}
	if err := ctx.Err(); err != nil {
		return "", 0, 0, err
	}
	if s.err != nil {
		return "", 0, 0, s.err
	}
	return s.response, 10, 2, nil
}

func (s *stubCoreLLM) GetModel() string { return s.model }

func (s *stubCoreLLM) SetModel(model string) { s.model = model }

func (s *stubCoreLLM) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}
