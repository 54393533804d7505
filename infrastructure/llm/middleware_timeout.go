package llm

import (
	"context"
	"time"
)

// timeoutLLM bounds each request with a context deadline so a hung
// endpoint cannot stall a scoring call indefinitely. Expiry surfaces as
// a timeout-classified ProviderError from the provider, never as a
// silent default score.
type timeoutLLM struct {
	next    CoreLLM
	timeout time.Duration
}

// TimeoutMiddleware creates middleware that enforces a per-request
// timeout. Timed-out requests are not retried at this layer.
func TimeoutMiddleware(timeout time.Duration) Middleware {
	return func(next CoreLLM) CoreLLM {
		return &timeoutLLM{next: next, timeout: timeout}
	}
}

// DoRequest executes the request under a deadline-bound context.
func (t *timeoutLLM) DoRequest(ctx context.Context, prompt string, opts map[string]any) (string, int, int, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()
	return t.next.DoRequest(ctx, prompt, opts)
}

// GetModel returns the model name from the wrapped implementation.
func (t *timeoutLLM) GetModel() string { return t.next.GetModel() }

// SetModel updates the model name in the wrapped implementation.
func (t *timeoutLLM) SetModel(m string) { t.next.SetModel(m) }
