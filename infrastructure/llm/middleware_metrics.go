package llm

import (
	"context"
	"time"

	"github.com/ahrav/go-lmscore/internal/ports"
)

// metricsLLM records request latency, outcomes, and token usage per
// inference call.
type metricsLLM struct {
	next      CoreLLM
	provider  string
	collector ports.MetricsCollector
}

// MetricsMiddleware creates middleware that reports request metrics to
// the given collector under the given provider label.
func MetricsMiddleware(provider string, collector ports.MetricsCollector) Middleware {
	return func(next CoreLLM) CoreLLM {
		return &metricsLLM{next: next, provider: provider, collector: collector}
	}
}

// DoRequest executes the request while recording latency, status, and
// token counters.
func (m *metricsLLM) DoRequest(ctx context.Context, prompt string, opts map[string]any) (string, int, int, error) {
	start := time.Now()
	response, tokensIn, tokensOut, err := m.next.DoRequest(ctx, prompt, opts)

	labels := map[string]string{
		"provider": m.provider,
		"model":    m.next.GetModel(),
		"status":   "success",
	}

	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			labels["status"] = "timeout"
		} else {
			labels["status"] = "error"
		}
	}

	if m.collector != nil {
		m.collector.RecordHistogram("llm_latency_seconds", time.Since(start).Seconds(), labels)
		m.collector.RecordCounter("llm_requests_total", 1, labels)

		if err == nil {
			labels["token_type"] = "input"
			m.collector.RecordCounter("llm_tokens_total", float64(tokensIn), labels)

			labels["token_type"] = "output"
			m.collector.RecordCounter("llm_tokens_total", float64(tokensOut), labels)
		}
	}

	return response, tokensIn, tokensOut, err
}

// GetModel returns the model name from the wrapped implementation.
func (m *metricsLLM) GetModel() string { return m.next.GetModel() }

// SetModel updates the model name in the wrapped implementation.
func (m *metricsLLM) SetModel(model string) { m.next.SetModel(model) }
