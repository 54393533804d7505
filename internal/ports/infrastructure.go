// Package ports defines the interfaces between the scoring engine and
// its infrastructure: language model clients and metrics collection.
package ports

import (
	"context"
	"time"
)

// LLMClient defines the interface for interacting with a
// chat-completion-style inference endpoint.
// Implementations handle provider-specific details like authentication,
// request formatting, and response parsing. The endpoint is treated as
// a black box: one call in, raw generated text out.
type LLMClient interface {
	// Complete sends a completion request to the inference endpoint and
	// returns the raw generated text. Exactly one outbound network call
	// is made per invocation; retry policy, if any, belongs to the
	// caller, never to the client.
	//
	// The options map carries request-shaping parameters without
	// changing the interface. Recognized options include:
	//   - "temperature": float64
	//   - "max_tokens": int
	//   - "model": string (overrides the configured model)
	//   - "thinking": bool (allow deliberation tokens before the answer)
	Complete(ctx context.Context, prompt string, options map[string]any) (string, error)

	// EstimateTokens calculates the approximate token count for a given
	// text. Useful for cost estimation; the method may vary by provider.
	EstimateTokens(text string) (int, error)

	// GetModel returns the model identifier used by this client,
	// for logging and debugging.
	GetModel() string
}

// MetricsCollector defines the interface for collecting operational
// metrics. Implementations integrate with observability platforms such
// as Prometheus.
type MetricsCollector interface {
	// RecordLatency records the execution time of an operation.
	RecordLatency(operation string, duration time.Duration, labels map[string]string)

	// RecordCounter increments a counter metric. Used for events like
	// inference calls, parse fallbacks, and endpoint errors.
	RecordCounter(metric string, value float64, labels map[string]string)

	// RecordGauge sets the current value of a gauge metric.
	RecordGauge(metric string, value float64, labels map[string]string)

	// RecordHistogram records a value in a histogram, such as request
	// latency or the distribution of final scores.
	RecordHistogram(metric string, value float64, labels map[string]string)
}
