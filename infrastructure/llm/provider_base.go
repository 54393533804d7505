package llm

import (
	"fmt"
	"net/url"
	"sync"
	"time"
)

// Request-shaping defaults shared by all providers.
const (
	// DefaultMaxTokens bounds generation length when the caller does not
	// specify one. Generous enough for deliberation tokens plus a score.
	DefaultMaxTokens = 2000

	// ThinkSkipPrefix is the generation prefix used to signal that
	// deliberation has already concluded. Prefilling it forces reasoning
	// models served over OpenAI-compatible endpoints to skip their
	// chain-of-thought and answer directly.
	ThinkSkipPrefix = "<think>\n\n</think>\n\n"

	// MinTimeout and MaxTimeout bound client-side request timeouts.
	MinTimeout = 1 * time.Second
	MaxTimeout = 10 * time.Minute
)

// BaseProvider provides common, thread-safe model-name handling for
// provider implementations.
type BaseProvider struct {
	mu    sync.RWMutex
	model string
}

// GetModel returns the currently configured model name.
func (b *BaseProvider) GetModel() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.model
}

// SetModel updates the model name for subsequent requests.
func (b *BaseProvider) SetModel(model string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.model = model
}

// RequestOptions is the standardized set of request parameters extracted
// from a generic options map.
type RequestOptions struct {
	// MaxTokens caps the number of generated tokens.
	MaxTokens int
	// Model identifies the model for this request.
	Model string
	// Temperature controls sampling randomness; nil uses the provider
	// default. The ensemble relies on a non-zero temperature for
	// diversity between repetitions.
	Temperature *float64
	// Thinking controls whether the endpoint may emit deliberation
	// tokens before the answer. When false, the provider shapes the
	// request so generation starts past the deliberation phase. The
	// response parser works identically either way.
	Thinking bool
}

// ParseRequestOptions extracts and validates request parameters from an
// options map, applying defaults for missing or invalid entries.
func ParseRequestOptions(opts map[string]any, defaultModel string) RequestOptions {
	options := RequestOptions{
		MaxTokens: extractInt(opts, "max_tokens", DefaultMaxTokens, func(v int) bool { return v > 0 }),
		Model:     extractString(opts, "model", defaultModel),
		Thinking:  extractBool(opts, "thinking", true),
	}

	if temp, ok := extractFloat64(opts, "temperature"); ok && temp >= 0.0 && temp <= 2.0 {
		options.Temperature = &temp
	}

	return options
}

func extractInt(opts map[string]any, key string, defaultVal int, valid func(int) bool) int {
	if opts == nil {
		return defaultVal
	}
	if v, ok := opts[key].(int); ok && (valid == nil || valid(v)) {
		return v
	}
	return defaultVal
}

func extractString(opts map[string]any, key, defaultVal string) string {
	if opts == nil {
		return defaultVal
	}
	if v, ok := opts[key].(string); ok && v != "" {
		return v
	}
	return defaultVal
}

func extractBool(opts map[string]any, key string, defaultVal bool) bool {
	if opts == nil {
		return defaultVal
	}
	if v, ok := opts[key].(bool); ok {
		return v
	}
	return defaultVal
}

func extractFloat64(opts map[string]any, key string) (float64, bool) {
	if opts == nil {
		return 0, false
	}
	v, ok := opts[key].(float64)
	return v, ok
}

// TokenCounter estimates token counts when an exact tokenizer is not
// available for a model.
type TokenCounter struct {
	// CharactersPerToken is the average characters-per-token ratio.
	CharactersPerToken float64
}

// NewTokenCounter creates a TokenCounter with a ratio suitable for
// English text.
func NewTokenCounter() *TokenCounter {
	return &TokenCounter{CharactersPerToken: 4.0}
}

// EstimateTokens returns an estimated token count for text.
func (tc *TokenCounter) EstimateTokens(text string) int {
	if len(text) == 0 {
		return 0
	}
	return int(float64(len(text)) / tc.CharactersPerToken)
}

// GetTokenCount prefers the endpoint-reported count, falling back to an
// estimate when the endpoint omits usage data.
func (tc *TokenCounter) GetTokenCount(actualCount int, text string) int {
	if actualCount > 0 {
		return actualCount
	}
	return tc.EstimateTokens(text)
}

// ValidateBaseURL validates and normalizes a base URL string. An empty
// string is valid and selects the provider's default endpoint.
func ValidateBaseURL(baseURL string) (string, error) {
	if baseURL == "" {
		return "", nil
	}

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid URL format: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", fmt.Errorf("URL scheme must be http or https, got: %q", parsed.Scheme)
	}
	if parsed.Host == "" {
		return "", fmt.Errorf("URL must include a host")
	}

	return parsed.String(), nil
}

// ValidateTimeout clamps a timeout into [MinTimeout, MaxTimeout]. Zero
// or negative means the system default (no client-side timeout).
func ValidateTimeout(timeout time.Duration) time.Duration {
	if timeout <= 0 {
		return 0
	}
	if timeout < MinTimeout {
		return MinTimeout
	}
	if timeout > MaxTimeout {
		return MaxTimeout
	}
	return timeout
}

// ClampFloat64 clamps val into [min, max].
func ClampFloat64(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
