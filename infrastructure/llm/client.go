// Package llm provides a unified client for chat-completion inference
// endpoints with pluggable providers and middleware.
//
// The package abstracts multiple providers (an OpenAI-compatible
// endpoint, Anthropic, Google) behind the ports.LLMClient interface
// while adding cross-cutting concerns — timeouts, rate limiting,
// metrics, tracing — through a middleware chain. The scoring engine
// depends only on the interface, so providers and middleware can change
// without touching scoring semantics.
//
// Basic usage:
//
//	client, err := llm.NewClient("openai", llm.ClientConfig{
//	    APIKey:  os.Getenv("API_TOKEN"),
//	    BaseURL: os.Getenv("SERVER_URL"),
//	    Model:   "mlx-community/DeepSeek-R1-Distill-Qwen-7B-4bit",
//	})
//	raw, err := client.Complete(ctx, prompt, nil)
package llm

import (
	"context"
	"fmt"
	"time"

	"github.com/ahrav/go-lmscore/internal/ports"
)

// CoreLLM defines the minimal interface a provider must implement.
// Middleware wraps any conforming implementation, so providers only
// handle the actual network exchange.
type CoreLLM interface {
	// DoRequest sends a prompt to the inference endpoint and returns the
	// generated text together with input and output token counts. The
	// opts map carries request-shaping parameters such as temperature,
	// max_tokens, or thinking.
	DoRequest(ctx context.Context, prompt string, opts map[string]any) (response string, tokensIn, tokensOut int, err error)

	// GetModel returns the currently configured model name.
	GetModel() string

	// SetModel updates the model used for subsequent requests.
	SetModel(model string)
}

// Middleware wraps a CoreLLM to add cross-cutting functionality without
// modifying provider logic.
type Middleware func(CoreLLM) CoreLLM

// ClientConfig holds all configuration for creating an LLM client.
type ClientConfig struct {
	// APIKey authenticates requests to the inference endpoint. A local
	// inference server may accept any non-empty token.
	APIKey string

	// Model is the model identifier passed through to the endpoint.
	Model string

	// BaseURL overrides the provider's default API endpoint. Required
	// for local OpenAI-compatible servers.
	BaseURL string

	// Timeout bounds individual requests. Zero means no client-side
	// timeout beyond the caller's context.
	Timeout time.Duration

	// Middleware is applied in order, the first entry outermost.
	Middleware []Middleware
}

// Client implements ports.LLMClient by delegating to a provider-specific
// CoreLLM wrapped in the configured middleware chain.
type Client struct {
	core    CoreLLM
	counter *TokenCounter
}

// ProviderFactory creates a CoreLLM implementation from configuration.
type ProviderFactory func(ClientConfig) (CoreLLM, error)

var providerFactories = map[string]ProviderFactory{}

// RegisterProviderFactory registers a provider under a name so it can be
// selected by configuration. Called from provider init functions.
func RegisterProviderFactory(providerType string, factory ProviderFactory) {
	providerFactories[providerType] = factory
}

// NewClient creates an LLM client for the named provider, assembling the
// middleware chain and validating configuration.
func NewClient(providerType string, config ClientConfig) (ports.LLMClient, error) {
	if config.APIKey == "" {
		return nil, ErrEmptyAPIKey
	}

	// An empty Model is allowed; each provider applies its own default.
	factory, ok := providerFactories[providerType]
	if !ok {
		return nil, fmt.Errorf("unknown provider: %s", providerType)
	}

	core, err := factory(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create provider: %w", err)
	}

	// Apply middleware in reverse so the first entry is outermost.
	for i := len(config.Middleware) - 1; i >= 0; i-- {
		core = config.Middleware[i](core)
	}

	return &Client{core: core, counter: NewTokenCounter()}, nil
}

// Complete sends a prompt to the inference endpoint and returns the raw
// generated text, discarding token usage.
func (c *Client) Complete(ctx context.Context, prompt string, options map[string]any) (string, error) {
	response, _, _, err := c.core.DoRequest(ctx, prompt, options)
	return response, err
}

// CompleteWithUsage sends a prompt and returns the response along with
// input and output token counts for usage tracking.
func (c *Client) CompleteWithUsage(ctx context.Context, prompt string, options map[string]any) (string, int, int, error) {
	return c.core.DoRequest(ctx, prompt, options)
}

// EstimateTokens returns an approximate token count for the given text.
func (c *Client) EstimateTokens(text string) (int, error) {
	return c.counter.EstimateTokens(text), nil
}

// GetModel returns the configured model name from the underlying provider.
func (c *Client) GetModel() string { return c.core.GetModel() }
