package application

import (
	"fmt"
	"time"

	"golang.org/x/time/rate"

	"github.com/ahrav/go-lmscore/infrastructure/llm"
	"github.com/ahrav/go-lmscore/infrastructure/middleware"
	"github.com/ahrav/go-lmscore/infrastructure/scoring"
	"github.com/ahrav/go-lmscore/internal/ports"
)

// Assembly holds the constructed runtime components.
type Assembly struct {
	// Engine is the primary scoring engine.
	Engine *scoring.Engine
	// Judge is the benchmark grading engine; nil when disabled.
	Judge *scoring.Engine
	// Metrics is the Prometheus collector; nil when metrics are
	// disabled.
	Metrics ports.MetricsCollector
}

// Build constructs the inference client, middleware chain, and scoring
// engine from the configuration.
func Build(config AppConfig) (*Assembly, error) {
	var collector ports.MetricsCollector
	if config.MetricsEnabled {
		collector = middleware.NewPrometheusMetrics(nil)
	}

	client, err := buildClient(clientParams{
		provider:  config.Server.Provider,
		url:       config.Server.URL,
		apiToken:  config.Server.APIToken,
		model:     config.Server.Model,
		timeout:   time.Duration(config.Server.TimeoutSeconds) * time.Second,
		rateLimit: config.Server.RateLimit,
		tracing:   config.TracingEnabled,
		collector: collector,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build inference client: %w", err)
	}

	engine, err := scoring.NewEngine(client, config.Scoring, collector)
	if err != nil {
		return nil, fmt.Errorf("failed to build scoring engine: %w", err)
	}

	assembly := &Assembly{Engine: engine, Metrics: collector}

	if config.Judge.Enabled {
		judgeClient, err := buildClient(clientParams{
			provider:  config.Judge.Provider,
			url:       config.Judge.URL,
			apiToken:  config.Judge.APIToken,
			model:     config.Judge.Model,
			timeout:   time.Duration(config.Server.TimeoutSeconds) * time.Second,
			tracing:   config.TracingEnabled,
			collector: collector,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to build judge client: %w", err)
		}

		// The judge always runs a single call; ensemble sampling of the
		// grader would only grade the grader.
		judgeScoring := config.Scoring
		judgeScoring.Ensemble = false

		judge, err := scoring.NewEngine(judgeClient, judgeScoring, collector)
		if err != nil {
			return nil, fmt.Errorf("failed to build judge engine: %w", err)
		}
		assembly.Judge = judge
	}

	return assembly, nil
}

type clientParams struct {
	provider  string
	url       string
	apiToken  string
	model     string
	timeout   time.Duration
	rateLimit float64
	tracing   bool
	collector ports.MetricsCollector
}

// buildClient assembles an LLM client with its middleware chain.
// Ordering matters: tracing wraps everything so spans cover queueing
// and timeout handling, the rate limiter gates before the deadline
// starts, and the timeout sits closest to the transport.
func buildClient(params clientParams) (ports.LLMClient, error) {
	var chain []llm.Middleware

	if params.tracing {
		chain = append(chain, llm.TracingMiddleware("lmscore"))
	}
	if params.collector != nil {
		chain = append(chain, llm.MetricsMiddleware(params.provider, params.collector))
	}
	if params.rateLimit > 0 {
		chain = append(chain, llm.RateLimitMiddleware(rate.Limit(params.rateLimit), 1))
	}
	if params.timeout > 0 {
		chain = append(chain, llm.TimeoutMiddleware(params.timeout))
	}

	return llm.NewClient(params.provider, llm.ClientConfig{
		APIKey:     params.apiToken,
		Model:      params.model,
		BaseURL:    params.url,
		Timeout:    params.timeout,
		Middleware: chain,
	})
}
