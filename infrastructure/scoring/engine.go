package scoring

import (
	"context"
	"fmt"

	"github.com/ahrav/go-lmscore/internal/domain"
	"github.com/ahrav/go-lmscore/internal/ports"
)

// Config controls engine behavior for every invocation.
type Config struct {
	// Ensemble enables repeated sampling of the same prompt.
	Ensemble bool `yaml:"ensemble" json:"ensemble"`

	// Aggregation selects how ensemble scores combine. Ignored when
	// Ensemble is false.
	Aggregation AggregationPolicy `yaml:"aggregation" json:"aggregation" validate:"omitempty,oneof=majority average"`

	// EnsembleSize is the number of inference calls per invocation when
	// Ensemble is enabled.
	EnsembleSize int `yaml:"ensemble_size" json:"ensemble_size" validate:"min=1,max=25"`

	// Thinking permits extended reasoning output from the model. When
	// false, providers suppress reasoning so responses start with the
	// score token.
	Thinking bool `yaml:"thinking" json:"thinking"`

	// Temperature is the sampling temperature forwarded to the model.
	Temperature float64 `yaml:"temperature" json:"temperature" validate:"min=0,max=2"`

	// MaxTokens bounds the response length per call.
	MaxTokens int `yaml:"max_tokens" json:"max_tokens" validate:"min=1,max=100000"`
}

// DefaultConfig returns the standard single-call configuration with
// ensemble parameters preset for when Ensemble is switched on.
func DefaultConfig() Config {
	return Config{
		Ensemble:     false,
		Aggregation:  AggregationMajority,
		EnsembleSize: 3,
		Thinking:     false,
		Temperature:  0.7,
		MaxTokens:    2000,
	}
}

// Engine evaluates content against a yes/no question and returns an
// integer confidence score. One engine handles one invocation at a
// time per caller goroutine; the engine itself holds no per-invocation
// state and is safe for concurrent use.
type Engine struct {
	client     ports.LLMClient
	config     Config
	builder    *PromptBuilder
	parser     *ResponseParser
	aggregator domain.Aggregator
	collector  ports.MetricsCollector
}

// NewEngine creates an engine bound to the given inference client.
// The collector may be nil to disable metrics.
func NewEngine(client ports.LLMClient, config Config, collector ports.MetricsCollector) (*Engine, error) {
	if client == nil {
		return nil, fmt.Errorf("%w: llm client is required", domain.ErrInvalidConfiguration)
	}
	if err := validate.Struct(config); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidConfiguration, err)
	}

	var aggregator domain.Aggregator
	if config.Ensemble {
		var err error
		aggregator, err = NewAggregator(config.Aggregation)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidConfiguration, err)
		}
	}

	return &Engine{
		client:     client,
		config:     config,
		builder:    NewPromptBuilder(),
		parser:     NewResponseParser(collector),
		aggregator: aggregator,
		collector:  collector,
	}, nil
}

// Config returns the engine's active configuration.
func (e *Engine) Config() Config { return e.config }

// Score evaluates contentParts against the yes/no question and returns
// a confidence score between MinScore and MaxScore.
//
// Preconditions are checked before any network traffic: contentParts
// must be non-empty and question must be a non-empty string. The same
// prompt is sent on every ensemble repetition; calls run sequentially
// and any transport failure aborts the whole invocation. Malformed
// responses do not abort: each parses independently to NeutralScore.
func (e *Engine) Score(ctx context.Context, contentParts []string, question string) (domain.Score, error) {
	if len(contentParts) == 0 {
		return 0, domain.NewPreconditionError("content", domain.ErrNoContent)
	}
	if question == "" {
		return 0, domain.NewPreconditionError("question", domain.ErrEmptyQuestion)
	}

	prompt, err := e.builder.Build(contentParts, question)
	if err != nil {
		return 0, fmt.Errorf("failed to build scoring prompt: %w", err)
	}

	options := map[string]any{
		"temperature": e.config.Temperature,
		"max_tokens":  e.config.MaxTokens,
		"thinking":    e.config.Thinking,
	}

	calls := 1
	if e.config.Ensemble {
		calls = e.config.EnsembleSize
	}

	scores := make([]domain.Score, 0, calls)
	for i := 0; i < calls; i++ {
		response, err := e.client.Complete(ctx, prompt, options)
		if err != nil {
			return 0, fmt.Errorf("inference call %d of %d failed: %w", i+1, calls, err)
		}
		scores = append(scores, e.parser.Parse(response))
	}

	final := scores[0]
	if len(scores) > 1 {
		final, err = e.aggregator.Aggregate(scores)
		if err != nil {
			return 0, fmt.Errorf("failed to aggregate ensemble scores: %w", err)
		}
	}

	if e.collector != nil {
		e.collector.RecordHistogram("lm_score_result", float64(final), map[string]string{
			"model": e.client.GetModel(),
		})
	}
	return final, nil
}
