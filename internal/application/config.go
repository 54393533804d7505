// Package application wires configuration, the inference client, and
// the scoring engine into a runnable whole.
package application

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/ahrav/go-lmscore/infrastructure/scoring"
	"github.com/ahrav/go-lmscore/internal/domain"
)

// Environment variables that override file configuration. The server
// address and token are routinely injected by deployment tooling, so
// they always win over the YAML file.
const (
	EnvServerURL    = "SERVER_URL"
	EnvAPIToken     = "API_TOKEN"
	EnvModel        = "LM_MODEL"
	EnvEnsemble     = "ENSEMBLE"
	EnvAggregation  = "AGGREGATION"
	EnvEnsembleSize = "ENSEMBLE_SIZE"
	EnvThinking     = "THINKING"
	EnvJudgeURL     = "JUDGE_URL"
	EnvJudgeToken   = "JUDGE_API_TOKEN"
	EnvJudgeModel   = "JUDGE_MODEL"
)

// ServerConfig identifies the inference endpoint and how to reach it.
type ServerConfig struct {
	// Provider selects the client implementation to instantiate.
	Provider string `yaml:"provider" validate:"required,oneof=openai anthropic google"`
	// URL is the base address of an OpenAI-compatible endpoint. Leave
	// empty to use the provider's hosted API.
	URL string `yaml:"url" validate:"omitempty,url"`
	// APIToken authenticates requests to the endpoint.
	APIToken string `yaml:"api_token" validate:"required"`
	// Model overrides the provider's default model when set.
	Model string `yaml:"model"`
	// TimeoutSeconds bounds each inference call end to end.
	TimeoutSeconds int `yaml:"timeout_seconds" validate:"min=1,max=3600"`
	// RateLimit caps sustained requests per second; zero disables
	// client-side rate limiting.
	RateLimit float64 `yaml:"rate_limit" validate:"min=0,max=1000"`
}

// JudgeConfig describes the optional stronger model used to grade
// benchmark agreement. Disabled unless Enabled is set.
type JudgeConfig struct {
	// Enabled switches judge comparison on during benchmark runs.
	Enabled bool `yaml:"enabled"`
	// Provider selects the judge's client implementation.
	Provider string `yaml:"provider" validate:"omitempty,oneof=openai anthropic google"`
	// URL is the judge endpoint's base address.
	URL string `yaml:"url" validate:"omitempty,url"`
	// APIToken authenticates judge requests.
	APIToken string `yaml:"api_token"`
	// Model names the judge model.
	Model string `yaml:"model"`
}

// AppConfig is the root configuration for the scoring service.
type AppConfig struct {
	// Server configures the inference endpoint.
	Server ServerConfig `yaml:"server"`
	// Scoring configures ensemble behavior and sampling parameters.
	Scoring scoring.Config `yaml:"scoring"`
	// Judge configures optional benchmark grading by a stronger model.
	Judge JudgeConfig `yaml:"judge"`
	// MetricsEnabled registers Prometheus collectors when true.
	MetricsEnabled bool `yaml:"metrics_enabled"`
	// TracingEnabled wraps inference calls in OpenTelemetry spans.
	TracingEnabled bool `yaml:"tracing_enabled"`
	// DatabasePath locates the SQLite database used by the CLI.
	DatabasePath string `yaml:"database_path"`
}

var validate = validator.New()

// DefaultConfig returns a configuration suitable for a local
// OpenAI-compatible inference server.
func DefaultConfig() AppConfig {
	return AppConfig{
		Server: ServerConfig{
			Provider:       "openai",
			URL:            "http://localhost:1234/v1",
			APIToken:       "dummy",
			TimeoutSeconds: 120,
		},
		Scoring:      scoring.DefaultConfig(),
		DatabasePath: "lmscore.db",
	}
}

// LoadConfig reads YAML configuration from path, applies environment
// overrides, and validates the result. An empty path skips the file
// and builds entirely from defaults plus environment.
func LoadConfig(path string) (AppConfig, error) {
	config := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return AppConfig{}, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &config); err != nil {
			return AppConfig{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	if err := config.applyEnvironment(); err != nil {
		return AppConfig{}, err
	}
	if err := config.Validate(); err != nil {
		return AppConfig{}, err
	}
	return config, nil
}

// applyEnvironment overlays recognized environment variables onto the
// configuration.
func (c *AppConfig) applyEnvironment() error {
	if v := os.Getenv(EnvServerURL); v != "" {
		c.Server.URL = v
	}
	if v := os.Getenv(EnvAPIToken); v != "" {
		c.Server.APIToken = v
	}
	if v := os.Getenv(EnvModel); v != "" {
		c.Server.Model = v
	}
	if v := os.Getenv(EnvAggregation); v != "" {
		c.Scoring.Aggregation = scoring.AggregationPolicy(strings.ToLower(v))
	}
	if v := os.Getenv(EnvEnsemble); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not a boolean", domain.ErrInvalidConfiguration, EnvEnsemble, v)
		}
		c.Scoring.Ensemble = enabled
	}
	if v := os.Getenv(EnvEnsembleSize); v != "" {
		size, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not an integer", domain.ErrInvalidConfiguration, EnvEnsembleSize, v)
		}
		c.Scoring.EnsembleSize = size
	}
	if v := os.Getenv(EnvThinking); v != "" {
		thinking, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not a boolean", domain.ErrInvalidConfiguration, EnvThinking, v)
		}
		c.Scoring.Thinking = thinking
	}
	if v := os.Getenv(EnvJudgeURL); v != "" {
		c.Judge.URL = v
	}
	if v := os.Getenv(EnvJudgeToken); v != "" {
		c.Judge.APIToken = v
	}
	if v := os.Getenv(EnvJudgeModel); v != "" {
		c.Judge.Model = v
	}
	return nil
}

// Validate checks structural constraints on the configuration.
func (c *AppConfig) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidConfiguration, err)
	}
	return nil
}
