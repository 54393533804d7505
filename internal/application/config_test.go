package application

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahrav/go-lmscore/infrastructure/scoring"
	"github.com/ahrav/go-lmscore/internal/domain"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	config, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "openai", config.Server.Provider)
	assert.Equal(t, "http://localhost:1234/v1", config.Server.URL)
	assert.False(t, config.Scoring.Ensemble)
	assert.Equal(t, 3, config.Scoring.EnsembleSize)
	assert.Equal(t, scoring.AggregationMajority, config.Scoring.Aggregation)
}

func TestLoadConfigFromFile(t *testing.T) {
	path := writeConfigFile(t, `
server:
  provider: openai
  url: http://inference.internal:8080/v1
  api_token: file-token
  timeout_seconds: 60
scoring:
  ensemble: true
  aggregation: average
  ensemble_size: 5
`)

	config, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "http://inference.internal:8080/v1", config.Server.URL)
	assert.Equal(t, "file-token", config.Server.APIToken)
	assert.Equal(t, 60, config.Server.TimeoutSeconds)
	assert.True(t, config.Scoring.Ensemble)
	assert.Equal(t, scoring.AggregationAverage, config.Scoring.Aggregation)
	assert.Equal(t, 5, config.Scoring.EnsembleSize)
}

func TestLoadConfigEnvironmentOverridesFile(t *testing.T) {
	path := writeConfigFile(t, `
server:
  provider: openai
  url: http://from-file:1234/v1
  api_token: file-token
  timeout_seconds: 60
`)

	t.Setenv(EnvServerURL, "http://from-env:9999/v1")
	t.Setenv(EnvAPIToken, "env-token")
	t.Setenv(EnvModel, "env-model")
	t.Setenv(EnvEnsemble, "true")
	t.Setenv(EnvAggregation, "AVERAGE")
	t.Setenv(EnvEnsembleSize, "7")
	t.Setenv(EnvThinking, "true")

	config, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "http://from-env:9999/v1", config.Server.URL)
	assert.Equal(t, "env-token", config.Server.APIToken)
	assert.Equal(t, "env-model", config.Server.Model)
	assert.True(t, config.Scoring.Ensemble)
	assert.Equal(t, scoring.AggregationAverage, config.Scoring.Aggregation)
	assert.Equal(t, 7, config.Scoring.EnsembleSize)
	assert.True(t, config.Scoring.Thinking)
}

func TestLoadConfigRejectsBadEnvironment(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "ensemble not boolean", key: EnvEnsemble, value: "maybe"},
		{name: "size not integer", key: EnvEnsembleSize, value: "three"},
		{name: "thinking not boolean", key: EnvThinking, value: "deep"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := LoadConfig("")
			assert.ErrorIs(t, err, domain.ErrInvalidConfiguration)
		})
	}
}

func TestLoadConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "unknown provider",
			content: `
server:
  provider: cohere
  api_token: token
  timeout_seconds: 60
`,
		},
		{
			name: "missing token",
			content: `
server:
  provider: openai
  api_token: ""
  timeout_seconds: 60
`,
		},
		{
			name: "malformed url",
			content: `
server:
  provider: openai
  url: "not a url"
  api_token: token
  timeout_seconds: 60
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfigFile(t, tt.content)
			_, err := LoadConfig(path)
			assert.ErrorIs(t, err, domain.ErrInvalidConfiguration)
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestBuildAssembly(t *testing.T) {
	config := DefaultConfig()

	assembly, err := Build(config)
	require.NoError(t, err)
	require.NotNil(t, assembly.Engine)
	assert.Nil(t, assembly.Judge)
	assert.Nil(t, assembly.Metrics)
}

func TestBuildAssemblyWithJudge(t *testing.T) {
	config := DefaultConfig()
	config.Judge = JudgeConfig{
		Enabled:  true,
		Provider: "openai",
		URL:      "http://localhost:11434/v1",
		APIToken: "judge-token",
		Model:    "judge-model",
	}

	assembly, err := Build(config)
	require.NoError(t, err)
	require.NotNil(t, assembly.Judge)
	assert.False(t, assembly.Judge.Config().Ensemble, "judge must run a single call")
}
