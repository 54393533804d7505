package llm

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRequestOptions(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		options := ParseRequestOptions(nil, "default-model")

		assert.Equal(t, DefaultMaxTokens, options.MaxTokens)
		assert.Equal(t, "default-model", options.Model)
		assert.True(t, options.Thinking)
		assert.Nil(t, options.Temperature)
	})

	t.Run("explicit values", func(t *testing.T) {
		options := ParseRequestOptions(map[string]any{
			"max_tokens":  500,
			"model":       "override-model",
			"temperature": 0.7,
			"thinking":    false,
		}, "default-model")

		assert.Equal(t, 500, options.MaxTokens)
		assert.Equal(t, "override-model", options.Model)
		assert.False(t, options.Thinking)
		require.NotNil(t, options.Temperature)
		assert.InDelta(t, 0.7, *options.Temperature, 0.001)
	})

	t.Run("invalid values fall back", func(t *testing.T) {
		options := ParseRequestOptions(map[string]any{
			"max_tokens":  -5,
			"model":       "",
			"temperature": 3.5,
		}, "default-model")

		assert.Equal(t, DefaultMaxTokens, options.MaxTokens)
		assert.Equal(t, "default-model", options.Model)
		assert.Nil(t, options.Temperature, "out-of-range temperature must be ignored")
	})
}

func TestTokenCounter(t *testing.T) {
	counter := NewTokenCounter()

	assert.Equal(t, 0, counter.EstimateTokens(""))
	assert.Equal(t, 2, counter.EstimateTokens("abcdefgh"))
	assert.Equal(t, 25, counter.GetTokenCount(25, "ignored"))
	assert.Equal(t, 2, counter.GetTokenCount(0, "abcdefgh"))
}

func TestValidateBaseURL(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expectErr bool
	}{
		{name: "empty is valid", input: "", expectErr: false},
		{name: "http URL", input: "http://localhost:1234/v1", expectErr: false},
		{name: "https URL", input: "https://api.example.com", expectErr: false},
		{name: "missing scheme", input: "localhost:1234", expectErr: true},
		{name: "bad scheme", input: "ftp://example.com", expectErr: true},
		{name: "no host", input: "http://", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateBaseURL(tt.input)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateTimeout(t *testing.T) {
	assert.Equal(t, time.Duration(0), ValidateTimeout(0))
	assert.Equal(t, MinTimeout, ValidateTimeout(time.Millisecond))
	assert.Equal(t, MaxTimeout, ValidateTimeout(time.Hour))
	assert.Equal(t, 30*time.Second, ValidateTimeout(30*time.Second))
}

func TestClampFloat64(t *testing.T) {
	assert.Equal(t, 0.0, ClampFloat64(-1.0, 0.0, 1.0))
	assert.Equal(t, 1.0, ClampFloat64(2.0, 0.0, 1.0))
	assert.Equal(t, 0.5, ClampFloat64(0.5, 0.0, 1.0))
}
