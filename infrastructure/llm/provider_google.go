package llm

import (
	"context"
	"errors"
	"fmt"
	"math"

	"google.golang.org/api/googleapi"
	"google.golang.org/genai"
)

// GoogleDefaultModel is the model used when configuration omits one.
const GoogleDefaultModel = "gemini-2.0-flash-exp"

func init() {
	RegisterProviderFactory("google", newGoogleProvider)
}

// googleProvider implements CoreLLM for Google's Gemini API.
type googleProvider struct {
	BaseProvider
	client          *genai.Client
	tokenCounter    *TokenCounter
	errorClassifier *ErrorClassifier
}

func newGoogleProvider(config ClientConfig) (CoreLLM, error) {
	if config.APIKey == "" {
		return nil, ErrEmptyAPIKey
	}

	model := config.Model
	if model == "" {
		model = GoogleDefaultModel
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  config.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Google client: %w", err)
	}

	return &googleProvider{
		BaseProvider:    BaseProvider{model: model},
		client:          client,
		tokenCounter:    NewTokenCounter(),
		errorClassifier: &ErrorClassifier{Provider: "google"},
	}, nil
}

// DoRequest sends one GenerateContent request and returns the generated
// text with token usage.
func (p *googleProvider) DoRequest(ctx context.Context, prompt string, opts map[string]any) (string, int, int, error) {
	options := ParseRequestOptions(opts, p.GetModel())

	contents := []*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)}

	resp, err := p.client.Models.GenerateContent(ctx, options.Model, contents, p.buildGenerationConfig(options))
	if err != nil {
		return "", 0, 0, p.handleError(err)
	}

	content := resp.Text()
	if content == "" {
		return "", 0, 0, ErrEmptyResponse
	}

	tokensIn := p.usageTokens(resp.UsageMetadata, true, prompt)
	tokensOut := p.usageTokens(resp.UsageMetadata, false, content)

	return content, tokensIn, tokensOut, nil
}

func (p *googleProvider) buildGenerationConfig(options RequestOptions) *genai.GenerateContentConfig {
	config := &genai.GenerateContentConfig{}

	if options.Temperature != nil {
		config.Temperature = genai.Ptr(float32(ClampFloat64(*options.Temperature, 0.0, 2.0)))
	}

	if options.MaxTokens > 0 {
		if options.MaxTokens > math.MaxInt32 {
			config.MaxOutputTokens = math.MaxInt32
		} else {
			config.MaxOutputTokens = int32(options.MaxTokens)
		}
	}

	// Gemini exposes deliberation suppression directly: a zero thinking
	// budget skips chain-of-thought on thinking-capable models.
	if !options.Thinking {
		config.ThinkingConfig = &genai.ThinkingConfig{
			ThinkingBudget: genai.Ptr(int32(0)),
		}
	}

	return config
}

func (p *googleProvider) usageTokens(usage *genai.GenerateContentResponseUsageMetadata, isInput bool, text string) int {
	if usage != nil {
		if isInput && usage.PromptTokenCount > 0 {
			return int(usage.PromptTokenCount)
		}
		if !isInput && usage.CandidatesTokenCount > 0 {
			return int(usage.CandidatesTokenCount)
		}
	}
	return p.tokenCounter.EstimateTokens(text)
}

func (p *googleProvider) handleError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return p.errorClassifier.ClassifyContextError(err)
	}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		message := apiErr.Message
		if message == "" && len(apiErr.Errors) > 0 {
			message = apiErr.Errors[0].Message
		}
		return p.errorClassifier.ClassifyHTTPError(apiErr.Code, message, err)
	}

	return NewProviderError("google", ErrorTypeNetwork, 0, "request failed", err)
}
