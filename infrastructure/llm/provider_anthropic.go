package llm

import (
	"context"
	"errors"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// AnthropicDefaultModel is the model used when configuration omits one.
const AnthropicDefaultModel = "claude-3-5-sonnet-20241022"

func init() {
	RegisterProviderFactory("anthropic", newAnthropicProvider)
}

// anthropicProvider implements CoreLLM for Anthropic's Messages API.
type anthropicProvider struct {
	BaseProvider
	client          anthropic.Client
	tokenCounter    *TokenCounter
	errorClassifier *ErrorClassifier
}

func newAnthropicProvider(config ClientConfig) (CoreLLM, error) {
	if config.APIKey == "" {
		return nil, ErrEmptyAPIKey
	}

	model := config.Model
	if model == "" {
		model = AnthropicDefaultModel
	}

	opts := []option.RequestOption{option.WithAPIKey(config.APIKey)}
	if config.BaseURL != "" {
		validatedURL, err := ValidateBaseURL(config.BaseURL)
		if err != nil {
			return nil, err
		}
		opts = append(opts, option.WithBaseURL(validatedURL))
	}

	return &anthropicProvider{
		BaseProvider:    BaseProvider{model: model},
		client:          anthropic.NewClient(opts...),
		tokenCounter:    NewTokenCounter(),
		errorClassifier: &ErrorClassifier{Provider: "anthropic"},
	}, nil
}

// DoRequest sends one Messages request and returns the generated text
// with token usage.
func (p *anthropicProvider) DoRequest(ctx context.Context, prompt string, opts map[string]any) (string, int, int, error) {
	options := ParseRequestOptions(opts, p.GetModel())

	messages := []anthropic.MessageParam{
		anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
	}

	// With thinking disabled, prefill the assistant turn with the score
	// cue so generation resumes at the numeral. Anthropic continues from
	// a trailing assistant message natively.
	if !options.Thinking {
		messages = append(messages, anthropic.NewAssistantMessage(anthropic.NewTextBlock("Score:")))
	}

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(options.Model),
		MaxTokens: int64(options.MaxTokens),
		Messages:  messages,
	}
	if options.Temperature != nil {
		params.Temperature = anthropic.Float(ClampFloat64(*options.Temperature, 0.0, 1.0))
	}

	message, err := p.client.Messages.New(ctx, params)
	if err != nil {
		return "", 0, 0, p.handleError(err)
	}

	var responseText strings.Builder
	for _, block := range message.Content {
		switch content := block.AsAny().(type) {
		case anthropic.TextBlock:
			responseText.WriteString(content.Text)
		}
	}

	responseStr := responseText.String()
	if responseStr == "" {
		return "", 0, 0, ErrEmptyResponse
	}

	tokensIn := p.tokenCounter.GetTokenCount(int(message.Usage.InputTokens), prompt)
	tokensOut := p.tokenCounter.GetTokenCount(int(message.Usage.OutputTokens), responseStr)

	return responseStr, tokensIn, tokensOut, nil
}

func (p *anthropicProvider) handleError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return p.errorClassifier.ClassifyContextError(err)
	}

	var apiErr *anthropic.Error
	if errors.As(err, &apiErr) {
		return p.errorClassifier.ClassifyHTTPError(apiErr.StatusCode, apiErr.Error(), err)
	}

	return NewProviderError("anthropic", ErrorTypeNetwork, 0, "request failed", err)
}
