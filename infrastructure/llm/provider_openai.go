package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIDefaultModel is the model used when configuration omits one.
// The reference deployment points BaseURL at a local inference server
// hosting a distilled reasoning model.
const OpenAIDefaultModel = "mlx-community/DeepSeek-R1-Distill-Qwen-7B-4bit"

func init() {
	RegisterProviderFactory("openai", newOpenAIProvider)
}

// openAIProvider implements CoreLLM against any OpenAI-compatible
// chat-completion endpoint, including local inference servers. This is
// the primary provider of the scoring engine.
type openAIProvider struct {
	BaseProvider
	client          *openai.Client
	tokenCounter    *TokenCounter
	errorClassifier *ErrorClassifier
}

func newOpenAIProvider(config ClientConfig) (CoreLLM, error) {
	if config.APIKey == "" {
		return nil, ErrEmptyAPIKey
	}

	model := config.Model
	if model == "" {
		model = OpenAIDefaultModel
	}

	clientConfig := openai.DefaultConfig(config.APIKey)

	if config.BaseURL != "" {
		validatedURL, err := ValidateBaseURL(config.BaseURL)
		if err != nil {
			return nil, fmt.Errorf("invalid BaseURL: %w", err)
		}
		clientConfig.BaseURL = validatedURL
	}

	if config.Timeout > 0 {
		clientConfig.HTTPClient = &http.Client{Timeout: ValidateTimeout(config.Timeout)}
	}

	return &openAIProvider{
		BaseProvider:    BaseProvider{model: model},
		client:          openai.NewClientWithConfig(clientConfig),
		tokenCounter:    NewTokenCounter(),
		errorClassifier: &ErrorClassifier{Provider: "openai"},
	}, nil
}

// DoRequest sends one chat-completion request and returns the generated
// text with token usage. No retries are performed at this layer.
func (p *openAIProvider) DoRequest(ctx context.Context, prompt string, opts map[string]any) (string, int, int, error) {
	options := ParseRequestOptions(opts, p.GetModel())

	resp, err := p.client.CreateChatCompletion(ctx, p.buildRequest(prompt, options))
	if err != nil {
		return "", 0, 0, p.handleError(err)
	}

	if len(resp.Choices) == 0 {
		return "", 0, 0, ErrNoResponseChoice
	}

	content := resp.Choices[0].Message.Content

	tokensIn := p.tokenCounter.GetTokenCount(resp.Usage.PromptTokens, prompt)
	tokensOut := p.tokenCounter.GetTokenCount(resp.Usage.CompletionTokens, content)

	return content, tokensIn, tokensOut, nil
}

func (p *openAIProvider) buildRequest(prompt string, options RequestOptions) openai.ChatCompletionRequest {
	messages := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleUser, Content: prompt},
	}

	// With thinking disabled, prefill an empty deliberation block so the
	// model continues from a concluded chain-of-thought and emits the
	// answer directly. OpenAI-compatible servers continue generation
	// from a trailing assistant message.
	if !options.Thinking {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleAssistant,
			Content: ThinkSkipPrefix,
		})
	}

	req := openai.ChatCompletionRequest{
		Model:    options.Model,
		Messages: messages,
	}

	if options.Temperature != nil {
		req.Temperature = float32(ClampFloat64(*options.Temperature, 0.0, 2.0))
	}
	if options.MaxTokens > 0 {
		req.MaxTokens = options.MaxTokens
	}

	return req
}

// handleError classifies API and context errors into ProviderError.
func (p *openAIProvider) handleError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return p.errorClassifier.ClassifyContextError(err)
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		message := apiErr.Message
		if message == "" {
			message = "unknown error"
		}
		return p.errorClassifier.ClassifyHTTPError(apiErr.HTTPStatusCode, message, err)
	}

	return NewProviderError("openai", ErrorTypeNetwork, 0, "request failed", err)
}
