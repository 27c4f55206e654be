package nlp

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/sashabaranov/go-openai"
)

// OpenAIProvider implements Provider with OpenAI chat completions
type OpenAIProvider struct {
	client      *openai.Client
	apiKey      string
	model       string
	temperature float32
	maxTokens   int
}

// NewOpenAIProvider creates a new OpenAI provider
func NewOpenAIProvider(config *Config) (*OpenAIProvider, error) {
	if config.OpenAIKey == "" {
		return nil, errors.WithHint(
			errors.New("OpenAI API key is required"),
			"set OPENAI_API_KEY or nlp.openai_key in .banglahindi.yaml")
	}

	clientConfig := openai.DefaultConfig(config.OpenAIKey)
	if config.OpenAIBaseURL != "" {
		clientConfig.BaseURL = config.OpenAIBaseURL
	}

	model := config.OpenAIModel
	if model == "" {
		model = openai.GPT4oMini
	}

	return &OpenAIProvider{
		client:      openai.NewClientWithConfig(clientConfig),
		apiKey:      config.OpenAIKey,
		model:       model,
		temperature: config.Temperature,
		maxTokens:   config.MaxTokens,
	}, nil
}

// Generate sends req as a chat completion
func (p *OpenAIProvider) Generate(ctx context.Context, req Request) (string, error) {
	var messages []openai.ChatCompletionMessage
	if req.System != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: req.System,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: req.Prompt,
	})

	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = p.maxTokens
	}

	chatReq := openai.ChatCompletionRequest{
		Model:       p.model,
		Messages:    messages,
		MaxTokens:   maxTokens,
		Temperature: p.temperature,
	}
	if req.JSON {
		chatReq.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	resp, err := p.client.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		return "", errors.Wrap(err, "OpenAI API error")
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("no completion returned")
	}

	return resp.Choices[0].Message.Content, nil
}

// Name returns the provider name
func (p *OpenAIProvider) Name() string {
	return "openai:" + p.model
}

// IsAvailable checks if the provider has credentials
func (p *OpenAIProvider) IsAvailable() error {
	if p.apiKey == "" {
		return errors.New("OpenAI API key not configured")
	}
	return nil
}
