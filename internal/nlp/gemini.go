package nlp

import (
	"context"

	"github.com/cockroachdb/errors"
	"google.golang.org/genai"
)

// GeminiProvider implements Provider with the Gemini API
type GeminiProvider struct {
	client      *genai.Client
	apiKey      string
	model       string
	temperature float32
	maxTokens   int
}

// NewGeminiProvider creates a new Gemini provider
func NewGeminiProvider(ctx context.Context, config *Config) (*GeminiProvider, error) {
	if config.GeminiKey == "" {
		return nil, errors.WithHint(
			errors.New("Gemini API key is required"),
			"set GEMINI_API_KEY or nlp.gemini_key in .banglahindi.yaml")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  config.GeminiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Gemini client")
	}

	model := config.GeminiModel
	if model == "" {
		model = "gemini-2.0-flash"
	}

	return &GeminiProvider{
		client:      client,
		apiKey:      config.GeminiKey,
		model:       model,
		temperature: config.Temperature,
		maxTokens:   config.MaxTokens,
	}, nil
}

// Generate sends req to GenerateContent
func (p *GeminiProvider) Generate(ctx context.Context, req Request) (string, error) {
	genConfig := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(p.temperature),
	}
	if req.System != "" {
		genConfig.SystemInstruction = genai.NewContentFromText(req.System, genai.RoleUser)
	}
	if req.JSON {
		genConfig.ResponseMIMEType = "application/json"
	}

	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = p.maxTokens
	}
	if maxTokens > 0 {
		genConfig.MaxOutputTokens = int32(maxTokens)
	}

	resp, err := p.client.Models.GenerateContent(ctx, p.model, genai.Text(req.Prompt), genConfig)
	if err != nil {
		return "", errors.Wrap(err, "Gemini API error")
	}

	return resp.Text(), nil
}

// Name returns the provider name
func (p *GeminiProvider) Name() string {
	return "gemini:" + p.model
}

// IsAvailable checks if the provider has credentials
func (p *GeminiProvider) IsAvailable() error {
	if p.apiKey == "" {
		return errors.New("Gemini API key not configured")
	}
	return nil
}
