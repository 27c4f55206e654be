package nlp

import (
	"context"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// Request is a single text generation request.
type Request struct {
	System    string
	Prompt    string
	JSON      bool // Ask for a JSON object answer
	MaxTokens int
}

// Provider defines the interface for text generation backends
type Provider interface {
	// Generate returns the raw answer to req
	Generate(ctx context.Context, req Request) (string, error)

	// Name returns the provider name
	Name() string

	// IsAvailable checks if the provider is properly configured
	IsAvailable() error
}

// NewProvider creates the provider selected by config, wrapped with the
// fallback provider when one is configured.
func NewProvider(ctx context.Context, config *Config) (Provider, error) {
	if config == nil {
		config = DefaultConfig()
	}

	primary, err := newNamedProvider(ctx, config.Provider, config)
	if err != nil {
		return nil, err
	}
	if config.FallbackProvider == "" || config.FallbackProvider == config.Provider {
		return primary, nil
	}

	fallback, err := newNamedProvider(ctx, config.FallbackProvider, config)
	if err != nil {
		return nil, errors.Wrap(err, "fallback provider")
	}
	return NewProviderWithFallback(primary, fallback, config.Logger), nil
}

func newNamedProvider(ctx context.Context, name string, config *Config) (Provider, error) {
	switch name {
	case "openai", "":
		return NewOpenAIProvider(config)
	case "gemini":
		return NewGeminiProvider(ctx, config)
	default:
		return nil, errors.WithHint(
			errors.Newf("unknown nlp provider: %s", name),
			"supported providers are openai and gemini")
	}
}

// ProviderWithFallback wraps a primary provider with a fallback option
type ProviderWithFallback struct {
	primary  Provider
	fallback Provider
	logger   *zap.SugaredLogger
}

// NewProviderWithFallback creates a provider that falls back to secondary if primary fails
func NewProviderWithFallback(primary, fallback Provider, logger *zap.SugaredLogger) Provider {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &ProviderWithFallback{
		primary:  primary,
		fallback: fallback,
		logger:   logger,
	}
}

// Generate tries the primary provider first, falls back to secondary on error
func (p *ProviderWithFallback) Generate(ctx context.Context, req Request) (string, error) {
	out, err := p.primary.Generate(ctx, req)
	if err == nil {
		return out, nil
	}

	p.logger.Warnw("Primary provider failed, falling back",
		"primary", p.primary.Name(),
		"fallback", p.fallback.Name(),
		"error", err)

	out, fallbackErr := p.fallback.Generate(ctx, req)
	if fallbackErr != nil {
		return "", errors.CombineErrors(err, fallbackErr)
	}
	return out, nil
}

// Name returns the provider name
func (p *ProviderWithFallback) Name() string {
	return p.primary.Name() + "+" + p.fallback.Name()
}

// IsAvailable checks if at least one provider is available
func (p *ProviderWithFallback) IsAvailable() error {
	primaryErr := p.primary.IsAvailable()
	if primaryErr == nil {
		return nil
	}

	fallbackErr := p.fallback.IsAvailable()
	if fallbackErr == nil {
		return nil
	}

	return errors.Newf("both providers unavailable: primary=%v, fallback=%v",
		primaryErr, fallbackErr)
}
