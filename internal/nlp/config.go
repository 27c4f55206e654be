package nlp

import (
	"time"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// Config holds the settings for the collaborator client and its providers
type Config struct {
	Provider         string // Provider name: "openai" or "gemini"
	FallbackProvider string // Optional provider tried when the primary fails

	// OpenAI-specific settings
	OpenAIKey     string
	OpenAIModel   string
	OpenAIBaseURL string // Overrides the API endpoint, e.g. for a proxy

	// Gemini-specific settings
	GeminiKey   string
	GeminiModel string

	Temperature float32
	MaxTokens   int

	// Timeout bounds every single request
	Timeout time.Duration

	// Rate limiting; RequestsPerSecond <= 0 disables it
	RequestsPerSecond float64
	Burst             int

	// Circuit breaker: consecutive failures before opening and how long it
	// stays open
	FailureThreshold uint32
	OpenTimeout      time.Duration

	// Refinement cache
	CacheDir    string
	EnableCache bool

	Logger *zap.SugaredLogger
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		Provider:          "openai",
		OpenAIModel:       openai.GPT4oMini,
		GeminiModel:       "gemini-2.0-flash",
		Temperature:       0.3,
		MaxTokens:         1024,
		Timeout:           30 * time.Second,
		RequestsPerSecond: 2,
		Burst:             4,
		FailureThreshold:  5,
		OpenTimeout:       60 * time.Second,
	}
}
