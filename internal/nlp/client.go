package nlp

import (
	"context"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Client implements Collaborator on top of a Provider.
type Client struct {
	config   *Config
	provider Provider
	breaker  *gobreaker.CircuitBreaker
	limiter  *rate.Limiter
	cache    *fileCache
	logger   *zap.SugaredLogger
}

var _ Collaborator = (*Client)(nil)

// NewClient creates a client for the provider named in config.
func NewClient(ctx context.Context, config *Config) (*Client, error) {
	if config == nil {
		config = DefaultConfig()
	}

	provider, err := NewProvider(ctx, config)
	if err != nil {
		return nil, err
	}
	return NewClientWithProvider(config, provider)
}

// NewClientWithProvider creates a client around an existing provider.
func NewClientWithProvider(config *Config, provider Provider) (*Client, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if config.Timeout <= 0 {
		config.Timeout = DefaultConfig().Timeout
	}

	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	c := &Client{
		config:   config,
		provider: provider,
		logger:   logger,
	}

	limit := rate.Inf
	if config.RequestsPerSecond > 0 {
		limit = rate.Limit(config.RequestsPerSecond)
	}
	burst := config.Burst
	if burst < 1 {
		burst = 1
	}
	c.limiter = rate.NewLimiter(limit, burst)

	threshold := config.FailureThreshold
	if threshold == 0 {
		threshold = DefaultConfig().FailureThreshold
	}
	c.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        provider.Name(),
		MaxRequests: 1,
		Timeout:     config.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Infow("Circuit breaker state changed",
				"provider", name,
				"from", from.String(),
				"to", to.String())
		},
	})

	if config.EnableCache && config.CacheDir != "" {
		cache, err := newFileCache(config.CacheDir)
		if err != nil {
			return nil, err
		}
		c.cache = cache
	}

	return c, nil
}

// Provider returns the underlying provider.
func (c *Client) Provider() Provider {
	return c.provider
}

// generate runs one request through the limiter and the breaker under the
// configured timeout. The answer is trimmed and must not be empty.
func (c *Client) generate(ctx context.Context, op string, req Request) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.config.Timeout)
	defer cancel()

	if err := c.limiter.Wait(ctx); err != nil {
		return "", c.unavailable(op, errors.Wrap(err, "rate limiter"))
	}

	c.logger.Debugw("Collaborator request",
		"operation", op,
		"provider", c.provider.Name(),
		"prompt_chars", len(req.Prompt))

	out, err := c.breaker.Execute(func() (interface{}, error) {
		text, err := c.provider.Generate(ctx, req)
		if err != nil {
			return nil, err
		}
		text = strings.TrimSpace(text)
		if text == "" {
			return nil, errors.New("empty response")
		}
		return text, nil
	})
	if err != nil {
		return "", c.unavailable(op, err)
	}

	return out.(string), nil
}

func (c *Client) unavailable(op string, err error) error {
	c.logger.Warnw("Collaborator request failed",
		"operation", op,
		"provider", c.provider.Name(),
		"error", err)
	return errors.Mark(errors.Wrapf(err, "%s request via %s", op, c.provider.Name()), ErrUnavailable)
}

// TranslateIdiom renders a Bangla idiom in Hindi.
func (c *Client) TranslateIdiom(ctx context.Context, text string) (string, error) {
	return c.generate(ctx, "idiom", Request{System: systemPrompt, Prompt: idiomPrompt(text)})
}

// Analyze asks for the grammatical structure of sentence.
func (c *Client) Analyze(ctx context.Context, sentence string) (SentenceStructure, error) {
	raw, err := c.generate(ctx, "analyze", Request{
		System: systemPrompt,
		Prompt: analysisPrompt(sentence),
		JSON:   true,
	})
	if err != nil {
		return SentenceStructure{}, err
	}
	return ParseStructure(raw)
}

// RestructureComplexSentence analyzes sentence first and then asks for a
// translation that keeps that structure. A failed or malformed analysis
// leaves the structure hints empty.
func (c *Client) RestructureComplexSentence(ctx context.Context, sentence string) (string, error) {
	structure, err := c.Analyze(ctx, sentence)
	if err != nil {
		c.logger.Warnw("Sentence analysis failed, continuing without structure",
			"sentence", sentence,
			"malformed", errors.Is(err, ErrMalformedResponse),
			"error", err)
		structure = SentenceStructure{}
	}

	return c.generate(ctx, "restructure", Request{
		System: systemPrompt,
		Prompt: restructurePrompt(sentence, structure),
	})
}

// Refine cleans up a complete transliteration. Answers are cached when the
// cache is enabled.
func (c *Client) Refine(ctx context.Context, text string) (string, error) {
	if c.cache != nil {
		if cached, ok := c.cache.get("refine", c.provider.Name(), text); ok {
			c.logger.Debugw("Refinement cache hit", "provider", c.provider.Name())
			return cached, nil
		}
	}

	out, err := c.generate(ctx, "refine", Request{System: systemPrompt, Prompt: refinePrompt(text)})
	if err != nil {
		return "", err
	}

	if c.cache != nil {
		if err := c.cache.put("refine", c.provider.Name(), text, out); err != nil {
			c.logger.Warnw("Failed to cache refinement", "error", err)
		}
	}
	return out, nil
}

// Improve submits pairs as one corpus. An empty corpus is not sent.
func (c *Client) Improve(ctx context.Context, pairs []Pair) error {
	if len(pairs) == 0 {
		return nil
	}

	if _, err := c.generate(ctx, "improve", Request{Prompt: improvePrompt(pairs)}); err != nil {
		return err
	}

	c.logger.Infow("Corpus submitted", "pairs", len(pairs), "provider", c.provider.Name())
	return nil
}
