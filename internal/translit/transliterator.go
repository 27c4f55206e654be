package translit

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/text/unicode/norm"

	"codeberg.org/snonux/banglahindi/internal/rules"
	"codeberg.org/snonux/banglahindi/internal/segment"
)

// AdvisoryRuleBasedOnly is reported when refinement failed.
const AdvisoryRuleBasedOnly = "rule-based transliteration only"

// Refiner polishes a complete transliteration.
type Refiner interface {
	Refine(ctx context.Context, text string) (string, error)
}

// IdiomTranslator translates a Bangla idiom into a Hindi one.
type IdiomTranslator interface {
	TranslateIdiom(ctx context.Context, text string) (string, error)
}

// Options configure a Transliterator. Nil fields fall back to the default
// engine and classifier; nil collaborators disable the steps they serve.
type Options struct {
	Engine          *rules.Engine
	Classifier      *segment.Classifier
	Restructurer    segment.Restructurer
	Refiner         Refiner
	IdiomTranslator IdiomTranslator
	Refine          bool
	Logger          *zap.SugaredLogger
}

// Result is the outcome of one transliteration.
type Result struct {
	Input string
	// Text is the final output.
	Text string
	// RuleBased is the output before refinement.
	RuleBased string
	Sentences []segment.Sentence
	Refined   bool
	// RuleBasedOnly is set when refinement was attempted and failed.
	RuleBasedOnly bool
	Advisory      string
}

// Transliterator runs the pipeline. It is safe for concurrent use.
type Transliterator struct {
	engine    *rules.Engine
	converter *segment.Converter
	refiner   Refiner
	idioms    IdiomTranslator
	refine    bool
	logger    *zap.SugaredLogger
}

// NewTransliterator creates a transliterator.
func NewTransliterator(opts Options) *Transliterator {
	engine := opts.Engine
	if engine == nil {
		engine = rules.Default()
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	return &Transliterator{
		engine:    engine,
		converter: segment.NewConverter(opts.Classifier, opts.Restructurer, logger),
		refiner:   opts.Refiner,
		idioms:    opts.IdiomTranslator,
		refine:    opts.Refine,
		logger:    logger,
	}
}

// Transliterate converts text. Collaborator failures never fail the call:
// a failed restructure falls back to glyph mapping and a failed refinement
// returns the rule-based text with an advisory.
func (t *Transliterator) Transliterate(ctx context.Context, text string) Result {
	normalized := norm.NFC.String(text)
	rewritten := t.engine.Apply(normalized)
	sentences, joined := t.converter.Convert(ctx, rewritten)

	result := Result{
		Input:     text,
		Text:      joined,
		RuleBased: joined,
		Sentences: sentences,
	}

	if !t.refine || t.refiner == nil || joined == "" {
		return result
	}

	refined, err := t.refiner.Refine(ctx, joined)
	if err != nil {
		t.logger.Warnw("Refinement failed, keeping rule-based output",
			"sentences", len(sentences),
			"error", err)
		result.RuleBasedOnly = true
		result.Advisory = AdvisoryRuleBasedOnly
		return result
	}

	result.Text = refined
	result.Refined = true
	t.logger.Debugw("Refined transliteration", "input", text, "output", refined)
	return result
}

// Render converts a single word the way a simple sentence is converted,
// without any collaborator.
func (t *Transliterator) Render(word string) string {
	return segment.FallbackMap(t.engine.Apply(norm.NFC.String(word)))
}

// TranslateIdiom asks the idiom translator for a Hindi idiom. Without a
// translator, or when it fails, the input comes back unchanged.
func (t *Transliterator) TranslateIdiom(ctx context.Context, text string) string {
	if t.idioms == nil {
		return text
	}

	translated, err := t.idioms.TranslateIdiom(ctx, text)
	if err != nil {
		t.logger.Warnw("Idiom translation failed", "idiom", text, "error", err)
		return text
	}
	return translated
}
