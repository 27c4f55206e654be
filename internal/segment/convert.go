package segment

import (
	"context"
	"strings"

	"go.uber.org/zap"
)

// Restructurer rewrites a complex sentence as a whole.
type Restructurer interface {
	RestructureComplexSentence(ctx context.Context, sentence string) (string, error)
}

// Sentence is one converted unit of text.
type Sentence struct {
	Text   string
	Kind   Kind
	Output string
	// Escalated is set when the restructurer produced Output.
	Escalated bool
	// FellBack is set when the restructurer failed and Output is the glyph
	// mapping instead.
	FellBack bool
}

// Converter turns rewritten text into Devanagari sentence by sentence.
type Converter struct {
	classifier   *Classifier
	restructurer Restructurer
	logger       *zap.SugaredLogger
}

// NewConverter creates a converter. A nil restructurer maps complex
// sentences by glyph as well; a nil logger discards log output.
func NewConverter(classifier *Classifier, restructurer Restructurer, logger *zap.SugaredLogger) *Converter {
	if classifier == nil {
		classifier = DefaultClassifier()
	}
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Converter{
		classifier:   classifier,
		restructurer: restructurer,
		logger:       logger,
	}
}

// Convert splits text into sentences and converts each one. The joined
// output separates sentences with a single space.
func (c *Converter) Convert(ctx context.Context, text string) ([]Sentence, string) {
	units := Split(text)
	sentences := make([]Sentence, 0, len(units))
	var b strings.Builder

	for _, unit := range units {
		s := c.convertSentence(ctx, unit)
		sentences = append(sentences, s)
		b.WriteString(s.Output)
		b.WriteByte(' ')
	}

	return sentences, strings.TrimSpace(b.String())
}

func (c *Converter) convertSentence(ctx context.Context, unit string) Sentence {
	s := Sentence{Text: unit, Kind: c.classifier.Classify(unit)}

	if s.Kind == Simple || c.restructurer == nil {
		s.Output = FallbackMap(unit)
		return s
	}

	out, err := c.restructurer.RestructureComplexSentence(ctx, unit)
	if err != nil {
		c.logger.Warnw("Restructuring failed, using glyph mapping",
			"sentence", unit,
			"error", err)
		s.Output = FallbackMap(unit)
		s.FellBack = true
		return s
	}

	s.Output = out
	s.Escalated = true
	return s
}
