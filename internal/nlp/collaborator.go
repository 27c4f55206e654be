package nlp

import (
	"context"
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
)

// Pair is a Bangla sentence and its corrected Hindi rendering.
type Pair struct {
	Bangla string
	Hindi  string
}

// Collaborator is the set of operations delegated to the external service.
// Callers decide on a fallback when an operation fails.
type Collaborator interface {
	// TranslateIdiom renders a Bangla idiom as an idiomatic Hindi phrase.
	TranslateIdiom(ctx context.Context, text string) (string, error)

	// RestructureComplexSentence translates a sentence while keeping its
	// subject, verb, object, tense and mood.
	RestructureComplexSentence(ctx context.Context, sentence string) (string, error)

	// Refine cleans up a complete rule-based transliteration.
	Refine(ctx context.Context, text string) (string, error)

	// Improve submits a corpus of corrections in one request.
	Improve(ctx context.Context, pairs []Pair) error
}

var (
	// ErrUnavailable marks any failure to get a usable answer from the
	// service: transport errors, timeouts, open circuit, empty output.
	ErrUnavailable = errors.New("collaborator unavailable")

	// ErrMalformedResponse marks a structured answer that could not be parsed.
	ErrMalformedResponse = errors.New("malformed collaborator response")
)

// FormatCorpus renders pairs as "Bangla: ...\nHindi: ..." blocks separated
// by blank lines.
func FormatCorpus(pairs []Pair) string {
	blocks := make([]string, 0, len(pairs))
	for _, p := range pairs {
		blocks = append(blocks, fmt.Sprintf("Bangla: %s\nHindi: %s", p.Bangla, p.Hindi))
	}
	return strings.Join(blocks, "\n\n")
}
