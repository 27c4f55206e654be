package segment

import (
	"strings"
	"sync"

	"codeberg.org/snonux/banglahindi/internal/lexicon"
	"codeberg.org/snonux/banglahindi/internal/rules"
)

// Terminator ends a Bangla sentence.
const Terminator = '।'

// Kind is the escalation class of a sentence.
type Kind int

const (
	// Simple sentences are converted glyph by glyph.
	Simple Kind = iota
	// Complex sentences are handed to the restructurer.
	Complex
)

func (k Kind) String() string {
	if k == Complex {
		return "complex"
	}
	return "simple"
}

// Split cuts text after every terminator. Text after the last terminator is
// one more sentence. Units are trimmed and blank ones dropped.
func Split(text string) []string {
	var out []string
	for len(text) > 0 {
		i := strings.IndexRune(text, Terminator)
		var unit string
		if i < 0 {
			unit, text = text, ""
		} else {
			end := i + len(string(Terminator))
			unit, text = text[:end], text[end:]
		}
		if unit = strings.TrimSpace(unit); unit != "" {
			out = append(out, unit)
		}
	}
	return out
}

// Classifier decides whether a sentence needs restructuring.
type Classifier struct {
	triggers []string
}

// NewClassifier builds a classifier over triggers. Each trigger is matched
// as written and as lower rewrites it; a form that lower turns into text
// with no Bangla left is already resolved and is not matched.
func NewClassifier(triggers []string, lower func(string) string) *Classifier {
	seen := make(map[string]bool)
	c := &Classifier{}
	add := func(token string) {
		if token == "" || seen[token] || !lexicon.ContainsBangla(token) {
			return
		}
		seen[token] = true
		c.triggers = append(c.triggers, token)
	}

	for _, token := range triggers {
		add(token)
		if lower != nil {
			add(lower(token))
		}
	}
	return c
}

var (
	defaultOnce       sync.Once
	defaultClassifier *Classifier
)

// DefaultClassifier uses the lexicon triggers lowered through the default
// rule engine.
func DefaultClassifier() *Classifier {
	defaultOnce.Do(func() {
		defaultClassifier = NewClassifier(lexicon.Load().Triggers, rules.Default().Apply)
	})
	return defaultClassifier
}

// Classify returns Complex when sentence contains a trigger.
func (c *Classifier) Classify(sentence string) Kind {
	for _, token := range c.triggers {
		if strings.Contains(sentence, token) {
			return Complex
		}
	}
	return Simple
}

// Triggers returns the tokens the classifier matches.
func (c *Classifier) Triggers() []string {
	out := make([]string, len(c.triggers))
	copy(out, c.triggers)
	return out
}

// FallbackMap maps each glyph through the glyph table and passes unknown
// characters through.
func FallbackMap(sentence string) string {
	return lexicon.Load().GlyphIndex.ReplaceRunes(sentence)
}
