package rules

import (
	"strings"
	"sync"

	"codeberg.org/snonux/banglahindi/internal/lexicon"
)

// Rule is a named pure rewrite.
type Rule struct {
	Name  string
	Apply func(string) string
}

// Stage identifies a pass of the engine.
type Stage int

// Passes run in this order.
const (
	StageWords Stage = iota
	StageIdioms
	StageConjuncts
	StagePhonetic
	StageGrammar
	StageSpecial
)

var stageNames = [...]string{"words", "idioms", "conjuncts", "phonetic", "grammar", "special"}

func (s Stage) String() string {
	if s < 0 || int(s) >= len(stageNames) {
		return "unknown"
	}
	return stageNames[s]
}

// Pass is an ordered group of rules.
type Pass struct {
	Stage Stage
	Rules []Rule
}

// Engine applies the rewrite passes in stage order. It holds no mutable
// state and is safe for concurrent use.
type Engine struct {
	passes []Pass
}

var (
	defaultOnce   sync.Once
	defaultEngine *Engine
)

// Default returns the engine built over the process-wide tables.
func Default() *Engine {
	defaultOnce.Do(func() {
		defaultEngine = NewEngine(lexicon.Load())
	})
	return defaultEngine
}

// NewEngine builds an engine over tables.
func NewEngine(tables *lexicon.Tables) *Engine {
	e := &Engine{}
	e.passes = []Pass{
		{Stage: StageWords, Rules: []Rule{{Name: "word-map", Apply: tables.WordIndex.ReplaceWords}}},
		{Stage: StageIdioms, Rules: []Rule{literalRule("idiom-map", tables.Idioms)}},
		{Stage: StageConjuncts, Rules: []Rule{literalRule("conjunct-map", tables.Conjuncts)}},
		{Stage: StagePhonetic, Rules: PhoneticRules()},
	}

	lower := func(token string) string {
		return e.ApplyThrough(token, StagePhonetic)
	}
	e.passes = append(e.passes,
		Pass{Stage: StageGrammar, Rules: GrammarRules(tables, lower)},
		Pass{Stage: StageSpecial, Rules: SpecialRules()},
	)

	return e
}

func literalRule(name string, table *lexicon.Table) Rule {
	entries := table.Entries()
	return Rule{
		Name: name,
		Apply: func(text string) string {
			for _, entry := range entries {
				text = strings.ReplaceAll(text, entry.From, entry.To)
			}
			return text
		},
	}
}

// Apply runs every pass over text.
func (e *Engine) Apply(text string) string {
	return e.ApplyThrough(text, StageSpecial)
}

// ApplyThrough runs the passes up to and including last.
func (e *Engine) ApplyThrough(text string, last Stage) string {
	if !lexicon.ContainsBangla(text) {
		return text
	}
	for _, pass := range e.passes {
		if pass.Stage > last {
			break
		}
		for _, rule := range pass.Rules {
			text = rule.Apply(text)
		}
	}
	return text
}

// Passes returns the configured passes in order.
func (e *Engine) Passes() []Pass {
	out := make([]Pass, len(e.passes))
	copy(out, e.passes)
	return out
}
