package lexicon

import "sync"

// Correlative is a paired connective around a clause, such as "if ... then".
type Correlative struct {
	Open       string
	Close      string
	HindiOpen  string
	HindiClose string
}

// Tables bundles every static table with its prefix indexes.
type Tables struct {
	Glyphs        *Table
	Conjuncts     *Table
	Words         *Table
	Idioms        *Table
	Postpositions *Table
	Verbs         *Table
	Correlatives  []Correlative
	Triggers      []string

	GlyphIndex *Index
	WordIndex  *Index
}

var (
	loadOnce sync.Once
	loaded   *Tables
)

// Load returns the process-wide tables, building them on first use.
func Load() *Tables {
	loadOnce.Do(func() {
		glyphs := NewTable("glyphs", glyphEntries...)
		words := NewTable("words", wordEntries...)

		correlatives := make([]Correlative, len(correlativeEntries))
		copy(correlatives, correlativeEntries)
		triggers := make([]string, len(triggerTokens))
		copy(triggers, triggerTokens)

		loaded = &Tables{
			Glyphs:        glyphs,
			Conjuncts:     NewTable("conjuncts", conjunctEntries...),
			Words:         words,
			Idioms:        NewTable("idioms", idiomEntries...),
			Postpositions: NewTable("postpositions", postpositionEntries...),
			Verbs:         NewTable("verbs", verbEntries...),
			Correlatives:  correlatives,
			Triggers:      triggers,
			GlyphIndex:    NewIndex(glyphs),
			WordIndex:     NewIndex(words),
		}
	})
	return loaded
}
