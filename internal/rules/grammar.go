package rules

import (
	"regexp"
	"strings"

	"codeberg.org/snonux/banglahindi/internal/lexicon"
)

// Tokens are delimited on the right by whitespace, punctuation, a symbol
// or the end of the text.
const tokenEnd = `([\s\p{P}\p{S}]|$)`

type rewrite struct {
	re   *regexp.Regexp
	repl string
}

func (rw rewrite) apply(text string) string {
	return rw.re.ReplaceAllString(text, rw.repl)
}

func escapeTemplate(s string) string {
	return strings.ReplaceAll(s, "$", "$$")
}

// postpositionRewrites turns "word particle" into "word hindi".
func postpositionRewrites(table *lexicon.Table, lower func(string) string) []rewrite {
	var out []rewrite
	for _, e := range table.Entries() {
		out = append(out, rewrite{
			re:   regexp.MustCompile(`(\S+)\s+` + regexp.QuoteMeta(lower(e.From)) + tokenEnd),
			repl: "${1} " + escapeTemplate(e.To) + "${2}",
		})
	}
	return out
}

// verbRewrites replaces a bound conjugation suffix, keeping the stem.
func verbRewrites(table *lexicon.Table, lower func(string) string) []rewrite {
	var out []rewrite
	for _, e := range table.Entries() {
		out = append(out, rewrite{
			re:   regexp.MustCompile(`(\S+)` + regexp.QuoteMeta(lower(e.From)) + tokenEnd),
			repl: "${1}" + escapeTemplate(e.To) + "${2}",
		})
	}
	return out
}

// correlativeRewrites swaps the connectives of a two-clause pattern and
// keeps the clause between them.
func correlativeRewrites(pairs []lexicon.Correlative, lower func(string) string) []rewrite {
	var out []rewrite
	for _, c := range pairs {
		out = append(out, rewrite{
			re:   regexp.MustCompile(regexp.QuoteMeta(lower(c.Open)) + `(.+)` + regexp.QuoteMeta(lower(c.Close))),
			repl: escapeTemplate(c.HindiOpen) + "${1}" + escapeTemplate(c.HindiClose),
		})
	}
	return out
}

func rewriteRule(name string, rewrites []rewrite) Rule {
	return Rule{
		Name: name,
		Apply: func(text string) string {
			for _, rw := range rewrites {
				text = rw.apply(text)
			}
			return text
		},
	}
}

// GrammarRules returns the postposition, verb and correlative rules. The
// table keys are passed through lower so that they match text that earlier
// passes already rewrote.
func GrammarRules(tables *lexicon.Tables, lower func(string) string) []Rule {
	return []Rule{
		rewriteRule("postpositions", postpositionRewrites(tables.Postpositions, lower)),
		rewriteRule("verb-conjugations", verbRewrites(tables.Verbs, lower)),
		rewriteRule("correlatives", correlativeRewrites(tables.Correlatives, lower)),
	}
}
