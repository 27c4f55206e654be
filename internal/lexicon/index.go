package lexicon

import (
	"strings"

	"github.com/derekparker/trie"
)

// Index answers longest-prefix queries over the keys of a Table.
type Index struct {
	table *Table
	trie  *trie.Trie
}

// NewIndex builds a prefix index over the keys of t.
func NewIndex(t *Table) *Index {
	tr := trie.New()
	for _, e := range t.entries {
		tr.Add(e.From, e.To)
	}
	return &Index{table: t, trie: tr}
}

// Table returns the indexed table.
func (ix *Index) Table() *Table {
	return ix.table
}

// LongestMatch returns the longest key that starts at runes[start] and for
// which accept(end) holds, where end is the index just past the key. A nil
// accept takes every match.
func (ix *Index) LongestMatch(runes []rune, start int, accept func(end int) bool) (value string, end int, ok bool) {
	limit := start + ix.table.maxKeyRunes
	if limit > len(runes) {
		limit = len(runes)
	}

	for e := start + 1; e <= limit; e++ {
		prefix := string(runes[start:e])
		if !ix.trie.HasKeysWithPrefix(prefix) {
			break
		}
		node, found := ix.trie.Find(prefix)
		if !found {
			continue
		}
		if accept != nil && !accept(e) {
			continue
		}
		value, end, ok = node.Meta().(string), e, true
	}

	return value, end, ok
}

// ReplaceWords substitutes keys that stand as whole words, preferring the
// longest key at each position. Keys embedded in longer words are left alone.
func (ix *Index) ReplaceWords(text string) string {
	if ix.table.Len() == 0 || text == "" {
		return text
	}

	runes := []rune(text)
	var b strings.Builder
	b.Grow(len(text))

	for i := 0; i < len(runes); {
		if AtWordStart(runes, i) {
			if value, end, ok := ix.LongestMatch(runes, i, func(end int) bool {
				return AtWordEnd(runes, end)
			}); ok {
				b.WriteString(value)
				i = end
				continue
			}
		}
		b.WriteRune(runes[i])
		i++
	}

	return b.String()
}

// ReplaceRunes maps each position through the longest matching key and
// passes unmatched runes through.
func (ix *Index) ReplaceRunes(text string) string {
	runes := []rune(text)
	var b strings.Builder
	b.Grow(len(text) * 2)

	for i := 0; i < len(runes); {
		if value, end, ok := ix.LongestMatch(runes, i, nil); ok {
			b.WriteString(value)
			i = end
			continue
		}
		b.WriteRune(runes[i])
		i++
	}

	return b.String()
}
