package lexicon

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Entry is a single source to target mapping.
type Entry struct {
	From string
	To   string
}

// Table is an immutable ordered mapping. Iteration follows insertion order.
type Table struct {
	name        string
	entries     []Entry
	index       map[string]int
	maxKeyRunes int
}

// NewTable builds a table from entries. Keys are normalized to NFC so that
// precomposed and decomposed input look up the same entry. Empty or duplicate
// keys are programming errors and panic.
func NewTable(name string, entries ...Entry) *Table {
	t := &Table{
		name:    name,
		entries: make([]Entry, 0, len(entries)),
		index:   make(map[string]int, len(entries)),
	}

	for _, e := range entries {
		key := norm.NFC.String(e.From)
		if key == "" {
			panic(fmt.Sprintf("lexicon: empty key in table %s", name))
		}
		if _, exists := t.index[key]; exists {
			panic(fmt.Sprintf("lexicon: duplicate key %q in table %s", key, name))
		}
		t.index[key] = len(t.entries)
		t.entries = append(t.entries, Entry{From: key, To: e.To})
		if n := utf8.RuneCountInString(key); n > t.maxKeyRunes {
			t.maxKeyRunes = n
		}
	}

	return t
}

// Name returns the table name used in diagnostics.
func (t *Table) Name() string {
	return t.name
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.entries)
}

// Lookup returns the target for key.
func (t *Table) Lookup(key string) (string, bool) {
	i, ok := t.index[key]
	if !ok {
		return "", false
	}
	return t.entries[i].To, true
}

// Entries returns a copy of the entries in table order.
func (t *Table) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// MaxKeyRunes returns the rune length of the longest key.
func (t *Table) MaxKeyRunes() int {
	return t.maxKeyRunes
}
