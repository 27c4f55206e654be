package translit

import (
	"sort"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
	"golang.org/x/text/unicode/norm"

	"codeberg.org/snonux/banglahindi/internal/lexicon"
)

// CustomWords holds user overrides. The latest Add for a word wins.
type CustomWords struct {
	mu     sync.RWMutex
	words  map[string]string
	render func(string) string
	index  *lexicon.Index // rebuilt lazily after Add
}

// NewCustomWords creates an empty override store whose words match the
// output text as written.
func NewCustomWords() *CustomWords {
	return NewRenderedCustomWords(nil)
}

// NewRenderedCustomWords creates an empty override store. A Bangla word
// also matches the form render gives it, so it still fires after the
// pipeline has converted the text.
func NewRenderedCustomWords(render func(string) string) *CustomWords {
	return &CustomWords{
		words:  make(map[string]string),
		render: render,
	}
}

// Add registers an override for word.
func (cw *CustomWords) Add(word, replacement string) error {
	word = norm.NFC.String(strings.TrimSpace(word))
	replacement = strings.TrimSpace(replacement)
	if word == "" || replacement == "" {
		return errors.New("custom word needs both a word and its replacement")
	}

	cw.mu.Lock()
	defer cw.mu.Unlock()
	cw.words[word] = replacement
	cw.index = nil
	return nil
}

// Get returns the override for word.
func (cw *CustomWords) Get(word string) (string, bool) {
	cw.mu.RLock()
	defer cw.mu.RUnlock()
	replacement, ok := cw.words[norm.NFC.String(word)]
	return replacement, ok
}

// GetAll returns a copy of all overrides.
func (cw *CustomWords) GetAll() map[string]string {
	cw.mu.RLock()
	defer cw.mu.RUnlock()

	result := make(map[string]string, len(cw.words))
	for k, v := range cw.words {
		result[k] = v
	}
	return result
}

// Len returns the number of overrides.
func (cw *CustomWords) Len() int {
	cw.mu.RLock()
	defer cw.mu.RUnlock()
	return len(cw.words)
}

// Apply replaces every override that stands as a whole word in text.
// Longer words win over their prefixes.
func (cw *CustomWords) Apply(text string) string {
	index := cw.currentIndex()
	if index == nil {
		return text
	}
	return index.ReplaceWords(text)
}

func (cw *CustomWords) currentIndex() *lexicon.Index {
	cw.mu.RLock()
	index, n := cw.index, len(cw.words)
	cw.mu.RUnlock()
	if index != nil || n == 0 {
		return index
	}

	cw.mu.Lock()
	defer cw.mu.Unlock()
	if cw.index == nil {
		keys := make([]string, 0, len(cw.words))
		for k := range cw.words {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		cw.index = lexicon.NewIndex(lexicon.NewTable("custom", cw.entries(keys)...))
	}
	return cw.index
}

// entries lists each word and, for Bangla words, its rendered form. A word
// as written takes precedence over a rendered form that collides with it;
// between rendered forms the first key in order wins.
func (cw *CustomWords) entries(keys []string) []lexicon.Entry {
	seen := make(map[string]bool, len(keys))
	entries := make([]lexicon.Entry, 0, len(keys))
	for _, k := range keys {
		seen[k] = true
		entries = append(entries, lexicon.Entry{From: k, To: cw.words[k]})
	}
	if cw.render == nil {
		return entries
	}

	for _, k := range keys {
		if !lexicon.ContainsBangla(k) {
			continue
		}
		rendered := norm.NFC.String(strings.TrimSpace(cw.render(k)))
		if rendered == "" || seen[rendered] {
			continue
		}
		seen[rendered] = true
		entries = append(entries, lexicon.Entry{From: rendered, To: cw.words[k]})
	}
	return entries
}
