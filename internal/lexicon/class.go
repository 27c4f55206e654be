package lexicon

import "unicode"

// Class is a named set of code points used as a rule condition.
type Class struct {
	name  string
	runes map[rune]struct{}
}

// NewClass creates a class from the code points of members.
func NewClass(name, members string) Class {
	c := Class{name: name, runes: make(map[rune]struct{})}
	for _, r := range members {
		c.runes[r] = struct{}{}
	}
	return c
}

// Name returns the class name.
func (c Class) Name() string {
	return c.name
}

// Contains reports whether r belongs to the class.
func (c Class) Contains(r rune) bool {
	_, ok := c.runes[r]
	return ok
}

// Len returns the number of code points in the class.
func (c Class) Len() int {
	return len(c.runes)
}

var (
	// VowelSigns are the dependent vowel marks that condition the phonetic
	// and chandrabindu rules. Vocalic r (ৃ) is not part of the set.
	VowelSigns = NewClass("vowel-signs", "ািীুূেৈোৌ")

	// HalfRaBases may take a following র as a subscript ra.
	HalfRaBases = NewClass("half-ra-bases", "কখগঘঙচছজঝঞটঠডঢণতথদধনপফবভমযলশষসহ")

	// HalfYaBases may take a following য as a subscript ya.
	HalfYaBases = NewClass("half-ya-bases", "কখগঘঙচছজঝঞটঠডঢণতথদধনপফবভমরলশষসহ")

	// RetroflexTriggers keep a following ণ retroflex.
	RetroflexTriggers = NewClass("retroflex-triggers", "ষটঠডঢ")

	// VelarRow and PalatalRow are the plosives that select a class nasal.
	VelarRow   = NewClass("velar-row", "কখগঘ")
	PalatalRow = NewClass("palatal-row", "চছজঝ")
)

// IsBangla reports whether r is in the Bengali block.
func IsBangla(r rune) bool {
	return unicode.Is(unicode.Bengali, r)
}

// ContainsBangla reports whether s has at least one Bengali code point.
func ContainsBangla(s string) bool {
	for _, r := range s {
		if IsBangla(r) {
			return true
		}
	}
	return false
}

// IsDelimiter reports whether r separates words: whitespace, punctuation
// (including the danda) or a symbol.
func IsDelimiter(r rune) bool {
	return unicode.IsSpace(r) || unicode.IsPunct(r) || unicode.IsSymbol(r)
}

// AtWordStart reports whether position i of runes begins a word.
func AtWordStart(runes []rune, i int) bool {
	return i == 0 || IsDelimiter(runes[i-1])
}

// AtWordEnd reports whether a word ending before position end is complete.
func AtWordEnd(runes []rune, end int) bool {
	return end >= len(runes) || IsDelimiter(runes[end])
}
