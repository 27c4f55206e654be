package rules

import (
	"strings"
	"unicode"

	"codeberg.org/snonux/banglahindi/internal/lexicon"
)

// HalfRa joins a consonant and a following র with virama and र.
func HalfRa(text string) string {
	return rewritePairs(text, lexicon.HalfRaBases.Contains, 'র', func(b *strings.Builder, a rune) {
		b.WriteRune(a)
		b.WriteString("्र")
	})
}

// HalfYa joins a consonant and a following য with virama and य.
func HalfYa(text string) string {
	return rewritePairs(text, lexicon.HalfYaBases.Contains, 'য', func(b *strings.Builder, a rune) {
		b.WriteRune(a)
		b.WriteString("्य")
	})
}

// KhandaTa always writes ৎ as त्.
func KhandaTa(text string) string {
	return strings.ReplaceAll(text, "ৎ", "त्")
}

// FinalVisarga writes a word-final ঃ as ह.
func FinalVisarga(text string) string {
	return replaceWhere(text, 'ঃ', "ह", func(runes []rune, i int) bool {
		return lexicon.AtWordEnd(runes, i+1)
	})
}

// ChandrabinduOrder moves ঁ in front of the vowel sign it follows, as ँ.
func ChandrabinduOrder(text string) string {
	return rewritePairs(text, lexicon.VowelSigns.Contains, 'ঁ', func(b *strings.Builder, a rune) {
		b.WriteString("ँ")
		b.WriteRune(a)
	})
}

// MedialBa writes ব as व unless it opens the string or follows whitespace.
func MedialBa(text string) string {
	return replaceWhere(text, 'ব', "व", func(runes []rune, i int) bool {
		r, ok := prev(runes, i)
		return ok && !unicode.IsSpace(r)
	})
}

// RetroflexNasal writes ণ as न unless a retroflex trigger precedes it.
func RetroflexNasal(text string) string {
	return replaceWhere(text, 'ণ', "न", notAfterRetroflex)
}

// SpecialRules returns the orthographic fixes in order. They run last.
func SpecialRules() []Rule {
	return []Rule{
		{Name: "half-ra", Apply: HalfRa},
		{Name: "half-ya", Apply: HalfYa},
		{Name: "khanda-ta", Apply: KhandaTa},
		{Name: "final-visarga", Apply: FinalVisarga},
		{Name: "chandrabindu-order", Apply: ChandrabinduOrder},
		{Name: "medial-ba", Apply: MedialBa},
		{Name: "retroflex-nasal", Apply: RetroflexNasal},
	}
}
