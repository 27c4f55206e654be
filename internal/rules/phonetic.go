package rules

import (
	"strings"

	"codeberg.org/snonux/banglahindi/internal/lexicon"
)

// ConsonantalO writes ও as व when a vowel sign follows it.
func ConsonantalO(text string) string {
	return replaceWhere(text, 'ও', "व", func(runes []rune, i int) bool {
		r, ok := next(runes, i)
		return ok && lexicon.VowelSigns.Contains(r)
	})
}

// InitialEGlide writes a word-initial এ as ये.
func InitialEGlide(text string) string {
	return replaceWhere(text, 'এ', "ये", lexicon.AtWordStart)
}

// YaBeforeAa writes য as ज before aa-kar.
func YaBeforeAa(text string) string {
	return replaceWhere(text, 'য', "ज", func(runes []rune, i int) bool {
		r, ok := next(runes, i)
		return ok && r == 'া'
	})
}

var nuktaReplacer = strings.NewReplacer(
	"ড়", "ड़",
	"ঢ়", "ढ़",
)

// NuktaConsonants maps ড় and ঢ় to their Devanagari nukta forms.
func NuktaConsonants(text string) string {
	return nuktaReplacer.Replace(text)
}

// DentalizeNasal turns ণ into ন unless a retroflex trigger precedes it.
func DentalizeNasal(text string) string {
	return replaceWhere(text, 'ণ', "ন", notAfterRetroflex)
}

// ClassNasals writes ঙ before a velar and ঞ before a palatal as half nasals.
func ClassNasals(text string) string {
	text = replaceWhere(text, 'ঙ', "ङ्", followedBy(lexicon.VelarRow))
	return replaceWhere(text, 'ঞ', "ञ्", followedBy(lexicon.PalatalRow))
}

func followedBy(class lexicon.Class) func([]rune, int) bool {
	return func(runes []rune, i int) bool {
		r, ok := next(runes, i)
		return ok && class.Contains(r)
	}
}

func notAfterRetroflex(runes []rune, i int) bool {
	r, ok := prev(runes, i)
	return !ok || !lexicon.RetroflexTriggers.Contains(r)
}

// PhoneticRules returns the phonetic disambiguation rules in order.
func PhoneticRules() []Rule {
	return []Rule{
		{Name: "consonantal-o", Apply: ConsonantalO},
		{Name: "initial-e-glide", Apply: InitialEGlide},
		{Name: "ya-before-aa", Apply: YaBeforeAa},
		{Name: "nukta-consonants", Apply: NuktaConsonants},
		{Name: "dentalize-nasal", Apply: DentalizeNasal},
		{Name: "class-nasals", Apply: ClassNasals},
	}
}
