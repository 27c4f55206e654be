package rules

import "strings"

// replaceWhere replaces every target rune for which cond holds. Conditions
// see the input runes, not the partially rewritten output.
func replaceWhere(text string, target rune, with string, cond func(runes []rune, i int) bool) string {
	if !strings.ContainsRune(text, target) {
		return text
	}

	runes := []rune(text)
	var b strings.Builder
	b.Grow(len(text))

	for i, r := range runes {
		if r == target && cond(runes, i) {
			b.WriteString(with)
			continue
		}
		b.WriteRune(r)
	}

	return b.String()
}

// rewritePairs scans left to right for non-overlapping pairs (a, b) where
// first(a) holds and b == second, and writes emit(a) in their place.
func rewritePairs(text string, first func(rune) bool, second rune, emit func(b *strings.Builder, a rune)) string {
	if !strings.ContainsRune(text, second) {
		return text
	}

	runes := []rune(text)
	var b strings.Builder
	b.Grow(len(text) + 8)

	for i := 0; i < len(runes); i++ {
		if i+1 < len(runes) && runes[i+1] == second && first(runes[i]) {
			emit(&b, runes[i])
			i++
			continue
		}
		b.WriteRune(runes[i])
	}

	return b.String()
}

func next(runes []rune, i int) (rune, bool) {
	if i+1 >= len(runes) {
		return 0, false
	}
	return runes[i+1], true
}

func prev(runes []rune, i int) (rune, bool) {
	if i == 0 {
		return 0, false
	}
	return runes[i-1], true
}
