// Package lexicon holds the static Bangla to Devanagari lookup tables used by
// the transliteration rules. Tables are immutable once loaded and safe for
// concurrent reads.
package lexicon
