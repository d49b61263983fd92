// Package lexicon holds the text normalisation shared by every matching
// stage and the declarative keyword tables they evaluate.
package lexicon

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Normalize case-folds text, strips diacritics and collapses whitespace so
// "Gruñido  BAJO" and "grunido bajo" compare equal.
func Normalize(text string) string {
	// A Caser is stateful; build one per call so Normalize stays safe for
	// concurrent use.
	folder := cases.Fold()
	var b strings.Builder
	b.Grow(len(text))
	space := false
	for _, r := range norm.NFD.String(folder.String(text)) {
		if unicode.In(r, unicode.Mn) {
			continue
		}
		if unicode.IsSpace(r) {
			space = b.Len() > 0
			continue
		}
		if space {
			b.WriteByte(' ')
			space = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Words splits normalised text into letter/digit runs. Hyphens and
// punctuation separate words.
func Words(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return !isWordRune(r)
	})
}

// TrimPunct removes leading and trailing punctuation and spaces.
func TrimPunct(text string) string {
	return strings.TrimFunc(text, func(r rune) bool {
		return unicode.IsPunct(r) || unicode.IsSpace(r)
	})
}

// Set is an ordered list of normalised patterns. A pattern matches where
// it starts a word, so stems like "aggress" match "aggressive" while
// "tense" does not match inside "intense".
type Set []string

// Any reports whether text contains at least one pattern.
func (s Set) Any(text string) bool {
	_, ok := s.Find(text)
	return ok
}

// Find returns the first pattern contained in text.
func (s Set) Find(text string) (string, bool) {
	for _, p := range s {
		if HasWordPrefix(text, p) {
			return p, true
		}
	}
	return "", false
}

// Count returns how many distinct patterns text contains.
func (s Set) Count(text string) int {
	n := 0
	for _, p := range s {
		if HasWordPrefix(text, p) {
			n++
		}
	}
	return n
}

// HasWordPrefix reports whether pattern occurs in text at the start of a
// word: at the beginning of text or right after a non-alphanumeric rune.
func HasWordPrefix(text, pattern string) bool {
	if pattern == "" {
		return false
	}
	for off := 0; off <= len(text)-len(pattern); {
		i := strings.Index(text[off:], pattern)
		if i < 0 {
			return false
		}
		i += off
		if i == 0 {
			return true
		}
		if r, _ := utf8.DecodeLastRuneInString(text[:i]); !isWordRune(r) {
			return true
		}
		_, size := utf8.DecodeRuneInString(text[i:])
		off = i + size
	}
	return false
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// Has reports whether word equals one of the patterns exactly.
func (s Set) Has(word string) bool {
	for _, p := range s {
		if p == word {
			return true
		}
	}
	return false
}

// IsPlaceholder reports whether a normalised field value means the
// captioning service could not determine anything.
func IsPlaceholder(text string) bool {
	t := TrimPunct(text)
	if t == "" {
		return true
	}
	if Placeholders.Has(t) {
		return true
	}
	for _, p := range placeholderPrefixes {
		if strings.HasPrefix(t, p) {
			return true
		}
	}
	return false
}
