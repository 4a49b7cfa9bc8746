package script

import (
	"strings"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripNukta decomposes precomposed nukta letters (U+0929, U+0958 ...) into
// base consonant + nukta, then drops every nukta.
var stripNukta = transform.Chain(norm.NFD, runes.Remove(runes.Predicate(func(r rune) bool {
	return r == Nukta
})))

// Normalize returns the canonical lookup form of a raw token: surrounding
// whitespace trimmed, nukta marks removed, runs of virama (and of anusvara)
// collapsed to a single mark, and inner whitespace runs collapsed to one space.
//
// Normalize is idempotent and accepts any input.
func Normalize(word string) string {
	if strings.TrimSpace(word) == "" {
		return ""
	}
	w, _, err := transform.String(stripNukta, word)
	if err != nil {
		w = word
	}
	w = collapseMarks(w)
	return strings.Join(strings.Fields(w), " ")
}

// collapseMarks squeezes consecutive repeats of virama and anusvara.
func collapseMarks(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	var prev rune = -1
	for _, r := range s {
		if r == prev && (r == Virama || r == Anusvara) {
			continue
		}
		b.WriteRune(r)
		prev = r
	}
	return b.String()
}
