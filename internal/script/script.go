// Package script holds the Devanagari-specific rules of the corrector: which
// code points belong to the block, how raw tokens are canonicalized before a
// dictionary lookup, and the alphabet edits are drawn from.
package script

import "unicode"

// Inclusive bounds of the Devanagari block.
const (
	BlockStart rune = 0x0900
	BlockEnd   rune = 0x097F
)

const (
	Anusvara rune = '\u0902'
	Nukta    rune = '\u093C'
	Virama   rune = '\u094D'
)

// IsDevanagari reports whether s contains at least one rune of the Devanagari block.
func IsDevanagari(s string) bool {
	for _, r := range s {
		if IsDevanagariRune(r) {
			return true
		}
	}
	return false
}

// IsDevanagariRune reports whether r lies in [BlockStart, BlockEnd].
func IsDevanagariRune(r rune) bool {
	return r >= BlockStart && r <= BlockEnd
}

// IsWord reports whether s carries at least one Devanagari letter or mark.
// Tokens made only of danda, digits or other signs of the block are not words.
func IsWord(s string) bool {
	for _, r := range s {
		if IsDevanagariRune(r) && (unicode.IsLetter(r) || unicode.IsMark(r)) {
			return true
		}
	}
	return false
}
