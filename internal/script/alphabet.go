package script

import "strings"

// Consonants are the base consonant code points U+0915..U+0939.
var Consonants = func() []rune {
	out := make([]rune, 0, 0x093A-0x0915)
	for r := rune(0x0915); r < 0x093A; r++ {
		out = append(out, r)
	}
	return out
}()

// VowelSigns are the dependent vowel signs (matras) used for edits.
var VowelSigns = []rune{
	'\u093E', '\u093F', '\u0940', '\u0941', '\u0942', '\u0943',
	'\u0944', '\u0947', '\u0948', '\u094B', '\u094C',
}

// Alphabet is the fixed symbol set for substitution and insertion edits:
// Consonants followed by VowelSigns.
var Alphabet = append(append(make([]rune, 0, len(Consonants)+len(VowelSigns)), Consonants...), VowelSigns...)

var translit = map[rune]string{
	'क': "k", 'ख': "kh", 'ग': "g", 'घ': "gh", 'ङ': "ng",
	'च': "ch", 'छ': "chh", 'ज': "j", 'झ': "jh", 'ञ': "ny",
	'ट': "t", 'ठ': "th", 'ड': "d", 'ढ': "dh", 'ण': "n",
	'त': "t", 'थ': "th", 'द': "d", 'ध': "dh", 'न': "n",
	'प': "p", 'फ': "ph", 'ब': "b", 'भ': "bh", 'म': "m",
	'य': "y", 'र': "r", 'ल': "l", 'व': "v", 'श': "sh",
	'ष': "sh", 'स': "s", 'ह': "h",
}

// Transliterate gives a rough Latin rendering of the consonant skeleton of
// word, for phonetic comparison only. A virama joining two known consonants
// is dropped so the conjunct reads as a cluster ("क्त" -> "kt"); every other
// rune outside the table passes through unchanged.
func Transliterate(word string) string {
	rs := []rune(word)
	var b strings.Builder
	b.Grow(len(word))
	for i, r := range rs {
		if r == Virama && i > 0 && i+1 < len(rs) {
			_, left := translit[rs[i-1]]
			_, right := translit[rs[i+1]]
			if left && right {
				continue
			}
		}
		if lat, ok := translit[r]; ok {
			b.WriteString(lat)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
