package corrector

import (
	"testing"

	"github.com/hbollon/go-edlib"
	"github.com/stretchr/testify/assert"

	"hindispell/internal/script"
)

var sampleWords = []string{
	"", "घर", "घार", "पानी", "पनी", "किताब", "कताब", "स्कूल", "स्कुल",
	"जाता", "जता", "है", "हे", "हैं", "kitten", "sitting", "ठठठठठठ",
}

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "घर", 2},
		{"घर", "", 2},
		{"घर", "घर", 0},
		{"हे", "है", 1},
		{"जता", "जाता", 1},
		{"kitten", "sitting", 3},
		{"घर", "रघ", 2},
		{"ठठठठठठ", "किताब", 6},
	}
	for _, tt := range tests {
		t.Run(tt.a+"|"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.want, Levenshtein(tt.a, tt.b))
		})
	}
}

func TestLevenshteinProperties(t *testing.T) {
	for _, a := range sampleWords {
		assert.Zero(t, Levenshtein(a, a))
		for _, b := range sampleWords {
			d := Levenshtein(a, b)
			assert.Equal(t, d, Levenshtein(b, a), "symmetry %q %q", a, b)
			assert.Equal(t, edlib.LevenshteinDistance(a, b), d, "oracle %q %q", a, b)
			for _, c := range sampleWords {
				assert.LessOrEqual(t, d, Levenshtein(a, c)+Levenshtein(c, b), "triangle %q %q %q", a, b, c)
			}
		}
	}
}

func TestSingleEditNeighbors(t *testing.T) {
	word := "घर"
	rs := []rune(word)
	n := SingleEditNeighbors(word)

	// deletions
	assert.Contains(t, n, "र")
	assert.Contains(t, n, "घ")
	// transposition
	assert.Contains(t, n, "रघ")
	// insertion of every alphabet rune at every position
	for i := 0; i <= len(rs); i++ {
		for _, c := range script.Alphabet {
			w := string(rs[:i]) + string(c) + string(rs[i:])
			assert.Contains(t, n, w)
		}
	}
	// substitutions
	assert.Contains(t, n, "घा")
	assert.Contains(t, n, "कर")

	for w := range n {
		d := Levenshtein(word, w)
		assert.True(t, d >= 1 && d <= 2, "%q at distance %d", w, d)
	}
}

func TestSingleEditNeighborsEmptyWord(t *testing.T) {
	n := SingleEditNeighbors("")
	assert.Len(t, n, len(script.Alphabet))
	for _, c := range script.Alphabet {
		assert.Contains(t, n, string(c))
	}
}
