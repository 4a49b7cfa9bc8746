package corrector

import (
	"math"

	"hindispell/internal/dictionary"
	"hindispell/internal/script"
)

// BonusFunc returns the multiplicative bonus applied to a candidate's score.
type BonusFunc func(source, candidate string) float64

// NoBonus keeps every score unchanged.
func NoBonus(string, string) float64 { return 1.0 }

// PhoneticBonus rewards candidates whose transliterated consonant skeleton
// shares a prefix with the source: 1 + 0.2 per shared leading rune.
func PhoneticBonus(source, candidate string) float64 {
	a := []rune(script.Transliterate(source))
	b := []rune(script.Transliterate(candidate))
	n := 0
	for n < len(a) && n < len(b) && a[n] == b[n] {
		n++
	}
	return 1.0 + 0.2*float64(n)
}

// Scorer ranks candidates by frequency damped by edit distance:
//
//	ln(freq+1) * exp(-decay*distance) * bonus
//
// Words missing from the dictionary count as frequency 1.
type Scorer struct {
	dict  *dictionary.Dictionary
	decay float64
	bonus BonusFunc
}

func NewScorer(dict *dictionary.Dictionary, decay float64, bonus BonusFunc) Scorer {
	if bonus == nil {
		bonus = NoBonus
	}
	return Scorer{dict: dict, decay: decay, bonus: bonus}
}

// Score is finite for any input. For a positive frequency it strictly
// decreases as distance grows.
func (s Scorer) Score(source, candidate string, distance int) float64 {
	freq, ok := s.dict.Freq(candidate)
	if !ok {
		freq = 1
	}
	return math.Log(float64(freq)+1) * math.Exp(-s.decay*float64(distance)) * s.bonus(source, candidate)
}
