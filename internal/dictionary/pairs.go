package dictionary

import (
	"sort"

	"hindispell/internal/script"
)

// Pair is an ordered pair of adjacent words.
type Pair struct {
	First  string
	Second string
}

// PairFrequency maps ordered word pairs to how often they were seen together.
type PairFrequency struct {
	counts map[Pair]int
}

// NewPairFrequency builds a table from raw counts, normalizing both words of
// every pair the same way New does for single words.
func NewPairFrequency(counts map[Pair]int) *PairFrequency {
	m := make(map[Pair]int, len(counts))
	for p, c := range counts {
		k := Pair{First: script.Normalize(p.First), Second: script.Normalize(p.Second)}
		if k.First == "" || k.Second == "" {
			continue
		}
		m[k] = addCount(m[k], max(c, 0))
	}
	return &PairFrequency{counts: m}
}

// Count returns the frequency of (first, second), or 0 when unseen.
func (p *PairFrequency) Count(first, second string) int {
	if p == nil {
		return 0
	}
	return p.counts[Pair{First: first, Second: second}]
}

// Len returns the number of distinct pairs.
func (p *PairFrequency) Len() int {
	if p == nil {
		return 0
	}
	return len(p.counts)
}

// Pairs returns every pair ordered by First, then Second.
func (p *PairFrequency) Pairs() []Pair {
	if p == nil {
		return nil
	}
	out := make([]Pair, 0, len(p.counts))
	for k := range p.counts {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].First == out[j].First {
			return out[i].Second < out[j].Second
		}
		return out[i].First < out[j].First
	})
	return out
}
