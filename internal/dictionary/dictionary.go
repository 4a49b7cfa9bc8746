// Package dictionary holds the word and word-pair frequency tables the
// corrector ranks candidates against. Tables are built once and never
// mutated afterwards; changes produce a new table.
package dictionary

import (
	"errors"
	"sort"

	"hindispell/internal/script"
)

// ErrEmptyDictionary is returned by loaders that found no usable entry.
var ErrEmptyDictionary = errors.New("dictionary: no usable entries")

// Dictionary maps normalized words to their frequency count.
// It is read-only after construction and safe for concurrent use.
type Dictionary struct {
	freq  map[string]int
	words []string // sorted keys of freq
	pairs *PairFrequency
}

// New builds a Dictionary from raw counts. Keys are normalized with
// script.Normalize; keys that collide after normalization have their counts
// summed, negative counts are treated as zero and empty keys are dropped.
func New(counts map[string]int) *Dictionary {
	freq := make(map[string]int, len(counts))
	for w, c := range counts {
		k := script.Normalize(w)
		if k == "" {
			continue
		}
		freq[k] = addCount(freq[k], max(c, 0))
	}
	return build(freq, nil)
}

func build(freq map[string]int, pairs *PairFrequency) *Dictionary {
	words := make([]string, 0, len(freq))
	for w := range freq {
		words = append(words, w)
	}
	sort.Strings(words)
	if pairs == nil {
		pairs = NewPairFrequency(nil)
	}
	return &Dictionary{freq: freq, words: words, pairs: pairs}
}

// Freq returns the count stored for an already normalized word.
func (d *Dictionary) Freq(word string) (int, bool) {
	c, ok := d.freq[word]
	return c, ok
}

// Has reports whether the normalized word is a key.
func (d *Dictionary) Has(word string) bool {
	_, ok := d.freq[word]
	return ok
}

// Len returns the number of distinct words.
func (d *Dictionary) Len() int { return len(d.words) }

// Words returns every key in ascending order. The slice is shared and must
// not be modified.
func (d *Dictionary) Words() []string { return d.words }

// Pairs returns the bigram table bound to this dictionary (never nil).
func (d *Dictionary) Pairs() *PairFrequency { return d.pairs }

// WithPairs returns a dictionary with the same words bound to p.
func (d *Dictionary) WithPairs(p *PairFrequency) *Dictionary {
	if p == nil {
		p = NewPairFrequency(nil)
	}
	return &Dictionary{freq: d.freq, words: d.words, pairs: p}
}

// Merge returns a new dictionary holding d's words plus extra. Counts in
// extra replace existing ones. d itself is left untouched.
func (d *Dictionary) Merge(extra map[string]int) *Dictionary {
	freq := make(map[string]int, len(d.freq)+len(extra))
	for w, c := range d.freq {
		freq[w] = c
	}
	for w, c := range extra {
		k := script.Normalize(w)
		if k == "" {
			continue
		}
		freq[k] = max(c, 0)
	}
	return build(freq, d.pairs)
}

// Counts returns a copy of the word table.
func (d *Dictionary) Counts() map[string]int {
	out := make(map[string]int, len(d.freq))
	for w, c := range d.freq {
		out[w] = c
	}
	return out
}
