package corrector

import (
	"slices"
	"sort"
	"strconv"

	"hindispell/internal/script"
)

type cached struct {
	candidates []Candidate
	tier       Tier
}

// FindCandidates returns up to maxCandidates dictionary words for word,
// best first. A non-positive maxCandidates means the configured default.
//
// Tiers are tried in order and the first non-empty one wins: exact match
// (returned alone), single-edit neighbors present in the dictionary, keys
// within the bounded distance, then the nearest keys regardless of distance.
// Equal scores are ordered by word.
func (sc *SpellCorrector) FindCandidates(word string, maxCandidates int) []Candidate {
	cands, _ := sc.findCandidates(word, maxCandidates)
	return cands
}

func (sc *SpellCorrector) findCandidates(word string, maxCandidates int) ([]Candidate, Tier) {
	if maxCandidates <= 0 {
		maxCandidates = sc.opts.MaxCandidates
	}
	w := script.Normalize(word)
	if sc.dict.Has(w) {
		sc.observe(TierExact)
		return []Candidate{{Word: w, Score: sc.scorer.Score(w, w, 0)}}, TierExact
	}

	key := w + "\x00" + strconv.Itoa(maxCandidates)
	if sc.cache != nil {
		if v, ok := sc.cache.Get(key); ok {
			sc.observe(v.tier)
			return slices.Clone(v.candidates), v.tier
		}
	}

	found, tier := sc.gather(w, maxCandidates)
	for i := range found {
		found[i].Score = sc.scorer.Score(w, found[i].Word, found[i].Distance)
	}
	sortCandidates(found)
	if len(found) > maxCandidates {
		found = found[:maxCandidates]
	}

	if sc.cache != nil {
		sc.cache.Add(key, cached{candidates: slices.Clone(found), tier: tier})
	}
	sc.observe(tier)
	return found, tier
}

// gather runs tiers 2 to 4 for an already normalized word that is not a key.
// Every returned candidate carries its distance to w.
func (sc *SpellCorrector) gather(w string, maxCandidates int) ([]Candidate, Tier) {
	var found []Candidate
	for n := range SingleEditNeighbors(w) {
		if sc.dict.Has(n) {
			found = append(found, Candidate{Word: n, Distance: Levenshtein(w, n)})
		}
	}
	if len(found) > 0 {
		return found, TierSingleEdit
	}

	words := sc.dict.Words()
	all := make([]Candidate, len(words))
	for i, k := range words {
		all[i] = Candidate{Word: k, Distance: Levenshtein(w, k)}
		if all[i].Distance <= sc.opts.BoundedDistance {
			found = append(found, all[i])
		}
	}
	if len(found) > 0 {
		return found, TierBounded
	}
	if len(all) == 0 {
		return nil, TierNone
	}

	// words are sorted, so a stable sort leaves equal distances by word
	sort.SliceStable(all, func(i, j int) bool { return all[i].Distance < all[j].Distance })
	if limit := sc.opts.FallbackFactor * maxCandidates; len(all) > limit {
		all = all[:limit]
	}
	return all, TierFallback
}

func sortCandidates(c []Candidate) {
	sort.Slice(c, func(i, j int) bool {
		if c[i].Score == c[j].Score {
			return c[i].Word < c[j].Word
		}
		return c[i].Score > c[j].Score
	})
}
