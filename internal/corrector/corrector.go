// Package corrector implements Devanagari spelling correction over a
// frequency dictionary: edit distance, candidate tiers, scoring and
// sentence-level replacement.
package corrector

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"hindispell/internal/dictionary"
	"hindispell/internal/script"
	"hindispell/pkg/options"
)

// SpellCorrector is bound to one immutable dictionary and is safe for
// concurrent use.
type SpellCorrector struct {
	opts   options.CorrectorOptions
	dict   *dictionary.Dictionary
	scorer Scorer
	cache  *lru.Cache[string, cached]
	onTier func(Tier)
}

func NewSpellCorrector(dict *dictionary.Dictionary, opts ...options.Options) (*SpellCorrector, error) {
	if dict == nil {
		return nil, errors.New("corrector: nil dictionary")
	}
	o := options.Resolve(opts...)
	bonus := NoBonus
	if o.PhoneticBonus {
		bonus = PhoneticBonus
	}
	sc := &SpellCorrector{
		opts:   o,
		dict:   dict,
		scorer: NewScorer(dict, o.DistanceDecay, bonus),
	}
	if o.CacheSize > 0 {
		c, err := lru.New[string, cached](o.CacheSize)
		if err != nil {
			return nil, fmt.Errorf("corrector: candidate cache: %w", err)
		}
		sc.cache = c
	}
	return sc, nil
}

func (sc *SpellCorrector) Dictionary() *dictionary.Dictionary { return sc.dict }

func (sc *SpellCorrector) Options() options.CorrectorOptions { return sc.opts }

func (sc *SpellCorrector) observe(t Tier) {
	if sc.onTier != nil {
		sc.onTier(t)
	}
}

// CorrectText tokenizes text and replaces every Devanagari word whose best
// candidate differs from the token as written. Tokens are rejoined with
// single spaces; corrections are listed in token order.
func (sc *SpellCorrector) CorrectText(text string) CorrectionResult {
	res, _ := sc.CorrectTextContext(context.Background(), text)
	return res
}

// CorrectTextContext is CorrectText that stops between tokens once ctx is
// done and returns ctx.Err().
func (sc *SpellCorrector) CorrectTextContext(ctx context.Context, text string) (CorrectionResult, error) {
	tokens := Tokenize(text)
	out := make([]string, len(tokens))
	copy(out, tokens)
	corrections := []Correction{}

	for i, tok := range tokens {
		if err := ctx.Err(); err != nil {
			return CorrectionResult{}, err
		}
		if !script.IsDevanagari(tok) || (sc.opts.SkipNonWords && !script.IsWord(tok)) {
			continue
		}
		cands := sc.candidatesAt(out, tokens, i)
		if len(cands) == 0 || cands[0].Word == tok {
			continue
		}
		out[i] = cands[0].Word
		corrections = append(corrections, Correction{
			Index:       i,
			Original:    tok,
			Suggestions: ScaleScores(cands, sc.opts.ScoreScale),
		})
	}

	return CorrectionResult{
		Original:    text,
		Corrected:   strings.Join(out, " "),
		Corrections: corrections,
	}, nil
}

// candidatesAt ranks candidates for tokens[i]. With context scoring the
// already corrected left neighbour and the raw right neighbour add
// ln(pair+1) each before the list is re-sorted.
func (sc *SpellCorrector) candidatesAt(out, tokens []string, i int) []Candidate {
	cands := sc.FindCandidates(tokens[i], sc.opts.MaxCandidates)
	if !sc.opts.ContextScoring || len(cands) < 2 {
		return cands
	}
	var prev, next string
	if i > 0 {
		prev = script.Normalize(out[i-1])
	}
	if i+1 < len(tokens) {
		next = script.Normalize(tokens[i+1])
	}
	pairs := sc.dict.Pairs()
	for k := range cands {
		if prev != "" {
			cands[k].Score += math.Log(float64(pairs.Count(prev, cands[k].Word)) + 1)
		}
		if next != "" {
			cands[k].Score += math.Log(float64(pairs.Count(cands[k].Word, next)) + 1)
		}
	}
	sortCandidates(cands)
	return cands
}

// CorrectBatch corrects texts on at most Workers goroutines and returns the
// results in input order. It stops handing out work once ctx is done.
func (sc *SpellCorrector) CorrectBatch(ctx context.Context, texts []string) ([]CorrectionResult, error) {
	out := make([]CorrectionResult, len(texts))
	sem := make(chan struct{}, max(sc.opts.Workers, 1))
	var wg sync.WaitGroup

	for i, text := range texts {
		select {
		case <-ctx.Done():
			wg.Wait()
			return nil, ctx.Err()
		case sem <- struct{}{}:
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer func() { <-sem }()
			// a cancelled ctx is reported below
			out[i], _ = sc.CorrectTextContext(ctx, text)
		}()
	}
	wg.Wait()
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
