package corrector

import (
	"context"
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hindispell/internal/dictionary"
	"hindispell/pkg/options"
)

func newCorrector(t *testing.T, counts map[string]int, opts ...options.Options) *SpellCorrector {
	t.Helper()
	sc, err := NewSpellCorrector(dictionary.New(counts), opts...)
	require.NoError(t, err)
	return sc
}

func expectedScore(freq, distance int) float64 {
	return math.Log(float64(freq)+1) * math.Exp(-0.8*float64(distance))
}

func TestScorer(t *testing.T) {
	s := NewScorer(dictionary.New(map[string]int{"घर": 100, "पानी": 1000}), 0.8, nil)

	assert.InDelta(t, expectedScore(100, 0), s.Score("घर", "घर", 0), 1e-12)
	assert.InDelta(t, expectedScore(1, 0), s.Score("x", "अनजान", 0), 1e-12)

	for d := 0; d < 5; d++ {
		assert.Greater(t, s.Score("घर", "घर", d), s.Score("घर", "घर", d+1))
	}
	assert.Greater(t, s.Score("", "पानी", 1), s.Score("", "घर", 1))
}

func TestPhoneticBonus(t *testing.T) {
	assert.InDelta(t, 1.6, PhoneticBonus("घर", "घर"), 1e-12)
	assert.InDelta(t, 1.0, PhoneticBonus("घर", "पानी"), 1e-12)
	assert.Greater(t, PhoneticBonus("घर", "घार"), PhoneticBonus("घर", "कर"))
}

func TestFindCandidatesExactMatch(t *testing.T) {
	sc, err := NewSpellCorrector(dictionary.Default())
	require.NoError(t, err)

	got := sc.FindCandidates("घर", 5)
	require.Len(t, got, 1)
	assert.Equal(t, "घर", got[0].Word)
	freq, _ := sc.Dictionary().Freq("घर")
	assert.InDelta(t, expectedScore(freq, 0), got[0].Score, 1e-12)

	for _, w := range sc.Dictionary().Words() {
		got := sc.FindCandidates(w, 3)
		require.Len(t, got, 1, w)
		assert.Equal(t, w, got[0].Word)
	}
}

func TestFindCandidatesSingleEdit(t *testing.T) {
	sc, err := NewSpellCorrector(dictionary.Default())
	require.NoError(t, err)

	got, tier := sc.findCandidates("हे", 5)
	require.NotEmpty(t, got)
	assert.Equal(t, TierSingleEdit, tier)
	assert.Equal(t, "है", got[0].Word)
	assert.Equal(t, 1, got[0].Distance)
	assert.LessOrEqual(t, len(got), 5)
	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i-1].Score, got[i].Score)
	}
}

func TestFindCandidatesBounded(t *testing.T) {
	sc := newCorrector(t, map[string]int{"घरका": 10, "पानी": 10})

	got, tier := sc.findCandidates("घर", 5)
	assert.Equal(t, TierBounded, tier)
	require.Len(t, got, 1)
	assert.Equal(t, "घरका", got[0].Word)
	assert.Equal(t, 2, got[0].Distance)
	assert.InDelta(t, expectedScore(10, 2), got[0].Score, 1e-12)
}

func TestFindCandidatesFallback(t *testing.T) {
	sc := newCorrector(t, map[string]int{"घर": 100, "पानी": 50, "किताब": 10})

	got, tier := sc.findCandidates("ठठठठठठ", 2)
	assert.Equal(t, TierFallback, tier)
	require.Len(t, got, 2)
	assert.Equal(t, "घर", got[0].Word)
	assert.Equal(t, "पानी", got[1].Word)
	assert.Greater(t, got[0].Score, got[1].Score)
	for _, c := range got {
		assert.GreaterOrEqual(t, c.Distance, 3)
	}
}

func TestFindCandidatesTieBreak(t *testing.T) {
	sc := newCorrector(t, map[string]int{"कम": 5, "कल": 5})

	got := sc.FindCandidates("कक", 5)
	require.Len(t, got, 2)
	assert.Equal(t, "कम", got[0].Word)
	assert.Equal(t, "कल", got[1].Word)
	assert.Equal(t, got[0].Score, got[1].Score)
}

func TestFindCandidatesDefaultsAndEmpty(t *testing.T) {
	sc := newCorrector(t, map[string]int{"घर": 1, "पानी": 1, "किताब": 1, "कम": 1, "कल": 1, "आज": 1})
	assert.LessOrEqual(t, len(sc.FindCandidates("ठठठठठठठ", 0)), 5)
	assert.NotEmpty(t, sc.FindCandidates("", 3))

	empty := newCorrector(t, nil)
	assert.Empty(t, empty.FindCandidates("घर", 5))
}

func TestFindCandidatesNormalizesInput(t *testing.T) {
	sc := newCorrector(t, map[string]int{"जमीन": 20})
	got := sc.FindCandidates(" ज़मीन ", 5)
	require.Len(t, got, 1)
	assert.Equal(t, "जमीन", got[0].Word)
}

func TestCacheReturnsSameRanking(t *testing.T) {
	counts := map[string]int{"है": 15000, "के": 12000, "से": 14000, "में": 15000}
	cached := newCorrector(t, counts, options.WithCacheSize(8))
	plain := newCorrector(t, counts, options.WithoutCache())

	first := cached.FindCandidates("हे", 5)
	first[0].Word = "mutated"
	assert.Equal(t, plain.FindCandidates("हे", 5), cached.FindCandidates("हे", 5))
	assert.Equal(t, 1, cached.cache.Len())
}

func TestObserverSeesTier(t *testing.T) {
	sc := newCorrector(t, map[string]int{"है": 10})
	var tiers []Tier
	sc.onTier = func(tier Tier) { tiers = append(tiers, tier) }

	sc.FindCandidates("है", 5)
	sc.FindCandidates("हे", 5)
	sc.FindCandidates("हे", 5)
	assert.Equal(t, []Tier{TierExact, TierSingleEdit, TierSingleEdit}, tiers)
	assert.Equal(t, "single_edit", TierSingleEdit.String())
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"   ", nil},
		{"मैं स्कूल जाता हूँ", []string{"मैं", "स्कूल", "जाता", "हूँ"}},
		{"घर, पानी।", []string{"घर", ",", "पानी", "।"}},
		{"hello!!  world", []string{"hello", "!!", "world"}},
		{"a+b", []string{"a", "+", "b"}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := Tokenize(tt.in)
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCorrectTextSentence(t *testing.T) {
	sc := newCorrector(t, map[string]int{"मैं": 5000, "स्कूल": 3500, "जाता": 2200, "हूँ": 6000})

	res := sc.CorrectText("मैं स्कूल जता हूँ")
	assert.Equal(t, "मैं स्कूल जता हूँ", res.Original)
	assert.Equal(t, "मैं स्कूल जाता हूँ", res.Corrected)
	require.Len(t, res.Corrections, 1)

	c := res.Corrections[0]
	assert.Equal(t, 2, c.Index)
	assert.Equal(t, "जता", c.Original)
	require.NotEmpty(t, c.Suggestions)
	assert.Equal(t, "जाता", c.Suggestions[0].Word)
	assert.Equal(t, int(math.Round(expectedScore(2200, 1)*100)), c.Suggestions[0].Score)
}

func TestCorrectTextSkipsOtherScripts(t *testing.T) {
	sc := newCorrector(t, map[string]int{"घर": 10})

	res := sc.CorrectText("hello 123 घर")
	assert.Equal(t, "hello 123 घर", res.Corrected)
	assert.Empty(t, res.Corrections)
	assert.NotNil(t, res.Corrections)

	res = sc.CorrectText("")
	assert.Equal(t, "", res.Corrected)
	assert.Empty(t, res.Corrections)
}

func TestCorrectTextInBlockNonWords(t *testing.T) {
	counts := map[string]int{"घर": 10}

	// danda and Devanagari digits are in the block, so they go through correction
	sc := newCorrector(t, counts)
	got := sc.FindCandidates("।", 5)
	require.Len(t, got, 1)
	assert.Equal(t, "घर", got[0].Word)

	res := sc.CorrectText("घर।")
	assert.Equal(t, "घर घर", res.Corrected)
	require.Len(t, res.Corrections, 1)
	assert.Equal(t, 1, res.Corrections[0].Index)
	assert.Equal(t, "।", res.Corrections[0].Original)

	res = sc.CorrectText("घर १२")
	assert.Equal(t, "घर घर", res.Corrected)
	require.Len(t, res.Corrections, 1)
	assert.Equal(t, "१२", res.Corrections[0].Original)

	skipping := newCorrector(t, counts, options.WithSkipNonWords())
	res = skipping.CorrectText("घर।")
	assert.Equal(t, "घर ।", res.Corrected)
	assert.Empty(t, res.Corrections)

	res = skipping.CorrectText("घर १२")
	assert.Equal(t, "घर १२", res.Corrected)
	assert.Empty(t, res.Corrections)
}

func TestCorrectTextReplacesSurfaceVariant(t *testing.T) {
	sc := newCorrector(t, map[string]int{"जमीन": 10})
	res := sc.CorrectText("ज़मीन")
	assert.Equal(t, "जमीन", res.Corrected)
	require.Len(t, res.Corrections, 1)
	assert.Equal(t, 0, res.Corrections[0].Index)
}

func TestContextScoring(t *testing.T) {
	dict := dictionary.New(map[string]int{"आज": 100, "कम": 5, "कल": 5}).
		WithPairs(dictionary.NewPairFrequency(map[dictionary.Pair]int{{First: "आज", Second: "कल"}: 100}))

	plain, err := NewSpellCorrector(dict)
	require.NoError(t, err)
	assert.Equal(t, "आज कम", plain.CorrectText("आज कक").Corrected)

	ctxAware, err := NewSpellCorrector(dict, options.WithContextScoring())
	require.NoError(t, err)
	res := ctxAware.CorrectText("आज कक")
	assert.Equal(t, "आज कल", res.Corrected)
	require.Len(t, res.Corrections, 1)
	assert.Equal(t, "कल", res.Corrections[0].Suggestions[0].Word)
}

func TestSuggestionJSON(t *testing.T) {
	data, err := json.Marshal(Correction{Index: 2, Original: "जता", Suggestions: []Suggestion{{Word: "जाता", Score: 346}}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"index":2,"original":"जता","suggestions":[["जाता",346]]}`, string(data))

	var back Correction
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, "जाता", back.Suggestions[0].Word)
	assert.Equal(t, 346, back.Suggestions[0].Score)

	var bad Suggestion
	assert.Error(t, json.Unmarshal([]byte(`["x"]`), &bad))
}

func TestCorrectBatch(t *testing.T) {
	sc := newCorrector(t, map[string]int{"मैं": 5000, "स्कूल": 3500, "जाता": 2200, "हूँ": 6000}, options.WithWorkers(2))
	texts := []string{"मैं स्कूल जता हूँ", "hello", "मैं जता हूँ", "स्कुल"}

	got, err := sc.CorrectBatch(context.Background(), texts)
	require.NoError(t, err)
	require.Len(t, got, len(texts))
	for i, text := range texts {
		assert.Equal(t, sc.CorrectText(text), got[i])
	}
	assert.Equal(t, "hello", got[1].Corrected)
	assert.Equal(t, "स्कूल", got[3].Corrected)
}

func TestCorrectBatchCanceled(t *testing.T) {
	sc := newCorrector(t, map[string]int{"घर": 1})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := sc.CorrectBatch(ctx, []string{"घर", "घर"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCorrectTextContextCanceled(t *testing.T) {
	sc := newCorrector(t, map[string]int{"घर": 1})

	res, err := sc.CorrectTextContext(context.Background(), "घर घार")
	require.NoError(t, err)
	assert.Equal(t, "घर घर", res.Corrected)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err = sc.CorrectTextContext(ctx, "घर घार")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, res.Corrected)
}

func TestNewSpellCorrectorNilDictionary(t *testing.T) {
	_, err := NewSpellCorrector(nil)
	assert.Error(t, err)
}
