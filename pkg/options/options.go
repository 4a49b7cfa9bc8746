package options

// DefaultOptions matches the ranking constants of the reference scorer.
var DefaultOptions = CorrectorOptions{
	MaxCandidates:   5,
	BoundedDistance: 2,
	FallbackFactor:  2,
	DistanceDecay:   0.8,
	ScoreScale:      100,
	CacheSize:       4096,
	PhoneticBonus:   false,
	ContextScoring:  false,
	SkipNonWords:    false,
	Workers:         4,
}

type CorrectorOptions struct {
	MaxCandidates   int     // candidates kept per word
	BoundedDistance int     // tier 3 distance cutoff
	FallbackFactor  int     // tier 4 keeps FallbackFactor*MaxCandidates keys
	DistanceDecay   float64 // score = ln(f+1) * exp(-DistanceDecay*d) * bonus
	ScoreScale      float64 // multiplier for reported integer scores
	CacheSize       int     // LRU entries for candidate lists, 0 disables
	PhoneticBonus   bool    // replace the 1.0 bonus with the transliteration prefix bonus
	ContextScoring  bool    // re-rank sentence candidates with bigram counts
	SkipNonWords    bool    // leave in-block tokens without letters (danda, digits) alone
	Workers         int     // goroutines used by batch correction
}

type Options interface {
	Apply(options *CorrectorOptions)
}

type FuncConfig struct {
	ops func(options *CorrectorOptions)
}

func (w FuncConfig) Apply(conf *CorrectorOptions) {
	w.ops(conf)
}

func NewFuncOption(f func(options *CorrectorOptions)) *FuncConfig {
	return &FuncConfig{ops: f}
}

// Resolve applies opts on top of DefaultOptions.
func Resolve(opts ...Options) CorrectorOptions {
	o := DefaultOptions
	for _, opt := range opts {
		if opt != nil {
			opt.Apply(&o)
		}
	}
	return o
}

func WithMaxCandidates(n int) Options {
	return NewFuncOption(func(options *CorrectorOptions) {
		if n > 0 {
			options.MaxCandidates = n
		}
	})
}

func WithBoundedDistance(d int) Options {
	return NewFuncOption(func(options *CorrectorOptions) {
		if d >= 0 {
			options.BoundedDistance = d
		}
	})
}

func WithFallbackFactor(f int) Options {
	return NewFuncOption(func(options *CorrectorOptions) {
		if f > 0 {
			options.FallbackFactor = f
		}
	})
}

func WithDistanceDecay(decay float64) Options {
	return NewFuncOption(func(options *CorrectorOptions) {
		if decay > 0 {
			options.DistanceDecay = decay
		}
	})
}

func WithScoreScale(scale float64) Options {
	return NewFuncOption(func(options *CorrectorOptions) {
		if scale > 0 {
			options.ScoreScale = scale
		}
	})
}

func WithCacheSize(size int) Options {
	return NewFuncOption(func(options *CorrectorOptions) {
		if size >= 0 {
			options.CacheSize = size
		}
	})
}

func WithoutCache() Options {
	return NewFuncOption(func(options *CorrectorOptions) {
		options.CacheSize = 0
	})
}

// Phonetic and context signals are off by default

func WithPhoneticBonus() Options {
	return NewFuncOption(func(options *CorrectorOptions) {
		options.PhoneticBonus = true
	})
}

func WithContextScoring() Options {
	return NewFuncOption(func(options *CorrectorOptions) {
		options.ContextScoring = true
	})
}

// WithSkipNonWords keeps danda and Devanagari digit tokens out of correction.
func WithSkipNonWords() Options {
	return NewFuncOption(func(options *CorrectorOptions) {
		options.SkipNonWords = true
	})
}

func WithWorkers(n int) Options {
	return NewFuncOption(func(options *CorrectorOptions) {
		if n > 0 {
			options.Workers = n
		}
	})
}
