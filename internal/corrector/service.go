package corrector

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	"hindispell/internal/dictionary"
	"hindispell/internal/script"
	"hindispell/pkg/options"
)

var (
	ErrNotDevanagari = errors.New("custom word must be a single Devanagari word")
	ErrNotCustomWord = errors.New("word is not in the custom dictionary")
)

// DefaultCustomFreq is the count given to user-added words.
const DefaultCustomFreq = 1_000_000_000

// CustomStore persists user-added words.
type CustomStore interface {
	Add(ctx context.Context, word string) error
	Remove(ctx context.Context, word string) error
	All(ctx context.Context) ([]string, error)
}

type ServiceConfig struct {
	Store      CustomStore // nil keeps custom words in memory only
	CustomFreq int
	Options    []options.Options
	OnTier     func(Tier)
	Logger     *slog.Logger
}

// Service serves corrections from the current engine and rebuilds it when
// the custom word set changes. Each change builds a new dictionary and
// engine that replace the old ones atomically; readers never block.
type Service struct {
	mu     sync.Mutex // serializes custom word changes
	base   *dictionary.Dictionary
	custom map[string]struct{}
	cfg    ServiceConfig
	engine atomic.Pointer[SpellCorrector]
}

func NewService(ctx context.Context, base *dictionary.Dictionary, cfg ServiceConfig) (*Service, error) {
	if cfg.CustomFreq <= 0 {
		cfg.CustomFreq = DefaultCustomFreq
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	s := &Service{base: base, custom: make(map[string]struct{}), cfg: cfg}
	if err := s.Reload(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// Engine returns the current engine snapshot.
func (s *Service) Engine() *SpellCorrector { return s.engine.Load() }

func (s *Service) CorrectText(ctx context.Context, text string) (CorrectionResult, error) {
	return s.Engine().CorrectTextContext(ctx, text)
}

func (s *Service) CorrectBatch(ctx context.Context, texts []string) ([]CorrectionResult, error) {
	return s.Engine().CorrectBatch(ctx, texts)
}

func (s *Service) FindCandidates(word string, maxCandidates int) []Candidate {
	return s.Engine().FindCandidates(word, maxCandidates)
}

// Reload re-reads the custom words from the store and rebuilds the engine.
// Without a store it only rebuilds.
func (s *Service) Reload(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	custom := make(map[string]struct{}, len(s.custom))
	if s.cfg.Store != nil {
		words, err := s.cfg.Store.All(ctx)
		if err != nil {
			return fmt.Errorf("load custom words: %w", err)
		}
		for _, w := range words {
			if k := script.Normalize(w); k != "" {
				custom[k] = struct{}{}
			}
		}
	} else {
		for w := range s.custom {
			custom[w] = struct{}{}
		}
	}
	if err := s.rebuild(custom); err != nil {
		return err
	}
	s.cfg.Logger.Info("dictionary loaded",
		"words", s.Engine().Dictionary().Len(),
		"custom_words", len(custom),
		"bigrams", s.base.Pairs().Len())
	return nil
}

// AddCustomWord stores word and makes it a dictionary key. It returns the
// normalized form that was added.
func (s *Service) AddCustomWord(ctx context.Context, word string) (string, error) {
	w, err := customKey(word)
	if err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cfg.Store != nil {
		if err := s.cfg.Store.Add(ctx, w); err != nil {
			return "", fmt.Errorf("store custom word: %w", err)
		}
	}
	custom := s.copyCustom()
	custom[w] = struct{}{}
	if err := s.rebuild(custom); err != nil {
		return "", err
	}
	s.cfg.Logger.Info("custom word added", "word", w, "custom_words", len(custom))
	return w, nil
}

// RemoveCustomWord drops a user-added word. Words that are only part of the
// base dictionary cannot be removed.
func (s *Service) RemoveCustomWord(ctx context.Context, word string) (string, error) {
	w := script.Normalize(word)
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.custom[w]; !ok {
		return "", fmt.Errorf("%q: %w", word, ErrNotCustomWord)
	}
	if s.cfg.Store != nil {
		if err := s.cfg.Store.Remove(ctx, w); err != nil {
			return "", fmt.Errorf("remove custom word: %w", err)
		}
	}
	custom := s.copyCustom()
	delete(custom, w)
	if err := s.rebuild(custom); err != nil {
		return "", err
	}
	s.cfg.Logger.Info("custom word removed", "word", w, "custom_words", len(custom))
	return w, nil
}

// CustomWords lists the user-added words in order.
func (s *Service) CustomWords() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.custom))
	for w := range s.custom {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

func (s *Service) copyCustom() map[string]struct{} {
	out := make(map[string]struct{}, len(s.custom)+1)
	for w := range s.custom {
		out[w] = struct{}{}
	}
	return out
}

// rebuild must be called with mu held.
func (s *Service) rebuild(custom map[string]struct{}) error {
	extra := make(map[string]int, len(custom))
	for w := range custom {
		extra[w] = s.cfg.CustomFreq
	}
	engine, err := NewSpellCorrector(s.base.Merge(extra), s.cfg.Options...)
	if err != nil {
		return err
	}
	engine.onTier = s.cfg.OnTier
	s.engine.Store(engine)
	s.custom = custom
	return nil
}

func customKey(word string) (string, error) {
	w := script.Normalize(word)
	if w == "" || strings.ContainsRune(w, ' ') || !script.IsWord(w) {
		return "", fmt.Errorf("%q: %w", word, ErrNotDevanagari)
	}
	for _, r := range w {
		if !script.IsDevanagariRune(r) {
			return "", fmt.Errorf("%q: %w", word, ErrNotDevanagari)
		}
	}
	return w, nil
}
