package corrector

import (
	"encoding/json"
	"fmt"
	"math"
)

// Tier names the candidate strategy that produced a list.
type Tier int

const (
	TierNone       Tier = iota
	TierExact           // word is a dictionary key
	TierSingleEdit      // dictionary keys one edit away
	TierBounded         // keys within the bounded distance
	TierFallback        // nearest keys regardless of distance
)

func (t Tier) String() string {
	switch t {
	case TierExact:
		return "exact"
	case TierSingleEdit:
		return "single_edit"
	case TierBounded:
		return "bounded"
	case TierFallback:
		return "fallback"
	default:
		return "none"
	}
}

// Candidate is a dictionary word proposed for a token.
type Candidate struct {
	Word     string
	Score    float64
	Distance int
}

// Suggestion is a candidate with its score scaled and rounded for display.
// It encodes as a two element JSON array: ["word", 123].
type Suggestion struct {
	Word  string
	Score int
}

func (s Suggestion) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]any{s.Word, s.Score})
}

func (s *Suggestion) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw) != 2 {
		return fmt.Errorf("suggestion: want 2 elements, got %d", len(raw))
	}
	if err := json.Unmarshal(raw[0], &s.Word); err != nil {
		return err
	}
	return json.Unmarshal(raw[1], &s.Score)
}

// ScaleScores rounds score*scale for every candidate, keeping the order.
func ScaleScores(cands []Candidate, scale float64) []Suggestion {
	out := make([]Suggestion, len(cands))
	for i, c := range cands {
		out[i] = Suggestion{Word: c.Word, Score: int(math.Round(c.Score * scale))}
	}
	return out
}

// Correction records one replaced token.
type Correction struct {
	Index       int          `json:"index"`
	Original    string       `json:"original"`
	Suggestions []Suggestion `json:"suggestions"`
}

type CorrectionResult struct {
	Original    string       `json:"original"`
	Corrected   string       `json:"corrected"`
	Corrections []Correction `json:"corrections"`
}
