package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"unicode/utf8"

	"hindispell/internal/corrector"
)

var (
	ErrEmptyText     = errors.New("no text provided")
	ErrTextTooLong   = errors.New("text too long")
	ErrInvalidBatch  = errors.New("invalid texts format")
	ErrBatchTooLarge = errors.New("too many texts")
	errBadRequest    = errors.New("invalid request")
	ErrBodyTooLarge  = errors.New("request body too large")
	errRateLimited   = errors.New("rate limit exceeded")
)

// JSON escapes a BMP rune as \uXXXX, so a text of n runes fits in 6n bytes.
const (
	maxEncodedRune = 6
	bodySlack      = 1 << 10
)

type spellCheckRequest struct {
	Text string `json:"text"`
}

type batchCheckRequest struct {
	Texts []string `json:"texts"`
}

type batchResult struct {
	Original        string `json:"original"`
	Corrected       string `json:"corrected"`
	CorrectionCount int    `json:"correction_count"`
}

type customWordRequest struct {
	Word string `json:"word"`
}

func (s *Server) handleSpellCheck(w http.ResponseWriter, r *http.Request) {
	var req spellCheckRequest
	if err := decodeBody(w, r, s.textBodyLimit(), &req); err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	text := strings.TrimSpace(req.Text)
	if err := s.checkText(text); err != nil {
		writeError(w, statusFor(err), err)
		return
	}

	res, err := s.engine.CorrectText(r.Context(), text)
	if err != nil {
		writeError(w, http.StatusServiceUnavailable, err)
		return
	}
	s.metrics.corrections.Add(float64(len(res.Corrections)))
	s.logger.Debug("spell-check",
		slog.String("request_id", RequestID(r.Context())),
		slog.Int("runes", utf8.RuneCountInString(text)),
		slog.Int("corrections", len(res.Corrections)))
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleBatchCheck(w http.ResponseWriter, r *http.Request) {
	var req batchCheckRequest
	limit := int64(s.cfg.MaxBatch)*s.textBodyLimit() + bodySlack
	if err := decodeBody(w, r, limit, &req); errors.Is(err, ErrBodyTooLarge) {
		writeError(w, http.StatusRequestEntityTooLarge, err)
		return
	} else if err != nil || len(req.Texts) == 0 {
		writeError(w, http.StatusBadRequest, ErrInvalidBatch)
		return
	}
	if len(req.Texts) > s.cfg.MaxBatch {
		writeError(w, http.StatusRequestEntityTooLarge, ErrBatchTooLarge)
		return
	}
	for _, t := range req.Texts {
		if utf8.RuneCountInString(t) > s.cfg.MaxTextRunes {
			writeError(w, http.StatusRequestEntityTooLarge, ErrTextTooLong)
			return
		}
	}

	results, err := s.engine.CorrectBatch(r.Context(), req.Texts)
	if err != nil {
		writeError(w, http.StatusServiceUnavailable, err)
		return
	}
	out := make([]batchResult, len(results))
	total := 0
	for i, res := range results {
		out[i] = batchResult{
			Original:        req.Texts[i],
			Corrected:       res.Corrected,
			CorrectionCount: len(res.Corrections),
		}
		total += len(res.Corrections)
	}
	s.metrics.corrections.Add(float64(total))
	writeJSON(w, http.StatusOK, map[string]any{"results": out})
}

func (s *Server) handleCandidates(w http.ResponseWriter, r *http.Request) {
	word := strings.TrimSpace(r.URL.Query().Get("word"))
	if err := s.checkText(word); err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	n, _ := strconv.Atoi(r.URL.Query().Get("n"))

	cands := s.engine.FindCandidates(word, n)
	writeJSON(w, http.StatusOK, map[string]any{
		"word":       word,
		"candidates": corrector.ScaleScores(cands, s.cfg.ScoreScale),
	})
}

func (s *Server) handleAddCustomWord(w http.ResponseWriter, r *http.Request) {
	var req customWordRequest
	if err := decodeBody(w, r, s.textBodyLimit(), &req); err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	if strings.TrimSpace(req.Word) == "" {
		writeError(w, http.StatusBadRequest, errBadRequest)
		return
	}
	word, err := s.engine.AddCustomWord(r.Context(), req.Word)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	s.metrics.SetCustomWords(len(s.engine.CustomWords()))
	writeJSON(w, http.StatusCreated, map[string]string{"status": "ok", "word": word})
}

func (s *Server) handleRemoveCustomWord(w http.ResponseWriter, r *http.Request) {
	word := strings.TrimSpace(r.PathValue("word"))
	if word == "" {
		writeError(w, http.StatusBadRequest, errors.New("word is required"))
		return
	}
	removed, err := s.engine.RemoveCustomWord(r.Context(), word)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	s.metrics.SetCustomWords(len(s.engine.CustomWords()))
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "word": removed})
}

func (s *Server) handleListCustomWords(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"words": s.engine.CustomWords()})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy", "service": "Hindi Spell Checker"})
}

func (s *Server) textBodyLimit() int64 {
	return int64(s.cfg.MaxTextRunes)*maxEncodedRune + bodySlack
}

// decodeBody reads at most limit bytes of JSON from the request body.
func decodeBody(w http.ResponseWriter, r *http.Request, limit int64, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, limit)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return ErrBodyTooLarge
		}
		return errBadRequest
	}
	return nil
}

func (s *Server) checkText(text string) error {
	if text == "" {
		return ErrEmptyText
	}
	if utf8.RuneCountInString(text) > s.cfg.MaxTextRunes {
		return ErrTextTooLong
	}
	return nil
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrEmptyText), errors.Is(err, errBadRequest), errors.Is(err, corrector.ErrNotDevanagari):
		return http.StatusBadRequest
	case errors.Is(err, ErrTextTooLong), errors.Is(err, ErrBodyTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, corrector.ErrNotCustomWord):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// writeJSON encodes v without HTML escaping so Devanagari and symbols stay readable.
func writeJSON(w http.ResponseWriter, status int, v any) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		http.Error(w, `{"error":"encode response"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
