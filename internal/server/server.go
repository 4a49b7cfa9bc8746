// Package server exposes the corrector over HTTP: spell and batch checks,
// candidate lookup, custom word management, health and metrics.
package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"hindispell/internal/corrector"
)

// Engine is the correction service the handlers call into.
type Engine interface {
	CorrectText(ctx context.Context, text string) (corrector.CorrectionResult, error)
	CorrectBatch(ctx context.Context, texts []string) ([]corrector.CorrectionResult, error)
	FindCandidates(word string, maxCandidates int) []corrector.Candidate
	AddCustomWord(ctx context.Context, word string) (string, error)
	RemoveCustomWord(ctx context.Context, word string) (string, error)
	CustomWords() []string
}

type Config struct {
	MaxTextRunes   int
	MaxBatch       int
	RequestTimeout time.Duration
	RateLimit      float64 // requests per second, 0 disables
	RateBurst      int
	ScoreScale     float64
	Logger         *slog.Logger
}

type Server struct {
	engine  Engine
	metrics *Metrics
	cfg     Config
	limiter *rate.Limiter
	logger  *slog.Logger
}

func New(engine Engine, metrics *Metrics, cfg Config) *Server {
	if cfg.MaxTextRunes <= 0 {
		cfg.MaxTextRunes = 5000
	}
	if cfg.MaxBatch <= 0 {
		cfg.MaxBatch = 100
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 10 * time.Second
	}
	if cfg.ScoreScale <= 0 {
		cfg.ScoreScale = 100
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if metrics == nil {
		metrics = NewMetrics()
	}
	s := &Server{engine: engine, metrics: metrics, cfg: cfg, logger: cfg.Logger}
	if cfg.RateLimit > 0 {
		s.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), max(cfg.RateBurst, 1))
	}
	metrics.SetCustomWords(len(engine.CustomWords()))
	return s
}

// Handler serves the public API including custom word management.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	s.route(mux, "POST /api/v1/spell-check", "spell-check", s.handleSpellCheck)
	s.route(mux, "POST /api/v1/batch-check", "batch-check", s.handleBatchCheck)
	s.route(mux, "GET /api/v1/candidates", "candidates", s.handleCandidates)
	s.customWordRoutes(mux)
	s.commonRoutes(mux)
	return withRequestID(mux)
}

// AdminHandler serves only custom word management, health and metrics.
func (s *Server) AdminHandler() http.Handler {
	mux := http.NewServeMux()
	s.customWordRoutes(mux)
	s.commonRoutes(mux)
	return withRequestID(mux)
}

func (s *Server) customWordRoutes(mux *http.ServeMux) {
	s.route(mux, "POST /api/v1/custom-word", "custom-word-add", s.handleAddCustomWord)
	s.route(mux, "DELETE /api/v1/custom-word/{word}", "custom-word-remove", s.handleRemoveCustomWord)
	s.route(mux, "GET /api/v1/custom-words", "custom-words", s.handleListCustomWords)
}

func (s *Server) commonRoutes(mux *http.ServeMux) {
	mux.Handle("GET /health", s.instrument("health", http.HandlerFunc(s.handleHealth)))
	mux.Handle("GET /metrics", s.metrics.Handler())
}

// route mounts an API handler behind the rate limit and the request timeout.
// The handler sees a context that is cancelled when the timeout fires.
func (s *Server) route(mux *http.ServeMux, pattern, name string, h http.HandlerFunc) {
	handler := withJSONTimeout(http.TimeoutHandler(h, s.cfg.RequestTimeout, timeoutBody))
	handler = withRateLimit(s.limiter, handler)
	mux.Handle(pattern, s.instrument(name, handler))
}

// ListenAndServe runs handler on addr until ctx is done, then shuts down
// gracefully.
func ListenAndServe(ctx context.Context, addr string, handler http.Handler, logger *slog.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", slog.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		logger.Info("shutting down", slog.String("addr", addr))
		return srv.Shutdown(shutdownCtx)
	}
}
