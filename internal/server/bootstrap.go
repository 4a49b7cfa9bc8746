package server

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"hindispell/internal/config"
	"hindispell/internal/corrector"
	"hindispell/internal/customdict"
)

// Bootstrap loads the dictionary, connects the custom word store when Redis
// is configured, and returns a ready Server. cleanup releases the Redis client.
func Bootstrap(ctx context.Context, cfg *config.Config, logger *slog.Logger) (srv *Server, cleanup func(), err error) {
	cleanup = func() {}

	dict, source, err := cfg.LoadDictionary()
	if err != nil {
		return nil, cleanup, fmt.Errorf("dictionary: %w", err)
	}
	logger.Info("dictionary source", slog.String("source", source), slog.Int("words", dict.Len()))

	opts, err := cfg.EngineOptions()
	if err != nil {
		return nil, cleanup, err
	}

	var store corrector.CustomStore
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		cleanup = func() { _ = client.Close() }
		cd := customdict.New(client)
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := cd.Ping(pingCtx); err != nil {
			cleanup()
			return nil, func() {}, fmt.Errorf("redis %s: %w", cfg.RedisAddr, err)
		}
		store = cd
	} else {
		logger.Warn("REDIS_ADDR not set; custom words are kept in memory only")
	}

	metrics := NewMetrics()
	svc, err := corrector.NewService(ctx, dict, corrector.ServiceConfig{
		Store:      store,
		CustomFreq: cfg.CustomWordFreq,
		Options:    opts,
		OnTier:     metrics.ObserveTier,
		Logger:     logger,
	})
	if err != nil {
		cleanup()
		return nil, func() {}, err
	}

	srv = New(svc, metrics, Config{
		MaxTextRunes:   cfg.MaxTextRunes,
		MaxBatch:       cfg.MaxBatch,
		RequestTimeout: cfg.RequestTimeout,
		RateLimit:      cfg.RateLimit,
		RateBurst:      cfg.RateBurst,
		ScoreScale:     svc.Engine().Options().ScoreScale,
		Logger:         logger,
	})
	return srv, cleanup, nil
}
