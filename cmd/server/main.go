// Command server runs the custom word admin API on ADMIN_ADDR. It shares the
// Redis set with the public API, which picks changes up on restart.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"hindispell/internal/config"
	"hindispell/internal/logging"
	"hindispell/internal/server"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		slog.Error("config", slog.String("err", err.Error()))
		os.Exit(1)
	}
	logger, closer := logging.Setup(logging.Options{File: cfg.LogFile, Level: cfg.LogLevel, Format: cfg.LogFormat})
	defer closer.Close()

	if cfg.RedisAddr == "" {
		logger.Error("REDIS_ADDR is required for the admin API")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv, cleanup, err := server.Bootstrap(ctx, cfg, logger)
	if err != nil {
		logger.Error("init error", slog.String("err", err.Error()))
		os.Exit(1)
	}
	defer cleanup()

	if err := server.ListenAndServe(ctx, cfg.AdminAddr, srv.AdminHandler(), logger); err != nil {
		logger.Error("server error", slog.String("err", err.Error()))
		os.Exit(1)
	}
}
