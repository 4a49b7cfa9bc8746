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

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv, cleanup, err := server.Bootstrap(ctx, cfg, logger)
	if err != nil {
		logger.Error("init error", slog.String("err", err.Error()))
		os.Exit(1)
	}
	defer cleanup()

	if err := server.ListenAndServe(ctx, cfg.HTTPAddr, srv.Handler(), logger); err != nil {
		logger.Error("server error", slog.String("err", err.Error()))
		os.Exit(1)
	}
}
