// Package logging builds the process slog logger: stdout plus an optional
// size-rotated file.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/natefinch/lumberjack"
)

type Options struct {
	File   string // empty logs to stdout only
	Level  string // debug, info, warn, error
	Format string // text or json
}

// New returns a logger writing to w, and to a rotating file when File is set.
// The returned closer releases the file.
func New(w io.Writer, o Options) (*slog.Logger, io.Closer) {
	var closer io.Closer = nopCloser{}
	if o.File != "" {
		fileLogger := &lumberjack.Logger{
			Filename:   o.File,
			MaxSize:    10, // megabytes
			MaxBackups: 5,
			MaxAge:     28, // days
			Compress:   true,
		}
		w = io.MultiWriter(w, fileLogger)
		closer = fileLogger
	}

	ho := &slog.HandlerOptions{Level: ParseLevel(o.Level)}
	var handler slog.Handler
	if strings.EqualFold(o.Format, "json") {
		handler = slog.NewJSONHandler(w, ho)
	} else {
		handler = slog.NewTextHandler(w, ho)
	}
	return slog.New(handler), closer
}

// Setup installs the logger as the slog default.
func Setup(o Options) (*slog.Logger, io.Closer) {
	logger, closer := New(os.Stdout, o)
	slog.SetDefault(logger)
	return logger, closer
}

func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
