// Package logger builds the process-wide slog logger from configuration.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/msomdec/board/internal/config"
	"github.com/natefinch/lumberjack"
)

// New returns a logger for the given settings. Without a log file it writes
// text to stdout and JSON to stderr; with one it writes JSON to a
// size-rotated file.
func New(settings config.LoggerSettings) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(settings.Level)}

	if settings.File != "" {
		return slog.New(slog.NewJSONHandler(fileWriter(settings), opts))
	}
	return slog.New(slog.NewMultiHandler(
		slog.NewTextHandler(os.Stdout, opts),
		slog.NewJSONHandler(os.Stderr, opts),
	))
}

func fileWriter(settings config.LoggerSettings) io.Writer {
	return &lumberjack.Logger{
		Filename:   settings.File,
		MaxSize:    settings.MaxSize,
		MaxBackups: settings.MaxBackups,
		MaxAge:     settings.MaxAge,
		Compress:   true,
	}
}

// Setup builds a logger and installs it as the slog default.
func Setup(settings config.LoggerSettings) *slog.Logger {
	l := New(settings)
	slog.SetDefault(l)
	return l
}

// ParseLevel maps a configured level name to a slog.Level. Unknown names
// yield info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case config.LogLevelDebug:
		return slog.LevelDebug
	case config.LogLevelWarn:
		return slog.LevelWarn
	case config.LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
