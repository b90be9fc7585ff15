// SPDX-License-Identifier: MIT

// Package logging provides the structured logger used by the gridrect CLI.
// It wraps log/slog with level and format parsing; library packages never
// log and instead expose hooks the CLI attaches a Logger to.
package logging

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Log levels supported by the logger.
const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

var (
	// ErrUnknownLevel is returned by ParseLevel for an unrecognised level name.
	ErrUnknownLevel = errors.New("logging: unknown level")

	// ErrUnknownFormat is returned by New for an unrecognised format name.
	ErrUnknownFormat = errors.New("logging: unknown format")
)

// Logger is a structured logger. It is safe for concurrent use.
type Logger struct {
	logger *slog.Logger
}

// New creates a Logger writing to w at the given level ("debug", "info",
// "warn", "error"; case-insensitive) in the given format ("text" or "json").
func New(w io.Writer, level, format string) (*Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: lvl}

	var h slog.Handler
	switch strings.ToLower(format) {
	case FormatText, "":
		h = slog.NewTextHandler(w, opts)
	case FormatJSON:
		h = slog.NewJSONHandler(w, opts)
	default:
		return nil, fmt.Errorf("%q: %w", format, ErrUnknownFormat)
	}

	return &Logger{logger: slog.New(h)}, nil
}

// NopLogger returns a Logger that discards all output.
func NopLogger() *Logger {
	return &Logger{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

// With returns a child Logger that adds the key-value pairs to every record.
func (l *Logger) With(args ...any) *Logger {
	if len(args) == 0 {
		return l
	}

	return &Logger{logger: l.logger.With(args...)}
}

// Enabled reports whether records at level would be emitted.
func (l *Logger) Enabled(level slog.Level) bool {
	return l.logger.Enabled(context.Background(), level)
}

// Debug logs at debug level.
func (l *Logger) Debug(msg string, args ...any) { l.logger.Debug(msg, args...) }

// Info logs at info level.
func (l *Logger) Info(msg string, args ...any) { l.logger.Info(msg, args...) }

// Warn logs at warn level.
func (l *Logger) Warn(msg string, args ...any) { l.logger.Warn(msg, args...) }

// Error logs at error level.
func (l *Logger) Error(msg string, args ...any) { l.logger.Error(msg, args...) }

// ParseLevel converts a level name to slog.Level.
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case LevelDebug:
		return slog.LevelDebug, nil
	case LevelInfo, "":
		return slog.LevelInfo, nil
	case LevelWarn:
		return slog.LevelWarn, nil
	case LevelError:
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%q: %w", level, ErrUnknownLevel)
	}
}

// ValidLevels returns the accepted level names.
func ValidLevels() []string {
	return []string{LevelDebug, LevelInfo, LevelWarn, LevelError}
}

// ValidFormats returns the accepted format names.
func ValidFormats() []string {
	return []string{FormatText, FormatJSON}
}
