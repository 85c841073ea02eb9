// Package logging provides the structured logger used across the service.
package logging

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// Logger is the logging surface handlers and repositories depend on.
// Structured variants take alternating key/value pairs.
type Logger interface {
	Debug(msg string, kv ...any)
	Info(msg string, kv ...any)
	Error(msg string, kv ...any)
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Errorf(format string, args ...any)
	With(kv ...any) Logger
}

type slogLogger struct {
	l *slog.Logger
}

// NewLogger returns a JSON slog-backed Logger at the given level.
// Unknown levels fall back to info.
func NewLogger(level string) Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	h := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})
	return &slogLogger{l: slog.New(h)}
}

func (s *slogLogger) Debug(msg string, kv ...any) { s.l.Debug(msg, kv...) }
func (s *slogLogger) Info(msg string, kv ...any)  { s.l.Info(msg, kv...) }
func (s *slogLogger) Error(msg string, kv ...any) { s.l.Error(msg, kv...) }

func (s *slogLogger) Debugf(format string, args ...any) { s.l.Debug(fmt.Sprintf(format, args...)) }
func (s *slogLogger) Infof(format string, args ...any)  { s.l.Info(fmt.Sprintf(format, args...)) }
func (s *slogLogger) Errorf(format string, args ...any) { s.l.Error(fmt.Sprintf(format, args...)) }

func (s *slogLogger) With(kv ...any) Logger {
	return &slogLogger{l: s.l.With(kv...)}
}

type noopLogger struct{}

// NewNoopLogger returns a Logger that discards everything. Constructors
// accepting a nil Logger substitute it so call sites never nil-check.
func NewNoopLogger() Logger {
	return noopLogger{}
}

func (noopLogger) Debug(msg string, kv ...any)          {}
func (noopLogger) Info(msg string, kv ...any)           {}
func (noopLogger) Error(msg string, kv ...any)          {}
func (noopLogger) Debugf(format string, args ...any)    {}
func (noopLogger) Infof(format string, args ...any)     {}
func (noopLogger) Errorf(format string, args ...any)    {}
func (noopLogger) With(kv ...any) Logger                { return noopLogger{} }
