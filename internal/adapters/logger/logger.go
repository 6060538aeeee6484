// Package logger implements the logging port using log/slog.
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sync"

	"go.trai.ch/zerr"
)

// Logger writes human-readable records through a text handler.
type Logger struct {
	mu     sync.RWMutex
	logger *slog.Logger
	level  slog.Level
}

// New creates a Logger writing to stderr at the given level.
func New(level slog.Level) *Logger {
	l := &Logger{level: level}
	l.SetOutput(os.Stderr)
	return l
}

// Discard returns a Logger that drops every record.
func Discard() *Logger {
	return &Logger{logger: slog.New(slog.DiscardHandler)}
}

// FromSlog wraps an existing slog.Logger, for hosts that already configured one.
func FromSlog(l *slog.Logger) *Logger {
	return &Logger{logger: l}
}

// SetOutput swaps the destination. Safe to call while logging.
func (l *Logger) SetOutput(w io.Writer) {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: l.level,
	})

	l.mu.Lock()
	defer l.mu.Unlock()
	l.logger = slog.New(handler)
}

func (l *Logger) current() *slog.Logger {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.logger
}

func (l *Logger) Debug(ctx context.Context, msg string, args ...any) {
	l.current().DebugContext(ctx, msg, args...)
}

func (l *Logger) Info(ctx context.Context, msg string, args ...any) {
	l.current().InfoContext(ctx, msg, args...)
}

func (l *Logger) Warn(ctx context.Context, msg string, args ...any) {
	l.current().WarnContext(ctx, msg, args...)
}

// Error logs err with any zerr metadata flattened into fields.
func (l *Logger) Error(ctx context.Context, err error) {
	zerr.Log(ctx, l.current(), err)
}
