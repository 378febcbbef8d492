package debug

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// Logger is a nil-safe structured logger. Callers must never pass plaintext
// secrets as attributes; log type ids, redacted forms and status codes instead.
type Logger struct {
	sl *slog.Logger
}

// New returns a logger writing to stderr. Debug records are emitted only when
// verbose is set.
func New(verbose bool) *Logger {
	return NewWriter(os.Stderr, verbose)
}

// NewWriter returns a logger writing text records to out.
func NewWriter(out io.Writer, verbose bool) *Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	h := slog.NewTextHandler(out, &slog.HandlerOptions{Level: level})
	return &Logger{sl: slog.New(h)}
}

// Discard returns a logger that drops every record.
func Discard() *Logger {
	return NewWriter(io.Discard, false)
}

// With returns a child logger carrying attrs on every record.
func (l *Logger) With(args ...any) *Logger {
	if l == nil || l.sl == nil {
		return l
	}
	return &Logger{sl: l.sl.With(args...)}
}

func (l *Logger) Debug(msg string, args ...any) { l.log(slog.LevelDebug, msg, args...) }
func (l *Logger) Info(msg string, args ...any)  { l.log(slog.LevelInfo, msg, args...) }
func (l *Logger) Warn(msg string, args ...any)  { l.log(slog.LevelWarn, msg, args...) }
func (l *Logger) Error(msg string, args ...any) { l.log(slog.LevelError, msg, args...) }

func (l *Logger) log(level slog.Level, msg string, args ...any) {
	if l == nil || l.sl == nil {
		return
	}
	l.sl.Log(context.Background(), level, msg, args...)
}
