// Package log provides leveled logging interface.
// The log messages are intended to be user-facing
// similar to the standard library's log package.
package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Level specifies the level of logging.
type Level = slog.Level

// Supported log levels.
const (
	Debug = slog.LevelDebug
	Info  = slog.LevelInfo
	Error = slog.LevelError

	// discard is higher than every level we log at.
	discard = Error + 1
)

// Logger is a leveled logger. Loggers are immutable: the With* methods
// return copies.
type Logger struct {
	sl *slog.Logger
}

// New builds a logger that writes to the given writer.
// The logger defaults to level Info and does not use colors.
func New(w io.Writer) *Logger {
	return &Logger{slog.New(&handler{W: w, Level: Info})}
}

// Level reports the minimum level of messages logged by this logger.
func (l *Logger) Level() Level {
	if h, ok := l.sl.Handler().(*handler); ok {
		return h.Level
	}
	return discard
}

// WithLevel builds a copy of this logger that logs messages at or above
// the given level.
func (l *Logger) WithLevel(lvl Level) *Logger {
	return l.withHandler(func(h *handler) { h.Level = lvl })
}

// WithColor builds a copy of this logger that highlights messages with
// ANSI escape codes if color is true.
func (l *Logger) WithColor(color bool) *Logger {
	return l.withHandler(func(h *handler) { h.Color = color })
}

// WithName builds a new logger with the provided name. The returned logger is
// safe to use concurrently with this logger.
func (l *Logger) WithName(name string) *Logger {
	return l.withHandler(func(h *handler) {
		h.name = append(h.name[:len(h.name):len(h.name)], name)
	})
}

func (l *Logger) withHandler(fn func(*handler)) *Logger {
	h, ok := l.sl.Handler().(*handler)
	if !ok {
		return l
	}
	out := *h
	fn(&out)
	return &Logger{slog.New(&out)}
}

// Debug logs a message with the given attributes at debug level. Arguments
// are interpreted as in slog.Logger.Debug, so values that implement
// slog.LogValuer render themselves.
func (l *Logger) Debug(msg string, args ...any) {
	l.sl.Debug(msg, args...)
}

// Debugf logs a formatted message at debug level.
func (l *Logger) Debugf(format string, args ...any) {
	l.Log(Debug, format, args...)
}

// Infof logs a formatted message at info level.
func (l *Logger) Infof(format string, args ...any) {
	l.Log(Info, format, args...)
}

// Errorf logs a formatted message at error level.
func (l *Logger) Errorf(format string, args ...any) {
	l.Log(Error, format, args...)
}

// Log logs a formatted message at the given level.
func (l *Logger) Log(lvl Level, format string, args ...any) {
	ctx := context.Background()
	if !l.sl.Enabled(ctx, lvl) {
		return
	}
	msg := strings.TrimRight(fmt.Sprintf(format, args...), "\n")
	l.sl.Log(ctx, lvl, msg)
}
