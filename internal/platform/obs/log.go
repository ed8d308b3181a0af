// Package obs holds the logging and timing helpers shared by adapters and
// stores. Logging goes through log/slog with typed attributes, so callers
// pass slog.Attr values instead of interleaved key/value pairs.
package obs

import (
	"context"
	"io"
	"log/slog"
	"runtime"
	"strings"
	"time"
)

func Debug(ctx context.Context, msg string, attrs ...slog.Attr) {
	logAttrs(ctx, slog.Default(), slog.LevelDebug, msg, attrs...)
}

func Info(ctx context.Context, msg string, attrs ...slog.Attr) {
	logAttrs(ctx, slog.Default(), slog.LevelInfo, msg, attrs...)
}

func Warn(ctx context.Context, msg string, attrs ...slog.Attr) {
	logAttrs(ctx, slog.Default(), slog.LevelWarn, msg, attrs...)
}

func Error(ctx context.Context, msg string, attrs ...slog.Attr) {
	logAttrs(ctx, slog.Default(), slog.LevelError, msg, attrs...)
}

// Log writes msg to l, falling back to the default logger when l is nil.
func Log(ctx context.Context, l *slog.Logger, level slog.Level, msg string, attrs ...slog.Attr) {
	if l == nil {
		l = slog.Default()
	}
	logAttrs(ctx, l, level, msg, attrs...)
}

// Err returns an Attr holding err's message, or "no-error" for nil.
func Err(key string, err error) slog.Attr {
	if err == nil {
		return slog.String(key, "no-error")
	}
	return slog.String(key, err.Error())
}

// Discard is a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// NewLogger builds a text logger on w at the named level
// (debug, info, warn, error; anything else means info).
func NewLogger(w io.Writer, level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}

// logAttrs must only be called from the exported helpers of this package:
// it skips exactly one frame above itself when resolving the source line.
func logAttrs(ctx context.Context, l *slog.Logger, level slog.Level, msg string, attrs ...slog.Attr) {
	if !l.Enabled(ctx, level) {
		return
	}
	var pcs [1]uintptr
	// skip [runtime.Callers, logAttrs, exported helper]
	runtime.Callers(3, pcs[:])
	r := slog.NewRecord(time.Now(), level, msg, pcs[0])
	r.AddAttrs(attrs...)
	_ = l.Handler().Handle(ctx, r)
}
