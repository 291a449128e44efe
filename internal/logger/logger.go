package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"slices"
	"sync/atomic"

	"session-auth/internal/redact"
)

var (
	current  atomic.Pointer[slog.Logger]
	redactor = redact.Default()
)

func init() {
	current.Store(newLogger(os.Stdout))
}

// Init points the logger at stdout.
func Init() {
	SetOutput(os.Stdout)
	Info("logger initialized", nil)
}

// SetOutput redirects log lines to w.
func SetOutput(w io.Writer) {
	current.Store(newLogger(w))
}

func newLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:       slog.LevelInfo,
		ReplaceAttr: scrub,
	}))
}

// scrub hides PII: whole values for PII keys, key=value; pairs inside strings.
func scrub(_ []string, a slog.Attr) slog.Attr {
	if a.Key == slog.TimeKey || a.Key == slog.LevelKey {
		return a
	}
	if redactor.IsField(a.Key) {
		return slog.String(a.Key, redact.Redaction)
	}
	if a.Value.Kind() == slog.KindString {
		return slog.String(a.Key, redactor.Message(a.Value.String()))
	}
	return a
}

func log(level slog.Level, msg string, fields map[string]any) {
	l := current.Load()
	if !l.Enabled(context.Background(), level) {
		return
	}
	args := make([]any, 0, len(fields))
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		args = append(args, slog.Any(k, fields[k]))
	}
	l.LogAttrs(context.Background(), level, msg, slog.Group("fields", args...))
}

func Info(msg string, fields map[string]any) {
	log(slog.LevelInfo, msg, fields)
}

func Warn(msg string, fields map[string]any) {
	log(slog.LevelWarn, msg, fields)
}

func Error(msg string, fields map[string]any) {
	log(slog.LevelError, msg, fields)
}

func Fatal(msg string, fields map[string]any) {
	log(slog.LevelError, msg, fields)
	os.Exit(1)
}
