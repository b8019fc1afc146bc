package brackettree

import (
	"context"
	"log/slog"
)

// Logger is the ambient logging seam Document reports through. Document
// currently emits one Debug entry per HandleContentChanged call, carrying the
// previous and new document lengths and the edit count; it reports nothing
// at Warn level. None of the example teacher stack carries a third-party
// structured-logging library, so this follows the standard library's own
// structured logger rather than inventing a bespoke interface; a host that
// already uses something else can adapt it in a handful of lines.
type Logger interface {
	Debug(msg string, args ...any)
	Warn(msg string, args ...any)
}

// noopLogger discards everything. It is Document's default so a host that
// doesn't care about logging pays nothing for it.
type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Warn(string, ...any)  {}

// SlogLogger adapts a *slog.Logger to Logger.
type SlogLogger struct {
	L *slog.Logger
}

func (s SlogLogger) Debug(msg string, args ...any) {
	s.L.Log(context.Background(), slog.LevelDebug, msg, args...)
}

func (s SlogLogger) Warn(msg string, args ...any) {
	s.L.Log(context.Background(), slog.LevelWarn, msg, args...)
}
