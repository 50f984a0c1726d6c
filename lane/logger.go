package lane

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that discards all records. Enabled reports
// false so callers skip formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var nopLogger = slog.New(nopHandler{})

var loggerPtr atomic.Pointer[slog.Logger]

// SetLogger configures the logger used by lane.
// By default lane produces no log output. Pass nil to restore that.
//
// Log levels used:
//   - [slog.LevelDebug]: dispatch level, register width and the
//     accelerated-path lane threshold, each time Configure runs
//   - [slog.LevelWarn]: invalid environment configuration
//
// The first dispatch runs during package initialization, before SetLogger
// can be called. To see it, call Configure(CurrentConfig()) after SetLogger.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = nopLogger
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger. It is safe for concurrent use.
func Logger() *slog.Logger {
	if l := loggerPtr.Load(); l != nil {
		return l
	}
	return nopLogger
}
