package diag

import (
	"log/slog"
	"os"
)

// Logger wraps log/slog so call sites never import log/slog directly — the
// one ambient concern this repository builds on the standard library rather
// than a third-party package (see DESIGN.md).
type Logger struct {
	base *slog.Logger
}

// NewLogger returns a Logger writing leveled, structured text to os.Stderr.
// level is one of "debug", "info", "warn", "error".
func NewLogger(level string) *Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
	return &Logger{base: slog.New(h)}
}

// PhaseStart logs entry into a named pipeline phase (component J).
func (l *Logger) PhaseStart(phase string, unitID string) {
	l.base.Info("phase start", "phase", phase, "unit", unitID)
}

// PhaseEnd logs completion of a named pipeline phase, with the error count
// accumulated during it.
func (l *Logger) PhaseEnd(phase string, unitID string, errCount int) {
	l.base.Info("phase end", "phase", phase, "unit", unitID, "errors", errCount)
}

// Trace logs a per-node debug trace, a no-op unless the logger's level is
// debug.
func (l *Logger) Trace(msg string, args ...any) {
	l.base.Debug(msg, args...)
}

// Error logs a diagnostic emitted during a phase.
func (l *Logger) Error(msg string, args ...any) {
	l.base.Error(msg, args...)
}
