// Package logging provides structured logging configuration using log/slog.
package logging

import (
	"log/slog"
	"os"
	"strings"
)

// Setup configures the global slog logger based on level and format.
//
// Level values: "debug", "info", "warn", "error" (default: "info")
// Format values: "text", "json" (default: "text")
//
// Use "json" format when the tool runs unattended and its output is
// machine parsed; "text" is for interactive use.
func Setup(level, format string) {
	opts := &slog.HandlerOptions{
		Level: parseLevel(level),
	}

	var handler slog.Handler
	if strings.ToLower(format) == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	slog.SetDefault(slog.New(handler))
}

// parseLevel converts a string log level to slog.Level.
func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// WithRun returns a logger that carries the run id through every entry
// of a multi-step lookup, so all entries for one run can be correlated.
//
// Usage:
//
//	logger := logging.WithRun(runID)
//	logger.Info("lookup started", "primary", path)
//	// ... later ...
//	logger.Info("lookup complete", "matched", summary.Matched)
func WithRun(runID string, args ...any) *slog.Logger {
	return slog.Default().With(append([]any{"run_id", runID}, args...)...)
}
