package parametric

import (
	"log/slog"

	"github.com/gogpu/parametric/internal/logging"
)

// SetLogger configures the logger for parametric and all its
// sub-packages. By default, parametric produces no log output. Call
// SetLogger to enable logging.
//
// SetLogger is safe for concurrent use: it stores the new logger atomically.
// Pass nil to disable logging (restore default silent behavior).
//
// Log levels used by parametric:
//   - [slog.LevelDebug]: per-pattern details (auto-center, registrations)
//   - [slog.LevelInfo]: lifecycle events (configuration loaded, lines built)
//   - [slog.LevelWarn]: recovered problems (unknown function or pattern,
//     bad expression, too few points)
//
// Example:
//
//	// Enable info-level logging to stderr:
//	parametric.SetLogger(slog.Default())
//
//	// Enable debug-level logging for full diagnostics:
//	parametric.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	logging.Set(l)
}

// Logger returns the current logger used by parametric.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return logging.Logger()
}
