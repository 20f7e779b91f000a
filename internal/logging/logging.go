// Package logging holds the process-wide logger shared by all modelprof
// packages. The logger is swappable so an embedding application can
// redirect profiler logs into its own sink after packages are loaded.
package logging

import (
	"log/slog"
	"os"
	"sync"
)

var (
	mu     sync.Mutex
	logger *slog.Logger
)

// Logger returns the current logger. The first call without a prior
// SetLogger installs a text handler on stderr.
func Logger() *slog.Logger {
	mu.Lock()
	defer mu.Unlock()
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, nil))
		logger.Debug("Defaulting to stderr text logger")
	}
	return logger
}

// SetLogger replaces the process-wide logger. Passing nil reverts to the
// stderr default on the next Logger call.
func SetLogger(l *slog.Logger) {
	mu.Lock()
	defer mu.Unlock()
	logger = l
	if logger != nil {
		logger.Debug("Logger replaced")
	}
}
