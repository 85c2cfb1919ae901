// Package logging holds the process-wide structured logger.
//
// Call Init once at startup. GetLogger is safe to call before Init and
// falls back to an INFO-level text logger on stderr.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

var (
	logger *slog.Logger
	mu     sync.RWMutex
	once   sync.Once
)

// ParseLevel maps "debug", "info", "warn" and "error" to a slog level.
// Anything else is INFO.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
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

// Init replaces the global logger with a text handler writing to w.
func Init(level slog.Level, w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	l := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))

	mu.Lock()
	logger = l
	mu.Unlock()
	once.Do(func() {})
}

func GetLogger() *slog.Logger {
	once.Do(func() {
		mu.Lock()
		if logger == nil {
			logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
		}
		mu.Unlock()
	})

	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// WithComponent tags every record with the emitting component.
func WithComponent(name string) *slog.Logger {
	return GetLogger().With("component", name)
}

// WithTable tags every record with a practice table name.
func WithTable(table string) *slog.Logger {
	return GetLogger().With("table", table)
}
