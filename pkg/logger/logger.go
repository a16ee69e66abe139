// Package logger holds the process-wide zerolog logger. The logger is
// usable from the first import — it starts as a pretty info-level console
// logger so early failures (config, cipher secret) still log cleanly —
// and Init reconfigures it once from the loaded configuration.
package logger

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Options controls the logger configuration applied by Init.
type Options struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Empty or unrecognised values fall back to info.
	Level string
	// Pretty switches to human-friendly console output. Production runs
	// leave it off and emit pure JSON.
	Pretty bool
}

var (
	mu       sync.Mutex
	instance = build(Options{Pretty: true})
	applied  bool
)

// Init applies opts to the process logger. Only the first call has any
// effect; later calls return the already-configured logger.
func Init(opts Options) zerolog.Logger {
	mu.Lock()
	defer mu.Unlock()
	if !applied {
		instance = build(opts)
		applied = true
	}
	return instance
}

// Get returns the process logger. Before Init it is the pretty info-level
// default, so it is always safe to call.
func Get() zerolog.Logger {
	mu.Lock()
	defer mu.Unlock()
	return instance
}

// Reset restores the default so the next Init call applies again.
// Intended for use in tests only.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	instance = build(Options{Pretty: true})
	applied = false
}

func build(opts Options) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339Nano

	var out io.Writer = os.Stdout
	if opts.Pretty {
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}

	return zerolog.New(out).
		Level(parseLevel(opts.Level)).
		With().
		Timestamp().
		Caller().
		Logger()
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
