// Package changelog appends human-readable audit lines to per-resource log
// files. Logging is best-effort: a failed append is reported and counted but
// never surfaces to the caller, so it cannot fail or block the mutation that
// triggered it.
package changelog

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/siriart/billing-admin/internal/api/metrics"
)

// Logger appends change entries under dir, one "<resource>.log" per resource.
type Logger struct {
	dir string
	log zerolog.Logger

	mu      sync.Mutex
	files   map[string]*sync.Mutex
	dirOnce sync.Once
	dirErr  error
}

// New creates a Logger rooted at dir. The directory itself is created lazily
// on the first append.
func New(dir string, log zerolog.Logger) *Logger {
	return &Logger{dir: dir, log: log, files: make(map[string]*sync.Mutex)}
}

// Log appends "<RFC3339 timestamp> - <message>" to the resource's log file.
// It never returns an error; failures are logged and counted only.
func (l *Logger) Log(resource, message string) {
	l.dirOnce.Do(func() {
		l.dirErr = os.MkdirAll(l.dir, 0o755)
	})
	if l.dirErr != nil {
		l.report(resource, l.dirErr)
		return
	}

	line := fmt.Sprintf("%s - %s\n", time.Now().UTC().Format(time.RFC3339), message)

	fileMu := l.fileLock(resource)
	fileMu.Lock()
	defer fileMu.Unlock()

	f, err := os.OpenFile(l.path(resource), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		l.report(resource, err)
		return
	}
	defer f.Close()

	if _, err := f.WriteString(line); err != nil {
		l.report(resource, err)
	}
}

// Logf is Log with fmt.Sprintf formatting.
func (l *Logger) Logf(resource, format string, args ...any) {
	l.Log(resource, fmt.Sprintf(format, args...))
}

func (l *Logger) path(resource string) string {
	return filepath.Join(l.dir, resource+".log")
}

func (l *Logger) fileLock(resource string) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()
	m, ok := l.files[resource]
	if !ok {
		m = &sync.Mutex{}
		l.files[resource] = m
	}
	return m
}

func (l *Logger) report(resource string, err error) {
	metrics.ChangelogFailuresTotal.WithLabelValues(resource).Inc()
	l.log.Error().Err(err).Str("resource", resource).Msg("changelog append failed")
}
