// Package jsonstore implements the flat-file persistence layer. Each named
// resource is a single JSON document on disk (products.json, users.json, …)
// that is read and rewritten whole on every mutation.
//
// Writes go through a temp file plus rename so a reader never observes a
// torn document, and every load-mutate-save cycle runs inside a per-resource
// mutex so concurrent creates cannot drop each other's records. Reads take
// no lock: a reader may see a stale document, never a corrupt one.
package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"
)

// Store owns the data directory and the per-resource write locks.
type Store struct {
	dir string

	mu    sync.Mutex
	locks map[string]*sync.Mutex

	idMu   sync.Mutex
	lastID int64
}

// New creates a Store rooted at dir, creating the directory if needed.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("jsonstore: create data dir: %w", err)
	}
	return &Store{dir: dir, locks: make(map[string]*sync.Mutex)}, nil
}

// Dir returns the data directory the store was rooted at.
func (s *Store) Dir() string { return s.dir }

// Read unmarshals the named resource into out. A missing file leaves out
// untouched, so callers get their zero value ([] for collections, {} for
// object documents); reading never creates the file.
func (s *Store) Read(name string, out any) error {
	data, err := os.ReadFile(s.path(name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("jsonstore: read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("jsonstore: decode %s: %w", name, err)
	}
	return nil
}

// Write replaces the named resource document with v, pretty-printed with
// two-space indentation. The content lands in a temp file first and is
// renamed into place, so the overwrite is atomic at the file level.
func (s *Store) Write(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("jsonstore: encode %s: %w", name, err)
	}

	tmp, err := os.CreateTemp(s.dir, name+".tmp-*")
	if err != nil {
		return fmt.Errorf("jsonstore: write %s: %w", name, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("jsonstore: write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("jsonstore: write %s: %w", name, err)
	}
	if err := os.Rename(tmp.Name(), s.path(name)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("jsonstore: write %s: %w", name, err)
	}
	return nil
}

// Update runs fn while holding the named resource's exclusive lock. All
// read-modify-write cycles must go through here.
func (s *Store) Update(name string, fn func() error) error {
	l := s.lock(name)
	l.Lock()
	defer l.Unlock()
	return fn()
}

// NextID returns a fresh epoch-millisecond id. The counter is strictly
// increasing, so concurrent callers inside the same millisecond still get
// distinct ids.
func (s *Store) NextID() string {
	s.idMu.Lock()
	defer s.idMu.Unlock()

	now := time.Now().UnixMilli()
	if now <= s.lastID {
		now = s.lastID + 1
	}
	s.lastID = now
	return strconv.FormatInt(now, 10)
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name+".json")
}

func (s *Store) lock(name string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[name]
	if !ok {
		l = &sync.Mutex{}
		s.locks[name] = l
	}
	return l
}
