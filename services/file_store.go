package services

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"sennight_server/models"
)

// FileStore persists each collection as one pretty-printed JSON array
// on disk. Load and Replace are whole-document operations: there is no
// partial or indexed update primitive. Replace writes to a temp file
// and renames it into place, so a concurrent Load sees either the old
// or the new document, never a torn one.
//
// The store itself does not lock. Callers that load, mutate and write
// back must hold the collection's mutex via WithLock for the whole
// sequence, otherwise two concurrent writers can lose an update.
type FileStore struct {
	dir string

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewFileStore creates the data directory if needed and returns a
// store rooted there.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory '%s': %w", dir, err)
	}
	return &FileStore{
		dir: dir,
		locks: map[string]*sync.Mutex{
			models.UsersCollection:    {},
			models.MatchesCollection:  {},
			models.MessagesCollection: {},
		},
	}, nil
}

// Dir returns the data directory the store writes under.
func (s *FileStore) Dir() string {
	return s.dir
}

func (s *FileStore) path(collection string) string {
	return filepath.Join(s.dir, collection+".json")
}

func (s *FileStore) lockFor(collection string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[collection]
	if !ok {
		l = &sync.Mutex{}
		s.locks[collection] = l
	}
	return l
}

// WithLock runs fn while holding the named collection's mutex. Every
// load-mutate-replace sequence against a collection must go through
// here; plain reads may call Load directly.
func (s *FileStore) WithLock(collection string, fn func() error) error {
	l := s.lockFor(collection)
	l.Lock()
	defer l.Unlock()
	return fn()
}

// Load reads the whole collection document into out, which must be a
// pointer to a slice. A collection that has never been written loads
// as empty. Malformed content is logged and treated as empty rather
// than failing the caller.
func (s *FileStore) Load(collection string, out interface{}) error {
	data, err := os.ReadFile(s.path(collection))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read collection '%s': %w", collection, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		log.Printf("Malformed content in collection '%s', treating as empty: %v", collection, err)
	}
	return nil
}

// Replace atomically swaps the whole collection document for records.
// The temp file lives in the same directory so the rename stays on
// one filesystem.
func (s *FileStore) Replace(collection string, records interface{}) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal collection '%s': %w", collection, err)
	}

	tmp, err := os.CreateTemp(s.dir, collection+"-*.json.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file for collection '%s': %w", collection, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write collection '%s': %w", collection, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to sync collection '%s': %w", collection, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file for collection '%s': %w", collection, err)
	}

	if err := os.Rename(tmpName, s.path(collection)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace collection '%s': %w", collection, err)
	}
	return nil
}
