// Package objectstore is a content-addressed store for serialized tick
// blobs, keyed by the xxHash64 of the blob bytes. It sits entirely outside
// the codec core and exists to give the CLI's `store` subcommand a place to
// push and fetch blobs by content hash rather than by filename.
package objectstore

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/tsdelta/tsdelta/errs"
	"github.com/tsdelta/tsdelta/internal/collision"
	"github.com/tsdelta/tsdelta/internal/hash"
)

const blobExt = ".tsb"

// Store persists blobs under a root directory, one file per content hash.
// It guards its in-memory collision index with a RWMutex so one Store can
// be used from multiple goroutines. The lock is per process; separate
// processes opening the same directory are not coordinated.
type Store struct {
	rootDir string
	mu      sync.RWMutex
	tracker *collision.Tracker
}

// Open opens (creating if necessary) a store rooted at dir, rebuilding its
// collision index from whatever blobs already live on disk.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("objectstore: creating root dir: %w", err)
	}

	s := &Store{
		rootDir: dir,
		tracker: collision.NewTracker(),
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("objectstore: reading root dir: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != blobExt {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("objectstore: reading %s: %w", entry.Name(), err)
		}

		key := hash.IDBytes(data)
		// A collision here means two on-disk files produced the same hash
		// before this process ever wrote anything; ignore the error and
		// keep the first one tracked, since Track already refuses to
		// overwrite it.
		_ = s.tracker.Track(key, data)
	}

	return s, nil
}

// Put stores data under its content hash key. If data is already present
// under that key (byte-for-byte), Put is a no-op. If a different blob
// already occupies the key, Put returns errs.ErrContentCollision and leaves
// the store unchanged.
func (s *Store) Put(data []byte) (uint64, error) {
	key := hash.IDBytes(data)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.tracker.Track(key, data); err != nil {
		return 0, err
	}

	path := s.pathFor(key)
	if _, err := os.Stat(path); err == nil {
		return key, nil
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return 0, fmt.Errorf("objectstore: writing %s: %w", path, err)
	}

	return key, nil
}

// Load returns the blob stored under key, or errs.ErrObjectNotFound if no
// blob has been stored under it.
func (s *Store) Load(key uint64) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.pathFor(key))
	if os.IsNotExist(err) {
		return nil, errs.ErrObjectNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("objectstore: reading key %016x: %w", key, err)
	}

	return data, nil
}

// Has reports whether key is present in the store.
func (s *Store) Has(key uint64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, err := os.Stat(s.pathFor(key))

	return err == nil
}

// Count returns the number of distinct blobs tracked by the store.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.tracker.Count()
}

func (s *Store) pathFor(key uint64) string {
	return filepath.Join(s.rootDir, fmt.Sprintf("%016x%s", key, blobExt))
}
