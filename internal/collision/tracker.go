// Package collision tracks content-hash collisions for the object store.
//
// Two distinct blobs that hash to the same xxHash64 key are a collision: the
// tracker keeps the first blob under that key and reports the second as a
// collision rather than silently letting it clobber the first.
package collision

import (
	"github.com/tsdelta/tsdelta/errs"
)

// Tracker maps content hashes to the first blob stored under each hash and
// detects when a second, different blob arrives at the same key.
type Tracker struct {
	entries      map[uint64][]byte // hash -> content bytes of first blob seen
	keysList     []uint64          // insertion order, for iteration/debugging
	hasCollision bool
}

// NewTracker creates a new collision tracker.
func NewTracker() *Tracker {
	return &Tracker{
		entries:  make(map[uint64][]byte),
		keysList: make([]uint64, 0),
	}
}

// Track records a blob under its content hash. If the hash was already
// claimed by different content, the collision flag is set and
// errs.ErrContentCollision is returned; the original entry is left in place
// so the caller can decide how to disambiguate (e.g. chain an index suffix).
func (t *Tracker) Track(hash uint64, content []byte) error {
	existing, ok := t.entries[hash]
	if !ok {
		t.entries[hash] = content
		t.keysList = append(t.keysList, hash)

		return nil
	}

	if string(existing) == string(content) {
		// Same content, same hash: idempotent re-store, not a collision.
		return nil
	}

	t.hasCollision = true

	return errs.ErrContentCollision
}

// HasCollision returns true if a collision has ever been detected.
func (t *Tracker) HasCollision() bool {
	return t.hasCollision
}

// Count returns the number of distinct hashes tracked.
func (t *Tracker) Count() int {
	return len(t.keysList)
}

// Keys returns the tracked hashes in insertion order.
func (t *Tracker) Keys() []uint64 {
	return t.keysList
}

// Reset clears all tracked hashes and the collision flag, preserving
// allocated capacity so the tracker can be reused.
func (t *Tracker) Reset() {
	for k := range t.entries {
		delete(t.entries, k)
	}
	t.keysList = t.keysList[:0]
	t.hasCollision = false
}
