// Package collision tracks hash-to-name assignments and flags the rare case
// where two distinct names hash to the same 64-bit value, so a caller can
// fall back to a linear scan instead of trusting the hash alone.
package collision

import (
	"slices"

	"github.com/brinebound/nbt/errs"
)

// Tracker tracks wire names and their hashes while building a struct's field
// index, detecting both outright duplicate names and genuine hash collisions
// between two different names.
type Tracker struct {
	byHash       map[uint64]string // hash -> first name claiming it
	names        []string          // insertion-ordered names
	hasCollision bool
}

// NewTracker creates an empty Tracker.
func NewTracker() *Tracker {
	return &Tracker{
		byHash: make(map[uint64]string),
		names:  make([]string, 0),
	}
}

// Track records name under hash. It returns ErrDuplicateFieldName if name
// was already tracked; a different name sharing hash with an
// already-tracked name is not an error — it sets HasCollision so the
// caller knows to verify hash-based lookups against the name.
func (t *Tracker) Track(name string, hash uint64) error {
	if _, exists := t.byHash[hash]; exists {
		if slices.Contains(t.names, name) {
			return errs.ErrDuplicateFieldName
		}

		t.hasCollision = true
	} else {
		t.byHash[hash] = name
	}

	t.names = append(t.names, name)

	return nil
}

// HasCollision reports whether two distinct tracked names share a hash.
func (t *Tracker) HasCollision() bool {
	return t.hasCollision
}

// Names returns the tracked names in insertion order.
func (t *Tracker) Names() []string {
	return t.names
}

// Count returns the number of tracked names.
func (t *Tracker) Count() int {
	return len(t.names)
}

// Reset clears all tracked state, retaining allocated capacity.
func (t *Tracker) Reset() {
	for k := range t.byHash {
		delete(t.byHash, k)
	}

	t.names = t.names[:0]
	t.hasCollision = false
}
