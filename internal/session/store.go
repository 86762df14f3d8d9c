// Package session provides the ephemeral, concurrency-safe store that
// carries a resume's signal bundle from upload time to role-analysis time.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Ashi-17-commits/skill-judge-AI/internal/signals"
)

// DefaultTTL bounds how long stored bundles survive. Entries are not
// persisted across restarts; the TTL only prevents unbounded growth.
const DefaultTTL = time.Hour

type entry struct {
	bundle   *signals.Bundle
	storedAt time.Time
}

// Store is an in-memory TTL map from opaque resume IDs to signal bundles.
// Put and Get are safe for concurrent use; writes are last-writer-wins.
type Store struct {
	mu      sync.RWMutex
	entries map[string]entry
	ttl     time.Duration
	now     func() time.Time
}

// NewStore creates a store with the given TTL. A non-positive TTL falls
// back to DefaultTTL.
func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{
		entries: make(map[string]entry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// WithClock replaces the store's clock. Test use only.
func (s *Store) WithClock(now func() time.Time) *Store {
	s.now = now
	return s
}

// GenerateID returns a fresh opaque resume identifier.
func (s *Store) GenerateID() string {
	return uuid.NewString()
}

// Put stores an independent snapshot of the bundle under id, replacing any
// previous entry. Expired entries are swept opportunistically.
func (s *Store) Put(id string, bundle *signals.Bundle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	for key, e := range s.entries {
		if now.Sub(e.storedAt) > s.ttl {
			delete(s.entries, key)
		}
	}
	s.entries[id] = entry{bundle: bundle.Clone(), storedAt: now}
}

// Get returns a copy of the stored bundle, or false if the id is unknown
// or the entry has expired. The caller's copy is independent of the
// stored snapshot.
func (s *Store) Get(id string) (*signals.Bundle, bool) {
	s.mu.RLock()
	e, ok := s.entries[id]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if s.now().Sub(e.storedAt) > s.ttl {
		s.mu.Lock()
		delete(s.entries, id)
		s.mu.Unlock()
		return nil, false
	}
	return e.bundle.Clone(), true
}

// Len returns the number of live entries, counting not-yet-swept expired
// ones.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
