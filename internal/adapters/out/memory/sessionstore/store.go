// Package sessionstore keeps the pending order of every live conversation in
// process memory.
//
// Each session entry carries its own lock, so requests for one conversation
// run one at a time while other conversations are unaffected. Entries idle for
// longer than the TTL are treated as absent and are dropped by EvictExpired,
// which the session eviction job calls on a schedule.
package sessionstore

import (
	"context"
	"sync"
	"time"

	"orderbot/internal/core/domain/model/draft"
	"orderbot/internal/core/domain/model/kernel"
	"orderbot/internal/core/ports"
)

// DefaultTTL is used when New is given a non-positive TTL.
const DefaultTTL = 30 * time.Minute

var _ ports.SessionStore = (*Store)(nil)

// Store implements ports.SessionStore.
type Store struct {
	mu      sync.RWMutex
	entries map[kernel.SessionID]*entry
	ttl     time.Duration
	now     func() time.Time
}

// entry is guarded by its lock channel (capacity 1): holding the token means
// exclusive access to draft, touched and removed.
type entry struct {
	lock    chan struct{}
	draft   *draft.Order
	touched time.Time
	removed bool
}

// Option configures a Store.
type Option func(*Store)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// New creates an empty store whose sessions expire after ttl of inactivity.
func New(ttl time.Duration, opts ...Option) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	s := &Store{
		entries: make(map[kernel.SessionID]*entry),
		ttl:     ttl,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// TTL returns the idle timeout.
func (s *Store) TTL() time.Duration {
	return s.ttl
}

// Acquire locks the session with the given id.
func (s *Store) Acquire(ctx context.Context, id kernel.SessionID) (ports.Session, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	for {
		e := s.entryFor(id)

		select {
		case e.lock <- struct{}{}:
		case <-ctx.Done():
			return nil, ctx.Err()
		}

		// The entry was deleted or evicted while we waited; retry with the
		// entry now in the map.
		if e.removed {
			<-e.lock
			continue
		}

		if e.draft != nil && s.now().Sub(e.touched) > s.ttl {
			e.draft = nil
		}

		return &session{store: s, id: id, entry: e}, nil
	}
}

// EvictExpired drops entries that are idle past the TTL and not held.
func (s *Store) EvictExpired(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	evicted := 0
	for id, e := range s.entries {
		select {
		case e.lock <- struct{}{}:
		default:
			continue
		}

		if now.Sub(e.touched) > s.ttl {
			e.removed = true
			e.draft = nil
			delete(s.entries, id)
			evicted++
		}
		<-e.lock
	}

	return evicted
}

// Len returns the number of entries, including idle ones not yet evicted.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

func (s *Store) entryFor(id kernel.SessionID) *entry {
	s.mu.RLock()
	e, ok := s.entries[id]
	s.mu.RUnlock()
	if ok {
		return e
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok = s.entries[id]; ok {
		return e
	}
	e = &entry{lock: make(chan struct{}, 1), touched: s.now()}
	s.entries[id] = e
	return e
}

// remove must be called while holding e's lock.
func (s *Store) remove(id kernel.SessionID, e *entry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e.removed = true
	e.draft = nil
	if cur, ok := s.entries[id]; ok && cur == e {
		delete(s.entries, id)
	}
}

type session struct {
	store    *Store
	id       kernel.SessionID
	entry    *entry
	released bool
}

func (s *session) ID() kernel.SessionID {
	return s.id
}

func (s *session) Draft() (*draft.Order, bool) {
	if s.entry.draft == nil {
		return nil, false
	}
	return s.entry.draft, true
}

func (s *session) Save(d *draft.Order) {
	s.entry.draft = d
	s.entry.touched = s.store.now()
}

func (s *session) Delete() {
	s.store.remove(s.id, s.entry)
}

func (s *session) Release() {
	if s.released {
		return
	}
	s.released = true

	// An entry that never got a draft is not worth keeping.
	if s.entry.draft == nil && !s.entry.removed {
		s.store.remove(s.id, s.entry)
	}
	<-s.entry.lock
}
