package session

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

const DefaultTTL = 24 * time.Hour

type entry struct {
	tracker  *Tracker
	lastSeen time.Time
}

// Store keeps session trackers in memory for the lifetime of the process.
// The store lock only guards the map; score mutations lock the tracker.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*entry
	ttl      time.Duration
	now      func() time.Time
}

func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{
		sessions: make(map[string]*entry),
		ttl:      ttl,
		now:      time.Now,
	}
}

func (s *Store) TTL() time.Duration {
	return s.ttl
}

func (s *Store) Create() (string, *Tracker) {
	id := uuid.NewString()
	tracker := NewTracker()

	s.mu.Lock()
	s.sessions[id] = &entry{tracker: tracker, lastSeen: s.now()}
	s.mu.Unlock()

	return id, tracker
}

// Lookup returns the tracker for id and refreshes its idle timer. Expired
// sessions are dropped and reported as missing.
func (s *Store) Lookup(id string) (*Tracker, bool) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.sessions[id]
	if !ok {
		return nil, false
	}
	now := s.now()
	if now.Sub(item.lastSeen) > s.ttl {
		delete(s.sessions, id)
		return nil, false
	}
	item.lastSeen = now
	return item.tracker, true
}

// Resolve returns the tracker for id, creating a fresh session when id is
// empty, unknown or expired. The returned id is the one the caller should
// hand back to the client.
func (s *Store) Resolve(id string) (string, *Tracker, bool) {
	id = strings.TrimSpace(id)
	if tracker, ok := s.Lookup(id); ok {
		return id, tracker, false
	}
	newID, tracker := s.Create()
	return newID, tracker, true
}

// Sweep removes sessions idle for longer than the TTL and reports how many
// were dropped.
func (s *Store) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for id, item := range s.sessions {
		if now.Sub(item.lastSeen) > s.ttl {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
