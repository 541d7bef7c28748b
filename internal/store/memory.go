// internal/store/memory.go
//
// In-memory registry of solver sessions.
// Each concurrent game gets its own *session.Session, looked up by ID.
//
// Characteristics:
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - Tracks last access per session so idle games can be pruned.
//   - State is lost when the process restarts.

package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/robalobadob/wordle-solver/internal/session"
)

// ErrNotFound is returned by Get for unknown or pruned IDs.
var ErrNotFound = errors.New("session not found")

// Store defines the registry interface for solver sessions.
type Store interface {
	// Save registers or replaces the session under id.
	Save(ctx context.Context, id string, s *session.Session) error

	// Get retrieves a session by ID and marks it as used.
	Get(ctx context.Context, id string) (*session.Session, error)

	// Delete forgets a session. Deleting an unknown ID is not an error.
	Delete(ctx context.Context, id string) error

	// Prune removes sessions not used since before and reports how many were removed.
	Prune(ctx context.Context, before time.Time) (int, error)

	// Len reports the number of registered sessions.
	Len() int
}

type entry struct {
	sess     *session.Session
	lastSeen time.Time
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu       sync.RWMutex      // guards sessions
	sessions map[string]*entry // keyed by session ID
	now      func() time.Time
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return newMemoryStore(time.Now)
}

func newMemoryStore(now func() time.Time) *memory {
	return &memory{sessions: make(map[string]*entry), now: now}
}

func (m *memory) Save(ctx context.Context, id string, s *session.Session) error {
	if id == "" {
		return errors.New("store: empty session id")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[id] = &entry{sess: s, lastSeen: m.now()}
	return nil
}

// Get takes the write lock because it refreshes lastSeen.
func (m *memory) Get(ctx context.Context, id string) (*session.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	e.lastSeen = m.now()
	return e.sess, nil
}

func (m *memory) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}

func (m *memory) Prune(ctx context.Context, before time.Time) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for id, e := range m.sessions {
		if e.lastSeen.Before(before) {
			delete(m.sessions, id)
			n++
		}
	}
	return n, nil
}

func (m *memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
