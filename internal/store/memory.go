// internal/store/memory.go
//
// In-memory session store. Each session id owns one game.State value.
//
// Characteristics:
//   - Sessions are keyed by a random UUID.
//   - Concurrency-safe via RWMutex; Update runs its callback under the
//     write lock so a read-modify-write on one session cannot interleave
//     with another.
//   - Idle sessions are removed by Prune.
//   - State is lost when the process restarts.

package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/robalobadob/werdle/internal/game"
)

// ErrNotFound is returned for unknown session ids.
var ErrNotFound = errors.New("store: session not found")

// Store holds one game state per session.
type Store interface {
	// Create stores s under a new session id and returns the id.
	Create(ctx context.Context, s game.State) (string, error)

	// Get returns the state of a session.
	Get(ctx context.Context, id string) (game.State, error)

	// Update replaces a session's state with fn's result. If fn returns an
	// error the stored state is left as it was.
	Update(ctx context.Context, id string, fn func(game.State) (game.State, error)) (game.State, error)

	// Delete removes a session. Unknown ids are not an error.
	Delete(ctx context.Context, id string) error

	// Prune removes sessions untouched for longer than idle and returns
	// how many were removed.
	Prune(ctx context.Context, idle time.Duration) int

	// Len returns the number of live sessions.
	Len() int
}

type entry struct {
	state   game.State
	touched time.Time
}

// memory is a map-based Store.
type memory struct {
	mu       sync.RWMutex
	sessions map[string]*entry
	now      func() time.Time
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return newMemory(time.Now)
}

func newMemory(now func() time.Time) *memory {
	return &memory{sessions: make(map[string]*entry), now: now}
}

func (m *memory) Create(ctx context.Context, s game.State) (string, error) {
	id := uuid.NewString()
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[id] = &entry{state: s, touched: m.now()}
	return id, nil
}

func (m *memory) Get(ctx context.Context, id string) (game.State, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.sessions[id]
	if !ok {
		return game.State{}, ErrNotFound
	}
	return e.state, nil
}

func (m *memory) Update(ctx context.Context, id string, fn func(game.State) (game.State, error)) (game.State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.sessions[id]
	if !ok {
		return game.State{}, ErrNotFound
	}
	next, err := fn(e.state)
	if err != nil {
		return e.state, err
	}
	e.state = next
	e.touched = m.now()
	return next, nil
}

func (m *memory) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}

func (m *memory) Prune(ctx context.Context, idle time.Duration) int {
	cutoff := m.now().Add(-idle)
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for id, e := range m.sessions {
		if e.touched.Before(cutoff) {
			delete(m.sessions, id)
			n++
		}
	}
	return n
}

func (m *memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
