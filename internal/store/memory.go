// internal/store/memory.go
//
// Game session storage.
//
// Two implementations of Store:
//   - memory (this file): map keyed by game ID, guarded by an RWMutex. State is
//     lost on restart and is private to one process.
//   - Redis (redis.go): JSON values with a TTL, shared between replicas.
//
// Both hand out copies, so a caller mutating a *game.Game must Save it again.

package store

import (
	"context"
	"errors"
	"sync"

	"github.com/robalobadob/wordl/internal/game"
)

// ErrNotFound is returned by Get for unknown or expired game IDs.
var ErrNotFound = errors.New("game not found")

// Store defines the persistence interface for game sessions.
type Store interface {
	// Save persists or updates a game state.
	Save(ctx context.Context, g *game.Game) error

	// Get retrieves a game by ID, or ErrNotFound.
	Get(ctx context.Context, id string) (*game.Game, error)

	// Delete removes a game. Deleting an unknown ID is not an error.
	Delete(ctx context.Context, id string) error
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu    sync.RWMutex
	games map[string]*game.Game
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{games: make(map[string]*game.Game)}
}

func (m *memory) Save(ctx context.Context, g *game.Game) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.games[g.ID] = clone(g)
	return nil
}

func (m *memory) Get(ctx context.Context, id string) (*game.Game, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if g, ok := m.games[id]; ok {
		return clone(g), nil
	}
	return nil, ErrNotFound
}

func (m *memory) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.games, id)
	return nil
}

func clone(g *game.Game) *game.Game {
	c := *g
	c.Words = append([]string(nil), g.Words...)
	return &c
}
