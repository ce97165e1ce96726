package session

import (
	"sync"

	"github.com/Amazingmercy/boardoverse-backend/internal/game"
)

// Registry is the in-memory store of live games. It is the only state
// shared across games; per-game mutation is serialized by the game's
// own lock, not by this map.
type Registry struct {
	mu    sync.RWMutex
	games map[string]*game.Game
}

func NewRegistry() *Registry {
	return &Registry{games: map[string]*game.Game{}}
}

func (r *Registry) Get(id string) (*game.Game, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	g, ok := r.games[id]
	return g, ok
}

func (r *Registry) Put(g *game.Game) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.games[g.ID] = g
}

func (r *Registry) Delete(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.games, id)
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.games)
}

// All snapshots the live games for iteration outside the map lock.
func (r *Registry) All() []*game.Game {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*game.Game, 0, len(r.games))
	for _, g := range r.games {
		out = append(out, g)
	}
	return out
}
