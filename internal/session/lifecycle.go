package session

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Amazingmercy/boardoverse-backend/internal/game"
)

// Connection lifecycle: a transient connection id is bound to a stable
// player identity; losing the connection starts a grace timer, a
// matching rebind cancels it, expiry removes the seat binding and may
// tear the game down.

// BindConnection attaches a live connection to the player's seat and
// cancels any pending eviction for it.
func (m *Manager) BindConnection(gameID, playerID, connID string) error {
	g, ok := m.reg.Get(gameID)
	if !ok {
		return game.ErrGameNotFound
	}
	g.Mu.Lock()
	defer g.Mu.Unlock()
	seat, ok := g.SeatByPlayer(playerID)
	if !ok {
		return game.ErrPlayerNotFound
	}
	m.mu.Lock()
	m.conns[connID] = connBinding{GameID: gameID, PlayerID: playerID}
	m.mu.Unlock()
	m.cancelEviction(gameID, seat)

	wasConnected := g.Seats[seat].Connected
	g.Seats[seat].Connected = true
	g.LastActivity = time.Now()
	if !wasConnected {
		log.Info().Str("game", gameID).Int("seat", seat).Msg("seat connected")
		m.broadcast(gameID, "player-reconnected", map[string]interface{}{"seat": seat})
	}
	return nil
}

// HandleDisconnect routes a dropped connection: the seat transitions
// to disconnected and its grace timer starts. Returns the game id the
// connection belonged to, if any.
func (m *Manager) HandleDisconnect(connID string) (string, bool) {
	m.mu.Lock()
	b, ok := m.conns[connID]
	if ok {
		delete(m.conns, connID)
	}
	m.mu.Unlock()
	if !ok {
		return "", false
	}
	g, ok := m.reg.Get(b.GameID)
	if !ok {
		return b.GameID, true
	}
	g.Mu.Lock()
	defer g.Mu.Unlock()
	seat, ok := g.SeatByPlayer(b.PlayerID)
	if !ok {
		return b.GameID, true
	}
	g.Seats[seat].Connected = false
	m.scheduleEviction(g.ID, seat)
	log.Info().Str("game", g.ID).Int("seat", seat).Msg("seat disconnected")
	m.broadcast(g.ID, "player-disconnected", map[string]interface{}{"seat": seat})
	return b.GameID, true
}

// scheduleEviction arms the grace timer for a disconnected seat.
// Caller holds g.Mu.
func (m *Manager) scheduleEviction(gameID string, seat int) {
	key := evictKey(gameID, seat)
	m.mu.Lock()
	if old := m.evictTimers[key]; old != nil {
		old.Stop()
	}
	m.evictTimers[key] = time.AfterFunc(m.cfg.DisconnectGrace, func() {
		m.expireSeat(gameID, seat)
	})
	m.mu.Unlock()
}

func (m *Manager) cancelEviction(gameID string, seat int) {
	key := evictKey(gameID, seat)
	m.mu.Lock()
	if t := m.evictTimers[key]; t != nil {
		t.Stop()
		delete(m.evictTimers, key)
	}
	m.mu.Unlock()
}

// expireSeat fires when the grace period lapses. A seat that came back
// in the meantime is left alone; otherwise its binding is removed for
// good, and the game goes with it once no human identity remains.
func (m *Manager) expireSeat(gameID string, seat int) {
	g, ok := m.reg.Get(gameID)
	if !ok {
		return
	}
	g.Mu.Lock()
	defer g.Mu.Unlock()
	m.mu.Lock()
	delete(m.evictTimers, evictKey(gameID, seat))
	m.mu.Unlock()
	if g.Seats[seat].Connected {
		return // reconnected before expiry
	}
	g.Seats[seat].PlayerID = ""
	g.Seats[seat].Name = ""
	log.Info().Str("game", gameID).Int("seat", seat).Msg("seat binding expired")
	if !m.anyHumanBound(g) {
		m.destroyGame(g, "no players left")
	}
}

func (m *Manager) anyHumanBound(g *game.Game) bool {
	for i := range g.Seats {
		if !g.Seats[i].IsBot && g.Seats[i].PlayerID != "" {
			return true
		}
	}
	return false
}

// StartSweeper runs the periodic staleness sweep until Close.
func (m *Manager) StartSweeper() {
	go func() {
		ticker := time.NewTicker(m.cfg.SweepInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				m.sweep()
			case <-m.sweepStop:
				return
			}
		}
	}()
}

// sweep destroys games whose last activity is older than the staleness
// threshold while every human seat is disconnected.
func (m *Manager) sweep() {
	for _, g := range m.reg.All() {
		g.Mu.Lock()
		stale := time.Since(g.LastActivity) > m.cfg.StaleAfter
		if stale && !m.anyHumanConnected(g) {
			m.destroyGame(g, "stale")
		}
		g.Mu.Unlock()
	}
}

func (m *Manager) anyHumanConnected(g *game.Game) bool {
	for i := range g.Seats {
		if !g.Seats[i].IsBot && g.Seats[i].Connected {
			return true
		}
	}
	return false
}

// Close stops the sweeper and every outstanding timer.
func (m *Manager) Close() {
	close(m.sweepStop)
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, t := range m.aiTimers {
		t.Stop()
		delete(m.aiTimers, id)
	}
	for key, t := range m.evictTimers {
		t.Stop()
		delete(m.evictTimers, key)
	}
}
