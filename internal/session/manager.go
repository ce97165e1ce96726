package session

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/Amazingmercy/boardoverse-backend/internal/board"
	"github.com/Amazingmercy/boardoverse-backend/internal/config"
	"github.com/Amazingmercy/boardoverse-backend/internal/game"
)

// Broadcaster pushes an event to every connection watching a game.
type Broadcaster interface {
	Broadcast(gameID string, action string, data interface{})
}

// Manager orchestrates the rules engine: it owns the registry, the
// per-game serialization discipline, the deferred AI continuations and
// the presence lifecycle. Lock order is always game.Mu before the
// manager's own mutex.
type Manager struct {
	cfg   config.Config
	reg   *Registry
	bcast Broadcaster

	mu          sync.Mutex
	aiTimers    map[string]*time.Timer // game id -> pending AI continuation
	evictTimers map[string]*time.Timer // "<game id>/<seat>" -> eviction
	conns       map[string]connBinding // connection id -> identity

	sweepStop chan struct{}
}

type connBinding struct {
	GameID   string
	PlayerID string
}

func NewManager(reg *Registry, cfg config.Config) *Manager {
	return &Manager{
		cfg:         cfg,
		reg:         reg,
		aiTimers:    map[string]*time.Timer{},
		evictTimers: map[string]*time.Timer{},
		conns:       map[string]connBinding{},
		sweepStop:   make(chan struct{}),
	}
}

// SetBroadcaster wires the transport hub in after construction.
func (m *Manager) SetBroadcaster(b Broadcaster) { m.bcast = b }

func (m *Manager) broadcast(gameID, action string, data interface{}) {
	if m.bcast != nil {
		m.bcast.Broadcast(gameID, action, data)
	}
}

func (m *Manager) seed() int64 {
	if m.cfg.DiceSeed != 0 {
		return m.cfg.DiceSeed
	}
	return time.Now().UnixNano()
}

type CreateResult struct {
	GameID   string         `json:"gameId"`
	PlayerID string         `json:"playerId"`
	Seat     int            `json:"seat"`
	Colors   [2]board.Color `json:"colors"`
}

// CreateGame allocates a game with the creator on seat 0. When
// vsComputer is set, seat 1 is bound to the computer player up front.
func (m *Manager) CreateGame(vsComputer bool, playerName string) CreateResult {
	g := game.NewGame(vsComputer, m.seed())
	g.ID = uuid.NewString()
	g.Seats[0].PlayerID = uuid.NewString()
	g.Seats[0].Name = playerName
	if vsComputer {
		g.Seats[1].PlayerID = "bot-" + uuid.NewString()
		g.Seats[1].Name = "Computer"
		g.Seats[1].IsBot = true
		g.Seats[1].Connected = true
	}
	m.reg.Put(g)
	log.Info().Str("game", g.ID).Bool("vs_computer", vsComputer).Msg("game created")
	return CreateResult{
		GameID:   g.ID,
		PlayerID: g.Seats[0].PlayerID,
		Seat:     0,
		Colors:   g.Seats[0].Colors,
	}
}

type JoinResult struct {
	GameID   string         `json:"gameId"`
	PlayerID string         `json:"playerId"`
	Seat     int            `json:"seat"`
	Colors   [2]board.Color `json:"colors"`
	Rejoined bool           `json:"rejoined"`
}

// JoinGame seats a player. A known identity short-circuits to a rebind
// of its existing seat instead of allocating a new one.
func (m *Manager) JoinGame(gameID, playerID, playerName string) (JoinResult, error) {
	g, ok := m.reg.Get(gameID)
	if !ok {
		return JoinResult{}, game.ErrGameNotFound
	}
	g.Mu.Lock()
	defer g.Mu.Unlock()

	if seat, ok := g.SeatByPlayer(playerID); ok {
		m.cancelEviction(g.ID, seat)
		g.LastActivity = time.Now()
		log.Info().Str("game", g.ID).Int("seat", seat).Msg("player rejoined")
		return JoinResult{
			GameID:   g.ID,
			PlayerID: playerID,
			Seat:     seat,
			Colors:   g.Seats[seat].Colors,
			Rejoined: true,
		}, nil
	}

	for i := range g.Seats {
		s := &g.Seats[i]
		if s.Occupied() {
			continue
		}
		s.PlayerID = uuid.NewString()
		s.Name = playerName
		g.LastActivity = time.Now()
		log.Info().Str("game", g.ID).Int("seat", i).Msg("player joined")
		m.broadcast(g.ID, "player-joined", map[string]interface{}{
			"seat": i,
			"name": playerName,
		})
		return JoinResult{
			GameID:   g.ID,
			PlayerID: s.PlayerID,
			Seat:     i,
			Colors:   s.Colors,
		}, nil
	}
	return JoinResult{}, game.ErrGameFull
}

// RollDice rolls for the player's seat and schedules the computer's
// turn when the roll could not be used and play moved on.
func (m *Manager) RollDice(gameID, playerID string) ([]int, error) {
	g, ok := m.reg.Get(gameID)
	if !ok {
		return nil, game.ErrGameNotFound
	}
	g.Mu.Lock()
	defer g.Mu.Unlock()
	seat, ok := g.SeatByPlayer(playerID)
	if !ok {
		return nil, game.ErrPlayerNotFound
	}
	rolls, err := g.RollDice(seat)
	if err != nil {
		return nil, err
	}
	m.broadcast(g.ID, "dice-rolled", map[string]interface{}{
		"seat":        seat,
		"rolls":       rolls,
		"currentSeat": g.CurrentSeat,
	})
	m.maybeScheduleAI(g)
	return rolls, nil
}

// PlayMove applies one move for the player's seat.
func (m *Manager) PlayMove(gameID, playerID, tokenID string, face int) (*game.Move, error) {
	g, ok := m.reg.Get(gameID)
	if !ok {
		return nil, game.ErrGameNotFound
	}
	g.Mu.Lock()
	defer g.Mu.Unlock()
	seat, ok := g.SeatByPlayer(playerID)
	if !ok {
		return nil, game.ErrPlayerNotFound
	}
	mv, err := g.PlayMove(seat, tokenID, face)
	if err != nil {
		return nil, err
	}
	m.broadcast(g.ID, "move-applied", map[string]interface{}{
		"move":        mv,
		"currentSeat": g.CurrentSeat,
		"dice":        g.CurrentRoll,
	})
	if g.GameOver {
		m.broadcast(g.ID, "game-over", map[string]interface{}{"winners": g.Winners})
	}
	m.maybeScheduleAI(g)
	return mv, nil
}

// SkipTurn forfeits the rest of the player's turn.
func (m *Manager) SkipTurn(gameID, playerID string) error {
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
	if err := g.SkipTurn(seat); err != nil {
		return err
	}
	m.broadcast(g.ID, "turn-advanced", map[string]interface{}{
		"currentSeat": g.CurrentSeat,
	})
	m.maybeScheduleAI(g)
	return nil
}

// View builds the per-seat client projection.
func (m *Manager) View(gameID, playerID string) (game.View, error) {
	g, ok := m.reg.Get(gameID)
	if !ok {
		return game.View{}, game.ErrGameNotFound
	}
	g.Mu.Lock()
	defer g.Mu.Unlock()
	seat, ok := g.SeatByPlayer(playerID)
	if !ok {
		return game.View{}, game.ErrPlayerNotFound
	}
	return g.View(seat), nil
}

// maybeScheduleAI arms the deferred computer turn when the game is
// live and the acting seat is the bot. The callback re-validates seat
// and turn counter before acting, so a stale continuation is a no-op.
// Caller holds g.Mu.
func (m *Manager) maybeScheduleAI(g *game.Game) {
	if g.GameOver || !g.Seats[g.CurrentSeat].IsBot {
		return
	}
	seat, turn := g.CurrentSeat, g.Turn
	gameID := g.ID
	m.mu.Lock()
	if old := m.aiTimers[gameID]; old != nil {
		old.Stop()
	}
	m.aiTimers[gameID] = time.AfterFunc(m.cfg.AIThinkDelay, func() {
		m.runAITurn(gameID, seat, turn)
	})
	m.mu.Unlock()
}

func (m *Manager) runAITurn(gameID string, seat, turn int) {
	g, ok := m.reg.Get(gameID)
	if !ok {
		return
	}
	g.Mu.Lock()
	defer g.Mu.Unlock()
	m.mu.Lock()
	delete(m.aiTimers, gameID)
	m.mu.Unlock()
	if g.GameOver || g.CurrentSeat != seat || g.Turn != turn {
		return // stale continuation
	}
	moves := g.PlayAITurn()
	log.Debug().Str("game", gameID).Int("seat", seat).Int("moves", len(moves)).Msg("ai turn")
	// Same payload shape as the human path: one event per applied move.
	for i := range moves {
		m.broadcast(gameID, "move-applied", map[string]interface{}{
			"move":        &moves[i],
			"currentSeat": g.CurrentSeat,
			"dice":        g.CurrentRoll,
		})
	}
	if !g.GameOver {
		m.broadcast(gameID, "turn-advanced", map[string]interface{}{
			"currentSeat": g.CurrentSeat,
		})
	}
	if g.GameOver {
		m.broadcast(gameID, "game-over", map[string]interface{}{"winners": g.Winners})
	}
	m.maybeScheduleAI(g)
}

// destroyGame drops the game and every timer attached to it. Caller
// holds g.Mu.
func (m *Manager) destroyGame(g *game.Game, reason string) {
	m.reg.Delete(g.ID)
	m.mu.Lock()
	if t := m.aiTimers[g.ID]; t != nil {
		t.Stop()
		delete(m.aiTimers, g.ID)
	}
	for seat := 0; seat < game.NumSeats; seat++ {
		key := evictKey(g.ID, seat)
		if t := m.evictTimers[key]; t != nil {
			t.Stop()
			delete(m.evictTimers, key)
		}
	}
	for connID, b := range m.conns {
		if b.GameID == g.ID {
			delete(m.conns, connID)
		}
	}
	m.mu.Unlock()
	log.Info().Str("game", g.ID).Str("reason", reason).Msg("game destroyed")
	m.broadcast(g.ID, "game-evicted", map[string]interface{}{"reason": reason})
}

func evictKey(gameID string, seat int) string {
	return fmt.Sprintf("%s/%d", gameID, seat)
}
