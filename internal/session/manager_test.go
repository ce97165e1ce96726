package session

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Amazingmercy/boardoverse-backend/internal/config"
	"github.com/Amazingmercy/boardoverse-backend/internal/game"
)

func testConfig() config.Config {
	return config.Config{
		HTTPAddr:        ":0",
		AIThinkDelay:    10 * time.Millisecond,
		DisconnectGrace: 30 * time.Millisecond,
		StaleAfter:      time.Hour,
		SweepInterval:   time.Hour,
		DiceSeed:        1,
	}
}

func newTestManager(t *testing.T) (*Manager, *Registry) {
	t.Helper()
	reg := NewRegistry()
	m := NewManager(reg, testConfig())
	t.Cleanup(m.Close)
	return m, reg
}

func TestCreateGameVsComputer(t *testing.T) {
	assert := assert.New(t)
	m, reg := newTestManager(t)

	res := m.CreateGame(true, "alice")
	assert.NotEmpty(res.GameID)
	assert.NotEmpty(res.PlayerID)
	assert.Equal(0, res.Seat)

	g, ok := reg.Get(res.GameID)
	require.True(t, ok)
	assert.True(g.VsComputer)
	assert.True(g.Seats[1].IsBot)
	assert.Len(g.Tokens, game.NumTokens)
	for _, tok := range g.Tokens {
		assert.Equal(0, tok.Steps)
	}
}

func TestJoinGameAllocatesSecondSeat(t *testing.T) {
	assert := assert.New(t)
	m, _ := newTestManager(t)

	created := m.CreateGame(false, "alice")
	res, err := m.JoinGame(created.GameID, "", "bob")
	require.NoError(t, err)
	assert.Equal(1, res.Seat)
	assert.False(res.Rejoined)
	assert.NotEqual(created.PlayerID, res.PlayerID)

	// Third participant bounces.
	_, err = m.JoinGame(created.GameID, "", "carol")
	assert.ErrorIs(err, game.ErrGameFull)
}

func TestJoinGameReconnectShortCircuits(t *testing.T) {
	assert := assert.New(t)
	m, _ := newTestManager(t)

	created := m.CreateGame(false, "alice")
	res, err := m.JoinGame(created.GameID, created.PlayerID, "alice")
	require.NoError(t, err)
	assert.True(res.Rejoined)
	assert.Equal(0, res.Seat)
	assert.Equal(created.PlayerID, res.PlayerID)
}

func TestJoinUnknownGame(t *testing.T) {
	m, _ := newTestManager(t)
	_, err := m.JoinGame("nope", "", "bob")
	assert.ErrorIs(t, err, game.ErrGameNotFound)
}

func TestOperationsRejectUnknownIdentities(t *testing.T) {
	assert := assert.New(t)
	m, _ := newTestManager(t)
	created := m.CreateGame(false, "alice")

	_, err := m.RollDice("nope", created.PlayerID)
	assert.ErrorIs(err, game.ErrGameNotFound)

	_, err = m.RollDice(created.GameID, "stranger")
	assert.ErrorIs(err, game.ErrPlayerNotFound)

	_, err = m.PlayMove(created.GameID, "stranger", "red-0", 6)
	assert.ErrorIs(err, game.ErrPlayerNotFound)

	err = m.SkipTurn(created.GameID, "stranger")
	assert.ErrorIs(err, game.ErrPlayerNotFound)

	_, err = m.View(created.GameID, "stranger")
	assert.ErrorIs(err, game.ErrPlayerNotFound)
}

func TestViewReflectsSeatPerspective(t *testing.T) {
	assert := assert.New(t)
	m, reg := newTestManager(t)
	created := m.CreateGame(true, "alice")

	g, _ := reg.Get(created.GameID)
	g.Mu.Lock()
	g.CurrentRoll = []int{6, 3}
	g.OriginalRoll = []int{6, 3}
	g.Mu.Unlock()

	view, err := m.View(created.GameID, created.PlayerID)
	require.NoError(t, err)
	assert.Equal([]int{6, 3}, view.Dice)

	clickable := 0
	for _, tv := range view.Tokens {
		if tv.Clickable {
			clickable++
		}
	}
	// Every seat-0 token can leave base on the 6.
	assert.Equal(8, clickable)
}

func TestSkipSchedulesAITurn(t *testing.T) {
	assert := assert.New(t)
	m, reg := newTestManager(t)
	created := m.CreateGame(true, "alice")

	require.NoError(t, m.SkipTurn(created.GameID, created.PlayerID))
	g, _ := reg.Get(created.GameID)

	// The deferred computer turn fires after the think delay and hands
	// the turn back to seat 0.
	assert.Eventually(func() bool {
		g.Mu.Lock()
		defer g.Mu.Unlock()
		return g.CurrentSeat == 0 && g.Turn >= 2
	}, time.Second, 5*time.Millisecond)
}

type recordedEvent struct {
	Action string
	Data   map[string]interface{}
}

type recordingBroadcaster struct {
	mu     sync.Mutex
	events []recordedEvent
}

func (r *recordingBroadcaster) Broadcast(gameID string, action string, data interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	payload, _ := data.(map[string]interface{})
	r.events = append(r.events, recordedEvent{Action: action, Data: payload})
}

func (r *recordingBroadcaster) snapshot() []recordedEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]recordedEvent(nil), r.events...)
}

func TestComputerMovesUseSamePayloadShape(t *testing.T) {
	assert := assert.New(t)
	m, reg := newTestManager(t)
	rec := &recordingBroadcaster{}
	m.SetBroadcaster(rec)
	created := m.CreateGame(true, "alice")

	// Put a computer token on the track so any roll is playable.
	g, _ := reg.Get(created.GameID)
	g.Mu.Lock()
	tok, ok := g.Token("green-0")
	require.True(t, ok)
	tok.Steps = 5
	g.Mu.Unlock()

	require.NoError(t, m.SkipTurn(created.GameID, created.PlayerID))
	assert.Eventually(func() bool {
		g.Mu.Lock()
		defer g.Mu.Unlock()
		return g.CurrentSeat == 0 && g.Turn >= 2
	}, time.Second, 5*time.Millisecond)

	applied := 0
	for _, ev := range rec.snapshot() {
		if ev.Action != "move-applied" {
			continue
		}
		applied++
		assert.Contains(ev.Data, "move", "every move-applied event carries a single move")
		assert.NotContains(ev.Data, "moves")
	}
	assert.Greater(applied, 0, "the computer turn must emit move-applied events")
}

func TestStaleAIContinuationIsDiscarded(t *testing.T) {
	assert := assert.New(t)
	reg := NewRegistry()
	cfg := testConfig()
	cfg.AIThinkDelay = 50 * time.Millisecond
	m := NewManager(reg, cfg)
	t.Cleanup(m.Close)

	created := m.CreateGame(true, "alice")
	g, _ := reg.Get(created.GameID)

	require.NoError(t, m.SkipTurn(created.GameID, created.PlayerID))

	// Steal the turn back before the continuation fires; the captured
	// (seat, turn) pair no longer matches and the callback must bail.
	g.Mu.Lock()
	g.CurrentSeat = 0
	g.Turn++
	turn := g.Turn
	g.Mu.Unlock()

	time.Sleep(150 * time.Millisecond)
	g.Mu.Lock()
	defer g.Mu.Unlock()
	assert.Equal(turn, g.Turn, "stale continuation must be a no-op")
	assert.Empty(g.MoveHistory)
}

func TestRegistryConcurrentAccess(t *testing.T) {
	reg := NewRegistry()
	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 100; j++ {
				g := game.NewGame(false, int64(j))
				g.ID = "g"
				reg.Put(g)
				reg.Get("g")
				reg.All()
			}
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}
	assert.Equal(t, 1, reg.Len())
}
