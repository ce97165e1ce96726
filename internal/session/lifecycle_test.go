package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Amazingmercy/boardoverse-backend/internal/game"
)

func TestBindConnectionMarksSeatConnected(t *testing.T) {
	assert := assert.New(t)
	m, reg := newTestManager(t)
	created := m.CreateGame(false, "alice")

	require.NoError(t, m.BindConnection(created.GameID, created.PlayerID, "conn-1"))
	g, _ := reg.Get(created.GameID)
	g.Mu.Lock()
	assert.True(g.Seats[0].Connected)
	g.Mu.Unlock()

	assert.ErrorIs(m.BindConnection("nope", created.PlayerID, "conn-2"), game.ErrGameNotFound)
	assert.ErrorIs(m.BindConnection(created.GameID, "stranger", "conn-3"), game.ErrPlayerNotFound)
}

func TestDisconnectEvictsAfterGrace(t *testing.T) {
	assert := assert.New(t)
	m, reg := newTestManager(t)
	created := m.CreateGame(false, "alice")

	require.NoError(t, m.BindConnection(created.GameID, created.PlayerID, "conn-1"))
	gameID, ok := m.HandleDisconnect("conn-1")
	require.True(t, ok)
	assert.Equal(created.GameID, gameID)

	// Sole human gone: once the grace period lapses the binding is
	// removed and the game torn down.
	assert.Eventually(func() bool {
		return reg.Len() == 0
	}, time.Second, 5*time.Millisecond)
}

func TestReconnectCancelsEviction(t *testing.T) {
	assert := assert.New(t)
	m, reg := newTestManager(t)
	created := m.CreateGame(false, "alice")

	require.NoError(t, m.BindConnection(created.GameID, created.PlayerID, "conn-1"))
	_, ok := m.HandleDisconnect("conn-1")
	require.True(t, ok)

	// Rebind within the grace period on a fresh connection.
	require.NoError(t, m.BindConnection(created.GameID, created.PlayerID, "conn-2"))

	time.Sleep(100 * time.Millisecond) // well past the 30ms grace
	assert.Equal(1, reg.Len(), "reconnect must cancel the pending eviction")
	g, _ := reg.Get(created.GameID)
	g.Mu.Lock()
	assert.True(g.Seats[0].Connected)
	assert.Equal(created.PlayerID, g.Seats[0].PlayerID)
	g.Mu.Unlock()
}

func TestDisconnectOfUnknownConnection(t *testing.T) {
	m, _ := newTestManager(t)
	_, ok := m.HandleDisconnect("ghost")
	assert.False(t, ok)
}

func TestPartialEvictionKeepsGameWhileHumanRemains(t *testing.T) {
	assert := assert.New(t)
	m, reg := newTestManager(t)

	created := m.CreateGame(false, "alice")
	joined, err := m.JoinGame(created.GameID, "", "bob")
	require.NoError(t, err)

	require.NoError(t, m.BindConnection(created.GameID, created.PlayerID, "conn-a"))
	require.NoError(t, m.BindConnection(created.GameID, joined.PlayerID, "conn-b"))

	_, ok := m.HandleDisconnect("conn-b")
	require.True(t, ok)

	// Bob's binding expires but Alice is still there.
	assert.Eventually(func() bool {
		g, ok := reg.Get(created.GameID)
		if !ok {
			return false
		}
		g.Mu.Lock()
		defer g.Mu.Unlock()
		return g.Seats[1].PlayerID == ""
	}, time.Second, 5*time.Millisecond)
	assert.Equal(1, reg.Len())
}

func TestSweepDestroysStaleDisconnectedGames(t *testing.T) {
	assert := assert.New(t)
	reg := NewRegistry()
	cfg := testConfig()
	cfg.StaleAfter = 20 * time.Millisecond
	cfg.SweepInterval = 10 * time.Millisecond
	m := NewManager(reg, cfg)
	t.Cleanup(m.Close)

	m.CreateGame(true, "alice") // nobody ever connects
	m.StartSweeper()

	assert.Eventually(func() bool {
		return reg.Len() == 0
	}, time.Second, 5*time.Millisecond)
}
