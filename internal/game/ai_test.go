package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChooseMovePrefersCapture(t *testing.T) {
	assert := assert.New(t)
	g := newTestGame(t)
	token(t, g, "green-0").Steps = 5 // track offset 17
	token(t, g, "red-0").Steps = 15  // a 3 lands on offset 17
	token(t, g, "red-1").Steps = 30
	setRoll(g, 3)

	c, ok := g.ChooseMove()
	require.True(t, ok)
	assert.Equal("red-0", c.Token.ID)
	assert.Equal(3, c.Face)
	assert.NotNil(g.CaptureTarget(c.Token, c.Face))
}

func TestChooseMovePrefersLeavingBaseOverAdvancing(t *testing.T) {
	assert := assert.New(t)
	g := newTestGame(t)
	token(t, g, "red-1").Steps = 20
	setRoll(g, 6)

	c, ok := g.ChooseMove()
	require.True(t, ok)
	assert.Equal("red-0", c.Token.ID, "bringing a token out of base beats advancing")
}

func TestChooseMovePrefersMostAdvancedToken(t *testing.T) {
	assert := assert.New(t)
	g := newTestGame(t)
	token(t, g, "red-0").Steps = 5
	token(t, g, "red-1").Steps = 30
	token(t, g, "yellow-0").Steps = 12
	setRoll(g, 2)

	c, ok := g.ChooseMove()
	require.True(t, ok)
	assert.Equal("red-1", c.Token.ID)
}

func TestChooseMoveTieBreaksByEnumerationOrder(t *testing.T) {
	assert := assert.New(t)
	g := newTestGame(t)
	setRoll(g, 6, 6)

	// All tokens in base: every candidate ranks as a base exit, so the
	// first enumerated token wins.
	c, ok := g.ChooseMove()
	require.True(t, ok)
	assert.Equal("red-0", c.Token.ID)
	assert.Equal(6, c.Face)
}

func TestChooseMoveNothingPlayable(t *testing.T) {
	g := newTestGame(t)
	setRoll(g, 3, 5)
	_, ok := g.ChooseMove()
	assert.False(t, ok)
}

func TestPlayAITurnAlwaysHandsTurnOver(t *testing.T) {
	assert := assert.New(t)
	g := NewGame(true, 7)

	moves := g.PlayAITurn()
	assert.Equal(1, g.CurrentSeat)
	assert.Empty(g.CurrentRoll)
	assert.Equal(1, g.Turn)
	for _, mv := range moves {
		assert.Equal(0, mv.Seat)
	}
}

func TestAIGameTerminates(t *testing.T) {
	g := NewGame(true, 99)
	for turn := 0; turn < 20000 && !g.GameOver; turn++ {
		g.PlayAITurn()
	}
	require.True(t, g.GameOver, "self-play must reach a conclusion")
	assert.ElementsMatch(t, []int{0, 1}, g.Winners)
	for _, tok := range g.Tokens {
		assert.GreaterOrEqual(t, tok.Steps, 0)
	}
}
