package game

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/Amazingmercy/boardoverse-backend/internal/board"
)

const (
	NumSeats       = 2
	ColorsPerSeat  = 2
	TokensPerColor = 4
	NumTokens      = NumSeats * ColorsPerSeat * TokensPerColor
)

// Token is one of the sixteen pieces on the board. Steps is the total
// progress counter; the board position is always derived from it.
type Token struct {
	ID    string      `json:"id"` // "<color>-<slot>"
	Color board.Color `json:"color"`
	Seat  int         `json:"seat"`
	Slot  int         `json:"slot"` // home-base slot, render-only
	Steps int         `json:"steps"`
}

func (t *Token) Completed() bool {
	return t.Steps >= board.FinishSteps
}

func (t *Token) Position() board.PathPosition {
	return board.CanonicalPosition(t.Color, t.Steps)
}

// Seat is one of the two controlling participants. PlayerID is the
// stable identity that survives reconnects; Connected tracks the
// presence of the current transport binding.
type Seat struct {
	Index     int            `json:"index"`
	PlayerID  string         `json:"playerId"`
	Name      string         `json:"name"`
	IsBot     bool           `json:"isBot"`
	Colors    [2]board.Color `json:"colors"`
	Connected bool           `json:"connected"`
}

// Occupied reports whether an identity is bound to the seat.
func (s *Seat) Occupied() bool {
	return s.IsBot || s.PlayerID != ""
}

// Move records one applied move.
type Move struct {
	Seat     int    `json:"seat"`
	TokenID  string `json:"tokenId"`
	Face     int    `json:"face"`
	Captured string `json:"captured,omitempty"` // id of the token sent home
}

type Game struct {
	ID           string         `json:"id"`
	Seats        [NumSeats]Seat `json:"seats"`
	CurrentSeat  int            `json:"currentSeat"`
	OriginalRoll []int          `json:"originalRoll"`
	CurrentRoll  []int          `json:"currentRoll"`
	Tokens       []*Token       `json:"tokens"`
	Winners      []int          `json:"winners"`
	GameOver     bool           `json:"gameOver"`
	VsComputer   bool           `json:"vsComputer"`
	CreatedAt    time.Time      `json:"createdAt"`
	LastActivity time.Time      `json:"lastActivity"`
	MoveHistory  []Move         `json:"moveHistory"`
	// Turn increments on every turn advance; deferred continuations
	// compare it against the value they captured when scheduled.
	Turn int `json:"turn"`

	// Mu serializes every mutation of this game, including timer
	// callbacks. Distinct games are independent.
	Mu sync.Mutex `json:"-"`

	random *rand.Rand
}

// NewGame builds a fresh game with all sixteen tokens in base and seat
// 0 to act. The seed makes dice deterministic for simulations and
// tests; pass time.Now().UnixNano() for real play.
func NewGame(vsComputer bool, seed int64) *Game {
	g := &Game{
		CurrentSeat: 0,
		VsComputer:  vsComputer,
		CreatedAt:   time.Now(),
		random:      rand.New(rand.NewSource(seed)),
	}
	g.LastActivity = g.CreatedAt
	for seat := 0; seat < NumSeats; seat++ {
		g.Seats[seat] = Seat{
			Index:  seat,
			Colors: board.SeatColors[seat],
		}
		for _, c := range board.SeatColors[seat] {
			for slot := 0; slot < TokensPerColor; slot++ {
				g.Tokens = append(g.Tokens, &Token{
					ID:    fmt.Sprintf("%s-%d", c, slot),
					Color: c,
					Seat:  seat,
					Slot:  slot,
				})
			}
		}
	}
	return g
}

// Token looks a token up by id.
func (g *Game) Token(id string) (*Token, bool) {
	for _, t := range g.Tokens {
		if t.ID == id {
			return t, true
		}
	}
	return nil, false
}

// SeatByPlayer resolves a stable player identity to its seat index.
func (g *Game) SeatByPlayer(playerID string) (int, bool) {
	if playerID == "" {
		return 0, false
	}
	for i := range g.Seats {
		if g.Seats[i].PlayerID == playerID {
			return i, true
		}
	}
	return 0, false
}

func (g *Game) rollFace() int {
	return g.random.Intn(6) + 1
}

func (g *Game) touch() {
	g.LastActivity = time.Now()
}
