package game

import "github.com/Amazingmercy/boardoverse-backend/internal/board"

// Client-facing projection of a game, built per requesting seat.

type TokenView struct {
	ID        string             `json:"id"`
	Color     board.Color        `json:"color"`
	Steps     int                `json:"steps"`
	Position  board.PathPosition `json:"position"`
	Clickable bool               `json:"clickable"`
}

type View struct {
	GameID      string      `json:"gameId"`
	Tokens      []TokenView `json:"tokens"`
	Dice        []int       `json:"dice"`
	CurrentSeat int         `json:"currentSeat"`
	GameOver    bool        `json:"gameOver"`
	Winners     []int       `json:"winners"`
	VsComputer  bool        `json:"vsComputer"`
	Seats       []SeatView  `json:"seats"`
}

type SeatView struct {
	Index     int            `json:"index"`
	Name      string         `json:"name"`
	IsBot     bool           `json:"isBot"`
	Colors    [2]board.Color `json:"colors"`
	Connected bool           `json:"connected"`
}

// View projects the game for one seat. A token is clickable when the
// game is live, the token belongs to the requesting seat, and at least
// one remaining face would be legal for it.
func (g *Game) View(forSeat int) View {
	v := View{
		GameID:      g.ID,
		Tokens:      make([]TokenView, 0, len(g.Tokens)),
		Dice:        append([]int(nil), g.CurrentRoll...),
		CurrentSeat: g.CurrentSeat,
		GameOver:    g.GameOver,
		Winners:     append([]int(nil), g.Winners...),
		VsComputer:  g.VsComputer,
	}
	for i := range g.Seats {
		s := &g.Seats[i]
		v.Seats = append(v.Seats, SeatView{
			Index:     s.Index,
			Name:      s.Name,
			IsBot:     s.IsBot,
			Colors:    s.Colors,
			Connected: s.Connected,
		})
	}
	for _, t := range g.Tokens {
		tv := TokenView{
			ID:       t.ID,
			Color:    t.Color,
			Steps:    t.Steps,
			Position: t.Position(),
		}
		if !g.GameOver && t.Seat == forSeat {
			for _, f := range g.CurrentRoll {
				if g.IsLegal(t, f) {
					tv.Clickable = true
					break
				}
			}
		}
		v.Tokens = append(v.Tokens, tv)
	}
	return v
}
