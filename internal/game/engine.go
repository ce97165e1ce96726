package game

import "github.com/Amazingmercy/boardoverse-backend/internal/board"

// Turn state machine: RollDice -> PlayMove (repeat while faces remain
// and legal moves exist) -> advanceTurn. Callers hold g.Mu.

// RollDice draws two faces for the acting seat. The roll is always
// returned for display; when nothing can be played with it the turn
// advances immediately, so rolling never blocks progress.
func (g *Game) RollDice(seat int) ([]int, error) {
	if g.GameOver {
		return nil, ErrGameOver
	}
	if seat != g.CurrentSeat {
		return nil, ErrOutOfTurn
	}
	v1, v2 := g.rollFace(), g.rollFace()
	g.OriginalRoll = []int{v1, v2}
	g.CurrentRoll = []int{v1, v2}
	g.touch()
	if !g.HasAnyLegalMove(seat, g.CurrentRoll) {
		g.advanceTurn()
	}
	return []int{v1, v2}, nil
}

// PlayMove applies one (token, face) move for the acting seat. All
// validation happens before any mutation.
func (g *Game) PlayMove(seat int, tokenID string, face int) (*Move, error) {
	if g.GameOver {
		return nil, ErrGameOver
	}
	if seat != g.CurrentSeat {
		return nil, ErrOutOfTurn
	}
	t, ok := g.Token(tokenID)
	if !ok {
		return nil, ErrTokenNotFound
	}
	if t.Seat != seat {
		return nil, ErrIllegalMove
	}
	if !g.faceInRoll(face) {
		return nil, ErrInvalidFace
	}
	if !g.IsLegal(t, face) {
		return nil, ErrIllegalMove
	}

	mv := Move{Seat: seat, TokenID: t.ID, Face: face}
	if captured := g.CaptureTarget(t, face); captured != nil {
		captured.Steps = 0
		mv.Captured = captured.ID
	}
	target, _ := targetSteps(t, face)
	t.Steps = target
	g.removeFace(face)
	g.MoveHistory = append(g.MoveHistory, mv)
	g.touch()

	if g.colorCompleted(t.Color) {
		g.appendWinner(seat)
	}
	if g.GameOver {
		return &mv, nil
	}
	if len(g.CurrentRoll) == 0 || !g.HasAnyLegalMove(seat, g.CurrentRoll) {
		g.advanceTurn()
	}
	return &mv, nil
}

// SkipTurn forfeits any unused faces and hands the turn over.
func (g *Game) SkipTurn(seat int) error {
	if g.GameOver {
		return ErrGameOver
	}
	if seat != g.CurrentSeat {
		return ErrOutOfTurn
	}
	g.advanceTurn()
	return nil
}

func (g *Game) faceInRoll(face int) bool {
	for _, f := range g.CurrentRoll {
		if f == face {
			return true
		}
	}
	return false
}

// removeFace drops exactly one instance of face from the current roll.
func (g *Game) removeFace(face int) {
	for i, f := range g.CurrentRoll {
		if f == face {
			g.CurrentRoll = append(g.CurrentRoll[:i], g.CurrentRoll[i+1:]...)
			return
		}
	}
}

// colorCompleted reports whether all four tokens of a color are home.
func (g *Game) colorCompleted(c board.Color) bool {
	for _, t := range g.Tokens {
		if t.Color == c && !t.Completed() {
			return false
		}
	}
	return true
}

// appendWinner records the seat at most once; the game concludes when
// both seats are present.
func (g *Game) appendWinner(seat int) {
	for _, w := range g.Winners {
		if w == seat {
			return
		}
	}
	g.Winners = append(g.Winners, seat)
	if len(g.Winners) == NumSeats {
		g.GameOver = true
	}
}

// advanceTurn clears the roll and passes play to the other seat.
func (g *Game) advanceTurn() {
	g.OriginalRoll = nil
	g.CurrentRoll = nil
	g.CurrentSeat = (g.CurrentSeat + 1) % NumSeats
	g.Turn++
	g.touch()
}
