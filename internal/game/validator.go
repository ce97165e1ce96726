package game

import "github.com/Amazingmercy/boardoverse-backend/internal/board"

// Move legality. All checks are pure reads; nothing here mutates the
// game.

// targetSteps returns the steps value the token would hold after
// playing face, and whether the move stays on the board at all.
func targetSteps(t *Token, face int) (int, bool) {
	if t.Completed() {
		return 0, false
	}
	if t.Steps == 0 {
		// Leaving base consumes the whole face and enters the track
		// on the color's entry offset.
		if face != 6 {
			return 0, false
		}
		return 1, true
	}
	target := t.Steps + face
	if target > board.FinishSteps {
		return 0, false // overshoot
	}
	return target, true
}

// occupantsAt collects every token standing on the given position,
// skipping the moving token itself. A cell can hold several tokens at
// once (same-seat co-occupation), so legality must consider all of
// them. Base and finish never count as occupied.
func (g *Game) occupantsAt(pos board.PathPosition, moving *Token) []*Token {
	if pos.Kind != board.OnTrack && pos.Kind != board.OnHomeStretch {
		return nil
	}
	var out []*Token
	for _, t := range g.Tokens {
		if t == moving {
			continue
		}
		if board.SamePlace(t.Position(), pos) {
			out = append(out, t)
		}
	}
	return out
}

// IsLegal decides whether the token may play the given face:
//   - completed tokens never move
//   - a token in base needs a 6
//   - the target may not overshoot the finish
//   - no stacking onto another token of the same color
//   - landing on an opposing seat is illegal on safe track cells and
//     inside home stretches; elsewhere it is a capture
//
// Two tokens of the same seat but different colors may share a cell.
func (g *Game) IsLegal(t *Token, face int) bool {
	target, ok := targetSteps(t, face)
	if !ok {
		return false
	}
	pos := board.CanonicalPosition(t.Color, target)
	for _, occ := range g.occupantsAt(pos, t) {
		if occ.Color == t.Color {
			return false
		}
		if occ.Seat == t.Seat {
			continue
		}
		if pos.Kind == board.OnHomeStretch {
			return false
		}
		if pos.Kind == board.OnTrack && board.IsSafeOffset(pos.Offset) {
			return false
		}
	}
	return true
}

// CaptureTarget returns the opposing token that would be sent home by
// playing face, or nil when the move does not capture. Assumes the
// move is legal.
func (g *Game) CaptureTarget(t *Token, face int) *Token {
	target, ok := targetSteps(t, face)
	if !ok {
		return nil
	}
	pos := board.CanonicalPosition(t.Color, target)
	if pos.Kind != board.OnTrack || board.IsSafeOffset(pos.Offset) {
		return nil
	}
	for _, occ := range g.occupantsAt(pos, t) {
		if occ.Seat != t.Seat {
			return occ
		}
	}
	return nil
}

// HasAnyLegalMove reports whether some token owned by the seat can
// play some face from the given multiset.
func (g *Game) HasAnyLegalMove(seat int, faces []int) bool {
	for _, t := range g.Tokens {
		if t.Seat != seat {
			continue
		}
		for _, f := range faces {
			if g.IsLegal(t, f) {
				return true
			}
		}
	}
	return false
}

// Candidate is a playable (token, face) pair.
type Candidate struct {
	Token *Token
	Face  int
}

// LegalMoves enumerates the seat's playable pairs against the current
// roll, in stable token-then-face order.
func (g *Game) LegalMoves(seat int) []Candidate {
	var out []Candidate
	for _, t := range g.Tokens {
		if t.Seat != seat {
			continue
		}
		for _, f := range g.CurrentRoll {
			if g.IsLegal(t, f) {
				out = append(out, Candidate{Token: t, Face: f})
			}
		}
	}
	return out
}
