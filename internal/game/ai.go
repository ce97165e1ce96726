package game

// Heuristic move selection for a computer seat. The ranking is a fixed
// total order: captures first, then bringing a token out of base, then
// the most advanced token; ties fall back to enumeration order.

const (
	rankAdvance = iota
	rankExitBase
	rankCapture
)

func (g *Game) rankCandidate(c Candidate) int {
	if g.CaptureTarget(c.Token, c.Face) != nil {
		return rankCapture
	}
	if c.Token.Steps == 0 {
		return rankExitBase
	}
	return rankAdvance
}

// ChooseMove picks the best playable pair for the current seat against
// the current roll. Returns false when nothing is playable.
func (g *Game) ChooseMove() (Candidate, bool) {
	cands := g.LegalMoves(g.CurrentSeat)
	if len(cands) == 0 {
		return Candidate{}, false
	}
	best := cands[0]
	bestRank := g.rankCandidate(best)
	for _, c := range cands[1:] {
		rank := g.rankCandidate(c)
		if rank > bestRank {
			best, bestRank = c, rank
			continue
		}
		if rank == bestRank && rank == rankAdvance && c.Token.Steps > best.Token.Steps {
			best = c
		}
	}
	return best, true
}

// PlayAITurn runs one full computer turn: roll once, then keep playing
// the best pair until the faces are spent or nothing is legal. RollDice
// and PlayMove already hand the turn over in those cases, so the loop
// ends as soon as the seat changes. Caller holds g.Mu.
func (g *Game) PlayAITurn() []Move {
	seat := g.CurrentSeat
	if g.GameOver {
		return nil
	}
	if _, err := g.RollDice(seat); err != nil {
		return nil
	}
	var moves []Move
	for !g.GameOver && g.CurrentSeat == seat {
		c, ok := g.ChooseMove()
		if !ok {
			g.advanceTurn()
			break
		}
		mv, err := g.PlayMove(seat, c.Token.ID, c.Face)
		if err != nil {
			g.advanceTurn()
			break
		}
		moves = append(moves, *mv)
	}
	return moves
}
