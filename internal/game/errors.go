package game

import "errors"

// Every failure is detected before any mutation; a failed operation
// leaves the game untouched. The transport layer matches these with
// errors.Is to pick a user-facing message and status.
var (
	ErrGameNotFound   = errors.New("game not found")
	ErrPlayerNotFound = errors.New("player not found")
	ErrTokenNotFound  = errors.New("token not found")
	ErrGameFull       = errors.New("game is full")
	ErrOutOfTurn      = errors.New("not your turn")
	ErrInvalidFace    = errors.New("face not in current roll")
	ErrIllegalMove    = errors.New("illegal move")
	ErrGameOver       = errors.New("game is over")
)
