package ws

import "github.com/Amazingmercy/boardoverse-backend/internal/game"

// GameService is the slice of the session manager the hub needs.
type GameService interface {
	BindConnection(gameID, playerID, connID string) error
	HandleDisconnect(connID string) (string, bool)
	RollDice(gameID, playerID string) ([]int, error)
	PlayMove(gameID, playerID, tokenID string, face int) (*game.Move, error)
	SkipTurn(gameID, playerID string) error
	View(gameID, playerID string) (game.View, error)
}
