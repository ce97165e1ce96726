package http

// CreateGameRequest represents the payload for /create-game.
type CreateGameRequest struct {
	PlayerName string `json:"playerName"`
	VsComputer bool   `json:"vsComputer"`
}

// JoinGameRequest represents the payload for /join-game. PlayerID is
// set on reconnect and empty on a first join.
type JoinGameRequest struct {
	GameID     string `json:"gameId"`
	PlayerID   string `json:"playerId"`
	PlayerName string `json:"playerName"`
}

// RollRequest represents the payload for /roll.
type RollRequest struct {
	GameID   string `json:"gameId"`
	PlayerID string `json:"playerId"`
}

// MoveRequest represents the payload for /move.
type MoveRequest struct {
	GameID   string `json:"gameId"`
	PlayerID string `json:"playerId"`
	TokenID  string `json:"tokenId"`
	Face     int    `json:"face"`
}

// SkipRequest represents the payload for /skip.
type SkipRequest struct {
	GameID   string `json:"gameId"`
	PlayerID string `json:"playerId"`
}
