package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Amazingmercy/boardoverse-backend/internal/board"
	"github.com/Amazingmercy/boardoverse-backend/internal/config"
	"github.com/Amazingmercy/boardoverse-backend/internal/game"
	"github.com/Amazingmercy/boardoverse-backend/internal/session"
)

// statusFor maps the engine's error taxonomy onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, game.ErrGameNotFound),
		errors.Is(err, game.ErrPlayerNotFound),
		errors.Is(err, game.ErrTokenNotFound):
		return http.StatusNotFound
	case errors.Is(err, game.ErrGameFull):
		return http.StatusConflict
	case errors.Is(err, game.ErrOutOfTurn):
		return http.StatusForbidden
	default:
		return http.StatusBadRequest
	}
}

func fail(c *gin.Context, err error) {
	c.JSON(statusFor(err), gin.H{"error": err.Error()})
}

// @Summary Create a new game
// @Description Creates a game with the caller on seat 0; set vsComputer to play against the bot
// @Tags Game
// @Accept json
// @Produce json
// @Param request body http.CreateGameRequest true "Player info"
// @Success 200 {object} map[string]interface{}
// @Router /create-game [post]
func CreateGameHandler(m *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateGameRequest
		if err := c.BindJSON(&req); err != nil || req.PlayerName == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "playerName required"})
			return
		}
		res := m.CreateGame(req.VsComputer, req.PlayerName)
		c.JSON(http.StatusOK, res)
	}
}

// @Summary Join an existing game
// @Description Seats a player; a known playerId rebinds its existing seat instead of allocating one
// @Tags Game
// @Accept json
// @Produce json
// @Param request body http.JoinGameRequest true "Join info"
// @Success 200 {object} map[string]interface{}
// @Router /join-game [post]
func JoinGameHandler(m *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req JoinGameRequest
		if err := c.BindJSON(&req); err != nil || req.GameID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "gameId required"})
			return
		}
		res, err := m.JoinGame(req.GameID, req.PlayerID, req.PlayerName)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, res)
	}
}

// @Summary Roll the dice
// @Description Rolls two dice for the acting seat; the turn advances immediately when the roll is unplayable
// @Tags Game
// @Accept json
// @Produce json
// @Param request body http.RollRequest true "Roll info"
// @Success 200 {object} map[string]interface{}
// @Router /roll [post]
func RollHandler(m *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RollRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
			return
		}
		rolls, err := m.RollDice(req.GameID, req.PlayerID)
		if err != nil {
			fail(c, err)
			return
		}
		view, err := m.View(req.GameID, req.PlayerID)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"rolls": rolls, "view": view})
	}
}

// @Summary Play a move
// @Description Moves a token by one rolled face, applying captures and win detection
// @Tags Game
// @Accept json
// @Produce json
// @Param request body http.MoveRequest true "Move info"
// @Success 200 {object} map[string]interface{}
// @Router /move [post]
func MoveHandler(m *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req MoveRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
			return
		}
		mv, err := m.PlayMove(req.GameID, req.PlayerID, req.TokenID, req.Face)
		if err != nil {
			fail(c, err)
			return
		}
		view, err := m.View(req.GameID, req.PlayerID)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"move": mv, "view": view})
	}
}

// @Summary Skip the rest of the turn
// @Description Discards any unused faces and hands the turn over
// @Tags Game
// @Accept json
// @Produce json
// @Param request body http.SkipRequest true "Skip info"
// @Success 200 {object} map[string]interface{}
// @Router /skip [post]
func SkipHandler(m *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SkipRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
			return
		}
		if err := m.SkipTurn(req.GameID, req.PlayerID); err != nil {
			fail(c, err)
			return
		}
		view, err := m.View(req.GameID, req.PlayerID)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"view": view})
	}
}

// @Summary Get the current game view
// @Tags Game
// @Produce json
// @Param gameId query string true "Game ID"
// @Param playerId query string true "Player ID"
// @Success 200 {object} map[string]interface{}
// @Router /state [get]
func StateHandler(m *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		view, err := m.View(c.Query("gameId"), c.Query("playerId"))
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"view": view})
	}
}

// @Summary Board geometry snapshot
// @Description Full (color, steps) position table plus safe offsets, for the rendering side
// @Tags Board
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /board-geometry [get]
func GeometryHandler() gin.HandlerFunc {
	geo := board.ExportGeometry()
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, geo)
	}
}

// @Summary Lifecycle timing configuration
// @Tags Config
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /config/timing [get]
func TimingHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"aiThinkDelayMs":     cfg.AIThinkDelay.Milliseconds(),
			"disconnectGraceSec": int(cfg.DisconnectGrace.Seconds()),
			"staleAfterMin":      int(cfg.StaleAfter.Minutes()),
		})
	}
}
