package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/Amazingmercy/boardoverse-backend/internal/api/ws"
	"github.com/Amazingmercy/boardoverse-backend/internal/config"
	"github.com/Amazingmercy/boardoverse-backend/internal/session"
)

func NewRouter(m *session.Manager, hub *ws.Hub, cfg config.Config) *gin.Engine {
	r := gin.Default()

	// WebSocket for live updates and presence
	r.GET("/ws", hub.HandleWS)

	// --- GAME ENDPOINTS ---
	r.POST("/create-game", CreateGameHandler(m))
	r.POST("/join-game", JoinGameHandler(m))
	r.POST("/roll", RollHandler(m))
	r.POST("/move", MoveHandler(m))
	r.POST("/skip", SkipHandler(m))
	r.GET("/state", StateHandler(m))

	// --- BOARD / CONFIG ENDPOINTS ---
	r.GET("/board-geometry", GeometryHandler())
	r.GET("/config/timing", TimingHandler(cfg))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
