package main

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	httpapi "github.com/Amazingmercy/boardoverse-backend/internal/api/http"
	"github.com/Amazingmercy/boardoverse-backend/internal/api/ws"
	"github.com/Amazingmercy/boardoverse-backend/internal/config"
	"github.com/Amazingmercy/boardoverse-backend/internal/session"

	// swagger docs
	_ "github.com/Amazingmercy/boardoverse-backend/docs"
)

// @title Boardoverse Backend API
// @version 1.0
// @description REST + WebSocket API for the four-color race game engine (Go + Gin)
// @contact.name Backend Team
// @BasePath /
func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg := config.Load()
	reg := session.NewRegistry()
	mgr := session.NewManager(reg, cfg)
	hub := ws.NewHub()
	hub.SetService(mgr)
	mgr.SetBroadcaster(hub)
	mgr.StartSweeper()
	defer mgr.Close()

	r := httpapi.NewRouter(mgr, hub, cfg)

	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})

	log.Info().Str("addr", cfg.HTTPAddr).Msg("listening")
	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
