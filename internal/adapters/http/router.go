// Package http wires the HTTP surface: static client, the media-relay token
// endpoint, a read-only rooms API and the WebSocket signaling endpoint.
package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/mehedi/livecast/internal/adapters/signal"
	"github.com/mehedi/livecast/internal/app"
	"github.com/mehedi/livecast/internal/config"
)

func SetupRouter(ctx context.Context, cfg *config.Config, coord *app.Coordinator) *gin.Engine {
	if cfg.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	if cfg.Mode == "debug" {
		r.Use(gin.Logger())
	}
	r.Use(gin.Recovery())

	r.Static("/static", cfg.StaticPath)
	// SPA catch-all: anything unmatched gets the client shell.
	r.NoRoute(func(c *gin.Context) {
		c.File(cfg.StaticPath + "/index.html")
	})

	issuer := &app.TokenIssuer{
		AppID:  cfg.AppID,
		Secret: cfg.ServerSecret,
		TTL:    cfg.TokenTTL,
	}

	// GET /token?userID={id}&roomID={room} — media-relay credential.
	// Missing parameters fall back instead of failing.
	r.GET("/token", func(c *gin.Context) {
		userID := c.DefaultQuery("userID", fmt.Sprintf("user_%d", time.Now().UnixMilli()))
		roomID := c.DefaultQuery("roomID", cfg.DefaultRoom)
		info, err := issuer.Issue(userID, roomID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "token issue failed"})
			return
		}
		c.JSON(http.StatusOK, info)
	})

	api := r.Group("/api")

	// GET /api/rooms — list room snapshots.
	api.GET("/rooms", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"rooms": coord.Rooms.List()})
	})

	ctrl := signal.NewController(coord, cfg)
	r.GET("/ws", func(c *gin.Context) {
		ctrl.Handle(ctx, c)
	})

	log.Info().Str("module", "adapters.http").Str("static", cfg.StaticPath).Msg("router setup")
	return r
}
