// Package http exposes the operator-facing status endpoints. The game
// itself never travels over HTTP; this server only reports live counters.
package http

import (
	stdhttp "net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/ngxtri/wordwheel-server/internal/core"
)

// NewServer builds the status HTTP server.
func NewServer(addr string, stats *core.Stats, logger *zerolog.Logger) *stdhttp.Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	h := &statusHandlers{stats: stats, log: logger}
	router.GET("/health", h.Health)
	router.GET("/api/status", h.Status)

	return &stdhttp.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}
}

type statusHandlers struct {
	stats *core.Stats
	log   *zerolog.Logger
}

// Health answers liveness probes.
// GET /health
func (h *statusHandlers) Health(c *gin.Context) {
	c.String(stdhttp.StatusOK, "ok")
}

// Status reports lobby occupancy and game counters.
// GET /api/status
func (h *statusHandlers) Status(c *gin.Context) {
	snap := h.stats.Snapshot()
	h.log.Debug().
		Int64("active_rooms", snap.ActiveRooms).
		Int64("lobby_joined", snap.LobbyJoined).
		Msg("status requested")
	c.JSON(stdhttp.StatusOK, snap)
}
