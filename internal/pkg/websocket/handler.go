package websocket

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/wbvaa/portal/internal/middleware"
)

// maxClientsPerSession bounds the open tabs following one session.
const maxClientsPerSession = 8

// Origin checking is left to the upgrader's same-origin default.
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// Handler for WebSocket connections
type Handler struct {
	hub    *Hub
	logger zerolog.Logger
}

// NewHandler creates a new WebSocket handler
func NewHandler(hub *Hub, logger zerolog.Logger) *Handler {
	return &Handler{hub: hub, logger: logger}
}

// HandleConnection upgrades the request and streams the events of the
// caller's session until either side closes.
func (h *Handler) HandleConnection(c *gin.Context) {
	sessionID := c.GetString(middleware.SessionIDKey)
	if sessionID == "" {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	if n := h.hub.ClientCount(sessionID); n >= maxClientsPerSession {
		h.logger.Warn().Str("session", sessionID).Int("clients", n).Msg("Too many WebSocket clients for session")
		c.AbortWithStatus(http.StatusTooManyRequests)
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade has already written the error response
		h.logger.Debug().
			Err(err).
			Str("session", sessionID).
			Msg("Failed to upgrade connection to WebSocket")
		return
	}

	client := newClient(h.hub, conn, sessionID, h.logger)
	if !h.hub.Register(client) {
		conn.Close()
		return
	}

	go client.writePump()
	go client.readPump()

	h.logger.Debug().
		Str("session", sessionID).
		Str("remoteAddr", conn.RemoteAddr().String()).
		Msg("WebSocket connection established")
}
