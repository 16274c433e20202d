package websocket

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/rs/zerolog"

	"github.com/wbvaa/portal/internal/app/models"
)

// broadcastBuffer bounds events queued between Notify and the hub loop.
const broadcastBuffer = 256

// Hub maintains the set of active clients and pushes session events to them
type Hub struct {
	// Registered clients organized by session ID
	clients map[string]map[*Client]bool

	// Events waiting to be delivered
	broadcast chan models.Event

	// Register requests from the clients
	register chan *Client

	// Unregister requests from clients
	unregister chan *Client

	// Closed when Run returns
	done chan struct{}

	// Mutex for concurrent access to clients map
	mu sync.RWMutex

	// Logger for Hub operations
	logger zerolog.Logger
}

// NewHub creates a new Hub instance
func NewHub(logger zerolog.Logger) *Hub {
	return &Hub{
		broadcast:  make(chan models.Event, broadcastBuffer),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[string]map[*Client]bool),
		done:       make(chan struct{}),
		logger:     logger,
	}
}

// Run handles client registrations and deliveries until ctx is done, then
// disconnects every client.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			return

		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)

		case event := <-h.broadcast:
			h.deliver(event)
		}
	}
}

// Notify queues an event for the browsers of its session. It never blocks;
// when the queue is full the event is dropped.
func (h *Hub) Notify(event models.Event) {
	select {
	case h.broadcast <- event:
	default:
		h.logger.Warn().
			Str("session", event.SessionID).
			Str("type", string(event.Type)).
			Msg("Event queue full, dropping event")
	}
}

// Disconnect closes every client of a session. Their write pumps send a
// close frame and exit; the read pumps unregister as a no-op.
func (h *Hub) Disconnect(sessionID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	clients := h.clients[sessionID]
	if len(clients) == 0 {
		return
	}
	n := len(clients)
	for client := range clients {
		h.removeLocked(client)
	}
	h.logger.Debug().Str("session", sessionID).Int("clients", n).Msg("Session unmounted, clients disconnected")
}

// Register adds a client unless the hub has stopped.
func (h *Hub) Register(client *Client) bool {
	select {
	case h.register <- client:
		return true
	case <-h.done:
		return false
	}
}

// Unregister removes a client. It is a no-op once the hub has stopped.
func (h *Hub) Unregister(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

// registerClient registers a new client to the hub
func (h *Hub) registerClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	sessionID := client.sessionID
	if _, ok := h.clients[sessionID]; !ok {
		h.clients[sessionID] = make(map[*Client]bool)
	}
	h.clients[sessionID][client] = true

	h.logger.Debug().
		Str("session", sessionID).
		Str("addr", client.remoteAddr()).
		Msg("Client registered")
}

// unregisterClient unregisters a client from the hub
func (h *Hub) unregisterClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.removeLocked(client)
}

func (h *Hub) removeLocked(client *Client) {
	sessionID := client.sessionID
	clients, ok := h.clients[sessionID]
	if !ok || !clients[client] {
		return
	}

	delete(clients, client)
	close(client.send)
	if len(clients) == 0 {
		delete(h.clients, sessionID)
	}

	h.logger.Debug().
		Str("session", sessionID).
		Str("addr", client.remoteAddr()).
		Msg("Client unregistered")
}

// deliver sends an event to every client of its session. Clients whose
// buffer is full are disconnected.
func (h *Hub) deliver(event models.Event) {
	data, err := json.Marshal(event)
	if err != nil {
		h.logger.Error().
			Err(err).
			Str("session", event.SessionID).
			Msg("Failed to marshal event")
		return
	}

	var slow []*Client
	h.mu.RLock()
	for client := range h.clients[event.SessionID] {
		select {
		case client.send <- data:
		default:
			slow = append(slow, client)
		}
	}
	h.mu.RUnlock()

	if len(slow) > 0 {
		h.mu.Lock()
		for _, client := range slow {
			h.removeLocked(client)
		}
		h.mu.Unlock()
		h.logger.Warn().Str("session", event.SessionID).Int("dropped", len(slow)).Msg("Disconnected slow clients")
	}
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, clients := range h.clients {
		for client := range clients {
			h.removeLocked(client)
		}
	}
}

// ClientCount returns the number of connected clients of a session
func (h *Hub) ClientCount(sessionID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[sessionID])
}
