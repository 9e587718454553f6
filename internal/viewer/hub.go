// Package viewer serves the colony to watchers: a websocket fan-out of
// per-tick event batches and a small read-only HTTP surface. Strictly a
// consumer of the engine's output; nothing here can reach back into a step.
package viewer

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/talgya/anthill/internal/events"
)

// Hub fans out tick batches to every connected websocket client. Slow or
// dead clients are dropped rather than allowed to stall the loop.
type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]bool

	upgrader websocket.Upgrader
}

// TickBatch is one websocket frame: a tick and everything it emitted.
type TickBatch struct {
	Tick   uint64        `json:"tick"`
	Events events.Stream `json:"events"`
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{
		clients: make(map[*websocket.Conn]bool),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// HandleWS upgrades the request and registers the client until it hangs up.
func (h *Hub) HandleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Warn("websocket upgrade failed", "error", err)
		return
	}

	h.mu.Lock()
	h.clients[conn] = true
	n := len(h.clients)
	h.mu.Unlock()
	slog.Info("viewer connected", "clients", n)

	// Reads are discarded; the socket exists only for pushes. The read loop
	// notices the hangup.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				h.drop(conn)
				return
			}
		}
	}()
}

// Broadcast sends one tick batch to every client. Empty batches are sent
// too, so watchers see time passing.
func (h *Hub) Broadcast(tick uint64, evs events.Stream) {
	frame, err := json.Marshal(TickBatch{Tick: tick, Events: evs})
	if err != nil {
		slog.Error("encode tick batch", "error", err)
		return
	}

	h.mu.Lock()
	conns := make([]*websocket.Conn, 0, len(h.clients))
	for c := range h.clients {
		conns = append(conns, c)
	}
	h.mu.Unlock()

	for _, c := range conns {
		if err := c.WriteMessage(websocket.TextMessage, frame); err != nil {
			h.drop(c)
		}
	}
}

// ClientCount returns the number of connected viewers.
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

func (h *Hub) drop(conn *websocket.Conn) {
	h.mu.Lock()
	if h.clients[conn] {
		delete(h.clients, conn)
		conn.Close()
	}
	h.mu.Unlock()
}
