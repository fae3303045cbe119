// Package ws keeps websocket connections of online users and pushes
// notification messages to them.
package ws

import (
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"
)

// ErrNotConnected is returned when the target user has no open websocket
// connection. The delivery retry strategy decides whether to try again.
var ErrNotConnected = errors.New("user has no active websocket connection")

// Hub tracks open connections per user.
type Hub struct {
	mu      sync.RWMutex
	clients map[uuid.UUID]map[*websocket.Conn]struct{}

	upgrader websocket.Upgrader
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[uuid.UUID]map[*websocket.Conn]struct{}),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Handle upgrades an incoming request to a websocket connection and registers
// it under the user_id query parameter until the peer disconnects.
func (h *Hub) Handle(c *ginext.Context) {
	userID, err := uuid.Parse(c.Query("user_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid user_id"})
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to upgrade websocket connection")
		return
	}

	h.register(userID, conn)
	zlog.Logger.Info().Str("user_id", userID.String()).Msg("websocket client connected")

	go func() {
		defer func() {
			h.unregister(userID, conn)
			_ = conn.Close()
			zlog.Logger.Info().Str("user_id", userID.String()).Msg("websocket client disconnected")
		}()

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

// Send writes a message to every open connection of the user.
func (h *Hub) Send(userID uuid.UUID, msg string) error {
	h.mu.RLock()
	conns := make([]*websocket.Conn, 0, len(h.clients[userID]))
	for conn := range h.clients[userID] {
		conns = append(conns, conn)
	}
	h.mu.RUnlock()

	if len(conns) == 0 {
		return fmt.Errorf("%w: %s", ErrNotConnected, userID)
	}

	for _, conn := range conns {
		if err := conn.WriteMessage(websocket.TextMessage, []byte(msg)); err != nil {
			return fmt.Errorf("failed to write websocket message: %w", err)
		}
	}

	return nil
}

// Broadcast writes a message to every connected user. Users without an open
// connection simply miss the broadcast.
func (h *Hub) Broadcast(msg string) error {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, conns := range h.clients {
		for conn := range conns {
			if err := conn.WriteMessage(websocket.TextMessage, []byte(msg)); err != nil {
				zlog.Logger.Error().Err(err).Msg("failed to write broadcast message")
			}
		}
	}

	return nil
}

func (h *Hub) register(userID uuid.UUID, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.clients[userID] == nil {
		h.clients[userID] = make(map[*websocket.Conn]struct{})
	}
	h.clients[userID][conn] = struct{}{}
}

func (h *Hub) unregister(userID uuid.UUID, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	delete(h.clients[userID], conn)
	if len(h.clients[userID]) == 0 {
		delete(h.clients, userID)
	}
}
