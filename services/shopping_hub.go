package services

import (
	"sync"

	"github.com/gorilla/websocket"
)

type ShoppingClient struct {
	PlanID uint
	Conn   *websocket.Conn
}

// ShoppingHub relays shopping-list check/uncheck events between clients
// viewing the same plan. The bought/unbought state itself lives on the
// clients and is never persisted.
type ShoppingHub struct {
	mu    sync.RWMutex
	rooms map[uint]map[*ShoppingClient]struct{}
}

func NewShoppingHub() *ShoppingHub {
	return &ShoppingHub{rooms: make(map[uint]map[*ShoppingClient]struct{})}
}

func (h *ShoppingHub) Join(c *ShoppingClient) {
	h.mu.Lock()
	if h.rooms[c.PlanID] == nil {
		h.rooms[c.PlanID] = make(map[*ShoppingClient]struct{})
	}
	h.rooms[c.PlanID][c] = struct{}{}
	h.mu.Unlock()
}

func (h *ShoppingHub) Leave(c *ShoppingClient) {
	h.mu.Lock()
	if room := h.rooms[c.PlanID]; room != nil {
		delete(room, c)
		if len(room) == 0 {
			delete(h.rooms, c.PlanID)
		}
	}
	h.mu.Unlock()
	_ = c.Conn.Close()
}

// Relay forwards a message to every other client in the sender's room.
func (h *ShoppingHub) Relay(from *ShoppingClient, msg []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.rooms[from.PlanID] {
		if c == from {
			continue
		}
		_ = c.Conn.WriteMessage(websocket.TextMessage, msg)
	}
}
