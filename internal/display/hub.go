// Package display pushes booking changes to connected display clients
// (lobby screens, dashboards) over WebSocket. The hub implements the
// booking observer interface, so it receives every created/updated/
// cancelled event the engine emits.
package display

import (
	"encoding/json"
	"sync"
	"time"

	"roomdesk/internal/domain"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
	maxMsgSize = 4 * 1024
)

const (
	EventBookingCreated   = "booking_created"
	EventBookingUpdated   = "booking_updated"
	EventBookingCancelled = "booking_cancelled"
)

// Event is one display update on the wire.
type Event struct {
	Type    string          `json:"type"`
	Booking *domain.Booking `json:"booking"`
}

type connection struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub tracks the connected display clients and fans booking events out to
// them. Slow clients drop events rather than blocking the engine.
type Hub struct {
	mu    sync.RWMutex
	conns map[*connection]struct{}
}

func NewHub() *Hub {
	return &Hub{conns: make(map[*connection]struct{})}
}

func (h *Hub) register(c *connection) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.conns[c] = struct{}{}
}

func (h *Hub) unregister(c *connection) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.conns[c]; ok {
		delete(h.conns, c)
		close(c.send)
	}
}

func (h *Hub) broadcast(eventType string, b *domain.Booking) {
	data, err := json.Marshal(Event{Type: eventType, Booking: b})
	if err != nil {
		return
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.conns {
		select {
		case c.send <- data:
		default:
			// client too slow, skip
		}
	}
}

func (h *Hub) BookingCreated(b *domain.Booking)   { h.broadcast(EventBookingCreated, b) }
func (h *Hub) BookingUpdated(b *domain.Booking)   { h.broadcast(EventBookingUpdated, b) }
func (h *Hub) BookingCancelled(b *domain.Booking) { h.broadcast(EventBookingCancelled, b) }

// ServeWS registers a connection and runs its pumps; it blocks until the
// client disconnects.
func (h *Hub) ServeWS(conn *websocket.Conn) {
	c := &connection{conn: conn, send: make(chan []byte, 64)}
	h.register(c)
	go h.writePump(c)
	h.readPump(c)
}

func (h *Hub) readPump(c *connection) {
	defer func() {
		h.unregister(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMsgSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	// Displays are listen-only; incoming frames are drained and dropped.
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			break
		}
	}
}

func (h *Hub) writePump(c *connection) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
