package realtime

import (
	"context"
	"log/slog"

	"github.com/gofiber/websocket/v2"
)

// Hub fans reference data events out to websocket clients. All client
// bookkeeping happens on the Run goroutine.
type Hub struct {
	Register   chan *websocket.Conn
	Unregister chan *websocket.Conn
	Broadcast  chan []byte
	clients    map[*websocket.Conn]bool
	done       chan struct{}
	logger     *slog.Logger
}

func NewHub(logger *slog.Logger) *Hub {
	if logger == nil {
		logger = slog.Default()
	}
	return &Hub{
		Register:   make(chan *websocket.Conn),
		Unregister: make(chan *websocket.Conn),
		Broadcast:  make(chan []byte, 8),
		clients:    make(map[*websocket.Conn]bool),
		done:       make(chan struct{}),
		logger:     logger,
	}
}

// Run serves the hub until ctx is done. It must be called once.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			for c := range h.clients {
				c.Close()
			}
			return
		case c := <-h.Register:
			h.clients[c] = true
		case c := <-h.Unregister:
			if h.clients[c] {
				delete(h.clients, c)
				c.Close()
			}
		case msg := <-h.Broadcast:
			for c := range h.clients {
				if err := c.WriteMessage(websocket.TextMessage, msg); err != nil {
					h.logger.Debug("websocket write failed", "remote", c.RemoteAddr().String(), "error", err)
					delete(h.clients, c)
					c.Close()
				}
			}
		}
	}
}

// Publish queues msg for every connected client without blocking the caller
// when the hub is busy.
func (h *Hub) Publish(msg []byte) {
	select {
	case h.Broadcast <- msg:
	default:
		h.logger.Warn("websocket broadcast dropped, hub busy")
	}
}

// Join registers c with the hub. It returns false once the hub has stopped.
func (h *Hub) Join(c *websocket.Conn) bool {
	select {
	case h.Register <- c:
		return true
	case <-h.done:
		return false
	}
}

// Leave unregisters c. After the hub has stopped it returns immediately.
func (h *Hub) Leave(c *websocket.Conn) {
	select {
	case h.Unregister <- c:
	case <-h.done:
	}
}
