package transport

import (
	"sync"

	"github.com/gorilla/websocket"

	"sketchroom/internal/shape"
)

// Room is one shared drawing surface on the relay: the set of
// connected clients plus every shape committed so far, kept so late
// joiners can fetch the state they missed.
type Room struct {
	ID string

	mu      sync.Mutex
	clients map[*websocket.Conn]bool
	shapes  shape.Scene
}

func newRoom(id string) *Room {
	return &Room{
		ID:      id,
		clients: make(map[*websocket.Conn]bool),
	}
}

func (r *Room) join(c *websocket.Conn) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clients[c] = true
}

func (r *Room) leave(c *websocket.Conn) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.clients, c)
}

func (r *Room) addShape(s shape.Shape) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.shapes = append(r.shapes, s)
}

// Snapshot returns a deep copy of the committed shapes, in commit
// order.
func (r *Room) Snapshot() shape.Scene {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.shapes.Clone()
}

// relay forwards a raw frame to every client except the sender.
// Writes happen under the room lock: gorilla connections do not allow
// concurrent writers.
func (r *Room) relay(data []byte, exclude *websocket.Conn) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for c := range r.clients {
		if c == exclude {
			continue
		}
		// Best-effort: a dead client is cleaned up by its own read
		// loop, not here.
		_ = c.WriteMessage(websocket.TextMessage, data)
	}
}

func (r *Room) clientCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.clients)
}

// Hub manages all active rooms on the relay server.
type Hub struct {
	mu    sync.RWMutex
	rooms map[string]*Room
}

func NewHub() *Hub {
	return &Hub{rooms: make(map[string]*Room)}
}

// GetOrCreate returns the room, creating it on first reference.
func (h *Hub) GetOrCreate(id string) *Room {
	h.mu.Lock()
	defer h.mu.Unlock()
	if r, ok := h.rooms[id]; ok {
		return r
	}
	r := newRoom(id)
	h.rooms[id] = r
	return r
}
