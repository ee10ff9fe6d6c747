package transport

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"

	"sketchroom/internal/protocol"
	"sketchroom/internal/shape"
)

// Server is the room relay: it accepts websocket connections per room,
// stores every committed shape for late joiners, and forwards each
// shape-broadcast to every other client in the room. It never echoes a
// message back to its sender.
type Server struct {
	hub      *Hub
	logger   *slog.Logger
	upgrader websocket.Upgrader
}

func NewServer(logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		hub:    NewHub(),
		logger: logger,
		upgrader: websocket.Upgrader{
			// Clients are desktop apps, not browsers; any origin is fine.
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

// Handler exposes the relay's two endpoints: the one-shot snapshot
// fetch used before a session starts, and the room channel itself.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /rooms/{room}/shapes", s.handleSnapshot)
	mux.HandleFunc("/rooms/{room}/ws", s.handleRoom)
	return mux
}

// ListenAndServe runs the relay on addr until the process exits.
func (s *Server) ListenAndServe(addr string) error {
	s.logger.Info("relay listening", "addr", addr)
	return http.ListenAndServe(addr, s.Handler())
}

func (s *Server) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	roomID := r.PathValue("room")
	snap := s.hub.GetOrCreate(roomID).Snapshot()
	data, err := shape.MarshalScene(snap)
	if err != nil {
		s.logger.Error("encode snapshot", "room", roomID, "err", err)
		http.Error(w, "encode snapshot", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(data)
}

func (s *Server) handleRoom(w http.ResponseWriter, r *http.Request) {
	roomID := r.PathValue("room")
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("upgrade failed", "room", roomID, "err", err)
		return
	}
	room := s.hub.GetOrCreate(roomID)
	room.join(conn)
	s.logger.Info("client joined", "room", roomID, "addr", conn.RemoteAddr(), "clients", room.clientCount())

	defer func() {
		room.leave(conn)
		_ = conn.Close()
		s.logger.Info("client left", "room", roomID, "addr", conn.RemoteAddr())
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}

		var msg protocol.Message
		if err := json.Unmarshal(data, &msg); err != nil {
			s.logger.Warn("skipping malformed frame", "room", roomID, "err", err)
			continue
		}
		if msg.Kind != protocol.KindShapeBroadcast || msg.RoomID != roomID {
			s.logger.Warn("skipping frame", "room", roomID, "kind", msg.Kind, "msgRoom", msg.RoomID)
			continue
		}
		sh, err := msg.DecodeShape()
		if err != nil {
			s.logger.Warn("skipping undecodable shape", "room", roomID, "err", err)
			continue
		}

		room.addShape(sh)
		room.relay(data, conn)
	}
}
