package socket

import (
	"log"
	"net/http"

	socketio "github.com/googollee/go-socket.io"
)

// Server wraps the Socket.IO server used for push-based live reads. Clients
// join one room per open conversation (plus the shared "presence" room);
// controllers broadcast into rooms after successful writes. Broadcasts are
// best-effort: the REST reads remain the source of truth.
type Server struct {
	io *socketio.Server
}

// NewServer initializes the Socket.IO server and its room management.
func NewServer() *Server {
	io := socketio.NewServer(nil)

	io.OnConnect("/", func(c socketio.Conn) error {
		log.Println("✅ Socket connected:", c.ID())
		return nil
	})

	io.OnEvent("/", "join", func(c socketio.Conn, room string) {
		if room == "" {
			log.Println("❌ Invalid room in join request")
			return
		}
		log.Printf("👥 Socket %s joined room %s\n", c.ID(), room)
		c.Join(room)
	})

	io.OnEvent("/", "leave", func(c socketio.Conn, room string) {
		if room != "" {
			c.Leave(room)
		}
	})

	io.OnError("/", func(c socketio.Conn, err error) {
		log.Println("❌ Socket error:", err)
	})

	io.OnDisconnect("/", func(c socketio.Conn, reason string) {
		log.Println("❌ Socket disconnected:", reason)
	})

	return &Server{io: io}
}

// BroadcastTo emits an event to every socket joined to the room.
func (s *Server) BroadcastTo(room, event string, data interface{}) {
	s.io.BroadcastToRoom("/", room, event, data)
}

// Serve runs the Socket.IO event loop. Call in a goroutine.
func (s *Server) Serve() error {
	return s.io.Serve()
}

// Close shuts the event loop down.
func (s *Server) Close() error {
	return s.io.Close()
}

// Handler exposes the server for mounting at /socket.io/.
func (s *Server) Handler() http.Handler {
	return s.io
}
