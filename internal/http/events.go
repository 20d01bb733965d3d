package httpapi

import (
	"context"
	"net/http"

	"github.com/gorilla/websocket"
)

// EventsSocket streams hub events to any authenticated user. Browsers cannot
// set headers on websocket upgrades, so the token travels in the query.
// Connections are closed when ctx is done; http.Server.Shutdown leaves
// hijacked connections open.
func (s *Server) EventsSocket(ctx context.Context) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query().Get("token")
		if query == "" {
			WriteError(w, http.StatusUnauthorized, "Authentication failed")
			return
		}
		if _, err := s.Tokens.Authenticate(query); err != nil {
			WriteError(w, http.StatusUnauthorized, "Authentication failed")
			return
		}
		if s.Events == nil {
			WriteError(w, http.StatusServiceUnavailable, "Events unavailable")
			return
		}
		upgrader := websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		}
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		s.Events.Add(conn)
		done := make(chan struct{})
		defer func() {
			close(done)
			s.Events.Remove(conn)
			_ = conn.Close()
		}()
		go func() {
			select {
			case <-ctx.Done():
				_ = conn.Close()
			case <-done:
			}
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				break
			}
		}
	}
}
