package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
)

const (
	wsWriteTimeout = 10 * time.Second
	wsPingInterval = 30 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	CheckOrigin:     func(*http.Request) bool { return true },
}

// handleWatch streams every state change of one game to the client.
// The socket is read-only for the client; all moves go through the
// regular endpoints.
func (s *Server) handleWatch(w http.ResponseWriter, r *http.Request) {
	sess, err := s.games.get(chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("websocket upgrade failed", "id", sess.id, "err", err)
		return
	}
	defer conn.Close()

	updates := sess.subscribe()
	defer sess.unsubscribe(updates)

	// Drain the socket so close frames and pongs are processed.
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	sess.mu.Lock()
	view := s.viewLocked(sess)
	sess.mu.Unlock()
	if err := writeFrame(conn, view); err != nil {
		return
	}

	pings := time.NewTicker(wsPingInterval)
	defer pings.Stop()

	for {
		select {
		case view, ok := <-updates:
			if !ok {
				return
			}
			if err := writeFrame(conn, view); err != nil {
				return
			}
		case <-pings.C:
			deadline := time.Now().Add(wsWriteTimeout)
			if err := conn.WriteControl(websocket.PingMessage, nil, deadline); err != nil {
				return
			}
		case <-closed:
			return
		case <-r.Context().Done():
			return
		}
	}
}

func writeFrame(conn *websocket.Conn, view GameView) error {
	conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
	return conn.WriteJSON(view)
}
