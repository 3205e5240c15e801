// internal/broadcast/hub.go
package broadcast

import (
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	writeWait    = 10 * time.Second
	pongWait     = 60 * time.Second
	pingInterval = 54 * time.Second
	sendBuffer   = 16
)

var ErrHubClosed = errors.New("broadcast hub closed")

// viewer is one connected spectator.
type viewer struct {
	id   string
	conn *websocket.Conn
	send chan []byte
}

// Hub fans spectator frames out to websocket viewers. Viewers are
// read-only; anything they send is discarded.
type Hub struct {
	upgrader websocket.Upgrader

	mu      sync.Mutex
	viewers map[string]*viewer
	closed  bool
}

func NewHub() *Hub {
	return &Hub{
		upgrader: websocket.Upgrader{
			CheckOrigin:     func(r *http.Request) bool { return true },
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
		},
		viewers: make(map[string]*viewer),
	}
}

// ServeHTTP upgrades the request and registers the viewer.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Warn("spectator upgrade failed", "error", err)
		return
	}

	v := &viewer{id: uuid.NewString(), conn: conn, send: make(chan []byte, sendBuffer)}
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		conn.Close()
		return
	}
	h.viewers[v.id] = v
	h.mu.Unlock()
	slog.Info("spectator connected", "viewer", v.id, "remote", r.RemoteAddr)

	go h.writePump(v)
	go h.readPump(v)
}

// Publish encodes the frame once and queues it for every viewer.
// A viewer whose queue is full misses this frame.
func (h *Hub) Publish(f Frame) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return ErrHubClosed
	}
	if len(h.viewers) == 0 {
		return nil
	}

	data, err := f.Encode()
	if err != nil {
		return err
	}
	for _, v := range h.viewers {
		select {
		case v.send <- data:
		default:
			slog.Debug("spectator frame dropped", "viewer", v.id, "tick", f.Tick)
		}
	}
	return nil
}

// ClientCount returns the number of connected viewers.
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.viewers)
}

// Close disconnects every viewer and rejects further publishes.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	h.closed = true
	for id, v := range h.viewers {
		close(v.send)
		delete(h.viewers, id)
	}
}

func (h *Hub) remove(v *viewer) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.viewers[v.id]; ok {
		close(v.send)
		delete(h.viewers, v.id)
		slog.Info("spectator disconnected", "viewer", v.id)
	}
}

func (h *Hub) readPump(v *viewer) {
	defer func() {
		h.remove(v)
		v.conn.Close()
	}()

	v.conn.SetReadLimit(512)
	v.conn.SetReadDeadline(time.Now().Add(pongWait))
	v.conn.SetPongHandler(func(string) error {
		v.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := v.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				slog.Warn("spectator read error", "viewer", v.id, "error", err)
			}
			return
		}
	}
}

func (h *Hub) writePump(v *viewer) {
	ticker := time.NewTicker(pingInterval)
	defer func() {
		ticker.Stop()
		v.conn.Close()
	}()

	for {
		select {
		case message, ok := <-v.send:
			v.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				v.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := v.conn.WriteMessage(websocket.BinaryMessage, message); err != nil {
				slog.Warn("spectator write error", "viewer", v.id, "error", err)
				return
			}

		case <-ticker.C:
			v.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := v.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// Serve exposes the hub on addr at /spectate in the background.
// The returned server is shut down by the caller.
func Serve(addr string, h *Hub) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/spectate", h)
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		slog.Info("spectator stream listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("spectator server stopped", "error", err)
		}
	}()
	return srv
}
