package web

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"nhooyr.io/websocket"

	"nldump/internal/dumper"
)

const (
	wsReadLimit    = 4096
	wsClientBuffer = 256
	wsWriteTimeout = 10 * time.Second

	// eventHello is sent to each client once, before any bus event.
	eventHello = "hello"
)

// WSHub fans bus events out to WebSocket clients. Clients that fall
// behind are dropped rather than slowing the dump.
type WSHub struct {
	clients map[*wsClient]struct{}
	mu      sync.RWMutex
	logger  *slog.Logger

	register   chan *wsClient
	unregister chan *wsClient
	broadcast  chan dumper.Event

	done     chan struct{}
	stopOnce sync.Once
}

// wsClient is one connection and the events it asked for. Empty filters
// pass everything.
type wsClient struct {
	conn     *websocket.Conn
	send     chan []byte
	types    map[string]bool
	families map[string]bool
}

func (c *wsClient) wants(ev dumper.Event) bool {
	if len(c.types) > 0 && !c.types[ev.Type] {
		return false
	}
	if len(c.families) == 0 {
		return true
	}
	msg, ok := ev.Data.(dumper.MessageEvent)
	if !ok {
		// Source events concern every family.
		return true
	}
	return c.families[msg.Family]
}

// NewWSHub creates a hub; Run must be started before clients register.
func NewWSHub(logger *slog.Logger) *WSHub {
	return &WSHub{
		clients:    make(map[*wsClient]struct{}),
		logger:     logger,
		register:   make(chan *wsClient),
		unregister: make(chan *wsClient),
		broadcast:  make(chan dumper.Event, 256),
		done:       make(chan struct{}),
	}
}

// Run starts the hub event loop.
func (h *WSHub) Run() {
	for {
		select {
		case <-h.done:
			h.mu.Lock()
			for client := range h.clients {
				close(client.send)
				delete(h.clients, client)
			}
			h.mu.Unlock()
			return

		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = struct{}{}
			total := len(h.clients)
			h.mu.Unlock()
			h.logger.Debug("ws client connected", "total", total)

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			total := len(h.clients)
			h.mu.Unlock()
			h.logger.Debug("ws client disconnected", "total", total)

		case ev := <-h.broadcast:
			h.deliver(ev)
		}
	}
}

func (h *WSHub) deliver(ev dumper.Event) {
	var data []byte
	h.mu.Lock()
	defer h.mu.Unlock()
	var slow []*wsClient
	for client := range h.clients {
		if !client.wants(ev) {
			continue
		}
		if data == nil {
			var err error
			if data, err = json.Marshal(ev); err != nil {
				h.logger.Error("ws marshal", "type", ev.Type, "err", err)
				return
			}
		}
		select {
		case client.send <- data:
		default:
			slow = append(slow, client)
		}
	}
	for _, client := range slow {
		delete(h.clients, client)
		close(client.send)
		h.logger.Warn("ws client evicted", "reason", "slow reader")
	}
}

// Stop signals the hub to shut down. Safe to call multiple times.
func (h *WSHub) Stop() {
	h.stopOnce.Do(func() {
		close(h.done)
	})
}

// Broadcast queues ev for every interested client without blocking.
func (h *WSHub) Broadcast(ev dumper.Event) {
	select {
	case h.broadcast <- ev:
	default:
		h.logger.Warn("ws broadcast channel full, dropping event", "type", ev.Type)
	}
}

// Clients returns the number of connected clients.
func (h *WSHub) Clients() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// splitFilter turns "a,b" into a set; empty input gives nil.
func splitFilter(v string) map[string]bool {
	if v == "" {
		return nil
	}
	set := make(map[string]bool)
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			set[s] = true
		}
	}
	return set
}

// handleWS streams bus events. ?type= and ?family= take comma separated
// lists that narrow the stream.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	opts := &websocket.AcceptOptions{}
	if len(s.allowedOrigins) > 0 {
		opts.OriginPatterns = s.allowedOrigins
	}

	conn, err := websocket.Accept(w, r, opts)
	if err != nil {
		s.logger.Error("ws accept", "err", err)
		return
	}

	conn.SetReadLimit(wsReadLimit)

	client := &wsClient{
		conn:     conn,
		send:     make(chan []byte, wsClientBuffer),
		types:    splitFilter(r.URL.Query().Get("type")),
		families: splitFilter(r.URL.Query().Get("family")),
	}
	if hello, err := json.Marshal(dumper.Event{Type: eventHello, Data: s.helloData()}); err == nil {
		client.send <- hello
	}

	select {
	case s.wsHub.register <- client:
	case <-s.wsHub.done:
		conn.Close(websocket.StatusGoingAway, "server shutdown")
		return
	}

	go s.wsWritePump(client)
	s.wsReadPump(client)
}

func (s *Server) helloData() map[string]any {
	data := map[string]any{"version": s.version}
	if s.stats != nil {
		data["dumper"] = s.stats()
	}
	return data
}

func (s *Server) wsWritePump(client *wsClient) {
	for msg := range client.send {
		ctx, cancel := context.WithTimeout(context.Background(), wsWriteTimeout)
		err := client.conn.Write(ctx, websocket.MessageText, msg)
		cancel()
		if err != nil {
			return
		}
	}
	client.conn.Close(websocket.StatusNormalClosure, "")
}

func (s *Server) wsReadPump(client *wsClient) {
	defer func() {
		select {
		case s.wsHub.unregister <- client:
		case <-s.wsHub.done:
			client.conn.Close(websocket.StatusGoingAway, "server shutdown")
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		select {
		case <-s.wsHub.done:
			cancel()
		case <-ctx.Done():
		}
	}()

	for {
		// The stream is one-way; reading only notices the close.
		if _, _, err := client.conn.Read(ctx); err != nil {
			return
		}
	}
}
