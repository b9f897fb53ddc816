// Package websocket pushes lead alerts to signed-in operators.
package websocket

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const writeWait = 10 * time.Second

// TokenParser verifies an operator token and returns its subject.
type TokenParser interface {
	ParseToken(tokenStr string) (string, error)
}

// Hub relays every message on the alert channel to all connected operators.
// The Redis subscription is opened with the first connection and closed
// with the last one.
type Hub struct {
	mu          sync.RWMutex
	connections map[string][]*websocket.Conn
	redisClient *redis.Client
	channel     string
	tokens      TokenParser
	cancel      context.CancelFunc
	upgrader    websocket.Upgrader
	log         *zap.Logger
}

// NewHub accepts browser handshakes from allowedOrigins or the serving host.
func NewHub(redisClient *redis.Client, channel string, tokens TokenParser, allowedOrigins []string, log *zap.Logger) *Hub {
	if log == nil {
		log = zap.NewNop()
	}
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[strings.ToLower(strings.TrimRight(o, "/"))] = true
	}
	return &Hub{
		connections: make(map[string][]*websocket.Conn),
		redisClient: redisClient,
		channel:     channel,
		tokens:      tokens,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     originChecker(allowed),
		},
		log: log.Named("ws"),
	}
}

// originChecker allows requests without an Origin header (non-browser
// clients), same-host origins, and the configured frontend origins.
func originChecker(allowed map[string]bool) func(r *http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		if allowed[strings.ToLower(origin)] {
			return true
		}
		u, err := url.Parse(origin)
		if err != nil {
			return false
		}
		return strings.EqualFold(u.Host, r.Host)
	}
}

func (h *Hub) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	if h.redisClient == nil {
		http.Error(w, "Lead alerts are not configured", http.StatusServiceUnavailable)
		return
	}

	// Authenticate via token query param
	tokenStr := r.URL.Query().Get("token")
	if tokenStr == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	operator, err := h.tokens.ParseToken(tokenStr)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	if err := h.registerConnection(operator, conn); err != nil {
		h.log.Error("lead alert subscription failed", zap.Error(err))
		conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseInternalServerErr, "alerts unavailable"),
			time.Now().Add(writeWait))
		conn.Close()
		return
	}

	go func() {
		defer h.unregisterConnection(operator, conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

func (h *Hub) registerConnection(operator string, conn *websocket.Conn) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.cancel == nil {
		ctx, cancel := context.WithCancel(context.Background())
		pubsub := h.redisClient.Subscribe(ctx, h.channel)
		if _, err := pubsub.Receive(ctx); err != nil {
			cancel()
			pubsub.Close()
			return err
		}
		h.cancel = cancel
		go h.subscribeToPubSub(ctx, pubsub)
	}

	h.connections[operator] = append(h.connections[operator], conn)
	h.log.Info("operator connected", zap.String("operator", operator), zap.Int("connections", h.count()))
	return nil
}

func (h *Hub) unregisterConnection(operator string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	conn.Close()

	conns := h.connections[operator]
	for i, c := range conns {
		if c == conn {
			h.connections[operator] = append(conns[:i], conns[i+1:]...)
			break
		}
	}
	if len(h.connections[operator]) == 0 {
		delete(h.connections, operator)
	}

	if len(h.connections) == 0 && h.cancel != nil {
		h.cancel()
		h.cancel = nil
	}

	h.log.Info("operator disconnected", zap.String("operator", operator))
}

func (h *Hub) subscribeToPubSub(ctx context.Context, pubsub *redis.PubSub) {
	defer pubsub.Close()

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			h.broadcast([]byte(msg.Payload))
		}
	}
}

func (h *Hub) broadcast(data []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for operator, conns := range h.connections {
		for _, conn := range conns {
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
				h.log.Debug("alert write failed", zap.String("operator", operator), zap.Error(err))
			}
		}
	}
}

// Connections reports the number of open operator connections.
func (h *Hub) Connections() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.count()
}

func (h *Hub) count() int {
	n := 0
	for _, conns := range h.connections {
		n += len(conns)
	}
	return n
}

// Close drops every connection and the Redis subscription.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, conns := range h.connections {
		for _, conn := range conns {
			conn.Close()
		}
	}
	h.connections = make(map[string][]*websocket.Conn)
	if h.cancel != nil {
		h.cancel()
		h.cancel = nil
	}
}
