// Package chat implements the classroom chat fan-out: a hub goroutine owns
// the subscriber registry and every broadcast, and per-connection clients
// pump frames in and out over gorilla WebSockets.
package chat

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/campushub/campus-hub-api/internal/dto"
	"github.com/campushub/campus-hub-api/internal/models"
)

// MessagePoster normalizes inbound frames into canonical messages. The chat
// service implements it.
type MessagePoster interface {
	Post(msg dto.InboundChatMessage) *models.ChatMessage
}

type metricsRecorder interface {
	ChatClientConnected()
	ChatClientDisconnected()
	ChatMessageBroadcast()
}

// HubConfig tunes per-client buffering.
type HubConfig struct {
	SendBufferSize int
	MaxMessageSize int64
}

// Hub maintains the set of connected clients and serializes broadcasts
// through a single run loop, so every subscriber observes messages in the
// same order.
type Hub struct {
	cfg     HubConfig
	logger  *zap.Logger
	metrics metricsRecorder

	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte

	mu   sync.RWMutex
	done chan struct{}
}

// NewHub creates a hub ready to run.
func NewHub(cfg HubConfig, logger *zap.Logger, metrics metricsRecorder) *Hub {
	if cfg.SendBufferSize <= 0 {
		cfg.SendBufferSize = 256
	}
	if cfg.MaxMessageSize <= 0 {
		cfg.MaxMessageSize = 8 * 1024
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Hub{
		cfg:        cfg,
		logger:     logger,
		metrics:    metrics,
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte, 64),
		done:       make(chan struct{}),
	}
}

// Run processes registration, unregistration and broadcast events until the
// context is cancelled. Call it in its own goroutine.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			return

		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			count := len(h.clients)
			h.mu.Unlock()
			if h.metrics != nil {
				h.metrics.ChatClientConnected()
			}
			h.logger.Sugar().Infow("chat client connected", "addr", client.addr, "clients", count)

			go client.writePump()
			go client.readPump()

		case client := <-h.unregister:
			h.mu.Lock()
			_, ok := h.clients[client]
			if ok {
				delete(h.clients, client)
				close(client.send)
			}
			count := len(h.clients)
			h.mu.Unlock()
			if ok {
				if h.metrics != nil {
					h.metrics.ChatClientDisconnected()
				}
				h.logger.Sugar().Infow("chat client disconnected", "addr", client.addr, "clients", count)
			}

		case payload := <-h.broadcast:
			h.fanOut(payload)
		}
	}
}

// Broadcast queues a payload for delivery to every connected client.
func (h *Hub) Broadcast(payload []byte) {
	select {
	case h.broadcast <- payload:
	case <-h.done:
	}
}

// Register hands a new client to the run loop.
func (h *Hub) Register(client *Client) {
	select {
	case h.register <- client:
	case <-h.done:
	}
}

// ClientCount reports the current subscriber count.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// fanOut delivers the payload to every subscriber, sender included. Clients
// whose send buffer is full are dropped; there is no redelivery.
func (h *Hub) fanOut(payload []byte) {
	h.mu.RLock()
	clients := make([]*Client, 0, len(h.clients))
	for client := range h.clients {
		clients = append(clients, client)
	}
	h.mu.RUnlock()

	if h.metrics != nil {
		h.metrics.ChatMessageBroadcast()
	}

	var stalled []*Client
	for _, client := range clients {
		select {
		case client.send <- payload:
		default:
			stalled = append(stalled, client)
		}
	}

	if len(stalled) == 0 {
		return
	}
	h.mu.Lock()
	for _, client := range stalled {
		if _, ok := h.clients[client]; ok {
			delete(h.clients, client)
			close(client.send)
			if h.metrics != nil {
				h.metrics.ChatClientDisconnected()
			}
			h.logger.Sugar().Warnw("chat client dropped, send buffer full", "addr", client.addr)
		}
	}
	h.mu.Unlock()
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	clients := make([]*Client, 0, len(h.clients))
	for client := range h.clients {
		clients = append(clients, client)
	}
	h.clients = make(map[*Client]bool)
	h.mu.Unlock()

	for _, client := range clients {
		close(client.send)
		_ = client.conn.Close()
	}
	h.logger.Sugar().Infow("chat hub stopped", "closed_clients", len(clients))
}
