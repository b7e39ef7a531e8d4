package chat

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"github.com/campushub/campus-hub-api/internal/dto"
)

const (
	pongWait   = 60 * time.Second
	pingPeriod = 54 * time.Second
	writeWait  = 10 * time.Second
)

// Client is one connected chat subscriber: a WebSocket connection plus a
// buffered outbound channel fed by the hub.
type Client struct {
	hub    *Hub
	poster MessagePoster
	conn   *websocket.Conn
	send   chan []byte
	addr   string
}

// NewClient wraps an upgraded connection. The hub starts the pumps when the
// client registers.
func NewClient(hub *Hub, poster MessagePoster, conn *websocket.Conn, addr string) *Client {
	conn.SetReadLimit(hub.cfg.MaxMessageSize)
	return &Client{
		hub:    hub,
		poster: poster,
		conn:   conn,
		send:   make(chan []byte, hub.cfg.SendBufferSize),
		addr:   addr,
	}
}

// readPump consumes inbound frames until the connection drops, handing each
// one to the poster. Malformed frames are defaulted, never rejected: a
// non-JSON frame becomes a bare text message.
func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		_ = c.conn.Close()
	}()

	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.hub.logger.Sugar().Warnw("chat read error", "addr", c.addr, "error", err)
			}
			return
		}
		c.poster.Post(decodeInbound(raw))
	}
}

// writePump forwards hub broadcasts to the connection and keeps it alive
// with periodic pings.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case payload, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// decodeInbound extracts the user input from a raw frame. Accepts either
// the event envelope or a bare data object; anything else is treated as
// plain text.
func decodeInbound(raw []byte) dto.InboundChatMessage {
	var event dto.InboundChatEvent
	if err := json.Unmarshal(raw, &event); err == nil {
		if event.Data.Text != "" || event.Data.From != "" {
			return event.Data
		}
		var msg dto.InboundChatMessage
		if err := json.Unmarshal(raw, &msg); err == nil && (msg.Text != "" || msg.From != "") {
			return msg
		}
		return event.Data
	}
	return dto.InboundChatMessage{Text: strings.TrimSpace(string(raw))}
}
