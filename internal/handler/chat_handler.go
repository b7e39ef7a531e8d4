package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/campushub/campus-hub-api/internal/chat"
	"github.com/campushub/campus-hub-api/internal/service"
	"github.com/campushub/campus-hub-api/pkg/response"
)

// ChatHandler serves the history endpoint and upgrades chat connections.
type ChatHandler struct {
	chat     *service.ChatService
	hub      *chat.Hub
	upgrader websocket.Upgrader
	logger   *zap.Logger
}

// NewChatHandler constructs ChatHandler. Origins are not restricted here;
// the public CORS policy applies to the HTTP surface and the chat channel
// carries no credentials.
func NewChatHandler(chatSvc *service.ChatService, hub *chat.Hub, logger *zap.Logger) *ChatHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ChatHandler{
		chat: chatSvc,
		hub:  hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		logger: logger,
	}
}

// History godoc
// @Summary Chat history oldest first
// @Tags Chat
// @Produce json
// @Success 200 {array} models.ChatMessage
// @Router /api/chat/history [get]
func (h *ChatHandler) History(c *gin.Context) {
	response.OK(c, h.chat.History())
}

// Connect upgrades the request to a WebSocket and registers the client with
// the hub. Catch-up is the client's one-time history fetch; the channel
// itself only relays live messages.
func (h *ChatHandler) Connect(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Sugar().Warnw("chat upgrade failed", "error", err, "ip", c.ClientIP())
		return
	}
	client := chat.NewClient(h.hub, h.chat, conn, conn.RemoteAddr().String())
	h.hub.Register(client)
}
