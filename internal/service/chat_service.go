package service

import (
	"encoding/json"

	"go.uber.org/zap"

	"github.com/campushub/campus-hub-api/internal/dto"
	"github.com/campushub/campus-hub-api/internal/models"
)

type chatStore interface {
	Append(from, text string) *models.ChatMessage
	History() []models.ChatMessage
}

type broadcaster interface {
	Broadcast(payload []byte)
}

// ChatService normalizes inbound chat messages, appends them to history and
// fans them out to every connected client, the sender included.
type ChatService struct {
	repo   chatStore
	hub    broadcaster
	logger *zap.Logger
}

// NewChatService constructs a ChatService.
func NewChatService(repo chatStore, hub broadcaster, logger *zap.Logger) *ChatService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ChatService{repo: repo, hub: hub, logger: logger}
}

// Post builds the canonical message from raw user input and broadcasts it.
// Malformed input is defaulted, never rejected: an absent sender becomes
// "Anon".
func (s *ChatService) Post(msg dto.InboundChatMessage) *models.ChatMessage {
	from := msg.From
	if from == "" {
		from = "Anon"
	}

	canonical := s.repo.Append(from, msg.Text)

	payload, err := json.Marshal(dto.OutboundChatEvent{Event: dto.EventChatMessage, Data: canonical})
	if err != nil {
		s.logger.Sugar().Errorw("failed to encode chat message", "message_id", canonical.ID, "error", err)
		return canonical
	}
	s.hub.Broadcast(payload)
	return canonical
}

// History returns the chat log oldest first.
func (s *ChatService) History() []models.ChatMessage {
	return s.repo.History()
}
