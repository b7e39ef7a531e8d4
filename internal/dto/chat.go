package dto

import "github.com/campushub/campus-hub-api/internal/models"

// EventChatMessage is the single event name flowing both directions on the
// chat channel.
const EventChatMessage = "chat:message"

// InboundChatEvent is a client frame. Both fields are optional; the service
// defaults them rather than rejecting the frame.
type InboundChatEvent struct {
	Event string             `json:"event"`
	Data  InboundChatMessage `json:"data"`
}

// InboundChatMessage carries the raw user input.
type InboundChatMessage struct {
	From string `json:"from"`
	Text string `json:"text"`
}

// OutboundChatEvent is the canonical broadcast frame.
type OutboundChatEvent struct {
	Event string              `json:"event"`
	Data  *models.ChatMessage `json:"data"`
}
