package repository

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/campushub/campus-hub-api/internal/models"
)

// ChatRepository stores the chat history oldest first. Appended messages
// are already canonical; catch-up after reconnect is a single history read.
type ChatRepository struct {
	mu       sync.RWMutex
	messages []models.ChatMessage
}

// NewChatRepository initialises an empty history.
func NewChatRepository() *ChatRepository {
	return &ChatRepository{}
}

// Append builds the canonical message and adds it to the history.
func (r *ChatRepository) Append(from, text string) *models.ChatMessage {
	msg := models.ChatMessage{
		ID:   uuid.NewString(),
		Text: text,
		From: from,
		TS:   time.Now().UTC().Format(time.RFC3339),
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, msg)
	return &msg
}

// History returns all messages oldest first.
func (r *ChatRepository) History() []models.ChatMessage {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.ChatMessage, len(r.messages))
	copy(out, r.messages)
	return out
}
