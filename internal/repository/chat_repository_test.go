package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatHistoryOldestFirst(t *testing.T) {
	repo := NewChatRepository()

	repo.Append("Ana", "first")
	repo.Append("Ben", "second")
	last := repo.Append("Ana", "third")

	history := repo.History()
	require.Len(t, history, 3)
	assert.Equal(t, "first", history[0].Text)
	assert.Equal(t, "second", history[1].Text)
	assert.Equal(t, last.ID, history[2].ID)
}

func TestAppendBuildsCanonicalFields(t *testing.T) {
	repo := NewChatRepository()
	msg := repo.Append("Ana", "hello")

	assert.NotEmpty(t, msg.ID)
	assert.Equal(t, "Ana", msg.From)
	assert.Equal(t, "hello", msg.Text)

	_, err := time.Parse(time.RFC3339, msg.TS)
	assert.NoError(t, err)
}
