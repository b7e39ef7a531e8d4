package repository

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaterialsNewestFirst(t *testing.T) {
	repo := NewMaterialRepository()

	const n = 5
	for i := 0; i < n; i++ {
		repo.Add(fmt.Sprintf("title-%d", i), fmt.Sprintf("stored-%d.pdf", i), fmt.Sprintf("orig-%d.pdf", i))
	}

	listed := repo.List()
	require.Len(t, listed, n)
	for i := 0; i < n; i++ {
		assert.Equal(t, fmt.Sprintf("title-%d", n-1-i), listed[i].Title)
	}
}

func TestMaterialFieldsPopulated(t *testing.T) {
	repo := NewMaterialRepository()
	entry := repo.Add("Algebra", "123-abc-algebra.pdf", "algebra.pdf")

	assert.NotEmpty(t, entry.ID)
	assert.False(t, entry.UploadedAt.IsZero())
	assert.Equal(t, "Algebra", entry.Title)
	assert.Equal(t, "123-abc-algebra.pdf", entry.Filename)
	assert.Equal(t, "algebra.pdf", entry.OriginalName)

	other := repo.Add("Algebra", "456-def-algebra.pdf", "algebra.pdf")
	assert.NotEqual(t, entry.ID, other.ID)
}
