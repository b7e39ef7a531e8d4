package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushub/campus-hub-api/internal/models"
)

func TestTemplatesNewestFirst(t *testing.T) {
	repo := NewTemplateRepository()
	grid := models.TimetableGrid{"Mon": {{Hour: 9, Subject: "Math"}}}

	repo.Save("fall", grid, 9, 10, []string{"Mon"})
	repo.Save("spring", grid, 9, 10, []string{"Mon"})

	listed := repo.List()
	require.Len(t, listed, 2)
	assert.Equal(t, "spring", listed[0].Name)
	assert.Equal(t, "fall", listed[1].Name)
	assert.NotEmpty(t, listed[0].ID)
	assert.Equal(t, grid, listed[0].Grid)
}
