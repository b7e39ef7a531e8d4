package repository

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/campushub/campus-hub-api/internal/models"
)

// MaterialRepository holds uploaded study-material metadata newest first.
// Entries are never mutated or deleted.
type MaterialRepository struct {
	mu        sync.RWMutex
	materials []models.Material
}

// NewMaterialRepository initialises an empty list.
func NewMaterialRepository() *MaterialRepository {
	return &MaterialRepository{}
}

// Add records an upload and prepends it to the list.
func (r *MaterialRepository) Add(title, filename, originalName string) *models.Material {
	entry := models.Material{
		ID:           uuid.NewString(),
		Title:        title,
		Filename:     filename,
		OriginalName: originalName,
		UploadedAt:   time.Now().UTC(),
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.materials = append([]models.Material{entry}, r.materials...)
	return &entry
}

// List returns materials newest first.
func (r *MaterialRepository) List() []models.Material {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Material, len(r.materials))
	copy(out, r.materials)
	return out
}
