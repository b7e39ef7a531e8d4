package repository

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/campushub/campus-hub-api/internal/models"
)

// TemplateRepository keeps saved timetable templates newest first.
type TemplateRepository struct {
	mu        sync.RWMutex
	templates []models.TimetableTemplate
}

// NewTemplateRepository initialises an empty template list.
func NewTemplateRepository() *TemplateRepository {
	return &TemplateRepository{}
}

// Save stores a generated timetable under a display name.
func (r *TemplateRepository) Save(name string, grid models.TimetableGrid, startHour, endHour int, days []string) *models.TimetableTemplate {
	tpl := models.TimetableTemplate{
		ID:        uuid.NewString(),
		Name:      name,
		Grid:      grid,
		StartHour: startHour,
		EndHour:   endHour,
		Days:      days,
		CreatedAt: time.Now().UTC(),
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.templates = append([]models.TimetableTemplate{tpl}, r.templates...)
	return &tpl
}

// List returns templates newest first.
func (r *TemplateRepository) List() []models.TimetableTemplate {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.TimetableTemplate, len(r.templates))
	copy(out, r.templates)
	return out
}
