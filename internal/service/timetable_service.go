package service

import (
	"math"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/campushub/campus-hub-api/internal/dto"
	"github.com/campushub/campus-hub-api/internal/models"
	appErrors "github.com/campushub/campus-hub-api/pkg/errors"
)

type templateStore interface {
	Save(name string, grid models.TimetableGrid, startHour, endHour int, days []string) *models.TimetableTemplate
	List() []models.TimetableTemplate
}

// TimetableServiceConfig carries the defaults applied when a request omits
// generation parameters.
type TimetableServiceConfig struct {
	DefaultStartHour int
	DefaultEndHour   int
	DefaultDays      []string
}

// TimetableService builds weekly grids with a deterministic sequential
// fill. There is no constraint solving: subjects expand into hour blocks in
// request order and pour into day/hour slots until the week is full.
type TimetableService struct {
	templates templateStore
	validator *validator.Validate
	logger    *zap.Logger
	cfg       TimetableServiceConfig
}

// NewTimetableService wires the generator and its template store.
func NewTimetableService(templates templateStore, validate *validator.Validate, logger *zap.Logger, cfg TimetableServiceConfig) *TimetableService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.DefaultStartHour == 0 && cfg.DefaultEndHour == 0 {
		cfg.DefaultStartHour = 8
		cfg.DefaultEndHour = 20
	}
	if len(cfg.DefaultDays) == 0 {
		cfg.DefaultDays = []string{"Mon", "Tue", "Wed", "Thu", "Fri"}
	}
	return &TimetableService{templates: templates, validator: validate, logger: logger, cfg: cfg}
}

// Generate produces the grid for the request. It never fails: absent
// parameters fall back to configured defaults and malformed numerics are
// treated as zero.
func (s *TimetableService) Generate(req dto.GenerateTimetableRequest) dto.GenerateTimetableResponse {
	startHour := s.cfg.DefaultStartHour
	if req.StartHour != nil {
		startHour = *req.StartHour
	}
	endHour := s.cfg.DefaultEndHour
	if req.EndHour != nil {
		endHour = *req.EndHour
	}
	days := req.Days
	if days == nil {
		days = append([]string(nil), s.cfg.DefaultDays...)
	}

	slotsPerDay := endHour - startHour
	if slotsPerDay < 0 {
		slotsPerDay = 0
	}
	totalSlots := slotsPerDay * len(days)

	// Expand subjects into repeated hour blocks, request order preserved.
	blocks := make([]string, 0, totalSlots)
	for _, subject := range req.Subjects {
		hours := roundHours(subject.HoursPerWeek)
		for i := 0; i < hours; i++ {
			blocks = append(blocks, subject.Name)
		}
	}
	// Pad with "Free"; excess blocks are never consumed.
	for len(blocks) < totalSlots {
		blocks = append(blocks, freeSlot)
	}

	grid := make(models.TimetableGrid, len(days))
	idx := 0
	for _, day := range days {
		slots := make([]models.TimetableSlot, 0, slotsPerDay)
		for h := 0; h < slotsPerDay; h++ {
			subject := freeSlot
			if idx < len(blocks) {
				subject = blocks[idx]
			}
			slots = append(slots, models.TimetableSlot{Hour: startHour + h, Subject: subject})
			idx++
		}
		grid[day] = slots
	}

	return dto.GenerateTimetableResponse{
		Grid:      grid,
		StartHour: startHour,
		EndHour:   endHour,
		Days:      days,
	}
}

// SaveTemplate generates the grid for the embedded request and stores it
// under the given name.
func (s *TimetableService) SaveTemplate(req dto.SaveTemplateRequest) (*models.TimetableTemplate, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "name required")
	}
	result := s.Generate(req.Request)
	tpl := s.templates.Save(req.Name, result.Grid, result.StartHour, result.EndHour, result.Days)
	s.logger.Sugar().Infow("timetable template saved", "template_id", tpl.ID, "name", tpl.Name)
	return tpl, nil
}

// ListTemplates returns stored templates newest first.
func (s *TimetableService) ListTemplates() []models.TimetableTemplate {
	return s.templates.List()
}

const freeSlot = "Free"

// roundHours maps the requested weekly hours to a whole block count:
// round half away from zero, negatives and non-finite values clamp to zero.
func roundHours(hours float64) int {
	if math.IsNaN(hours) || math.IsInf(hours, 0) {
		return 0
	}
	rounded := int(math.Round(hours))
	if rounded < 0 {
		return 0
	}
	return rounded
}
