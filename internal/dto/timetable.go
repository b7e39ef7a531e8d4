package dto

import "github.com/campushub/campus-hub-api/internal/models"

// SubjectRequest captures weekly demand for one subject. HoursPerWeek is a
// float so fractional requests round to the nearest whole block.
type SubjectRequest struct {
	Name         string  `json:"name"`
	HoursPerWeek float64 `json:"hoursPerWeek"`
}

// GenerateTimetableRequest instructs the generator. Absent fields fall back
// to the configured defaults; malformed numerics coerce rather than fail.
type GenerateTimetableRequest struct {
	Subjects  []SubjectRequest `json:"subjects"`
	StartHour *int             `json:"startHour"`
	EndHour   *int             `json:"endHour"`
	Days      []string         `json:"days"`
}

// GenerateTimetableResponse returns the grid with the effective parameters
// echoed back.
type GenerateTimetableResponse struct {
	Grid      models.TimetableGrid `json:"grid"`
	StartHour int                  `json:"startHour"`
	EndHour   int                  `json:"endHour"`
	Days      []string             `json:"days"`
}

// SaveTemplateRequest stores a generated timetable under a display name.
type SaveTemplateRequest struct {
	Name    string                   `json:"name" validate:"required"`
	Request GenerateTimetableRequest `json:"request"`
}
