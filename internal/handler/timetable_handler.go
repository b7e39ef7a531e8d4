package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/campushub/campus-hub-api/internal/dto"
	"github.com/campushub/campus-hub-api/internal/service"
	appErrors "github.com/campushub/campus-hub-api/pkg/errors"
	"github.com/campushub/campus-hub-api/pkg/response"
)

// TimetableHandler exposes generation and template endpoints.
type TimetableHandler struct {
	timetables *service.TimetableService
}

// NewTimetableHandler constructs TimetableHandler.
func NewTimetableHandler(timetables *service.TimetableService) *TimetableHandler {
	return &TimetableHandler{timetables: timetables}
}

// Generate godoc
// @Summary Generate a weekly timetable grid
// @Tags Timetable
// @Accept json
// @Produce json
// @Param payload body dto.GenerateTimetableRequest true "Generation parameters"
// @Success 200 {object} dto.GenerateTimetableResponse
// @Router /api/timetable/generate [post]
func (h *TimetableHandler) Generate(c *gin.Context) {
	var req dto.GenerateTimetableRequest
	// Generation always answers 200: an unreadable body simply falls back
	// to the configured defaults.
	_ = c.ShouldBindJSON(&req)
	response.OK(c, h.timetables.Generate(req))
}

// SaveTemplate godoc
// @Summary Save a generated timetable as a named template
// @Tags Timetable
// @Accept json
// @Produce json
// @Param payload body dto.SaveTemplateRequest true "Template payload"
// @Success 201 {object} models.TimetableTemplate
// @Router /api/timetable/templates [post]
func (h *TimetableHandler) SaveTemplate(c *gin.Context) {
	var req dto.SaveTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid template payload"))
		return
	}
	tpl, err := h.timetables.SaveTemplate(req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, tpl)
}

// ListTemplates godoc
// @Summary List saved timetable templates newest first
// @Tags Timetable
// @Produce json
// @Success 200 {array} models.TimetableTemplate
// @Router /api/timetable/templates [get]
func (h *TimetableHandler) ListTemplates(c *gin.Context) {
	response.OK(c, h.timetables.ListTemplates())
}
