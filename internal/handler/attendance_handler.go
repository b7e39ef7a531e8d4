package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/campushub/campus-hub-api/internal/dto"
	"github.com/campushub/campus-hub-api/internal/service"
	appErrors "github.com/campushub/campus-hub-api/pkg/errors"
	"github.com/campushub/campus-hub-api/pkg/response"
)

// AttendanceHandler exposes the roster endpoints.
type AttendanceHandler struct {
	attendance *service.AttendanceService
}

// NewAttendanceHandler constructs AttendanceHandler.
func NewAttendanceHandler(attendance *service.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{attendance: attendance}
}

// List godoc
// @Summary Full attendance roster
// @Tags Attendance
// @Produce json
// @Success 200 {object} map[string]models.Student
// @Router /api/attendance [get]
func (h *AttendanceHandler) List(c *gin.Context) {
	response.OK(c, h.attendance.List())
}

// AddStudent godoc
// @Summary Register a student
// @Tags Attendance
// @Accept json
// @Produce json
// @Param payload body dto.AddStudentRequest true "Student payload"
// @Success 200 {object} dto.AddStudentResponse
// @Router /api/attendance/student [post]
func (h *AttendanceHandler) AddStudent(c *gin.Context) {
	var req dto.AddStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "studentId and name required"))
		return
	}
	student, err := h.attendance.AddStudent(req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.AddStudentResponse{OK: true, Student: student})
}

// AddRecord godoc
// @Summary Append an attendance mark
// @Tags Attendance
// @Accept json
// @Produce json
// @Param payload body dto.AddRecordRequest true "Record payload"
// @Success 200 {object} dto.OKResponse
// @Router /api/attendance/record [post]
func (h *AttendanceHandler) AddRecord(c *gin.Context) {
	var req dto.AddRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid payload"))
		return
	}
	if err := h.attendance.AddRecord(req); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.OKResponse{OK: true})
}
