package service

import (
	"strings"

	"go.uber.org/zap"

	"github.com/campushub/campus-hub-api/internal/dto"
	"github.com/campushub/campus-hub-api/internal/models"
	appErrors "github.com/campushub/campus-hub-api/pkg/errors"
)

type attendanceStore interface {
	AddStudent(id, name string) *models.Student
	AddRecord(id, date string, present bool) error
	List() map[string]*models.Student
}

// AttendanceService fronts the roster store with presence validation.
type AttendanceService struct {
	repo   attendanceStore
	logger *zap.Logger
}

// NewAttendanceService constructs an AttendanceService.
func NewAttendanceService(repo attendanceStore, logger *zap.Logger) *AttendanceService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AttendanceService{repo: repo, logger: logger}
}

// AddStudent registers a student. Duplicate ids are idempotent and keep the
// originally stored name.
func (s *AttendanceService) AddStudent(req dto.AddStudentRequest) (*models.Student, error) {
	id := strings.TrimSpace(req.StudentID)
	name := strings.TrimSpace(req.Name)
	if id == "" || name == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "studentId and name required")
	}
	student := s.repo.AddStudent(id, name)
	s.logger.Sugar().Infow("student registered", "student_id", id)
	return student, nil
}

// AddRecord appends one attendance mark for an existing student.
func (s *AttendanceService) AddRecord(req dto.AddRecordRequest) error {
	return s.repo.AddRecord(req.StudentID, req.Date, req.Present)
}

// List returns the full roster snapshot keyed by student id.
func (s *AttendanceService) List() map[string]*models.Student {
	return s.repo.List()
}
