package repository

import (
	"sync"

	"github.com/campushub/campus-hub-api/internal/models"
	appErrors "github.com/campushub/campus-hub-api/pkg/errors"
)

// AttendanceRepository keeps the student roster and their attendance marks
// in process memory. State lives exactly as long as the process (there is
// no persistent backing store).
type AttendanceRepository struct {
	mu       sync.RWMutex
	students map[string]*models.Student
}

// NewAttendanceRepository initialises an empty roster.
func NewAttendanceRepository() *AttendanceRepository {
	return &AttendanceRepository{students: make(map[string]*models.Student)}
}

// AddStudent creates the student when absent and returns the stored entry.
// Re-adding an existing id is idempotent: the original name is kept.
func (r *AttendanceRepository) AddStudent(id, name string) *models.Student {
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.students[id]; ok {
		return cloneStudent(existing)
	}
	student := &models.Student{Name: name, Records: []models.AttendanceRecord{}}
	r.students[id] = student
	return cloneStudent(student)
}

// AddRecord appends one attendance mark. Unknown students fail and are
// never created implicitly.
func (r *AttendanceRepository) AddRecord(id, date string, present bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	student, ok := r.students[id]
	if !ok {
		return appErrors.Clone(appErrors.ErrNotFound, "student not found")
	}
	student.Records = append(student.Records, models.AttendanceRecord{Date: date, Present: present})
	return nil
}

// List returns a snapshot copy of the full roster keyed by student id.
func (r *AttendanceRepository) List() map[string]*models.Student {
	r.mu.RLock()
	defer r.mu.RUnlock()
	snapshot := make(map[string]*models.Student, len(r.students))
	for id, student := range r.students {
		snapshot[id] = cloneStudent(student)
	}
	return snapshot
}

func cloneStudent(s *models.Student) *models.Student {
	records := make([]models.AttendanceRecord, len(s.Records))
	copy(records, s.Records)
	return &models.Student{Name: s.Name, Records: records}
}
