package repository

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/campushub/campus-hub-api/internal/models"
	appErrors "github.com/campushub/campus-hub-api/pkg/errors"
)

// UpdateReportParams carries partial report-job updates; nil fields are
// left untouched.
type UpdateReportParams struct {
	Status     *models.ReportStatus
	Filename   *string
	Error      *string
	FinishedAt *time.Time
}

// ReportRepository tracks report jobs in memory.
type ReportRepository struct {
	mu   sync.RWMutex
	jobs map[string]*models.ReportJob
}

// NewReportRepository initialises an empty job table.
func NewReportRepository() *ReportRepository {
	return &ReportRepository{jobs: make(map[string]*models.ReportJob)}
}

// Create registers a queued job and returns it.
func (r *ReportRepository) Create(format models.ReportFormat) *models.ReportJob {
	job := &models.ReportJob{
		ID:        uuid.NewString(),
		Format:    format,
		Status:    models.ReportStatusQueued,
		CreatedAt: time.Now().UTC(),
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.jobs[job.ID] = job
	return cloneReportJob(job)
}

// Get returns the job by id.
func (r *ReportRepository) Get(id string) (*models.ReportJob, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	job, ok := r.jobs[id]
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "report not found")
	}
	return cloneReportJob(job), nil
}

// Update applies the non-nil fields to the stored job.
func (r *ReportRepository) Update(id string, params UpdateReportParams) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	job, ok := r.jobs[id]
	if !ok {
		return appErrors.Clone(appErrors.ErrNotFound, "report not found")
	}
	if params.Status != nil {
		job.Status = *params.Status
	}
	if params.Filename != nil {
		job.Filename = *params.Filename
	}
	if params.Error != nil {
		job.Error = *params.Error
	}
	if params.FinishedAt != nil {
		finished := *params.FinishedAt
		job.FinishedAt = &finished
	}
	return nil
}

func cloneReportJob(j *models.ReportJob) *models.ReportJob {
	clone := *j
	if j.FinishedAt != nil {
		finished := *j.FinishedAt
		clone.FinishedAt = &finished
	}
	return &clone
}
