package service

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/campushub/campus-hub-api/internal/dto"
	"github.com/campushub/campus-hub-api/internal/models"
	"github.com/campushub/campus-hub-api/internal/repository"
	appErrors "github.com/campushub/campus-hub-api/pkg/errors"
	"github.com/campushub/campus-hub-api/pkg/export"
	"github.com/campushub/campus-hub-api/pkg/jobs"
)

type reportStore interface {
	Create(format models.ReportFormat) *models.ReportJob
	Get(id string) (*models.ReportJob, error)
	Update(id string, params repository.UpdateReportParams) error
}

type jobDispatcher interface {
	Enqueue(job jobs.Job) error
}

type reportFileStore interface {
	Save(filename string, data []byte) (string, error)
	Open(filename string) (*os.File, error)
}

// ReportDownload aggregates resolved download data.
type ReportDownload struct {
	File     *os.File
	Filename string
	Format   models.ReportFormat
}

// ReportService orchestrates the attendance report job lifecycle: create,
// enqueue, status, download.
type ReportService struct {
	repo      reportStore
	queue     jobDispatcher
	files     reportFileStore
	validator *validator.Validate
	logger    *zap.Logger
}

// NewReportService constructs the report service.
func NewReportService(repo reportStore, queue jobDispatcher, files reportFileStore, validate *validator.Validate, logger *zap.Logger) *ReportService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportService{repo: repo, queue: queue, files: files, validator: validate, logger: logger}
}

// CreateJob validates the request, registers the job and enqueues it.
func (s *ReportService) CreateJob(req dto.CreateReportRequest) (*models.ReportJob, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "format must be csv or pdf")
	}
	job := s.repo.Create(models.ReportFormat(req.Format))
	if err := s.queue.Enqueue(jobs.Job{ID: job.ID, Type: "attendance_report"}); err != nil {
		status := models.ReportStatusFailed
		msg := "failed to enqueue job"
		now := time.Now().UTC()
		_ = s.repo.Update(job.ID, repository.UpdateReportParams{Status: &status, Error: &msg, FinishedAt: &now})
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, msg)
	}
	s.logger.Sugar().Infow("report job queued", "job_id", job.ID, "format", job.Format)
	return job, nil
}

// GetStatus returns the job by id.
func (s *ReportService) GetStatus(id string) (*models.ReportJob, error) {
	return s.repo.Get(id)
}

// ResolveDownload opens the rendered file for a finished job.
func (s *ReportService) ResolveDownload(id string) (*ReportDownload, error) {
	job, err := s.repo.Get(id)
	if err != nil {
		return nil, err
	}
	if job.Status != models.ReportStatusDone || job.Filename == "" {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "report not ready")
	}
	file, err := s.files.Open(job.Filename)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to open report file")
	}
	return &ReportDownload{File: file, Filename: job.Filename, Format: job.Format}, nil
}

// ReportWorker renders attendance reports off the request path.
type ReportWorker struct {
	repo       reportStore
	attendance attendanceStore
	files      reportFileStore
	csv        *export.CSVExporter
	pdf        *export.PDFExporter
	logger     *zap.Logger
}

// NewReportWorker constructs the queue handler.
func NewReportWorker(repo reportStore, attendance attendanceStore, files reportFileStore, logger *zap.Logger) *ReportWorker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportWorker{
		repo:       repo,
		attendance: attendance,
		files:      files,
		csv:        export.NewCSVExporter(),
		pdf:        export.NewPDFExporter(),
		logger:     logger,
	}
}

// Handle processes one queued report job.
func (w *ReportWorker) Handle(ctx context.Context, job jobs.Job) error {
	report, err := w.repo.Get(job.ID)
	if err != nil {
		return err
	}

	processing := models.ReportStatusProcessing
	if err := w.repo.Update(report.ID, repository.UpdateReportParams{Status: &processing}); err != nil {
		return err
	}

	data := attendanceDataset(w.attendance.List())

	var rendered []byte
	var renderErr error
	switch report.Format {
	case models.ReportFormatPDF:
		rendered, renderErr = w.pdf.Render(data, "Attendance Report")
	default:
		rendered, renderErr = w.csv.Render(data)
	}
	if renderErr == nil {
		filename := fmt.Sprintf("attendance-%s.%s", report.ID, report.Format)
		if _, saveErr := w.files.Save(filename, rendered); saveErr != nil {
			renderErr = saveErr
		} else {
			done := models.ReportStatusDone
			now := time.Now().UTC()
			if err := w.repo.Update(report.ID, repository.UpdateReportParams{Status: &done, Filename: &filename, FinishedAt: &now}); err != nil {
				return err
			}
			w.logger.Sugar().Infow("report rendered", "job_id", report.ID, "filename", filename)
			return nil
		}
	}

	failed := models.ReportStatusFailed
	msg := renderErr.Error()
	now := time.Now().UTC()
	_ = w.repo.Update(report.ID, repository.UpdateReportParams{Status: &failed, Error: &msg, FinishedAt: &now})
	return renderErr
}

// attendanceDataset flattens the roster into one row per student with
// present/absent totals.
func attendanceDataset(students map[string]*models.Student) export.Dataset {
	ids := make([]string, 0, len(students))
	for id := range students {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	rows := make([]map[string]string, 0, len(ids))
	for _, id := range ids {
		student := students[id]
		present, absent := 0, 0
		for _, record := range student.Records {
			if record.Present {
				present++
			} else {
				absent++
			}
		}
		rows = append(rows, map[string]string{
			"Student ID": id,
			"Name":       student.Name,
			"Present":    strconv.Itoa(present),
			"Absent":     strconv.Itoa(absent),
		})
	}
	return export.Dataset{
		Headers: []string{"Student ID", "Name", "Present", "Absent"},
		Rows:    rows,
	}
}
