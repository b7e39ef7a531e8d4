package service

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushub/campus-hub-api/internal/dto"
	"github.com/campushub/campus-hub-api/internal/models"
	"github.com/campushub/campus-hub-api/internal/repository"
	appErrors "github.com/campushub/campus-hub-api/pkg/errors"
	"github.com/campushub/campus-hub-api/pkg/jobs"
	"github.com/campushub/campus-hub-api/pkg/storage"
)

type dispatcherStub struct {
	enqueued []jobs.Job
	err      error
}

func (d *dispatcherStub) Enqueue(job jobs.Job) error {
	if d.err != nil {
		return d.err
	}
	d.enqueued = append(d.enqueued, job)
	return nil
}

func newReportFixture(t *testing.T) (*ReportService, *ReportWorker, *repository.ReportRepository, *repository.AttendanceRepository, *dispatcherStub) {
	t.Helper()
	files, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	reportRepo := repository.NewReportRepository()
	attendanceRepo := repository.NewAttendanceRepository()
	dispatcher := &dispatcherStub{}
	svc := NewReportService(reportRepo, dispatcher, files, nil, nil)
	worker := NewReportWorker(reportRepo, attendanceRepo, files, nil)
	return svc, worker, reportRepo, attendanceRepo, dispatcher
}

func TestCreateJobValidatesFormat(t *testing.T) {
	svc, _, _, _, _ := newReportFixture(t)
	_, err := svc.CreateJob(dto.CreateReportRequest{Format: "xlsx"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestCreateJobEnqueues(t *testing.T) {
	svc, _, _, _, dispatcher := newReportFixture(t)
	job, err := svc.CreateJob(dto.CreateReportRequest{Format: "csv"})
	require.NoError(t, err)
	assert.Equal(t, models.ReportStatusQueued, job.Status)
	require.Len(t, dispatcher.enqueued, 1)
	assert.Equal(t, job.ID, dispatcher.enqueued[0].ID)
}

func TestCreateJobMarksFailedWhenEnqueueFails(t *testing.T) {
	files, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	reportRepo := repository.NewReportRepository()
	svc := NewReportService(reportRepo, &dispatcherStub{err: errors.New("queue stopped")}, files, nil, nil)

	_, err = svc.CreateJob(dto.CreateReportRequest{Format: "csv"})
	require.Error(t, err)
}

func TestWorkerRendersCSVReport(t *testing.T) {
	svc, worker, reportRepo, attendanceRepo, dispatcher := newReportFixture(t)

	attendanceRepo.AddStudent("s1", "Ana")
	require.NoError(t, attendanceRepo.AddRecord("s1", "2026-01-15", true))
	require.NoError(t, attendanceRepo.AddRecord("s1", "2026-01-16", false))

	job, err := svc.CreateJob(dto.CreateReportRequest{Format: "csv"})
	require.NoError(t, err)
	require.NoError(t, worker.Handle(context.Background(), dispatcher.enqueued[0]))

	finished, err := reportRepo.Get(job.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ReportStatusDone, finished.Status)
	require.NotEmpty(t, finished.Filename)

	download, err := svc.ResolveDownload(job.ID)
	require.NoError(t, err)
	defer download.File.Close()
	data, err := os.ReadFile(download.File.Name())
	require.NoError(t, err)
	content := string(data)
	assert.True(t, strings.HasPrefix(content, "Student ID,Name,Present,Absent"))
	assert.Contains(t, content, "s1,Ana,1,1")
}

func TestResolveDownloadBeforeFinish(t *testing.T) {
	svc, _, _, _, _ := newReportFixture(t)
	job, err := svc.CreateJob(dto.CreateReportRequest{Format: "pdf"})
	require.NoError(t, err)

	_, err = svc.ResolveDownload(job.ID)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestAttendanceDatasetTotals(t *testing.T) {
	students := map[string]*models.Student{
		"s2": {Name: "Ben", Records: []models.AttendanceRecord{{Date: "2026-01-15", Present: true}}},
		"s1": {Name: "Ana", Records: []models.AttendanceRecord{
			{Date: "2026-01-15", Present: true},
			{Date: "2026-01-16", Present: false},
			{Date: "2026-01-17", Present: true},
		}},
	}
	data := attendanceDataset(students)
	require.Len(t, data.Rows, 2)
	// Rows sorted by student id for deterministic output.
	assert.Equal(t, "s1", data.Rows[0]["Student ID"])
	assert.Equal(t, "2", data.Rows[0]["Present"])
	assert.Equal(t, "1", data.Rows[0]["Absent"])
	assert.Equal(t, "s2", data.Rows[1]["Student ID"])
}
