package service

import (
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/campushub/campus-hub-api/internal/models"
	appErrors "github.com/campushub/campus-hub-api/pkg/errors"
	"github.com/campushub/campus-hub-api/pkg/storage"
)

type materialStore interface {
	Add(title, filename, originalName string) *models.Material
	List() []models.Material
}

type fileSaver interface {
	SaveStream(filename string, r io.Reader) (string, error)
}

// MaterialUpload carries an incoming study-material file.
type MaterialUpload struct {
	Title        string
	OriginalName string
	Size         int64
	Content      io.Reader
}

// MaterialServiceConfig bounds accepted uploads.
type MaterialServiceConfig struct {
	MaxFileSizeBytes int64
}

// MaterialService stores study-material files on disk and their metadata in
// memory, newest first.
type MaterialService struct {
	repo   materialStore
	files  fileSaver
	logger *zap.Logger
	cfg    MaterialServiceConfig
}

// NewMaterialService constructs a MaterialService.
func NewMaterialService(repo materialStore, files fileSaver, logger *zap.Logger, cfg MaterialServiceConfig) *MaterialService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MaterialService{repo: repo, files: files, logger: logger, cfg: cfg}
}

// Upload persists the file under a collision-safe name and records the
// entry. The title falls back to the original filename.
func (s *MaterialService) Upload(upload MaterialUpload) (*models.Material, error) {
	if upload.Content == nil || upload.OriginalName == "" {
		return nil, appErrors.Clone(appErrors.ErrUpload, "file is required")
	}
	if s.cfg.MaxFileSizeBytes > 0 && upload.Size > s.cfg.MaxFileSizeBytes {
		return nil, appErrors.Clone(appErrors.ErrUpload, "file too large")
	}

	title := strings.TrimSpace(upload.Title)
	if title == "" {
		title = upload.OriginalName
	}

	filename := storage.UniqueFilename(upload.OriginalName)
	if _, err := s.files.SaveStream(filename, upload.Content); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store file")
	}

	entry := s.repo.Add(title, filename, upload.OriginalName)
	s.logger.Sugar().Infow("material uploaded", "material_id", entry.ID, "filename", filename)
	return entry, nil
}

// List returns uploaded materials newest first.
func (s *MaterialService) List() []models.Material {
	return s.repo.List()
}
