package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/campushub/campus-hub-api/internal/dto"
	"github.com/campushub/campus-hub-api/internal/service"
	appErrors "github.com/campushub/campus-hub-api/pkg/errors"
	"github.com/campushub/campus-hub-api/pkg/response"
)

// MaterialHandler exposes study-material endpoints.
type MaterialHandler struct {
	materials *service.MaterialService
}

// NewMaterialHandler constructs MaterialHandler.
func NewMaterialHandler(materials *service.MaterialService) *MaterialHandler {
	return &MaterialHandler{materials: materials}
}

// List godoc
// @Summary List study materials newest first
// @Tags Materials
// @Produce json
// @Success 200 {array} models.Material
// @Router /api/materials [get]
func (h *MaterialHandler) List(c *gin.Context) {
	response.OK(c, h.materials.List())
}

// Upload godoc
// @Summary Upload a study material
// @Tags Materials
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Document"
// @Param title formData string false "Title"
// @Success 200 {object} dto.UploadMaterialResponse
// @Router /api/materials/upload [post]
func (h *MaterialHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrUpload, "file is required"))
		return
	}
	src, err := fileHeader.Open()
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to open file"))
		return
	}
	defer src.Close()

	entry, err := h.materials.Upload(service.MaterialUpload{
		Title:        c.PostForm("title"),
		OriginalName: fileHeader.Filename,
		Size:         fileHeader.Size,
		Content:      src,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.UploadMaterialResponse{OK: true, Entry: entry})
}
