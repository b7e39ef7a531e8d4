package dto

import "github.com/campushub/campus-hub-api/internal/models"

// UploadMaterialResponse confirms an accepted upload.
type UploadMaterialResponse struct {
	OK    bool             `json:"ok"`
	Entry *models.Material `json:"entry"`
}
