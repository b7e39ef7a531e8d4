package dto

// CreateReportRequest asks for an attendance export in the given format.
type CreateReportRequest struct {
	Format string `json:"format" validate:"required,oneof=csv pdf"`
}
