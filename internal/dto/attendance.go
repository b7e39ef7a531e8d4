package dto

import "github.com/campushub/campus-hub-api/internal/models"

// AddStudentRequest registers a student on the attendance roster.
type AddStudentRequest struct {
	StudentID string `json:"studentId" validate:"required"`
	Name      string `json:"name" validate:"required"`
}

// AddStudentResponse echoes the stored (possibly pre-existing) student.
type AddStudentResponse struct {
	OK      bool            `json:"ok"`
	Student *models.Student `json:"student"`
}

// AddRecordRequest appends one attendance mark to an existing student.
type AddRecordRequest struct {
	StudentID string `json:"studentId" validate:"required"`
	Date      string `json:"date"`
	Present   bool   `json:"present"`
}

// OKResponse is the minimal success acknowledgement.
type OKResponse struct {
	OK bool `json:"ok"`
}
