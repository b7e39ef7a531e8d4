package models

import "time"

// Student holds a roster entry and its chronological attendance records.
// Records keep insertion order; marking the same date twice yields two
// entries on purpose.
type Student struct {
	Name    string             `json:"name"`
	Records []AttendanceRecord `json:"records"`
}

// AttendanceRecord is one presence mark for a calendar date.
type AttendanceRecord struct {
	Date    string `json:"date"`
	Present bool   `json:"present"`
}

// Material describes one uploaded study file. Filename is the
// server-generated stored name under the uploads directory.
type Material struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Filename     string    `json:"filename"`
	OriginalName string    `json:"originalName"`
	UploadedAt   time.Time `json:"uploadedAt"`
}

// ChatMessage is a canonical chat entry after server-side normalization.
type ChatMessage struct {
	ID   string `json:"id"`
	Text string `json:"text"`
	From string `json:"from"`
	TS   string `json:"ts"`
}

// TimetableSlot is one hour of the generated grid.
type TimetableSlot struct {
	Hour    int    `json:"hour"`
	Subject string `json:"subject"`
}

// TimetableGrid maps a day label to its ordered hour slots.
type TimetableGrid map[string][]TimetableSlot

// TimetableTemplate is a saved generation result, kept newest first.
type TimetableTemplate struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Grid      TimetableGrid `json:"grid"`
	StartHour int           `json:"startHour"`
	EndHour   int           `json:"endHour"`
	Days      []string      `json:"days"`
	CreatedAt time.Time     `json:"createdAt"`
}

// ReportFormat enumerates supported report encodings.
type ReportFormat string

const (
	ReportFormatCSV ReportFormat = "csv"
	ReportFormatPDF ReportFormat = "pdf"
)

// ReportStatus tracks the lifecycle of a report job.
type ReportStatus string

const (
	ReportStatusQueued     ReportStatus = "queued"
	ReportStatusProcessing ReportStatus = "processing"
	ReportStatusDone       ReportStatus = "done"
	ReportStatusFailed     ReportStatus = "failed"
)

// ReportJob is an asynchronous attendance export request.
type ReportJob struct {
	ID         string       `json:"id"`
	Format     ReportFormat `json:"format"`
	Status     ReportStatus `json:"status"`
	Filename   string       `json:"filename,omitempty"`
	Error      string       `json:"error,omitempty"`
	CreatedAt  time.Time    `json:"createdAt"`
	FinishedAt *time.Time   `json:"finishedAt,omitempty"`
}
