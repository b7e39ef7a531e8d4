package handler

import (
	"github.com/gin-gonic/gin"
)

// Handlers aggregates the HTTP surface for route registration.
type Handlers struct {
	Attendance *AttendanceHandler
	Materials  *MaterialHandler
	Timetable  *TimetableHandler
	Chat       *ChatHandler
	Reports    *ReportHandler
}

// Register mounts the public API under the configured prefix plus the chat
// upgrade endpoint.
func (h *Handlers) Register(r *gin.Engine, prefix string) {
	if prefix == "" {
		prefix = "/api"
	}
	api := r.Group(prefix)
	{
		api.GET("/attendance", h.Attendance.List)
		api.POST("/attendance/student", h.Attendance.AddStudent)
		api.POST("/attendance/record", h.Attendance.AddRecord)

		api.GET("/materials", h.Materials.List)
		api.POST("/materials/upload", h.Materials.Upload)

		api.POST("/timetable/generate", h.Timetable.Generate)
		api.POST("/timetable/templates", h.Timetable.SaveTemplate)
		api.GET("/timetable/templates", h.Timetable.ListTemplates)

		api.GET("/chat/history", h.Chat.History)

		api.POST("/reports", h.Reports.Create)
		api.GET("/reports/:id", h.Reports.Status)
		api.GET("/reports/:id/download", h.Reports.Download)
	}

	r.GET("/ws/chat", h.Chat.Connect)
}
