package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/campushub/campus-hub-api/api/swagger"
	"github.com/campushub/campus-hub-api/internal/chat"
	"github.com/campushub/campus-hub-api/internal/handler"
	apimiddleware "github.com/campushub/campus-hub-api/internal/middleware"
	"github.com/campushub/campus-hub-api/internal/repository"
	"github.com/campushub/campus-hub-api/internal/service"
	"github.com/campushub/campus-hub-api/pkg/config"
	"github.com/campushub/campus-hub-api/pkg/jobs"
	"github.com/campushub/campus-hub-api/pkg/logger"
	corsmiddleware "github.com/campushub/campus-hub-api/pkg/middleware/cors"
	reqidmiddleware "github.com/campushub/campus-hub-api/pkg/middleware/requestid"
	"github.com/campushub/campus-hub-api/pkg/storage"
)

// @title Campus Hub API
// @version 1.0.0
// @description Campus management backend: attendance, study materials, timetable generation and classroom chat
// @BasePath /
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	uploads, err := storage.NewLocalStorage(cfg.Uploads.Dir)
	if err != nil {
		logr.Sugar().Fatalw("failed to init upload storage", "error", err)
	}
	exports, err := storage.NewLocalStorage(cfg.Reports.StorageDir)
	if err != nil {
		logr.Sugar().Fatalw("failed to init report storage", "error", err)
	}

	attendanceRepo := repository.NewAttendanceRepository()
	materialRepo := repository.NewMaterialRepository()
	chatRepo := repository.NewChatRepository()
	templateRepo := repository.NewTemplateRepository()
	reportRepo := repository.NewReportRepository()

	validate := validator.New()
	metricsSvc := service.NewMetricsService()

	hub := chat.NewHub(chat.HubConfig{
		SendBufferSize: cfg.Chat.SendBufferSize,
		MaxMessageSize: cfg.Chat.MaxMessageSize,
	}, logr, metricsSvc)

	attendanceSvc := service.NewAttendanceService(attendanceRepo, logr)
	materialSvc := service.NewMaterialService(materialRepo, uploads, logr, service.MaterialServiceConfig{
		MaxFileSizeBytes: cfg.Uploads.MaxFileSizeBytes,
	})
	timetableSvc := service.NewTimetableService(templateRepo, validate, logr, service.TimetableServiceConfig{
		DefaultStartHour: cfg.Timetable.DefaultStartHour,
		DefaultEndHour:   cfg.Timetable.DefaultEndHour,
		DefaultDays:      cfg.Timetable.DefaultDays,
	})
	chatSvc := service.NewChatService(chatRepo, hub, logr)

	reportWorker := service.NewReportWorker(reportRepo, attendanceRepo, exports, logr)
	reportQueue := jobs.NewQueue("reports", reportWorker.Handle, jobs.QueueConfig{
		Workers:    cfg.Reports.WorkerConcurrency,
		MaxRetries: cfg.Reports.WorkerRetries,
		Logger:     logr,
	})
	reportSvc := service.NewReportService(reportRepo, reportQueue, exports, validate, logr)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	reportQueue.Start(ctx)
	defer reportQueue.Stop()
	go hub.Run(ctx)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(apimiddleware.Metrics(metricsSvc))

	r.MaxMultipartMemory = cfg.Uploads.MaxFileSizeBytes

	handlers := &handler.Handlers{
		Attendance: handler.NewAttendanceHandler(attendanceSvc),
		Materials:  handler.NewMaterialHandler(materialSvc),
		Timetable:  handler.NewTimetableHandler(timetableSvc),
		Chat:       handler.NewChatHandler(chatSvc, hub, logr),
		Reports:    handler.NewReportHandler(reportSvc),
	}
	handlers.Register(r, cfg.APIPrefix)

	r.Static(cfg.Uploads.PublicPath, uploads.Dir())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	r.GET("/metrics", gin.WrapH(metricsSvc.Handler()))

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
