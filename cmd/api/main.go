package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/nikolak/job-tracker/internal/config"
	"github.com/nikolak/job-tracker/internal/handlers"
	"github.com/nikolak/job-tracker/internal/logger"
	"github.com/nikolak/job-tracker/internal/middleware"
	"github.com/nikolak/job-tracker/internal/services"
	"github.com/nikolak/job-tracker/internal/storage"
	"go.uber.org/zap"
)

func main() {
	// 1. Load Environment Variables (.env is optional)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	log.Info("starting job tracker API",
		zap.Int("port", cfg.Port),
		zap.String("data_dir", cfg.DataDir),
	)

	// 2. File-backed stores
	recordStore, err := storage.NewRecordStore(cfg.DataDir, log)
	if err != nil {
		log.Fatal("failed to init record store", zap.Error(err))
	}
	resumeStore, err := storage.NewResumeStore(filepath.Join(cfg.DataDir, "resumes"), log)
	if err != nil {
		log.Fatal("failed to init resume store", zap.Error(err))
	}
	scheduleStore, err := storage.NewScheduleStore(filepath.Join(cfg.DataDir, "schedules"), log)
	if err != nil {
		log.Fatal("failed to init schedule store", zap.Error(err))
	}

	// 3. Core services
	applicationService := services.NewApplicationService(recordStore, resumeStore, log)
	scheduleService := services.NewScheduleService(scheduleStore, log)

	// 4. Handlers
	applicationHandler := handlers.NewApplicationHandler(applicationService)
	scheduleHandler := handlers.NewScheduleHandler(scheduleService)
	resumeHandler := handlers.NewResumeHandler(resumeStore)

	// 5. Router, CORS, access gate. The CORS origin list and the gate's
	// allowed frontend are configured independently.
	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORSOrigins
	corsConfig.AllowCredentials = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "X-Auth-Key", "X-Frontend-Source"}
	r.Use(cors.New(corsConfig))

	r.Use(middleware.AccessGate(cfg.AuthKey, cfg.AllowedFrontend, log))

	// 6. Routes
	r.GET("/", handlers.Root(cfg.Port))

	api := r.Group("/api")
	{
		api.POST("/applications", applicationHandler.CreateApplication)
		api.GET("/applied", applicationHandler.GetApplied)

		api.POST("/schedules", scheduleHandler.UpsertSchedule)
		api.GET("/schedules", scheduleHandler.GetSchedules)
		api.DELETE("/schedules", scheduleHandler.DeleteSchedule)

		api.GET("/resumes/:resume_id", resumeHandler.GetResume)
	}

	if err := r.Run(fmt.Sprintf(":%d", cfg.Port)); err != nil {
		log.Fatal("server failed to start", zap.Error(err))
	}
}
