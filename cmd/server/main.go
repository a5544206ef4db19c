package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	httpapi "edl-backend/internal/api/http"
	"edl-backend/internal/config"
	"edl-backend/internal/document"
	"edl-backend/internal/jobs"
	"edl-backend/internal/logger"
	"edl-backend/internal/repository/postgres"
	"edl-backend/internal/scheduler"
	"edl-backend/internal/service"
	"edl-backend/internal/storage"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting EDL backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	store := postgres.NewStore(db)

	blobs, err := storage.NewLocalStore(cfg.Storage.BaseURL, cfg.Storage.UploadDir)
	if err != nil {
		logger.Error("Failed to initialize blob storage", "error", err)
		log.Fatalf("Failed to initialize blob storage: %v", err)
	}
	logger.Info("Using local blob storage", "upload_dir", cfg.Storage.UploadDir)

	// The dispatcher is an optional capability: without a SendGrid key the
	// workflow generates documents but never sends them.
	var dispatcher *service.DocumentDispatcher
	if cfg.SendGrid.APIKey != "" {
		sender := service.NewSendGridSender(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName)
		dispatcher = service.NewDocumentDispatcher(sender)
		logger.Info("Delivery provider configured", "from", cfg.SendGrid.FromEmail)
	} else {
		logger.Warn("SENDGRID_API_KEY not configured, documents will be generated but not sent")
	}

	reportSvc := service.NewReportService(service.ReportServiceDeps{
		Reports:         store.ReportRepository,
		Rentals:         store.RentalRepository,
		Outbox:          store.DeliveryAttemptRepository,
		Synth:           document.NewSynthesizer(),
		Blobs:           blobs,
		Dispatcher:      dispatcher,
		DispatchTimeout: time.Duration(cfg.Delivery.TimeoutSeconds) * time.Second,
	})
	rentalSvc := service.NewRentalService(store.RentalRepository, store.ReportRepository)
	agencySvc := service.NewAgencyService(store.AgencyRepository)

	jobRunner := jobs.NewJobRunner(reportSvc, store.DeliveryAttemptRepository, cfg)
	sched := scheduler.NewScheduler(jobRunner)
	sched.Start()
	defer sched.Stop()

	router := httpapi.NewRouter(reportSvc, rentalSvc, agencySvc, blobs)

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
