package main

import (
	"database/sql"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"edl-backend/internal/config"
	"edl-backend/internal/document"
	"edl-backend/internal/jobs"
	"edl-backend/internal/logger"
	"edl-backend/internal/repository/postgres"
	"edl-backend/internal/scheduler"
	"edl-backend/internal/service"
	"edl-backend/internal/storage"
)

// Standalone job runner: drains the delivery outbox without the HTTP
// server, either once or on the configured schedule.
func main() {
	_ = godotenv.Load()

	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	runOnce := flag.Bool("run-once", false, "Run the delivery retry job once and exit")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting EDL cronjob runner...", "log_level", cfg.Log.Level)

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

	var dispatcher *service.DocumentDispatcher
	if cfg.SendGrid.APIKey != "" {
		sender := service.NewSendGridSender(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName)
		dispatcher = service.NewDocumentDispatcher(sender)
	} else {
		logger.Warn("SENDGRID_API_KEY not configured, retries will only regenerate documents")
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

	jobRunner := jobs.NewJobRunner(reportSvc, store.DeliveryAttemptRepository, cfg)

	if *runOnce {
		jobRunner.RetryFailedDeliveries()
		return
	}

	sched := scheduler.NewScheduler(jobRunner)
	sched.Start()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	sched.Stop()
}
