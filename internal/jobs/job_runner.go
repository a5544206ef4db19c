package jobs

import (
	"edl-backend/internal/config"
	"edl-backend/internal/logger"
	"edl-backend/internal/repository"
	"edl-backend/internal/service"
)

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	reports service.ReportService
	outbox  repository.DeliveryAttemptRepository
	config  *config.Config
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(reports service.ReportService, outbox repository.DeliveryAttemptRepository, cfg *config.Config) *JobRunner {
	return &JobRunner{
		reports: reports,
		outbox:  outbox,
		config:  cfg,
	}
}

// Config exposes the runner's configuration to the scheduler
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}
