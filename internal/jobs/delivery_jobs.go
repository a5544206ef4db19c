package jobs

import (
	"context"

	"edl-backend/internal/logger"
)

// RetryFailedDeliveries re-dispatches report documents whose delivery
// failed, up to the configured attempt cap. Completion itself is never
// affected; this only drains the outbox.
func (jr *JobRunner) RetryFailedDeliveries() {
	jr.runWithRecovery("RetryFailedDeliveries", func() {
		ctx := context.Background()

		attempts, err := jr.outbox.ListFailed(ctx, jr.config.Delivery.MaxAttempts)
		if err != nil {
			logger.Error("Failed to list failed deliveries", "error", err)
			return
		}
		if len(attempts) == 0 {
			return
		}

		retried, delivered := 0, 0
		for _, attempt := range attempts {
			outcome, err := jr.reports.Resend(ctx, attempt.ReportID)
			if err != nil {
				// A precondition failure here means the report vanished or
				// was never completed; log and move on.
				logger.Warn("Skipping delivery retry", "report_id", attempt.ReportID, "error", err)
				continue
			}
			retried++
			if outcome.Delivered {
				delivered++
			}
		}
		logger.Info("Delivery retry pass finished", "eligible", len(attempts), "retried", retried, "delivered", delivered)
	})
}
