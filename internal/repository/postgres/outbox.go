package postgres

import (
	"context"
	"database/sql"

	"edl-backend/internal/domain"
	"edl-backend/internal/repository"
)

type deliveryAttemptRepository struct {
	db *sql.DB
}

func NewDeliveryAttemptRepository(db *sql.DB) repository.DeliveryAttemptRepository {
	return &deliveryAttemptRepository{db: db}
}

func (r *deliveryAttemptRepository) Record(ctx context.Context, attempt *domain.DeliveryAttempt) error {
	query := `INSERT INTO delivery_attempts (id, report_id, status, error, attempts, last_attempt_at)
	          VALUES ($1, $2, $3, $4, 1, $5)
	          ON CONFLICT (report_id) DO UPDATE
	          SET status = EXCLUDED.status,
	              error = EXCLUDED.error,
	              attempts = delivery_attempts.attempts + 1,
	              last_attempt_at = EXCLUDED.last_attempt_at
	          RETURNING id, attempts`
	return r.db.QueryRowContext(ctx, query,
		attempt.ID, attempt.ReportID, attempt.Status, nullString(attempt.Error), attempt.LastAttemptAt,
	).Scan(&attempt.ID, &attempt.Attempts)
}

func (r *deliveryAttemptRepository) ListFailed(ctx context.Context, maxAttempts int32) ([]domain.DeliveryAttempt, error) {
	query := `SELECT id, report_id, status, error, attempts, last_attempt_at
	          FROM delivery_attempts
	          WHERE status = $1 AND attempts < $2
	          ORDER BY last_attempt_at ASC`
	rows, err := r.db.QueryContext(ctx, query, domain.DeliveryStatusFailed, maxAttempts)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var attempts []domain.DeliveryAttempt
	for rows.Next() {
		var a domain.DeliveryAttempt
		var errMsg sql.NullString
		if err := rows.Scan(&a.ID, &a.ReportID, &a.Status, &errMsg, &a.Attempts, &a.LastAttemptAt); err != nil {
			return nil, err
		}
		a.Error = errMsg.String
		attempts = append(attempts, a)
	}
	return attempts, rows.Err()
}
