package repository

import (
	"context"
	"time"

	"edl-backend/internal/domain"
)

type AgencyRepository interface {
	List(ctx context.Context) ([]domain.Agency, error)
	GetByID(ctx context.Context, id string) (*domain.Agency, error)
}

type RentalRepository interface {
	GetByID(ctx context.Context, id string) (*domain.RentalDetails, error)
	// ListByDate returns rentals whose departure (or return, depending on
	// direction) falls inside [from, to), joined with their reference data
	// and any existing reports for both directions.
	ListByDate(ctx context.Context, direction domain.Direction, from, to time.Time) ([]domain.RentalDetails, error)
	Search(ctx context.Context, filter domain.RentalFilter) ([]domain.RentalDetails, error)
}

type ReportRepository interface {
	Create(ctx context.Context, report *domain.ConditionReport) error
	// Update writes the draft fields of a non-terminal report. Returns
	// ErrConflict if the report is already completed.
	Update(ctx context.Context, report *domain.ConditionReport) error
	GetByID(ctx context.Context, id string) (*domain.ConditionReport, error)
	GetByRentalAndDirection(ctx context.Context, rentalID string, direction domain.Direction) (*domain.ConditionReport, error)

	// Finalize conditionally writes both signature references and the
	// completion timestamp in a single statement. It fails with ErrConflict
	// when the report is already terminal and ErrNotFound when it does not
	// exist; no partially-finalized row is ever observable.
	Finalize(ctx context.Context, id, clientSigURL, agentSigURL string, completedAt time.Time) (*domain.ConditionReport, error)
	SetDocumentURL(ctx context.Context, id, url string) error

	// GetSnapshot assembles the fully joined view used for document
	// synthesis. Fails with ErrNotFound if the report or any required
	// parent is missing.
	GetSnapshot(ctx context.Context, id string) (*domain.Snapshot, error)

	AddDamage(ctx context.Context, damage *domain.Damage) error
	RemoveDamage(ctx context.Context, reportID, damageID string) error
	ListDamages(ctx context.Context, reportID string) ([]domain.Damage, error)
	AddPhoto(ctx context.Context, photo *domain.Photo) error
	ListPhotos(ctx context.Context, reportID string) ([]domain.Photo, error)
}

type DeliveryAttemptRepository interface {
	// Record upserts the outbox row for a report, bumping the attempt
	// counter when one already exists.
	Record(ctx context.Context, attempt *domain.DeliveryAttempt) error
	// ListFailed returns failed attempts still under the attempt cap,
	// oldest first.
	ListFailed(ctx context.Context, maxAttempts int32) ([]domain.DeliveryAttempt, error)
}
