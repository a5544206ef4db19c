package postgres

import (
	"database/sql"

	"edl-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.AgencyRepository
	repository.RentalRepository
	repository.ReportRepository
	repository.DeliveryAttemptRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                        db,
		AgencyRepository:          NewAgencyRepository(db),
		RentalRepository:          NewRentalRepository(db),
		ReportRepository:          NewReportRepository(db),
		DeliveryAttemptRepository: NewDeliveryAttemptRepository(db),
	}
}
