package service

import (
	"context"
	"fmt"
	"time"

	"edl-backend/internal/domain"
	"edl-backend/internal/repository"
)

type rentalService struct {
	rentals repository.RentalRepository
	reports repository.ReportRepository
	clock   func() time.Time
}

func NewRentalService(rentals repository.RentalRepository, reports repository.ReportRepository) RentalService {
	return &rentalService{rentals: rentals, reports: reports, clock: time.Now}
}

func (s *rentalService) ListToday(ctx context.Context, direction domain.Direction) ([]domain.RentalDetails, error) {
	if !direction.Valid() {
		return nil, &domain.PreconditionError{Reason: fmt.Sprintf("unknown direction %q", direction)}
	}
	now := s.clock()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return s.rentals.ListByDate(ctx, direction, dayStart, dayStart.Add(24*time.Hour))
}

func (s *rentalService) Get(ctx context.Context, id string) (*domain.RentalDetails, error) {
	details, err := s.rentals.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	// The form view needs the reports' children too.
	for _, report := range []*domain.ConditionReport{details.DepartureReport, details.ReturnReport} {
		if report == nil {
			continue
		}
		if report.Damages, err = s.reports.ListDamages(ctx, report.ID); err != nil {
			return nil, err
		}
		if report.Photos, err = s.reports.ListPhotos(ctx, report.ID); err != nil {
			return nil, err
		}
	}
	return details, nil
}

func (s *rentalService) SearchHistory(ctx context.Context, filter domain.RentalFilter) ([]domain.RentalDetails, error) {
	return s.rentals.Search(ctx, filter)
}
