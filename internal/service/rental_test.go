package service

import (
	"context"
	"testing"
	"time"

	"edl-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestRentalService_ListToday(t *testing.T) {
	ctx := context.Background()

	t.Run("UsesCurrentDayWindow", func(t *testing.T) {
		rentals := new(MockRentalRepo)
		svc := &rentalService{
			rentals: rentals,
			reports: new(MockReportRepo),
			clock:   func() time.Time { return fixedNow },
		}

		dayStart := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
		rentals.On("ListByDate", ctx, domain.DirectionDeparture, dayStart, dayStart.Add(24*time.Hour)).
			Return([]domain.RentalDetails{{}}, nil)

		got, err := svc.ListToday(ctx, domain.DirectionDeparture)
		assert.NoError(t, err)
		assert.Len(t, got, 1)
		rentals.AssertExpectations(t)
	})

	t.Run("RejectsUnknownDirection", func(t *testing.T) {
		svc := NewRentalService(new(MockRentalRepo), new(MockReportRepo))

		_, err := svc.ListToday(ctx, "sideways")

		var precondition *domain.PreconditionError
		assert.ErrorAs(t, err, &precondition)
	})
}

func TestRentalService_Get(t *testing.T) {
	ctx := context.Background()
	rentals := new(MockRentalRepo)
	reports := new(MockReportRepo)
	svc := NewRentalService(rentals, reports)

	details := &domain.RentalDetails{
		DepartureReport: &domain.ConditionReport{ID: "rep-1", Direction: domain.DirectionDeparture},
	}
	rentals.On("GetByID", ctx, "rent-1").Return(details, nil)
	reports.On("ListDamages", ctx, "rep-1").Return([]domain.Damage{{ID: "dmg-1"}}, nil)
	reports.On("ListPhotos", ctx, "rep-1").Return([]domain.Photo{}, nil)

	got, err := svc.Get(ctx, "rent-1")
	assert.NoError(t, err)
	assert.Len(t, got.DepartureReport.Damages, 1)
	assert.Nil(t, got.ReturnReport)
	reports.AssertExpectations(t)
}
