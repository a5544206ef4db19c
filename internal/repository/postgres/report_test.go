package postgres_test

import (
	"context"
	"testing"
	"time"

	"edl-backend/internal/domain"
	"edl-backend/internal/repository/postgres"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

var reportCols = []string{
	"id", "rental_id", "direction", "mileage", "fuel_level", "cleanliness_level",
	"comments", "agent_name", "client_signature_url", "agent_signature_url",
	"document_url", "completed_at", "created_on", "updated_on",
}

func TestReportRepository_Finalize(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewReportRepository(db)
	ctx := context.Background()
	completedAt := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows(reportCols).
			AddRow("rep-1", "rent-1", "departure", 12345, 75, 4,
				"ok", "Marc", "sig-client", "sig-agent", nil, completedAt, time.Now(), completedAt)

		mock.ExpectQuery("UPDATE condition_reports").
			WithArgs("rep-1", "sig-client", "sig-agent", completedAt).
			WillReturnRows(rows)

		report, err := repo.Finalize(ctx, "rep-1", "sig-client", "sig-agent", completedAt)
		assert.NoError(t, err)
		assert.NotNil(t, report.CompletedAt)
		assert.Equal(t, completedAt, *report.CompletedAt)
		assert.Equal(t, "sig-client", report.ClientSignatureURL)
		assert.Equal(t, int32(12345), *report.Mileage)
	})

	t.Run("AlreadyCompletedIsConflict", func(t *testing.T) {
		mock.ExpectQuery("UPDATE condition_reports").
			WithArgs("rep-1", "sig-client", "sig-agent", completedAt).
			WillReturnRows(sqlmock.NewRows(reportCols))
		mock.ExpectQuery("SELECT 1 FROM condition_reports").
			WithArgs("rep-1").
			WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))

		_, err := repo.Finalize(ctx, "rep-1", "sig-client", "sig-agent", completedAt)
		assert.ErrorIs(t, err, domain.ErrConflict)
	})

	t.Run("MissingIsNotFound", func(t *testing.T) {
		mock.ExpectQuery("UPDATE condition_reports").
			WithArgs("ghost", "sig-client", "sig-agent", completedAt).
			WillReturnRows(sqlmock.NewRows(reportCols))
		mock.ExpectQuery("SELECT 1 FROM condition_reports").
			WithArgs("ghost").
			WillReturnRows(sqlmock.NewRows([]string{"?column?"}))

		_, err := repo.Finalize(ctx, "ghost", "sig-client", "sig-agent", completedAt)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReportRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewReportRepository(db)
	ctx := context.Background()

	mileage := int32(1000)
	report := &domain.ConditionReport{
		ID:        "rep-1",
		RentalID:  "rent-1",
		Direction: domain.DirectionDeparture,
		Mileage:   &mileage,
	}

	now := time.Now().UTC()
	mock.ExpectQuery("INSERT INTO condition_reports").
		WithArgs("rep-1", "rent-1", "departure", sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
			sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"created_on", "updated_on"}).AddRow(now, now))

	err = repo.Create(ctx, report)
	assert.NoError(t, err)
	assert.Equal(t, now, report.CreatedOn)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReportRepository_Update(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewReportRepository(db)
	ctx := context.Background()
	report := &domain.ConditionReport{ID: "rep-1", RentalID: "rent-1", Direction: domain.DirectionDeparture}

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("UPDATE condition_reports").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Update(ctx, report))
	})

	t.Run("TerminalRowIsConflict", func(t *testing.T) {
		mock.ExpectExec("UPDATE condition_reports").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery("SELECT 1 FROM condition_reports").
			WithArgs("rep-1").
			WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))

		assert.ErrorIs(t, repo.Update(ctx, report), domain.ErrConflict)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReportRepository_GetByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewReportRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM condition_reports WHERE id = \\$1").
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows(reportCols))

	_, err = repo.GetByID(context.Background(), "ghost")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestReportRepository_RemoveDamage(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewReportRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM damages").
			WithArgs("dmg-1", "rep-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.RemoveDamage(ctx, "rep-1", "dmg-1"))
	})

	t.Run("MissingIsNotFound", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM damages").
			WithArgs("ghost", "rep-1").
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.RemoveDamage(ctx, "rep-1", "ghost"), domain.ErrNotFound)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
