package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"edl-backend/internal/domain"
	"edl-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockReportService struct {
	mock.Mock
}

func (m *mockReportService) Save(ctx context.Context, input service.ReportInput) (*domain.ConditionReport, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ConditionReport), args.Error(1)
}
func (m *mockReportService) Complete(ctx context.Context, reportID, clientSigURL, agentSigURL string) (*domain.ConditionReport, domain.DeliveryOutcome, error) {
	args := m.Called(ctx, reportID, clientSigURL, agentSigURL)
	if args.Get(0) == nil {
		return nil, args.Get(1).(domain.DeliveryOutcome), args.Error(2)
	}
	return args.Get(0).(*domain.ConditionReport), args.Get(1).(domain.DeliveryOutcome), args.Error(2)
}
func (m *mockReportService) Resend(ctx context.Context, reportID string) (domain.DeliveryOutcome, error) {
	args := m.Called(ctx, reportID)
	return args.Get(0).(domain.DeliveryOutcome), args.Error(1)
}
func (m *mockReportService) AddDamage(ctx context.Context, reportID string, input service.DamageInput) (*domain.Damage, error) {
	args := m.Called(ctx, reportID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Damage), args.Error(1)
}
func (m *mockReportService) RemoveDamage(ctx context.Context, reportID, damageID string) error {
	args := m.Called(ctx, reportID, damageID)
	return args.Error(0)
}
func (m *mockReportService) AddPhoto(ctx context.Context, reportID string, input service.PhotoInput) (*domain.Photo, error) {
	args := m.Called(ctx, reportID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Photo), args.Error(1)
}

type stubRentalService struct{}

func (stubRentalService) ListToday(ctx context.Context, direction domain.Direction) ([]domain.RentalDetails, error) {
	return nil, nil
}
func (stubRentalService) Get(ctx context.Context, id string) (*domain.RentalDetails, error) {
	return nil, domain.ErrNotFound
}
func (stubRentalService) SearchHistory(ctx context.Context, filter domain.RentalFilter) ([]domain.RentalDetails, error) {
	return nil, nil
}

type stubAgencyService struct{}

func (stubAgencyService) ListAgencies(ctx context.Context) ([]domain.Agency, error) {
	return nil, nil
}

func newTestRouter(reports service.ReportService) http.Handler {
	return NewRouter(reports, stubRentalService{}, stubAgencyService{}, nil)
}

func TestHandleComplete(t *testing.T) {
	body := `{"client_signature_url":"sig-client","agent_signature_url":"sig-agent"}`

	t.Run("DeliveredReport", func(t *testing.T) {
		reports := new(mockReportService)
		completedAt := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
		report := &domain.ConditionReport{ID: "rep-1", CompletedAt: &completedAt}
		reports.On("Complete", mock.Anything, "rep-1", "sig-client", "sig-agent").
			Return(report, domain.DeliveryOutcome{Delivered: true}, nil)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/api/v1/reports/rep-1/complete", strings.NewReader(body))
		newTestRouter(reports).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var resp completeResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.Delivered)
		assert.Equal(t, "rep-1", resp.Report.ID)
	})

	t.Run("DeliveryFailureStillReturns200", func(t *testing.T) {
		reports := new(mockReportService)
		completedAt := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
		report := &domain.ConditionReport{ID: "rep-1", CompletedAt: &completedAt}
		reports.On("Complete", mock.Anything, "rep-1", "sig-client", "sig-agent").
			Return(report, domain.DeliveryOutcome{Error: "provider unreachable"}, nil)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/api/v1/reports/rep-1/complete", strings.NewReader(body))
		newTestRouter(reports).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var resp completeResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.False(t, resp.Delivered)
		assert.Equal(t, "provider unreachable", resp.Error)
	})

	t.Run("MissingSignaturesIs422", func(t *testing.T) {
		reports := new(mockReportService)
		reports.On("Complete", mock.Anything, "rep-1", "", "").
			Return(nil, domain.DeliveryOutcome{}, &domain.PreconditionError{Reason: "signatures required"})

		rec := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/api/v1/reports/rep-1/complete", strings.NewReader(`{}`))
		newTestRouter(reports).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("UnknownReportIs404", func(t *testing.T) {
		reports := new(mockReportService)
		reports.On("Complete", mock.Anything, "ghost", "sig-client", "sig-agent").
			Return(nil, domain.DeliveryOutcome{}, &domain.PreconditionError{Reason: "report not found"})

		rec := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/api/v1/reports/ghost/complete", strings.NewReader(body))
		newTestRouter(reports).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("AlreadyCompletedIs409", func(t *testing.T) {
		reports := new(mockReportService)
		reports.On("Complete", mock.Anything, "rep-1", "sig-client", "sig-agent").
			Return(nil, domain.DeliveryOutcome{}, &domain.PreconditionError{Reason: "report already completed"})

		rec := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/api/v1/reports/rep-1/complete", strings.NewReader(body))
		newTestRouter(reports).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("StoreFailureIs500", func(t *testing.T) {
		reports := new(mockReportService)
		reports.On("Complete", mock.Anything, "rep-1", "sig-client", "sig-agent").
			Return(nil, domain.DeliveryOutcome{}, &domain.PersistenceError{Err: context.DeadlineExceeded})

		rec := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/api/v1/reports/rep-1/complete", strings.NewReader(body))
		newTestRouter(reports).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestHandleSave(t *testing.T) {
	reports := new(mockReportService)
	reports.On("Save", mock.Anything, mock.MatchedBy(func(in service.ReportInput) bool {
		return in.RentalID == "rent-1" && in.Direction == domain.DirectionDeparture
	})).Return(&domain.ConditionReport{ID: "rep-1", RentalID: "rent-1"}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/v1/reports",
		strings.NewReader(`{"rental_id":"rent-1","direction":"departure","mileage":1000}`))
	newTestRouter(reports).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	reports.AssertExpectations(t)
}

func TestHandleRemoveDamage(t *testing.T) {
	reports := new(mockReportService)
	reports.On("RemoveDamage", mock.Anything, "rep-1", "dmg-1").Return(nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("DELETE", "/api/v1/reports/rep-1/damages/dmg-1", nil)
	newTestRouter(reports).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	reports.AssertExpectations(t)
}
