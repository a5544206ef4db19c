package service

import (
	"context"
	"io"
	"time"

	"edl-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockReportRepo
type MockReportRepo struct {
	mock.Mock
}

func (m *MockReportRepo) Create(ctx context.Context, report *domain.ConditionReport) error {
	args := m.Called(ctx, report)
	return args.Error(0)
}
func (m *MockReportRepo) Update(ctx context.Context, report *domain.ConditionReport) error {
	args := m.Called(ctx, report)
	return args.Error(0)
}
func (m *MockReportRepo) GetByID(ctx context.Context, id string) (*domain.ConditionReport, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ConditionReport), args.Error(1)
}
func (m *MockReportRepo) GetByRentalAndDirection(ctx context.Context, rentalID string, direction domain.Direction) (*domain.ConditionReport, error) {
	args := m.Called(ctx, rentalID, direction)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ConditionReport), args.Error(1)
}
func (m *MockReportRepo) Finalize(ctx context.Context, id, clientSigURL, agentSigURL string, completedAt time.Time) (*domain.ConditionReport, error) {
	args := m.Called(ctx, id, clientSigURL, agentSigURL, completedAt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ConditionReport), args.Error(1)
}
func (m *MockReportRepo) SetDocumentURL(ctx context.Context, id, url string) error {
	args := m.Called(ctx, id, url)
	return args.Error(0)
}
func (m *MockReportRepo) GetSnapshot(ctx context.Context, id string) (*domain.Snapshot, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Snapshot), args.Error(1)
}
func (m *MockReportRepo) AddDamage(ctx context.Context, damage *domain.Damage) error {
	args := m.Called(ctx, damage)
	return args.Error(0)
}
func (m *MockReportRepo) RemoveDamage(ctx context.Context, reportID, damageID string) error {
	args := m.Called(ctx, reportID, damageID)
	return args.Error(0)
}
func (m *MockReportRepo) ListDamages(ctx context.Context, reportID string) ([]domain.Damage, error) {
	args := m.Called(ctx, reportID)
	return args.Get(0).([]domain.Damage), args.Error(1)
}
func (m *MockReportRepo) AddPhoto(ctx context.Context, photo *domain.Photo) error {
	args := m.Called(ctx, photo)
	return args.Error(0)
}
func (m *MockReportRepo) ListPhotos(ctx context.Context, reportID string) ([]domain.Photo, error) {
	args := m.Called(ctx, reportID)
	return args.Get(0).([]domain.Photo), args.Error(1)
}

// MockRentalRepo
type MockRentalRepo struct {
	mock.Mock
}

func (m *MockRentalRepo) GetByID(ctx context.Context, id string) (*domain.RentalDetails, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RentalDetails), args.Error(1)
}
func (m *MockRentalRepo) ListByDate(ctx context.Context, direction domain.Direction, from, to time.Time) ([]domain.RentalDetails, error) {
	args := m.Called(ctx, direction, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RentalDetails), args.Error(1)
}
func (m *MockRentalRepo) Search(ctx context.Context, filter domain.RentalFilter) ([]domain.RentalDetails, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RentalDetails), args.Error(1)
}

// MockOutboxRepo
type MockOutboxRepo struct {
	mock.Mock
}

func (m *MockOutboxRepo) Record(ctx context.Context, attempt *domain.DeliveryAttempt) error {
	args := m.Called(ctx, attempt)
	return args.Error(0)
}
func (m *MockOutboxRepo) ListFailed(ctx context.Context, maxAttempts int32) ([]domain.DeliveryAttempt, error) {
	args := m.Called(ctx, maxAttempts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DeliveryAttempt), args.Error(1)
}

// MockEmailSender
type MockEmailSender struct {
	mock.Mock
}

func (m *MockEmailSender) Send(ctx context.Context, to, toName, subject, htmlBody string, attachment Attachment) (string, error) {
	args := m.Called(ctx, to, toName, subject, htmlBody, attachment)
	return args.String(0), args.Error(1)
}

// MockBlobStore
type MockBlobStore struct {
	mock.Mock
}

func (m *MockBlobStore) Save(ctx context.Context, key string, reader io.Reader) (string, error) {
	args := m.Called(ctx, key, reader)
	return args.String(0), args.Error(1)
}
func (m *MockBlobStore) Open(key string) (io.ReadCloser, error) {
	args := m.Called(key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(io.ReadCloser), args.Error(1)
}
func (m *MockBlobStore) URL(key string) string {
	args := m.Called(key)
	return args.String(0)
}
