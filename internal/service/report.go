package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"edl-backend/internal/document"
	"edl-backend/internal/domain"
	"edl-backend/internal/logger"
	"edl-backend/internal/repository"
	"edl-backend/internal/storage"

	"github.com/google/uuid"
)

// ReportServiceDeps wires the completion workflow. Dispatcher may be nil:
// documents are then generated and stored but never sent, which is a
// supported mode, not an error. Blobs and Outbox are likewise optional;
// without them documents are not persisted and attempts not recorded.
type ReportServiceDeps struct {
	Reports    repository.ReportRepository
	Rentals    repository.RentalRepository
	Outbox     repository.DeliveryAttemptRepository
	Synth      *document.Synthesizer
	Blobs      storage.BlobStore
	Dispatcher *DocumentDispatcher

	// DispatchTimeout bounds one provider call. Defaults to 15s.
	DispatchTimeout time.Duration
	// Clock defaults to time.Now.
	Clock func() time.Time
}

type reportService struct {
	deps ReportServiceDeps
}

func NewReportService(deps ReportServiceDeps) ReportService {
	if deps.Clock == nil {
		deps.Clock = time.Now
	}
	if deps.DispatchTimeout <= 0 {
		deps.DispatchTimeout = 15 * time.Second
	}
	return &reportService{deps: deps}
}

func (s *reportService) Save(ctx context.Context, input ReportInput) (*domain.ConditionReport, error) {
	if input.RentalID == "" {
		return nil, &domain.PreconditionError{Reason: "rental id required"}
	}
	if !input.Direction.Valid() {
		return nil, &domain.PreconditionError{Reason: fmt.Sprintf("unknown direction %q", input.Direction)}
	}

	existing, err := s.deps.Reports.GetByRentalAndDirection(ctx, input.RentalID, input.Direction)
	switch {
	case err == nil:
		if existing.Completed() {
			return nil, &domain.PreconditionError{Reason: "report already completed"}
		}
		applyInput(existing, input)
		if err := s.deps.Reports.Update(ctx, existing); err != nil {
			if errors.Is(err, domain.ErrConflict) {
				return nil, &domain.PreconditionError{Reason: "report already completed"}
			}
			return nil, err
		}
		return existing, nil
	case errors.Is(err, domain.ErrNotFound):
		// first save for this rental+direction
	default:
		return nil, err
	}

	if _, err := s.deps.Rentals.GetByID(ctx, input.RentalID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, &domain.PreconditionError{Reason: "rental not found"}
		}
		return nil, err
	}

	report := &domain.ConditionReport{
		ID:        uuid.NewString(),
		RentalID:  input.RentalID,
		Direction: input.Direction,
	}
	applyInput(report, input)
	if err := s.deps.Reports.Create(ctx, report); err != nil {
		return nil, err
	}
	return report, nil
}

func applyInput(report *domain.ConditionReport, input ReportInput) {
	report.Mileage = input.Mileage
	report.FuelLevel = input.FuelLevel
	report.CleanlinessLevel = input.CleanlinessLevel
	report.Comments = input.Comments
	report.AgentName = input.AgentName
}

// Complete is the single {incomplete} -> {completed} transition. Failures
// before or during the finalize write are hard; anything after the commit
// only degrades the delivery outcome.
func (s *reportService) Complete(ctx context.Context, reportID, clientSigURL, agentSigURL string) (*domain.ConditionReport, domain.DeliveryOutcome, error) {
	var outcome domain.DeliveryOutcome
	if strings.TrimSpace(clientSigURL) == "" || strings.TrimSpace(agentSigURL) == "" {
		return nil, outcome, &domain.PreconditionError{Reason: "signatures required"}
	}

	completedAt := s.deps.Clock().UTC()
	report, err := s.deps.Reports.Finalize(ctx, reportID, clientSigURL, agentSigURL, completedAt)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return nil, outcome, &domain.PreconditionError{Reason: "report not found"}
	case errors.Is(err, domain.ErrConflict):
		return nil, outcome, &domain.PreconditionError{Reason: "report already completed"}
	case err != nil:
		return nil, outcome, &domain.PersistenceError{Err: err}
	}
	logger.Info("condition report finalized", "report_id", report.ID, "direction", report.Direction)

	outcome = s.dispatchDocument(ctx, report)
	return report, outcome, nil
}

func (s *reportService) Resend(ctx context.Context, reportID string) (domain.DeliveryOutcome, error) {
	var outcome domain.DeliveryOutcome
	report, err := s.deps.Reports.GetByID(ctx, reportID)
	if errors.Is(err, domain.ErrNotFound) {
		return outcome, &domain.PreconditionError{Reason: "report not found"}
	}
	if err != nil {
		return outcome, err
	}
	if !report.Completed() {
		return outcome, &domain.PreconditionError{Reason: "report not completed"}
	}
	return s.dispatchDocument(ctx, report), nil
}

// dispatchDocument loads the snapshot, renders and stores the document,
// then attempts delivery. Every path records an outbox row; no error here
// escapes as an operation failure.
func (s *reportService) dispatchDocument(ctx context.Context, report *domain.ConditionReport) domain.DeliveryOutcome {
	var outcome domain.DeliveryOutcome

	snap, err := s.deps.Reports.GetSnapshot(ctx, report.ID)
	if err != nil {
		outcome.Error = fmt.Sprintf("snapshot load failed: %v", err)
		logger.Error("failed to load report snapshot", "report_id", report.ID, "error", err)
		s.recordAttempt(ctx, report.ID, domain.DeliveryStatusFailed, outcome.Error)
		return outcome
	}

	doc, err := s.deps.Synth.Render(snap, s.deps.Clock().UTC())
	if err != nil {
		outcome.Error = fmt.Sprintf("document synthesis failed: %v", err)
		logger.Error("failed to synthesize report document", "report_id", report.ID, "error", err)
		s.recordAttempt(ctx, report.ID, domain.DeliveryStatusFailed, outcome.Error)
		return outcome
	}

	s.storeDocument(ctx, report, doc)

	if s.deps.Dispatcher == nil {
		outcome.Skipped = true
		logger.Info("delivery provider not configured, document generated but not sent", "report_id", report.ID)
		s.recordAttempt(ctx, report.ID, domain.DeliveryStatusSkipped, "")
		return outcome
	}

	dispatchCtx, cancel := context.WithTimeout(ctx, s.deps.DispatchTimeout)
	defer cancel()
	if _, err := s.deps.Dispatcher.Dispatch(dispatchCtx, snap, doc); err != nil {
		outcome.Error = err.Error()
		logger.Error("report document delivery failed", "report_id", report.ID, "error", err)
		s.recordAttempt(ctx, report.ID, domain.DeliveryStatusFailed, outcome.Error)
		return outcome
	}

	outcome.Delivered = true
	logger.Info("report document delivered", "report_id", report.ID, "to", snap.Client.Email)
	s.recordAttempt(ctx, report.ID, domain.DeliveryStatusSent, "")
	return outcome
}

// storeDocument keeps a copy of the generated document in blob storage so
// it can be retrieved without regenerating. Failures are logged only.
func (s *reportService) storeDocument(ctx context.Context, report *domain.ConditionReport, doc []byte) {
	if s.deps.Blobs == nil {
		return
	}
	key := fmt.Sprintf("documents/%s.html", report.ID)
	url, err := s.deps.Blobs.Save(ctx, key, bytes.NewReader(doc))
	if err != nil {
		logger.Warn("failed to store report document", "report_id", report.ID, "error", err)
		return
	}
	if err := s.deps.Reports.SetDocumentURL(ctx, report.ID, url); err != nil {
		logger.Warn("failed to save document url", "report_id", report.ID, "error", err)
		return
	}
	report.DocumentURL = url
}

func (s *reportService) recordAttempt(ctx context.Context, reportID string, status domain.DeliveryStatus, errMsg string) {
	if s.deps.Outbox == nil {
		return
	}
	attempt := &domain.DeliveryAttempt{
		ID:            uuid.NewString(),
		ReportID:      reportID,
		Status:        status,
		Error:         errMsg,
		LastAttemptAt: s.deps.Clock().UTC(),
	}
	if err := s.deps.Outbox.Record(ctx, attempt); err != nil {
		logger.Warn("failed to record delivery attempt", "report_id", reportID, "error", err)
	}
}

func (s *reportService) AddDamage(ctx context.Context, reportID string, input DamageInput) (*domain.Damage, error) {
	report, err := s.parentReport(ctx, reportID)
	if err != nil {
		return nil, err
	}
	if input.Location == "" || input.Description == "" {
		return nil, &domain.PreconditionError{Reason: "damage location and description required"}
	}
	switch input.Severity {
	case domain.SeverityMinor, domain.SeverityModerate, domain.SeveritySevere:
	default:
		return nil, &domain.PreconditionError{Reason: fmt.Sprintf("unknown severity %q", input.Severity)}
	}

	isNew := report.Direction == domain.DirectionReturn
	if input.IsNew != nil {
		isNew = *input.IsNew
	}
	damage := &domain.Damage{
		ID:          uuid.NewString(),
		ReportID:    report.ID,
		Location:    input.Location,
		Description: input.Description,
		Severity:    input.Severity,
		IsNew:       isNew,
	}
	if err := s.deps.Reports.AddDamage(ctx, damage); err != nil {
		return nil, err
	}
	return damage, nil
}

func (s *reportService) RemoveDamage(ctx context.Context, reportID, damageID string) error {
	if _, err := s.parentReport(ctx, reportID); err != nil {
		return err
	}
	return s.deps.Reports.RemoveDamage(ctx, reportID, damageID)
}

func (s *reportService) AddPhoto(ctx context.Context, reportID string, input PhotoInput) (*domain.Photo, error) {
	report, err := s.parentReport(ctx, reportID)
	if err != nil {
		return nil, err
	}
	if input.PhotoURL == "" {
		return nil, &domain.PreconditionError{Reason: "photo url required"}
	}
	category := input.Category
	if category == "" {
		category = "general"
	}
	photo := &domain.Photo{
		ID:          uuid.NewString(),
		ReportID:    report.ID,
		PhotoURL:    input.PhotoURL,
		Category:    category,
		Description: input.Description,
	}
	if err := s.deps.Reports.AddPhoto(ctx, photo); err != nil {
		return nil, err
	}
	return photo, nil
}

// parentReport enforces that children attach only to a saved, non-terminal
// report.
func (s *reportService) parentReport(ctx context.Context, reportID string) (*domain.ConditionReport, error) {
	report, err := s.deps.Reports.GetByID(ctx, reportID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, &domain.PreconditionError{Reason: "report not found"}
	}
	if err != nil {
		return nil, err
	}
	if report.Completed() {
		return nil, &domain.PreconditionError{Reason: "report already completed"}
	}
	return report, nil
}
