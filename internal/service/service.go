package service

import (
	"context"

	"edl-backend/internal/domain"
)

// ReportInput carries the draft fields of a condition report. Nil numeric
// fields stay unset in storage.
type ReportInput struct {
	RentalID         string           `json:"rental_id"`
	Direction        domain.Direction `json:"direction"`
	Mileage          *int32           `json:"mileage"`
	FuelLevel        *int32           `json:"fuel_level"`
	CleanlinessLevel *int32           `json:"cleanliness_level"`
	Comments         string           `json:"comments"`
	AgentName        string           `json:"agent_name"`
}

type DamageInput struct {
	Location    string                `json:"location"`
	Description string                `json:"description"`
	Severity    domain.DamageSeverity `json:"severity"`
	// IsNew defaults to true for return-direction reports when omitted.
	IsNew *bool `json:"is_new"`
}

type PhotoInput struct {
	PhotoURL    string `json:"photo_url"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

type ReportService interface {
	// Save creates or updates the draft report for (rental, direction).
	Save(ctx context.Context, input ReportInput) (*domain.ConditionReport, error)

	// Complete finalizes a report with both signatures, then synthesizes
	// and dispatches its document. The finalize is hard-fail; everything
	// after the commit is soft-fail and reported through the outcome.
	Complete(ctx context.Context, reportID, clientSigURL, agentSigURL string) (*domain.ConditionReport, domain.DeliveryOutcome, error)

	// Resend re-runs synthesis and dispatch for an already-completed
	// report.
	Resend(ctx context.Context, reportID string) (domain.DeliveryOutcome, error)

	AddDamage(ctx context.Context, reportID string, input DamageInput) (*domain.Damage, error)
	RemoveDamage(ctx context.Context, reportID, damageID string) error
	AddPhoto(ctx context.Context, reportID string, input PhotoInput) (*domain.Photo, error)
}

type RentalService interface {
	ListToday(ctx context.Context, direction domain.Direction) ([]domain.RentalDetails, error)
	Get(ctx context.Context, id string) (*domain.RentalDetails, error)
	SearchHistory(ctx context.Context, filter domain.RentalFilter) ([]domain.RentalDetails, error)
}

type AgencyService interface {
	ListAgencies(ctx context.Context) ([]domain.Agency, error)
}

// Attachment is a file attached to an outgoing email.
type Attachment struct {
	Filename string
	Content  []byte
}

// EmailSender is the delivery-provider contract consumed by the
// dispatcher. Implementations translate provider failures into
// *domain.DeliveryError.
type EmailSender interface {
	Send(ctx context.Context, to, toName, subject, htmlBody string, attachment Attachment) (string, error)
}
