package domain

import "time"

// Direction tells which leg of the rental a condition report documents.
type Direction string

const (
	DirectionDeparture Direction = "departure"
	DirectionReturn    Direction = "return"
)

// Valid reports whether d is one of the two known directions.
func (d Direction) Valid() bool {
	return d == DirectionDeparture || d == DirectionReturn
}

type DamageSeverity string

const (
	SeverityMinor    DamageSeverity = "minor"
	SeverityModerate DamageSeverity = "moderate"
	SeveritySevere   DamageSeverity = "severe"
)

// ConditionReport is one état des lieux: at most one per (rental,
// direction). Drafts are mutable; once CompletedAt is set the record is
// terminal and no further field mutation is permitted.
type ConditionReport struct {
	ID                 string     `json:"id"`
	RentalID           string     `json:"rental_id"`
	Direction          Direction  `json:"direction"`
	Mileage            *int32     `json:"mileage,omitempty"`
	FuelLevel          *int32     `json:"fuel_level,omitempty"`
	CleanlinessLevel   *int32     `json:"cleanliness_level,omitempty"`
	Comments           string     `json:"comments,omitempty"`
	AgentName          string     `json:"agent_name,omitempty"`
	ClientSignatureURL string     `json:"client_signature_url,omitempty"`
	AgentSignatureURL  string     `json:"agent_signature_url,omitempty"`
	DocumentURL        string     `json:"document_url,omitempty"`
	CompletedAt        *time.Time `json:"completed_at,omitempty"`
	CreatedOn          time.Time  `json:"created_on"`
	UpdatedOn          time.Time  `json:"updated_on"`

	// Owned children, populated on detail loads.
	Damages []Damage `json:"damages,omitempty"`
	Photos  []Photo  `json:"photos,omitempty"`
}

// Completed reports whether the record reached its terminal state.
func (r *ConditionReport) Completed() bool {
	return r.CompletedAt != nil
}

// Damage belongs to exactly one condition report. Location is free text;
// the UI offers a fixed catalogue of vehicle zones but the data layer does
// not enforce it.
type Damage struct {
	ID          string         `json:"id"`
	ReportID    string         `json:"report_id"`
	Location    string         `json:"location"`
	Description string         `json:"description"`
	Severity    DamageSeverity `json:"severity"`
	IsNew       bool           `json:"is_new"`
	CreatedOn   time.Time      `json:"created_on"`
}

// Photo belongs to exactly one condition report.
type Photo struct {
	ID          string    `json:"id"`
	ReportID    string    `json:"report_id"`
	PhotoURL    string    `json:"photo_url"`
	Category    string    `json:"category"`
	Description string    `json:"description,omitempty"`
	CreatedOn   time.Time `json:"created_on"`
}

// Snapshot is the fully joined, read-only view of a condition report and
// everything needed to render its document. It is assembled by a dedicated
// loader; the raw store response never crosses that boundary.
type Snapshot struct {
	Report  ConditionReport `json:"report"`
	Rental  Rental          `json:"rental"`
	Client  Client          `json:"client"`
	Vehicle Vehicle         `json:"vehicle"`
	Agency  Agency          `json:"agency"`
	Damages []Damage        `json:"damages"`
	Photos  []Photo         `json:"photos"`
}

// DeliveryOutcome reports what happened to the document after a successful
// finalize. It is a flag, not an error: completion is irreversible and
// independent of delivery.
type DeliveryOutcome struct {
	Delivered bool   `json:"delivered"`
	Skipped   bool   `json:"skipped,omitempty"` // no provider configured; document generated, not sent
	Error     string `json:"delivery_error,omitempty"`
}

type DeliveryStatus string

const (
	DeliveryStatusSent    DeliveryStatus = "sent"
	DeliveryStatusFailed  DeliveryStatus = "failed"
	DeliveryStatusSkipped DeliveryStatus = "skipped"
)

// DeliveryAttempt is the outbox row for one report's dispatch history.
// Failed attempts are retried by a scheduled job up to a configured cap.
type DeliveryAttempt struct {
	ID            string         `json:"id"`
	ReportID      string         `json:"report_id"`
	Status        DeliveryStatus `json:"status"`
	Error         string         `json:"error,omitempty"`
	Attempts      int32          `json:"attempts"`
	LastAttemptAt time.Time      `json:"last_attempt_at"`
}
