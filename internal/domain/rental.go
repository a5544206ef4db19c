package domain

import "time"

type RentalStatus string

const (
	RentalStatusPending    RentalStatus = "pending"
	RentalStatusInProgress RentalStatus = "in_progress"
	RentalStatusCompleted  RentalStatus = "completed"
	RentalStatusCancelled  RentalStatus = "cancelled"
)

// Rental identifies one vehicle-loan event. Identity is immutable once a
// condition report references it.
type Rental struct {
	ID                string       `json:"id"`
	ClientID          string       `json:"client_id"`
	VehicleID         string       `json:"vehicle_id"`
	AgencyID          string       `json:"agency_id"`
	DepartureDate     time.Time    `json:"departure_date"`
	ReturnDate        time.Time    `json:"return_date"`
	Status            RentalStatus `json:"status"`
	ExternalReference string       `json:"external_reference,omitempty"`
	CreatedOn         time.Time    `json:"created_on"`
	UpdatedOn         time.Time    `json:"updated_on"`
}

// Reference returns the rental's external reference, falling back to a
// short prefix of its identifier when none was recorded.
func (r *Rental) Reference() string {
	if r.ExternalReference != "" {
		return r.ExternalReference
	}
	if len(r.ID) >= 8 {
		return r.ID[:8]
	}
	return r.ID
}

// RentalDetails is a rental joined with its reference data and, when
// loaded, its condition reports for both directions.
type RentalDetails struct {
	Rental
	Client          Client           `json:"client"`
	Vehicle         Vehicle          `json:"vehicle"`
	Agency          Agency           `json:"agency"`
	DepartureReport *ConditionReport `json:"departure_report,omitempty"`
	ReturnReport    *ConditionReport `json:"return_report,omitempty"`
}

// RentalFilter narrows a history search. Zero-value fields are ignored.
type RentalFilter struct {
	ClientName          string
	VehicleRegistration string
	AgencyID            string
	DateFrom            *time.Time
	DateTo              *time.Time
}
