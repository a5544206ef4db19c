package domain

import "time"

// Client, Vehicle and Agency are reference data: read-only from the
// report workflow's perspective.

type Client struct {
	ID        string    `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	CreatedOn time.Time `json:"created_on"`
}

// FullName returns the client's display name.
func (c *Client) FullName() string {
	return c.FirstName + " " + c.LastName
}

type Vehicle struct {
	ID           string    `json:"id"`
	Registration string    `json:"registration"`
	Brand        string    `json:"brand"`
	Model        string    `json:"model"`
	Color        string    `json:"color,omitempty"`
	Year         int32     `json:"year,omitempty"`
	AgencyID     string    `json:"agency_id,omitempty"`
	CreatedOn    time.Time `json:"created_on"`
}

type Agency struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	CreatedOn time.Time `json:"created_on"`
}
