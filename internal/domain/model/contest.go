// Package model contains domain models passed between layers.
package model

import "time"

// Organizer is the entity hosting a contest.
type Organizer struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Logo        string `json:"logo,omitempty"`
	Description string `json:"description,omitempty"`
	Location    string `json:"location,omitempty"`
}

// Contest is a livestock contest as listed publicly.
// Optional instants are nil when the backend omitted them or sent a value
// that could not be parsed.
type Contest struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url,omitempty"`

	StartDate         *time.Time `json:"start_date,omitempty"`
	EndDate           *time.Time `json:"end_date,omitempty"`
	RegistrationStart *time.Time `json:"registration_start,omitempty"`
	RegistrationEnd   *time.Time `json:"registration_end,omitempty"`

	Location    string   `json:"location,omitempty"`
	AnimalTypes []string `json:"animal_types"`
	EntryFee    *float64 `json:"entry_fee,omitempty"`
	Active      bool     `json:"active"`

	Organizer        Organizer  `json:"organizer"`
	ParticipantCount int        `json:"participant_count"`
	CreatedAt        *time.Time `json:"created_at,omitempty"`
}

// HasRegistrationWindow reports whether both registration bounds are known.
func (c *Contest) HasRegistrationWindow() bool {
	return c.RegistrationStart != nil && c.RegistrationEnd != nil
}
