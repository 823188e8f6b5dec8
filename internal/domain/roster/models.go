package roster

import "time"

// Member is one hourly staff member on the canonical roster. Names double
// as identifiers: the daily form keys shift entries by name.
type Member struct {
	Name       string    `json:"name"`
	HourlyRate float64   `json:"hourlyRate"`
	CreatedAt  time.Time `json:"createdAt"`
}
