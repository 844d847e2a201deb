// Package models defines the records written to the sale-event backend.
package models

// Event is the parent record every other seeded row references.
type Event struct {
	// ID is assigned by the backend; empty on create.
	ID string `json:"id,omitempty"`
	// Name is the display name, e.g. "Lincoln CDJR Feb/March 26".
	Name string `json:"name"`
	// Slug is the URL-safe identifier derived from Name.
	Slug     string `json:"slug"`
	Status   string `json:"status"`
	Location string `json:"location"`
	// StartDate and EndDate are ISO dates (YYYY-MM-DD).
	StartDate string  `json:"start_date"`
	EndDate   string  `json:"end_date"`
	Budget    float64 `json:"budget"`
	// CreatedBy is attached only when a profile row is available.
	CreatedBy string `json:"created_by,omitempty"`
}
