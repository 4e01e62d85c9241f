package types

import "time"

// SavedTrip is a trip plan persisted under a user-chosen name ("My Trips").
type SavedTrip struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	InputText string    `json:"inputText"`
	Language  Language  `json:"language"`
	Plan      TripPlan  `json:"plan"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
