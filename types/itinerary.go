package types

// DayPurpose classifies an itinerary day for theming and iconography.
type DayPurpose string

const (
	DayPurposeTravel  DayPurpose = "travel"
	DayPurposeExplore DayPurpose = "explore"
	DayPurposeRelax   DayPurpose = "relax"
)

// DayPlan is a single itinerary entry. Day numbers are 1-based and contiguous.
type DayPlan struct {
	Day      int        `json:"day"`
	Activity string     `json:"activity"`
	Purpose  DayPurpose `json:"purpose"`
}

// Itinerary is a complete day-by-day plan for a trip.
type Itinerary struct {
	Source      string     `json:"source"`
	Destination string     `json:"destination"`
	Days        int        `json:"days"`
	TravelType  TravelType `json:"travelType"`
	Plan        []DayPlan  `json:"plan"`
}

// SimpleDayPlan is a generic single-line plan entry, used by the lightweight
// itinerary variant.
type SimpleDayPlan struct {
	Day  int    `json:"day"`
	Plan string `json:"plan"`
}

// AIDayPlan is the shape an AI itinerary generator must produce for each day
// to stay compatible with the deterministic fallback. Responses that fail to
// validate against it are discarded and the template output is used instead.
type AIDayPlan struct {
	Day   int    `json:"day"`
	Title string `json:"title"`
	Plan  string `json:"plan"`
}
