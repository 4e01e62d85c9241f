package types

// TripPlan aggregates everything the planner derives from a complete intent.
type TripPlan struct {
	Parsed    TripIntent              `json:"parsed"`
	Itinerary Itinerary               `json:"itinerary"`
	Flight    FlightRecommendation    `json:"flight"`
	HotelArea HotelAreaRecommendation `json:"hotelArea"`
}

// PlanResult is the two-branch outcome of planning: either the intent was
// incomplete and follow-up questions must be put to the user, or a full plan
// was assembled. Exactly one branch is populated.
type PlanResult struct {
	FollowUpQuestions []string  `json:"followUpQuestions,omitempty"`
	Plan              *TripPlan `json:"plan,omitempty"`
}

// NeedsFollowUp reports whether the caller must gather more information
// before a plan can be built.
func (r PlanResult) NeedsFollowUp() bool {
	return len(r.FollowUpQuestions) > 0
}
