package planner

import "github.com/TripMitra/trip-mitra-backend/types"

// CreateTripPlan is the single entry point of the planning pipeline. It
// parses the input text and, if any required slot is missing, returns the
// follow-up questions without computing the rest of the plan. Otherwise it
// assembles the full trip plan. Callers handle the two branches by either
// re-prompting the user (appending the answer to the original text and
// calling again) or rendering the plan; the pipeline itself is stateless and
// re-runs from scratch on every call.
func CreateTripPlan(inputText string, language types.Language) types.PlanResult {
	parsed := ParseTravelInput(inputText)

	followUps := FollowUpQuestions(parsed, language)
	if len(followUps) > 0 {
		return types.PlanResult{FollowUpQuestions: followUps}
	}

	plan := assemblePlan(parsed)
	return types.PlanResult{Plan: &plan}
}

// PlanTrip assembles a plan unconditionally, without the follow-up gate.
// Missing fields fall through to the generators' placeholder defaults. Used
// by surfaces that always want something to show, such as the AI
// augmentation path.
func PlanTrip(inputText string) types.TripPlan {
	return assemblePlan(ParseTravelInput(inputText))
}

func assemblePlan(parsed types.TripIntent) types.TripPlan {
	return types.TripPlan{
		Parsed:    parsed,
		Itinerary: GenerateItinerary(parsed),
		Flight:    RecommendFlight(parsed.TravelType),
		HotelArea: RecommendHotelArea(parsed.TravelType, parsed.NumberOfDays),
	}
}
