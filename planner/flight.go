package planner

import "github.com/TripMitra/trip-mitra-backend/types"

// RecommendFlight maps a travel type to a flight timing/stop-count pair with
// a rationale. Pure four-branch switch, no external state.
func RecommendFlight(travelType types.TravelType) types.FlightRecommendation {
	switch travelType {
	case types.TravelTypeFamily:
		return types.FlightRecommendation{
			Timing:      types.FlightTimingMorning,
			Type:        types.FlightTypeDirect,
			Explanation: "Family ke saath travel hai, toh morning ka direct flight best rahega.",
		}
	case types.TravelTypeCouple:
		return types.FlightRecommendation{
			Timing:      types.FlightTimingEvening,
			Type:        types.FlightTypeDirect,
			Explanation: "Couple ke liye evening ka direct flight romantic hoga.",
		}
	case types.TravelTypeSolo:
		return types.FlightRecommendation{
			Timing:      types.FlightTimingMorning,
			Type:        types.FlightTypeOneStop,
			Explanation: "Solo trip hai, toh morning ka one-stop flight bhi sahi hai.",
		}
	default:
		return types.FlightRecommendation{
			Timing:      types.FlightTimingMorning,
			Type:        types.FlightTypeDirect,
			Explanation: "Morning ka direct flight convenient rahega.",
		}
	}
}

// RecommendFlightOptions returns mock bookable flights between the two
// cities. Both cities are required; otherwise the list is empty.
func RecommendFlightOptions(sourceCity, destinationCity string) []types.FlightOption {
	if sourceCity == "" || destinationCity == "" {
		return []types.FlightOption{}
	}
	return []types.FlightOption{
		{Airline: "IndiGo", From: sourceCity, To: destinationCity, Price: "₹4500", Duration: "2h 15m"},
		{Airline: "Air India", From: sourceCity, To: destinationCity, Price: "₹5200", Duration: "2h 10m"},
		{Airline: "Vistara", From: sourceCity, To: destinationCity, Price: "₹4800", Duration: "2h 20m"},
	}
}
