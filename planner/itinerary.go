package planner

import (
	"math"

	"github.com/TripMitra/trip-mitra-backend/types"
)

// defaultDays is used when the intent carries no day count. Itinerary
// generation treats a missing day count as a fallback default, not an error.
const defaultDays = 3

// exploreShare is the fraction of interior days spent exploring before the
// trip winds down into relaxation.
const exploreShare = 0.7

// Activity catalogs are fixed-size circular buffers; days rotate through them
// by modulo indexing, so output is fully deterministic for a given day count.
var exploreActivities = []string{
	"Explore iconic landmarks and local neighborhoods",
	"Discover hidden gems and cultural hotspots",
	"Wander through markets and taste authentic cuisine",
	"Experience adventure activities and outdoor spots",
	"Visit museums, galleries, and heritage sites",
}

var relaxActivities = []string{
	"Unwind at scenic viewpoints and cafes",
	"Enjoy leisurely walks and spa time",
	"Savor sunset views and fine dining",
	"Relax by the beach or pool",
}

var arrivalActivities = map[types.TravelType]string{
	types.TravelTypeFamily: "Arrive, check in, and settle with the family",
	types.TravelTypeCouple: "Arrive, check in, and enjoy a romantic evening",
	types.TravelTypeSolo:   "Arrive, check in, and take an evening stroll",
}

const (
	defaultArrivalActivity = "Arrive, check in, and explore nearby"
	departureActivity      = "Morning at leisure, pack up, and head home"
)

// GenerateItinerary builds a day-by-day plan from a (possibly partial)
// intent. Day 1 is always an arrival day themed by travel type, the last day
// is always departure, and interior days split roughly 70/30 between
// exploring and relaxing. Missing cities fall back to placeholder labels.
func GenerateItinerary(intent types.TripIntent) types.Itinerary {
	days := intent.NumberOfDays
	if days == 0 {
		days = defaultDays
	}

	source := intent.SourceCity
	if source == "" {
		source = "your city"
	}
	destination := intent.DestinationCity
	if destination == "" {
		destination = "destination"
	}

	plan := make([]types.DayPlan, 0, max(days, 0))
	for i := 1; i <= days; i++ {
		plan = append(plan, dayPlan(i, days, intent.TravelType))
	}

	return types.Itinerary{
		Source:      source,
		Destination: destination,
		Days:        days,
		TravelType:  intent.TravelType,
		Plan:        plan,
	}
}

// dayPlan fills a single itinerary day. The day-1 branch is checked before
// the last-day branch, so a one-day trip gets the arrival activity.
func dayPlan(day, totalDays int, travelType types.TravelType) types.DayPlan {
	if day == 1 {
		activity, ok := arrivalActivities[travelType]
		if !ok {
			activity = defaultArrivalActivity
		}
		return types.DayPlan{Day: day, Activity: activity, Purpose: types.DayPurposeTravel}
	}

	if day == totalDays {
		return types.DayPlan{Day: day, Activity: departureActivity, Purpose: types.DayPurposeTravel}
	}

	middleDay := day - 1
	totalMiddleDays := totalDays - 2

	if totalMiddleDays == 1 {
		// A single interior day is always spent exploring.
		return types.DayPlan{Day: day, Activity: exploreActivities[0], Purpose: types.DayPurposeExplore}
	}

	exploreDays := int(math.Ceil(float64(totalMiddleDays) * exploreShare))
	if middleDay <= exploreDays {
		activity := exploreActivities[(middleDay-1)%len(exploreActivities)]
		return types.DayPlan{Day: day, Activity: activity, Purpose: types.DayPurposeExplore}
	}

	activity := relaxActivities[(middleDay-exploreDays-1)%len(relaxActivities)]
	return types.DayPlan{Day: day, Activity: activity, Purpose: types.DayPurposeRelax}
}

// GenerateSimpleItinerary produces the lightweight one-line-per-day variant
// used by chat surfaces that only need plan text.
func GenerateSimpleItinerary(numberOfDays int, travelType types.TravelType) []types.SimpleDayPlan {
	if travelType == "" {
		travelType = types.TravelTypeUnknown
	}
	days := numberOfDays
	if days == 0 {
		days = 1
	}

	plans := make([]types.SimpleDayPlan, 0, max(days, 0))
	for i := 1; i <= days; i++ {
		plans = append(plans, types.SimpleDayPlan{Day: i, Plan: simpleDayText(i, days, travelType)})
	}
	return plans
}

func simpleDayText(day, totalDays int, travelType types.TravelType) string {
	switch {
	case day == 1:
		switch travelType {
		case types.TravelTypeFamily:
			return "Arrival, rest, and family bonding"
		case types.TravelTypeCouple:
			return "Arrival and relax together"
		case types.TravelTypeSolo:
			return "Arrival and chill solo"
		default:
			return "Arrival and rest"
		}
	case day == totalDays:
		switch travelType {
		case types.TravelTypeFamily:
			return "Pack up, family breakfast, and return"
		case types.TravelTypeCouple:
			return "Leisure morning and return"
		case types.TravelTypeSolo:
			return "Explore, relax, and return"
		default:
			return "Explore and return"
		}
	default:
		switch travelType {
		case types.TravelTypeFamily:
			return "Family sightseeing and fun"
		case types.TravelTypeCouple:
			return "Explore and enjoy together"
		case types.TravelTypeSolo:
			return "Solo exploring and relaxing"
		default:
			return "Sightseeing and relaxing"
		}
	}
}
