package types

// FlightTiming is the recommended departure window.
type FlightTiming string

const (
	FlightTimingMorning FlightTiming = "morning"
	FlightTimingEvening FlightTiming = "evening"
)

// FlightType is the recommended stop count.
type FlightType string

const (
	FlightTypeDirect  FlightType = "direct"
	FlightTypeOneStop FlightType = "one-stop"
)

// FlightRecommendation pairs a timing/stop-count choice with a rationale,
// derived purely from the travel type.
type FlightRecommendation struct {
	Timing      FlightTiming `json:"timing"`
	Type        FlightType   `json:"type"`
	Explanation string       `json:"explanation"`
}

// HotelAreaRecommendation names a stay area and the reason it suits the trip.
type HotelAreaRecommendation struct {
	Area   string `json:"area"`
	Reason string `json:"reason"`
}

// FlightOption is a mock bookable flight between two cities.
type FlightOption struct {
	Airline  string `json:"airline"`
	From     string `json:"from"`
	To       string `json:"to"`
	Price    string `json:"price"`
	Duration string `json:"duration"`
}

// HotelOption is a mock property suggestion for the destination.
type HotelOption struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Location string `json:"location"`
	Note     string `json:"note"`
}
