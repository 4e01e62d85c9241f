package planner

import "github.com/TripMitra/trip-mitra-backend/types"

// longStayDays is the trip length beyond which a peaceful residential area
// is recommended regardless of travel type.
const longStayDays = 5

// RecommendHotelArea picks a stay area for the travel type, then applies the
// long-stay override: trips longer than five days always get the peaceful
// residential area, whatever the base branch chose.
func RecommendHotelArea(travelType types.TravelType, numberOfDays int) types.HotelAreaRecommendation {
	var rec types.HotelAreaRecommendation
	switch travelType {
	case types.TravelTypeFamily:
		rec = types.HotelAreaRecommendation{
			Area:   "near main attractions",
			Reason: "Family ke saath ho toh sab jagah aasani se ja sakte ho.",
		}
	case types.TravelTypeCouple:
		rec = types.HotelAreaRecommendation{
			Area:   "quiet or scenic area",
			Reason: "Couple trip hai, toh shanti aur privacy milegi.",
		}
	case types.TravelTypeSolo:
		rec = types.HotelAreaRecommendation{
			Area:   "central or lively area",
			Reason: "Solo ho toh safe aur happening jagah pe raho.",
		}
	default:
		rec = types.HotelAreaRecommendation{
			Area:   "city center",
			Reason: "Yahan se sab kuch aasaan hai.",
		}
	}

	if numberOfDays > longStayDays {
		rec = types.HotelAreaRecommendation{
			Area:   "peaceful residential area",
			Reason: "Lamba stay hai toh shanti zaroori hai.",
		}
	}
	return rec
}

// RecommendHotels returns mock property suggestions for the destination,
// themed by travel type. A destination is required; otherwise the list is
// empty.
func RecommendHotels(destinationCity string, travelType types.TravelType) []types.HotelOption {
	if destinationCity == "" {
		return []types.HotelOption{}
	}
	city := destinationCity
	switch travelType {
	case types.TravelTypeFamily:
		return []types.HotelOption{
			{Name: "Family Comfort Inn", Type: "Hotel", Location: city, Note: "Family rooms available"},
			{Name: "Kids Friendly Resort", Type: "Resort", Location: city, Note: "Play area for kids"},
		}
	case types.TravelTypeCouple:
		return []types.HotelOption{
			{Name: "Romantic Retreat", Type: "Hotel", Location: city, Note: "Couple packages available"},
			{Name: "Lovers Paradise", Type: "Resort", Location: city, Note: "Private suites"},
		}
	case types.TravelTypeSolo:
		return []types.HotelOption{
			{Name: "Solo Stay", Type: "Hostel", Location: city, Note: "Meet other travelers"},
			{Name: "Budget Inn", Type: "Hotel", Location: city, Note: "Affordable and safe"},
		}
	default:
		return []types.HotelOption{
			{Name: "City Center Hotel", Type: "Hotel", Location: city, Note: "Good location"},
			{Name: "Standard Guesthouse", Type: "Guesthouse", Location: city, Note: "Simple and clean"},
		}
	}
}
