package planner

import (
	"testing"

	"github.com/TripMitra/trip-mitra-backend/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecommendHotelArea_ByTravelType(t *testing.T) {
	tests := []struct {
		travelType types.TravelType
		area       string
	}{
		{types.TravelTypeFamily, "near main attractions"},
		{types.TravelTypeCouple, "quiet or scenic area"},
		{types.TravelTypeSolo, "central or lively area"},
		{types.TravelTypeUnknown, "city center"},
	}

	for _, tt := range tests {
		t.Run(string(tt.travelType), func(t *testing.T) {
			rec := RecommendHotelArea(tt.travelType, 3)
			assert.Equal(t, tt.area, rec.Area)
			assert.NotEmpty(t, rec.Reason)
		})
	}
}

func TestRecommendHotelArea_LongStayOverride(t *testing.T) {
	// The override wins for long trips regardless of travel type.
	for _, travelType := range []types.TravelType{
		types.TravelTypeFamily, types.TravelTypeCouple, types.TravelTypeSolo, types.TravelTypeUnknown,
	} {
		rec := RecommendHotelArea(travelType, 6)
		assert.Equal(t, "peaceful residential area", rec.Area, "travelType=%s", travelType)
		assert.Equal(t, "Lamba stay hai toh shanti zaroori hai.", rec.Reason)
	}
}

func TestRecommendHotelArea_OverrideBoundary(t *testing.T) {
	assert.Equal(t, "near main attractions", RecommendHotelArea(types.TravelTypeFamily, 5).Area)
	assert.Equal(t, "peaceful residential area", RecommendHotelArea(types.TravelTypeFamily, 6).Area)
}

func TestRecommendHotels(t *testing.T) {
	hotels := RecommendHotels("goa", types.TravelTypeFamily)

	require.Len(t, hotels, 2)
	assert.Equal(t, "Family Comfort Inn", hotels[0].Name)
	assert.Equal(t, "goa", hotels[0].Location)

	hotels = RecommendHotels("goa", types.TravelTypeSolo)
	require.Len(t, hotels, 2)
	assert.Equal(t, "Hostel", hotels[0].Type)

	hotels = RecommendHotels("goa", types.TravelTypeUnknown)
	require.Len(t, hotels, 2)
	assert.Equal(t, "City Center Hotel", hotels[0].Name)
}

func TestRecommendHotels_MissingDestination(t *testing.T) {
	assert.Empty(t, RecommendHotels("", types.TravelTypeFamily))
}
