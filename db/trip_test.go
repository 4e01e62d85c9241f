package db

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/TripMitra/trip-mitra-backend/store"
	"github.com/TripMitra/trip-mitra-backend/types"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePlan() types.TripPlan {
	return types.TripPlan{
		Parsed: types.TripIntent{
			SourceCity:      "mumbai",
			DestinationCity: "goa",
			NumberOfDays:    4,
			TravelType:      types.TravelTypeFamily,
		},
		Itinerary: types.Itinerary{
			Source:      "mumbai",
			Destination: "goa",
			Days:        4,
			TravelType:  types.TravelTypeFamily,
		},
		Flight: types.FlightRecommendation{
			Timing: types.FlightTimingMorning,
			Type:   types.FlightTypeDirect,
		},
		HotelArea: types.HotelAreaRecommendation{
			Area: "city centre, close to family-friendly attractions",
		},
	}
}

func TestTripDB_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	tdb := NewTripDB(mock)

	trip := types.SavedTrip{
		Name:      "Goa with family",
		InputText: "Planning a trip from mumbai to goa for 4 days with family",
		Language:  types.LanguageEnglish,
		Plan:      samplePlan(),
	}

	planJSON, err := json.Marshal(trip.Plan)
	require.NoError(t, err)

	mock.ExpectExec("INSERT INTO saved_trips").
		WithArgs(pgxmock.AnyArg(), trip.Name, trip.InputText, "english", planJSON).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	id, err := tdb.Create(context.Background(), trip)
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTripDB_Create_KeepsProvidedID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	tdb := NewTripDB(mock)

	trip := types.SavedTrip{
		ID:        "11111111-2222-3333-4444-555555555555",
		Name:      "Goa with family",
		InputText: "mumbai to goa 4 days with family",
		Language:  types.LanguageEnglish,
		Plan:      samplePlan(),
	}

	mock.ExpectExec("INSERT INTO saved_trips").
		WithArgs(trip.ID, trip.Name, trip.InputText, "english", pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	id, err := tdb.Create(context.Background(), trip)
	require.NoError(t, err)
	assert.Equal(t, trip.ID, id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTripDB_GetByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	tdb := NewTripDB(mock)

	planJSON, err := json.Marshal(samplePlan())
	require.NoError(t, err)

	now := time.Now()
	rows := pgxmock.NewRows([]string{
		"id", "name", "input_text", "language", "plan", "created_at", "updated_at",
	}).AddRow(
		"trip-1", "Goa with family", "mumbai to goa 4 days with family",
		"hinglish", planJSON, now, now,
	)

	mock.ExpectQuery("SELECT (.+) FROM saved_trips").
		WithArgs("trip-1").
		WillReturnRows(rows)

	trip, err := tdb.GetByID(context.Background(), "trip-1")
	require.NoError(t, err)
	assert.Equal(t, "trip-1", trip.ID)
	assert.Equal(t, "Goa with family", trip.Name)
	assert.Equal(t, types.LanguageHinglish, trip.Language)
	assert.Equal(t, "goa", trip.Plan.Parsed.DestinationCity)
	assert.Equal(t, 4, trip.Plan.Itinerary.Days)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTripDB_GetByID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	tdb := NewTripDB(mock)

	mock.ExpectQuery("SELECT (.+) FROM saved_trips").
		WithArgs("missing").
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "name", "input_text", "language", "plan", "created_at", "updated_at",
		}))

	trip, err := tdb.GetByID(context.Background(), "missing")
	assert.Nil(t, trip)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestTripDB_List(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	tdb := NewTripDB(mock)

	planJSON, err := json.Marshal(samplePlan())
	require.NoError(t, err)

	now := time.Now()
	rows := pgxmock.NewRows([]string{
		"id", "name", "input_text", "language", "plan", "created_at", "updated_at",
	}).
		AddRow("trip-2", "Manali solo", "solo trip to manali", "english", planJSON, now, now).
		AddRow("trip-1", "Goa with family", "mumbai to goa 4 days", "english", planJSON, now.Add(-time.Hour), now.Add(-time.Hour))

	mock.ExpectQuery("SELECT (.+) FROM saved_trips").
		WillReturnRows(rows)

	trips, err := tdb.List(context.Background())
	require.NoError(t, err)
	require.Len(t, trips, 2)
	assert.Equal(t, "trip-2", trips[0].ID)
	assert.Equal(t, "trip-1", trips[1].ID)
}

func TestTripDB_List_Empty(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	tdb := NewTripDB(mock)

	mock.ExpectQuery("SELECT (.+) FROM saved_trips").
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "name", "input_text", "language", "plan", "created_at", "updated_at",
		}))

	trips, err := tdb.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, trips)
	assert.NotNil(t, trips)
}

func TestTripDB_Delete(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	tdb := NewTripDB(mock)

	mock.ExpectExec("DELETE FROM saved_trips").
		WithArgs("trip-1").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	err = tdb.Delete(context.Background(), "trip-1")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTripDB_Delete_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	tdb := NewTripDB(mock)

	mock.ExpectExec("DELETE FROM saved_trips").
		WithArgs("missing").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err = tdb.Delete(context.Background(), "missing")
	assert.ErrorIs(t, err, store.ErrNotFound)
}
