package handlers

import (
	"context"

	"github.com/TripMitra/trip-mitra-backend/store"
	"github.com/TripMitra/trip-mitra-backend/types"
)

type stubPlanCache struct {
	entries  map[string]types.PlanResult
	setCalls int
}

func newStubPlanCache() *stubPlanCache {
	return &stubPlanCache{entries: make(map[string]types.PlanResult)}
}

func (s *stubPlanCache) key(text string, language types.Language) string {
	return string(language) + ":" + text
}

func (s *stubPlanCache) Get(_ context.Context, text string, language types.Language) (*types.PlanResult, bool) {
	result, ok := s.entries[s.key(text, language)]
	if !ok {
		return nil, false
	}
	return &result, true
}

func (s *stubPlanCache) Set(_ context.Context, text string, language types.Language, result types.PlanResult) {
	s.setCalls++
	s.entries[s.key(text, language)] = result
}

type stubAIService struct {
	enabled bool
	plans   []types.AIDayPlan
	err     error
	calls   int
}

func (s *stubAIService) Enabled() bool {
	return s.enabled
}

func (s *stubAIService) GenerateItinerary(_ context.Context, _ types.TripIntent) ([]types.AIDayPlan, error) {
	s.calls++
	return s.plans, s.err
}

type stubTripStore struct {
	trips     map[string]types.SavedTrip
	order     []string
	createErr error
	listErr   error
}

func newStubTripStore() *stubTripStore {
	return &stubTripStore{trips: make(map[string]types.SavedTrip)}
}

func (s *stubTripStore) Create(_ context.Context, trip types.SavedTrip) (string, error) {
	if s.createErr != nil {
		return "", s.createErr
	}
	id := trip.ID
	if id == "" {
		id = "generated-id"
	}
	trip.ID = id
	s.trips[id] = trip
	s.order = append(s.order, id)
	return id, nil
}

func (s *stubTripStore) GetByID(_ context.Context, id string) (*types.SavedTrip, error) {
	trip, ok := s.trips[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &trip, nil
}

func (s *stubTripStore) List(_ context.Context) ([]types.SavedTrip, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	trips := make([]types.SavedTrip, 0, len(s.order))
	for i := len(s.order) - 1; i >= 0; i-- {
		trips = append(trips, s.trips[s.order[i]])
	}
	return trips, nil
}

func (s *stubTripStore) Delete(_ context.Context, id string) error {
	if _, ok := s.trips[id]; !ok {
		return store.ErrNotFound
	}
	delete(s.trips, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}
