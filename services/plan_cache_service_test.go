package services

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/TripMitra/trip-mitra-backend/planner"
	"github.com/TripMitra/trip-mitra-backend/types"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanCacheService_SetAndGet(t *testing.T) {
	client, mock := redismock.NewClientMock()
	service := NewPlanCacheService(client, time.Hour)

	result := planner.CreateTripPlan("5 days from Mumbai to Goa", types.LanguageEnglish)
	data, err := json.Marshal(result)
	require.NoError(t, err)

	key := service.cacheKey("5 days from Mumbai to Goa", types.LanguageEnglish)
	mock.ExpectSet(key, data, time.Hour).SetVal("OK")
	service.Set(context.Background(), "5 days from Mumbai to Goa", types.LanguageEnglish, result)

	mock.ExpectGet(key).SetVal(string(data))
	cached, ok := service.Get(context.Background(), "5 days from Mumbai to Goa", types.LanguageEnglish)
	require.True(t, ok)
	assert.Equal(t, result, *cached)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPlanCacheService_Miss(t *testing.T) {
	client, mock := redismock.NewClientMock()
	service := NewPlanCacheService(client, time.Hour)

	key := service.cacheKey("trip to goa", types.LanguageEnglish)
	mock.ExpectGet(key).RedisNil()

	_, ok := service.Get(context.Background(), "trip to goa", types.LanguageEnglish)
	assert.False(t, ok)
}

func TestPlanCacheService_CorruptEntryIgnored(t *testing.T) {
	client, mock := redismock.NewClientMock()
	service := NewPlanCacheService(client, time.Hour)

	key := service.cacheKey("trip to goa", types.LanguageEnglish)
	mock.ExpectGet(key).SetVal("{not json")

	_, ok := service.Get(context.Background(), "trip to goa", types.LanguageEnglish)
	assert.False(t, ok)
}

func TestPlanCacheService_KeyNormalization(t *testing.T) {
	client, _ := redismock.NewClientMock()
	service := NewPlanCacheService(client, time.Hour)

	// Case and surrounding whitespace don't change the key; language does.
	assert.Equal(t,
		service.cacheKey("Trip To Goa", types.LanguageEnglish),
		service.cacheKey("  trip to goa  ", types.LanguageEnglish))
	assert.NotEqual(t,
		service.cacheKey("trip to goa", types.LanguageEnglish),
		service.cacheKey("trip to goa", types.LanguageHindi))
}
