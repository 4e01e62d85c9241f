// Package store defines the persistence interfaces the service depends on.
// Concrete implementations live in the db package.
package store

import (
	"context"

	"github.com/TripMitra/trip-mitra-backend/types"
)

// TripStore persists saved trip plans ("My Trips").
type TripStore interface {
	Create(ctx context.Context, trip types.SavedTrip) (string, error)
	GetByID(ctx context.Context, id string) (*types.SavedTrip, error)
	List(ctx context.Context) ([]types.SavedTrip, error)
	Delete(ctx context.Context, id string) error
}
