package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/TripMitra/trip-mitra-backend/logger"
	"github.com/TripMitra/trip-mitra-backend/store"
	"github.com/TripMitra/trip-mitra-backend/types"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// TripDB persists saved trips in PostgreSQL. The full plan payload is stored
// as JSONB so the schema doesn't chase the planner's output shape.
type TripDB struct {
	pool PgxIface
}

func NewTripDB(pool PgxIface) *TripDB {
	return &TripDB{pool: pool}
}

var _ store.TripStore = (*TripDB)(nil)

func (tdb *TripDB) Create(ctx context.Context, trip types.SavedTrip) (string, error) {
	log := logger.GetLogger()

	planJSON, err := json.Marshal(trip.Plan)
	if err != nil {
		return "", fmt.Errorf("failed to marshal plan: %w", err)
	}

	id := trip.ID
	if id == "" {
		id = uuid.New().String()
	}

	_, err = tdb.pool.Exec(ctx, `
        INSERT INTO saved_trips (id, name, input_text, language, plan)
        VALUES ($1, $2, $3, $4, $5)`,
		id,
		trip.Name,
		trip.InputText,
		string(trip.Language),
		planJSON,
	)
	if err != nil {
		log.Errorw("Failed to create saved trip", "error", err)
		return "", err
	}

	return id, nil
}

func (tdb *TripDB) GetByID(ctx context.Context, id string) (*types.SavedTrip, error) {
	row := tdb.pool.QueryRow(ctx, `
        SELECT id, name, input_text, language, plan, created_at, updated_at
        FROM saved_trips
        WHERE id = $1`,
		id,
	)

	trip, err := scanSavedTrip(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, err
	}
	return trip, nil
}

func (tdb *TripDB) List(ctx context.Context) ([]types.SavedTrip, error) {
	rows, err := tdb.pool.Query(ctx, `
        SELECT id, name, input_text, language, plan, created_at, updated_at
        FROM saved_trips
        ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	trips := make([]types.SavedTrip, 0)
	for rows.Next() {
		trip, err := scanSavedTrip(rows)
		if err != nil {
			return nil, err
		}
		trips = append(trips, *trip)
	}
	return trips, rows.Err()
}

func (tdb *TripDB) Delete(ctx context.Context, id string) error {
	tag, err := tdb.pool.Exec(ctx, `DELETE FROM saved_trips WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

func scanSavedTrip(row pgx.Row) (*types.SavedTrip, error) {
	var trip types.SavedTrip
	var language string
	var planJSON []byte

	err := row.Scan(
		&trip.ID,
		&trip.Name,
		&trip.InputText,
		&language,
		&planJSON,
		&trip.CreatedAt,
		&trip.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	trip.Language = types.Language(language)
	if err := json.Unmarshal(planJSON, &trip.Plan); err != nil {
		return nil, fmt.Errorf("failed to unmarshal plan for trip %s: %w", trip.ID, err)
	}
	return &trip, nil
}
