package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"ITINERARY_BACK-END/internal/models"
)

// Schema creates the tables PostgresStore needs
const Schema = `
CREATE TABLE IF NOT EXISTS itineraries (
    user_id    UUID PRIMARY KEY,
    version    BIGINT NOT NULL DEFAULT 0,
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS itinerary_destinations (
    id           UUID NOT NULL,
    user_id      UUID NOT NULL REFERENCES itineraries(user_id) ON DELETE CASCADE,
    position     INT NOT NULL,
    name         TEXT NOT NULL,
    location     TEXT NOT NULL,
    lat          DOUBLE PRECISION NOT NULL,
    lng          DOUBLE PRECISION NOT NULL,
    date         DATE NOT NULL,
    time         TEXT NOT NULL,
    type         TEXT NOT NULL,
    budget       DOUBLE PRECISION NOT NULL CHECK (budget >= 0),
    description  TEXT NOT NULL DEFAULT '',
    notes        TEXT NOT NULL DEFAULT '',
    photos       TEXT[] NOT NULL DEFAULT '{}',
    travel_mode  TEXT NOT NULL,
    place_id     TEXT NOT NULL DEFAULT '',
    rating       DOUBLE PRECISION,
    website_url  TEXT NOT NULL DEFAULT '',
    phone_number TEXT NOT NULL DEFAULT '',
    PRIMARY KEY (user_id, id)
);

CREATE INDEX IF NOT EXISTS itinerary_destinations_position_idx
    ON itinerary_destinations (user_id, position);
`

// PostgresStore persists itineraries with pgx
type PostgresStore struct {
	db           *pgxpool.Pool
	queryTimeout time.Duration
}

// NewPostgresStore creates a store on an existing pool
func NewPostgresStore(db *pgxpool.Pool, queryTimeout time.Duration) *PostgresStore {
	return &PostgresStore{db: db, queryTimeout: queryTimeout}
}

// EnsureSchema creates missing tables
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

func (s *PostgresStore) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.queryTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.queryTimeout)
}

// Load implements Store
func (s *PostgresStore) Load(ctx context.Context, userID uuid.UUID) (models.Itinerary, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	it := models.Itinerary{UserID: userID, Destinations: []models.Destination{}}
	err := s.db.QueryRow(ctx,
		`SELECT version, updated_at FROM itineraries WHERE user_id = $1`, userID,
	).Scan(&it.Version, &it.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return it, nil
	}
	if err != nil {
		return it, fmt.Errorf("load itinerary: %w", err)
	}

	rows, err := s.db.Query(ctx,
		`SELECT id, name, location, lat, lng, to_char(date, 'YYYY-MM-DD'), time, type, budget,
                description, notes, photos, travel_mode, place_id, rating, website_url, phone_number
           FROM itinerary_destinations
          WHERE user_id = $1
          ORDER BY position`, userID)
	if err != nil {
		return it, fmt.Errorf("load destinations: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var d models.Destination
		var typ, mode string
		if err := rows.Scan(&d.ID, &d.Name, &d.Location, &d.Lat, &d.Lng, &d.Date, &d.Time, &typ, &d.Budget,
			&d.Description, &d.Notes, &d.Photos, &mode, &d.PlaceID, &d.Rating, &d.WebsiteURL, &d.PhoneNumber); err != nil {
			return it, fmt.Errorf("scan destination: %w", err)
		}
		d.Type = models.DestinationType(typ)
		d.TravelMode = models.TravelMode(mode)
		it.Destinations = append(it.Destinations, d)
	}
	if err := rows.Err(); err != nil {
		return it, fmt.Errorf("load destinations: %w", err)
	}
	return it, nil
}

// Save implements Store. The destination list is rewritten in one
// transaction so readers never see a partial order.
func (s *PostgresStore) Save(ctx context.Context, it models.Itinerary) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	defer tx.Rollback(ctx)

	updatedAt := it.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now()
	}
	if _, err := tx.Exec(ctx,
		`INSERT INTO itineraries (user_id, version, updated_at)
         VALUES ($1, $2, $3)
         ON CONFLICT (user_id) DO UPDATE SET version = EXCLUDED.version, updated_at = EXCLUDED.updated_at`,
		it.UserID, it.Version, updatedAt,
	); err != nil {
		return fmt.Errorf("save itinerary: %w", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM itinerary_destinations WHERE user_id = $1`, it.UserID); err != nil {
		return fmt.Errorf("clear destinations: %w", err)
	}

	batch := &pgx.Batch{}
	for pos, d := range it.Destinations {
		photos := d.Photos
		if photos == nil {
			photos = []string{}
		}
		batch.Queue(
			`INSERT INTO itinerary_destinations
                (id, user_id, position, name, location, lat, lng, date, time, type, budget,
                 description, notes, photos, travel_mode, place_id, rating, website_url, phone_number)
             VALUES ($1, $2, $3, $4, $5, $6, $7, $8::date, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`,
			d.ID, it.UserID, pos, d.Name, d.Location, d.Lat, d.Lng, d.Date, d.Time, string(d.Type), d.Budget,
			d.Description, d.Notes, photos, string(d.TravelMode), d.PlaceID, d.Rating, d.WebsiteURL, d.PhoneNumber,
		)
	}
	if batch.Len() > 0 {
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("insert destinations: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit save: %w", err)
	}
	return nil
}

// Ping implements Store
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}
