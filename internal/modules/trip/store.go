// README: Trip store backed by PostgreSQL.
package trip

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

func (s *Store) Create(ctx context.Context, t *Trip) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO trips (
			id, user_id, destination, travelers,
			start_date, end_date, preferences, budget, travel_with, created_at
		) VALUES (
			$1, $2, $3, $4,
			$5, $6, $7, $8, $9, $10
		)`,
		t.ID, t.UserID, t.Destination, t.Travelers,
		t.StartDate, t.EndDate, t.Preferences, t.Budget, t.TravelWith, t.CreatedAt,
	)
	return err
}

func (s *Store) GetByID(ctx context.Context, id string) (*Trip, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, user_id, destination, travelers,
		       start_date, end_date, preferences, budget, travel_with, created_at
		FROM trips
		WHERE id = $1`, id,
	)
	var t Trip
	err := row.Scan(
		&t.ID, &t.UserID, &t.Destination, &t.Travelers,
		&t.StartDate, &t.EndDate, &t.Preferences, &t.Budget, &t.TravelWith, &t.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *Store) ListByUser(ctx context.Context, userID string) ([]Trip, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, user_id, destination, travelers,
		       start_date, end_date, preferences, budget, travel_with, created_at
		FROM trips
		WHERE user_id = $1
		ORDER BY created_at DESC`, userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var trips []Trip
	for rows.Next() {
		var t Trip
		if err := rows.Scan(
			&t.ID, &t.UserID, &t.Destination, &t.Travelers,
			&t.StartDate, &t.EndDate, &t.Preferences, &t.Budget, &t.TravelWith, &t.CreatedAt,
		); err != nil {
			return nil, err
		}
		trips = append(trips, t)
	}
	return trips, rows.Err()
}
