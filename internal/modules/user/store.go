// README: User store backed by PostgreSQL.
package user

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

func (s *Store) Create(ctx context.Context, u *User) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO users (id, name, email, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		u.ID, u.Name, u.Email, u.PasswordHash, u.CreatedAt,
	)
	return err
}

func (s *Store) GetByEmail(ctx context.Context, email string) (*User, error) {
	return s.get(ctx, `
		SELECT id, name, email, password_hash, created_at
		FROM users WHERE email = $1`, email)
}

func (s *Store) GetByID(ctx context.Context, id string) (*User, error) {
	return s.get(ctx, `
		SELECT id, name, email, password_hash, created_at
		FROM users WHERE id = $1`, id)
}

func (s *Store) get(ctx context.Context, query, arg string) (*User, error) {
	var u User
	err := s.db.QueryRow(ctx, query, arg).Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}
