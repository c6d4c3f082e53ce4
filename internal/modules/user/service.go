// README: User service implements signup and login with bcrypt and JWT access tokens.
package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"tripgen/internal/infra"
)

// UserStore persists account records.
type UserStore interface {
	Create(ctx context.Context, u *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
}

type Service struct {
	store  UserStore
	issuer infra.TokenIssuer
}

func NewService(store UserStore, issuer infra.TokenIssuer) *Service {
	return &Service{store: store, issuer: issuer}
}

type SignUpCommand struct {
	Name     string
	Email    string
	Password string
}

// SignUp registers a new account with a bcrypt-hashed password.
func (s *Service) SignUp(ctx context.Context, cmd SignUpCommand) (*User, error) {
	if cmd.Name == "" || cmd.Email == "" || cmd.Password == "" {
		return nil, ErrBadRequest
	}

	existing, err := s.store.GetByEmail(ctx, cmd.Email)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cmd.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := &User{
		ID:           uuid.NewString(),
		Name:         cmd.Name,
		Email:        cmd.Email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	if err := s.store.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Login checks the credentials and mints an access token. Bad email and bad
// password are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, email, password string) (*User, string, error) {
	if email == "" || password == "" {
		return nil, "", ErrInvalidCredentials
	}

	u, err := s.store.GetByEmail(ctx, email)
	if errors.Is(err, ErrNotFound) {
		return nil, "", ErrInvalidCredentials
	}
	if err != nil {
		return nil, "", err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.issuer.IssueToken(u.ID, u.Email)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}
