// README: HMAC JWT issuing and verification for login sessions.
package infra

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AuthToken holds the verified token data used by downstream middleware.
type AuthToken struct {
	UID   string
	Email string
}

// TokenVerifier verifies a raw bearer token string and returns token data.
type TokenVerifier interface {
	VerifyToken(ctx context.Context, token string) (*AuthToken, error)
}

// TokenIssuer mints access tokens after a successful login.
type TokenIssuer interface {
	IssueToken(uid, email string) (string, error)
}

// ErrInvalidToken is returned for malformed, forged or expired tokens.
var ErrInvalidToken = errors.New("invalid token")

const defaultTokenTTL = 24 * time.Hour

// JWTManager signs and verifies HS256 tokens with a shared secret.
type JWTManager struct {
	secret []byte
	ttl    time.Duration
}

// NewJWTManager creates a manager for the given signing secret.
func NewJWTManager(secret string) (*JWTManager, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt: signing secret is required")
	}
	return &JWTManager{secret: []byte(secret), ttl: defaultTokenTTL}, nil
}

func (m *JWTManager) IssueToken(uid, email string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   uid,
		"email": email,
		"iat":   now.Unix(),
		"exp":   now.Add(m.ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("jwt: sign token: %w", err)
	}
	return signed, nil
}

func (m *JWTManager) VerifyToken(_ context.Context, raw string) (*AuthToken, error) {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	uid, _ := claims["sub"].(string)
	if uid == "" {
		return nil, ErrInvalidToken
	}
	email, _ := claims["email"].(string)
	return &AuthToken{UID: uid, Email: email}, nil
}
