package infra

import (
	"context"
	"testing"
)

func TestJWTManager_RoundTrip(t *testing.T) {
	m, err := NewJWTManager("test-secret")
	if err != nil {
		t.Fatal(err)
	}

	signed, err := m.IssueToken("user-1", "a@b.com")
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	got, err := m.VerifyToken(context.Background(), signed)
	if err != nil {
		t.Fatalf("VerifyToken: %v", err)
	}
	if got.UID != "user-1" || got.Email != "a@b.com" {
		t.Errorf("verified token = %+v", got)
	}
}

func TestJWTManager_RejectsForgedToken(t *testing.T) {
	issuer, _ := NewJWTManager("secret-a")
	verifier, _ := NewJWTManager("secret-b")

	signed, err := issuer.IssueToken("user-1", "a@b.com")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := verifier.VerifyToken(context.Background(), signed); err != ErrInvalidToken {
		t.Errorf("expected ErrInvalidToken for wrong secret, got %v", err)
	}
}

func TestJWTManager_RejectsGarbage(t *testing.T) {
	m, _ := NewJWTManager("test-secret")
	for _, raw := range []string{"", "garbage", "a.b.c"} {
		if _, err := m.VerifyToken(context.Background(), raw); err != ErrInvalidToken {
			t.Errorf("VerifyToken(%q): expected ErrInvalidToken, got %v", raw, err)
		}
	}
}

func TestNewJWTManager_RequiresSecret(t *testing.T) {
	if _, err := NewJWTManager(""); err == nil {
		t.Error("expected error for empty secret")
	}
}
