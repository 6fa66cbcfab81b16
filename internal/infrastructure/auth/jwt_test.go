package auth_test

import (
	"errors"
	"testing"
	"time"

	"github.com/aryasulebhavi/digital-wallet-system/internal/domain"
	"github.com/aryasulebhavi/digital-wallet-system/internal/infrastructure/auth"
)

func TestJWT_RoundTrip(t *testing.T) {
	manager := auth.NewJWTManager("test-secret", time.Hour)

	actor := &domain.ActorProfile{ID: "actor-1", Email: "alice@example.com"}
	token, err := manager.Generate(actor)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	claims, err := manager.Verify(token)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if claims.ActorID != "actor-1" || claims.Email != "alice@example.com" {
		t.Errorf("unexpected claims: %+v", claims)
	}
}

func TestJWT_ExpiredToken(t *testing.T) {
	manager := auth.NewJWTManager("test-secret", -time.Minute)

	token, err := manager.Generate(&domain.ActorProfile{ID: "actor-1"})
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	if _, err := manager.Verify(token); !errors.Is(err, auth.ErrExpiredToken) {
		t.Errorf("expected ErrExpiredToken, got %v", err)
	}
}

func TestJWT_WrongSecret(t *testing.T) {
	token, err := auth.NewJWTManager("secret-a", time.Hour).Generate(&domain.ActorProfile{ID: "actor-1"})
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	if _, err := auth.NewJWTManager("secret-b", time.Hour).Verify(token); !errors.Is(err, auth.ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestJWT_Garbage(t *testing.T) {
	manager := auth.NewJWTManager("test-secret", time.Hour)
	if _, err := manager.Verify("not.a.token"); !errors.Is(err, auth.ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}
