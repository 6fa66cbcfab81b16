package handler

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/aryasulebhavi/digital-wallet-system/internal/adapter/http/dto"
	"github.com/aryasulebhavi/digital-wallet-system/internal/infrastructure/auth"
)

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal %q: %v", s, err)
	}
	return d
}

func TestActorHandler_Register(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, "", env.actors.Register, http.MethodPost, "/api/v1/actors",
		dto.RegisterActorRequest{Name: "Carol", Email: "carol@example.com", Password: "password1"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp dto.ActorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.ID == "" || resp.Email != "carol@example.com" {
		t.Fatalf("unexpected actor: %+v", resp)
	}
}

func TestActorHandler_Register_Validation(t *testing.T) {
	env := newTestEnv(t)

	cases := []struct {
		name string
		req  dto.RegisterActorRequest
		want int
	}{
		{"bad email", dto.RegisterActorRequest{Name: "X", Email: "not-an-email", Password: "password1"}, http.StatusBadRequest},
		{"weak password", dto.RegisterActorRequest{Name: "X", Email: "x@example.com", Password: "short"}, http.StatusBadRequest},
		{"empty name", dto.RegisterActorRequest{Name: "", Email: "x@example.com", Password: "password1"}, http.StatusBadRequest},
		{"duplicate email", dto.RegisterActorRequest{Name: "X", Email: "alice@example.com", Password: "password1"}, http.StatusConflict},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := env.do(t, "", env.actors.Register, http.MethodPost, "/api/v1/actors", tc.req)
			if rec.Code != tc.want {
				t.Fatalf("expected %d, got %d: %s", tc.want, rec.Code, rec.Body.String())
			}
		})
	}
}

func TestActorHandler_Login(t *testing.T) {
	env := newTestEnv(t)
	env.actors = NewActorHandler(env.identity, auth.NewJWTManager("test-secret", time.Hour), nil)

	rec := env.do(t, "", env.actors.Login, http.MethodPost, "/api/v1/auth/login",
		dto.LoginRequest{Email: "alice@example.com", Password: "password1"})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp dto.TokenResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Token == "" || resp.Actor.ID != env.aliceID {
		t.Fatalf("unexpected token response: %+v", resp)
	}
}

func TestActorHandler_Login_BadCredentials(t *testing.T) {
	env := newTestEnv(t)
	env.actors = NewActorHandler(env.identity, auth.NewJWTManager("test-secret", time.Hour), nil)

	rec := env.do(t, "", env.actors.Login, http.MethodPost, "/api/v1/auth/login",
		dto.LoginRequest{Email: "alice@example.com", Password: "wrong-password"})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestActorHandler_Login_Disabled(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, "", env.actors.Login, http.MethodPost, "/api/v1/auth/login",
		dto.LoginRequest{Email: "alice@example.com", Password: "password1"})
	if rec.Code != http.StatusNotImplemented {
		t.Fatalf("expected 501, got %d", rec.Code)
	}
}

func TestActorHandler_Search(t *testing.T) {
	env := newTestEnv(t)

	req := env.do(t, "", env.actors.Search, http.MethodGet, "/api/v1/actors?name=ali", nil)
	if req.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", req.Code)
	}

	var resp []dto.ActorResponse
	if err := json.Unmarshal(req.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp) != 1 || resp[0].ID != env.aliceID {
		t.Fatalf("unexpected search result: %+v", resp)
	}
}

func TestActorHandler_Search_MissingQuery(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, "", env.actors.Search, http.MethodGet, "/api/v1/actors", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
