package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aryasulebhavi/digital-wallet-system/internal/adapter/http/dto"
	"github.com/aryasulebhavi/digital-wallet-system/internal/infrastructure/auth"
	"github.com/aryasulebhavi/digital-wallet-system/internal/infrastructure/metrics"
	"github.com/aryasulebhavi/digital-wallet-system/internal/usecase"
)

// ActorHandler handles actor registration, lookup and authentication.
type ActorHandler struct {
	identity   *usecase.IdentityUseCase
	jwtManager *auth.JWTManager
	metrics    *metrics.Metrics
}

// NewActorHandler creates a new ActorHandler. jwtManager may be nil when
// token auth is disabled; Login then reports the endpoint as unavailable.
func NewActorHandler(identity *usecase.IdentityUseCase, jwtManager *auth.JWTManager, m *metrics.Metrics) *ActorHandler {
	return &ActorHandler{identity: identity, jwtManager: jwtManager, metrics: m}
}

// Register creates a new actor profile.
func (h *ActorHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterActorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	actor, err := h.identity.RegisterActor(r.Context(), usecase.RegisterActorInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		writeError(w, mapDomainError(err), "failed to register actor", err.Error())
		return
	}

	if h.metrics != nil {
		h.metrics.ActorsRegistered.Inc()
	}

	writeJSON(w, http.StatusCreated, dto.ActorFromDomain(actor))
}

// Login checks credentials and issues an access token.
func (h *ActorHandler) Login(w http.ResponseWriter, r *http.Request) {
	if h.jwtManager == nil {
		writeError(w, http.StatusNotImplemented, "token auth is not configured", "")
		return
	}

	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	actor, err := h.identity.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		if h.metrics != nil {
			h.metrics.AuthFailures.Inc()
		}
		writeError(w, mapDomainError(err), "authentication failed", err.Error())
		return
	}

	token, err := h.jwtManager.Generate(actor)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to issue token", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.TokenResponse{
		Token: token,
		Actor: dto.ActorFromDomain(actor),
	})
}

// Get retrieves an actor profile by ID.
func (h *ActorHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing actor ID", "")
		return
	}

	actor, err := h.identity.ResolveActor(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get actor", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ActorFromDomain(actor))
}

// Search finds actors whose name contains the given fragment.
func (h *ActorHandler) Search(w http.ResponseWriter, r *http.Request) {
	fragment := r.URL.Query().Get("name")
	if fragment == "" {
		writeError(w, http.StatusBadRequest, "missing name query parameter", "")
		return
	}

	actors, err := h.identity.FindActorsByNameFragment(r.Context(), fragment)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to search actors", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ActorsFromDomain(actors))
}
