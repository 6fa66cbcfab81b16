package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/aryasulebhavi/digital-wallet-system/internal/adapter/http/handler"
	"github.com/aryasulebhavi/digital-wallet-system/internal/adapter/http/middleware"
	"github.com/aryasulebhavi/digital-wallet-system/internal/infrastructure/auth"
	"github.com/aryasulebhavi/digital-wallet-system/internal/infrastructure/metrics"
	"github.com/aryasulebhavi/digital-wallet-system/internal/usecase"
)

// RouterConfig holds dependencies for the router. Optional pieces
// (JWTManager, IdempotencyStore, Metrics, RateLimiter) may be nil.
type RouterConfig struct {
	LedgerHandler    *handler.LedgerHandler
	ActorHandler     *handler.ActorHandler
	HealthHandler    *handler.HealthHandler
	Logger           zerolog.Logger
	JWTManager       *auth.JWTManager
	IdempotencyStore usecase.IdempotencyStore
	IdempotencyTTL   time.Duration
	Metrics          *metrics.Metrics
	RateLimiter      *middleware.ClientRateLimiter
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.Recovery)
	if cfg.Metrics != nil {
		r.Use(middleware.NewMetricsMiddleware(cfg.Metrics).Wrap)
	}

	// Health and operational endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		if cfg.RateLimiter != nil {
			r.Use(cfg.RateLimiter.Limit)
		}

		// Registration and login are the only unauthenticated endpoints.
		r.Post("/actors", cfg.ActorHandler.Register)
		r.Post("/auth/login", cfg.ActorHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Actor(cfg.JWTManager))

			r.Get("/actors/{id}", cfg.ActorHandler.Get)
			r.Get("/actors", cfg.ActorHandler.Search)

			r.Route("/ledger", func(r chi.Router) {
				if cfg.IdempotencyStore != nil {
					r.Use(middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore, cfg.IdempotencyTTL).Wrap)
				}

				r.Post("/deposit", cfg.LedgerHandler.Deposit)
				r.Post("/withdraw", cfg.LedgerHandler.Withdraw)
				r.Post("/transfer", cfg.LedgerHandler.Transfer)
				r.Get("/balance", cfg.LedgerHandler.Balance)
				r.Get("/history", cfg.LedgerHandler.History)
				r.Get("/consistency", cfg.LedgerHandler.Consistency)
			})
		})
	})

	return r
}
