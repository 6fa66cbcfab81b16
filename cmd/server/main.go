package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"

	httpAdapter "github.com/aryasulebhavi/digital-wallet-system/internal/adapter/http"
	"github.com/aryasulebhavi/digital-wallet-system/internal/adapter/http/handler"
	"github.com/aryasulebhavi/digital-wallet-system/internal/adapter/http/middleware"
	fileRepo "github.com/aryasulebhavi/digital-wallet-system/internal/adapter/repository/file"
	memoryRepo "github.com/aryasulebhavi/digital-wallet-system/internal/adapter/repository/memory"
	postgresRepo "github.com/aryasulebhavi/digital-wallet-system/internal/adapter/repository/postgres"
	redisRepo "github.com/aryasulebhavi/digital-wallet-system/internal/adapter/repository/redis"
	"github.com/aryasulebhavi/digital-wallet-system/internal/infrastructure/auth"
	"github.com/aryasulebhavi/digital-wallet-system/internal/infrastructure/config"
	"github.com/aryasulebhavi/digital-wallet-system/internal/infrastructure/logger"
	"github.com/aryasulebhavi/digital-wallet-system/internal/infrastructure/metrics"
	"github.com/aryasulebhavi/digital-wallet-system/internal/infrastructure/postgres"
	"github.com/aryasulebhavi/digital-wallet-system/internal/infrastructure/redis"
	"github.com/aryasulebhavi/digital-wallet-system/internal/ratelimit"
	"github.com/aryasulebhavi/digital-wallet-system/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	limits, err := cfg.RateLimits()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid rate limit configuration")
	}

	ctx := context.Background()

	var (
		txLog     usecase.TransactionLog
		actorRepo usecase.ActorRepository
		pool      *pgxpool.Pool
	)

	switch cfg.StorageBackend {
	case "memory":
		txLog = memoryRepo.NewTransactionLog()
		actorRepo = memoryRepo.NewActorRepository()
		log.Info().Msg("using in-memory storage")

	case "file":
		txLog = fileRepo.NewTransactionLog(cfg.StorageFile)
		actorRepo = memoryRepo.NewActorRepository()
		log.Info().Str("path", cfg.StorageFile).Msg("using file storage")

	case "postgres":
		if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
			log.Fatal().Err(err).Msg("failed to run migrations")
		}

		pool, err = postgres.NewPool(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to postgres")
		}
		defer pool.Close()

		retrier := postgresRepo.NewRetrier(log)
		txLog = postgresRepo.NewRetryingTransactionLog(postgresRepo.NewTransactionLogRepository(pool), retrier)
		actorRepo = postgresRepo.NewActorRepository(pool)
		log.Info().Msg("connected to postgres")

	default:
		log.Fatal().Str("backend", cfg.StorageBackend).Msg("unknown storage backend")
	}

	// Redis is optional; without it mutating requests are simply not
	// deduplicated.
	var (
		redisClient      *goredis.Client
		idempotencyStore usecase.IdempotencyStore
	)
	if cfg.RedisURL != "" {
		redisClient, err = redis.NewClient(ctx, cfg.RedisURL)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}
		defer redisClient.Close()
		idempotencyStore = redisRepo.NewIdempotencyStore(redisClient)
		log.Info().Msg("connected to redis")
	}

	var jwtManager *auth.JWTManager
	if cfg.JWTSecret != "" {
		jwtManager = auth.NewJWTManager(cfg.JWTSecret, cfg.JWTExpiration)
	} else {
		log.Warn().Msg("JWT_SECRET not set, trusting the X-Actor-ID header")
	}

	idGen := postgresRepo.NewULIDGenerator()
	identityUC := usecase.NewIdentityUseCase(actorRepo, idGen)

	ledgerUC, err := usecase.NewLedgerUseCase(ctx, txLog, identityUC, ratelimit.New(limits), idGen, nil)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to replay transaction log")
	}

	m := metrics.New()

	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		LedgerHandler:    handler.NewLedgerHandler(ledgerUC, m),
		ActorHandler:     handler.NewActorHandler(identityUC, jwtManager, m),
		HealthHandler:    handler.NewHealthHandler(pool, redisClient),
		Logger:           log,
		JWTManager:       jwtManager,
		IdempotencyStore: idempotencyStore,
		IdempotencyTTL:   cfg.IdempotencyTTL,
		Metrics:          m,
		RateLimiter:      middleware.NewClientRateLimiter(cfg.HTTPRateLimit, cfg.HTTPRateBurst),
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
	}

	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
