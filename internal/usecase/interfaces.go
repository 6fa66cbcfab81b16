package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/aryasulebhavi/digital-wallet-system/internal/domain"
	"github.com/aryasulebhavi/digital-wallet-system/internal/ratelimit"
)

// TransactionLog is the persistence collaborator for the ledger. A call to
// Append must record either every entry it was given or none of them; the
// two legs of a transfer are always handed over in one call.
type TransactionLog interface {
	Append(ctx context.Context, entries ...*domain.Transaction) error
	Load(ctx context.Context) ([]*domain.Transaction, error)
}

// ActorDirectory is the identity collaborator as seen by the ledger. The
// ledger never authenticates; it only resolves counterparties.
type ActorDirectory interface {
	ResolveActor(ctx context.Context, id string) (*domain.ActorProfile, error)
	FindActorsByNameFragment(ctx context.Context, fragment string) ([]*domain.ActorProfile, error)
}

// RateLimiter decides whether a balance-decreasing operation may proceed.
type RateLimiter interface {
	Evaluate(actorID string, amount decimal.Decimal, category ratelimit.Category, history []*domain.Transaction, now time.Time) ratelimit.Decision
}

// ActorRepository defines data access for actor profiles.
type ActorRepository interface {
	Create(ctx context.Context, actor *domain.ActorProfile) error
	GetByID(ctx context.Context, id string) (*domain.ActorProfile, error)
	GetByEmail(ctx context.Context, email string) (*domain.ActorProfile, error)
	SearchByName(ctx context.Context, fragment string, limit int) ([]*domain.ActorProfile, error)
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// Clock supplies the ledger's notion of now. Injected so rate-limit windows
// are reproducible in tests.
type Clock func() time.Time

// IdempotencyStore handles idempotency key storage for the HTTP surface.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}
