package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/aryasulebhavi/digital-wallet-system/internal/domain"
)

// ErrInvalidCredentials is returned when authentication fails. The cause is
// deliberately not more specific.
var ErrInvalidCredentials = errors.New("invalid email or password")

// IdentityUseCase manages actor profiles. It satisfies the ledger's
// ActorDirectory port.
type IdentityUseCase struct {
	actorRepo ActorRepository
	idGen     IDGenerator
}

// NewIdentityUseCase creates a new IdentityUseCase.
func NewIdentityUseCase(actorRepo ActorRepository, idGen IDGenerator) *IdentityUseCase {
	return &IdentityUseCase{
		actorRepo: actorRepo,
		idGen:     idGen,
	}
}

// RegisterActorInput represents input for registering an actor.
type RegisterActorInput struct {
	Name     string
	Email    string
	Password string
}

// RegisterActor creates a new actor with a hashed password.
func (uc *IdentityUseCase) RegisterActor(ctx context.Context, input RegisterActorInput) (*domain.ActorProfile, error) {
	if err := domain.ValidateName(input.Name); err != nil {
		return nil, err
	}
	if err := domain.ValidateEmail(input.Email); err != nil {
		return nil, err
	}
	if err := domain.ValidatePassword(input.Password); err != nil {
		return nil, err
	}

	if existing, err := uc.actorRepo.GetByEmail(ctx, input.Email); err == nil && existing != nil {
		return nil, domain.ErrActorExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	actor := &domain.ActorProfile{
		ID:             uc.idGen.Generate(),
		Name:           input.Name,
		Email:          input.Email,
		HashedPassword: string(hash),
		CreatedAt:      time.Now().UTC(),
	}

	if err := uc.actorRepo.Create(ctx, actor); err != nil {
		return nil, err
	}

	return sanitize(actor), nil
}

// Authenticate verifies an email/password pair and returns the actor.
func (uc *IdentityUseCase) Authenticate(ctx context.Context, email, password string) (*domain.ActorProfile, error) {
	actor, err := uc.actorRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrActorNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(actor.HashedPassword), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return sanitize(actor), nil
}

// ResolveActor returns the profile for an actor ID.
func (uc *IdentityUseCase) ResolveActor(ctx context.Context, id string) (*domain.ActorProfile, error) {
	actor, err := uc.actorRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return sanitize(actor), nil
}

// FindActorsByNameFragment searches actors whose name contains the fragment.
func (uc *IdentityUseCase) FindActorsByNameFragment(ctx context.Context, fragment string) ([]*domain.ActorProfile, error) {
	fragment = strings.TrimSpace(fragment)
	if fragment == "" {
		return nil, nil
	}

	actors, err := uc.actorRepo.SearchByName(ctx, fragment, 50)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.ActorProfile, len(actors))
	for i, actor := range actors {
		result[i] = sanitize(actor)
	}
	return result, nil
}

// sanitize copies the profile without the password hash.
func sanitize(actor *domain.ActorProfile) *domain.ActorProfile {
	clean := *actor
	clean.HashedPassword = ""
	return &clean
}
