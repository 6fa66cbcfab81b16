package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/aryasulebhavi/digital-wallet-system/internal/domain"
)

// ActorRepository implements usecase.ActorRepository in memory.
type ActorRepository struct {
	mu     sync.RWMutex
	actors map[string]*domain.ActorProfile
}

// NewActorRepository creates an empty in-memory actor store.
func NewActorRepository() *ActorRepository {
	return &ActorRepository{actors: make(map[string]*domain.ActorProfile)}
}

// Create stores a new actor profile.
func (r *ActorRepository) Create(_ context.Context, actor *domain.ActorProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.actors {
		if existing.Email == actor.Email {
			return domain.ErrActorExists
		}
	}
	copied := *actor
	r.actors[actor.ID] = &copied
	return nil
}

// GetByID retrieves an actor by ID.
func (r *ActorRepository) GetByID(_ context.Context, id string) (*domain.ActorProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	actor, ok := r.actors[id]
	if !ok {
		return nil, domain.ErrActorNotFound
	}
	copied := *actor
	return &copied, nil
}

// GetByEmail retrieves an actor by email.
func (r *ActorRepository) GetByEmail(_ context.Context, email string) (*domain.ActorProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, actor := range r.actors {
		if actor.Email == email {
			copied := *actor
			return &copied, nil
		}
	}
	return nil, domain.ErrActorNotFound
}

// SearchByName finds actors whose name contains the fragment, sorted by name.
func (r *ActorRepository) SearchByName(_ context.Context, fragment string, limit int) ([]*domain.ActorProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	fragment = strings.ToLower(fragment)
	var result []*domain.ActorProfile
	for _, actor := range r.actors {
		if strings.Contains(strings.ToLower(actor.Name), fragment) {
			copied := *actor
			result = append(result, &copied)
		}
	}

	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}
