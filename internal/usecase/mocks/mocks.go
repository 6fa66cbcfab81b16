package mocks

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/aryasulebhavi/digital-wallet-system/internal/domain"
	"github.com/aryasulebhavi/digital-wallet-system/internal/usecase"
)

// MockTransactionLog is an in-memory implementation of TransactionLog with
// per-method override hooks.
type MockTransactionLog struct {
	mu      sync.Mutex
	entries []*domain.Transaction

	AppendFunc func(ctx context.Context, entries ...*domain.Transaction) error
	LoadFunc   func(ctx context.Context) ([]*domain.Transaction, error)
}

func NewMockTransactionLog() *MockTransactionLog {
	return &MockTransactionLog{}
}

func (m *MockTransactionLog) Append(ctx context.Context, entries ...*domain.Transaction) error {
	if m.AppendFunc != nil {
		return m.AppendFunc(ctx, entries...)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, entries...)
	return nil
}

func (m *MockTransactionLog) Load(ctx context.Context) ([]*domain.Transaction, error) {
	if m.LoadFunc != nil {
		return m.LoadFunc(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*domain.Transaction, len(m.entries))
	copy(out, m.entries)
	return out, nil
}

// Entries returns a snapshot of everything appended so far.
func (m *MockTransactionLog) Entries() []*domain.Transaction {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*domain.Transaction, len(m.entries))
	copy(out, m.entries)
	return out
}

// MockActorRepository is an in-memory implementation of ActorRepository.
type MockActorRepository struct {
	mu     sync.RWMutex
	actors map[string]*domain.ActorProfile

	CreateFunc     func(ctx context.Context, actor *domain.ActorProfile) error
	GetByIDFunc    func(ctx context.Context, id string) (*domain.ActorProfile, error)
	GetByEmailFunc func(ctx context.Context, email string) (*domain.ActorProfile, error)
}

func NewMockActorRepository() *MockActorRepository {
	return &MockActorRepository{actors: make(map[string]*domain.ActorProfile)}
}

func (m *MockActorRepository) Create(ctx context.Context, actor *domain.ActorProfile) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, actor)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.actors[actor.ID] = actor
	return nil
}

func (m *MockActorRepository) GetByID(ctx context.Context, id string) (*domain.ActorProfile, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if actor, ok := m.actors[id]; ok {
		return actor, nil
	}
	return nil, domain.ErrActorNotFound
}

func (m *MockActorRepository) GetByEmail(ctx context.Context, email string) (*domain.ActorProfile, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, actor := range m.actors {
		if actor.Email == email {
			return actor, nil
		}
	}
	return nil, domain.ErrActorNotFound
}

func (m *MockActorRepository) SearchByName(ctx context.Context, fragment string, limit int) ([]*domain.ActorProfile, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var result []*domain.ActorProfile
	for _, actor := range m.actors {
		if strings.Contains(strings.ToLower(actor.Name), strings.ToLower(fragment)) {
			result = append(result, actor)
			if len(result) == limit {
				break
			}
		}
	}
	return result, nil
}

// MockIDGenerator hands out sequential IDs.
type MockIDGenerator struct {
	mu   sync.Mutex
	next int

	GenerateFunc func() string
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.next++
	return fmt.Sprintf("id-%04d", m.next)
}

var _ usecase.TransactionLog = (*MockTransactionLog)(nil)
var _ usecase.ActorRepository = (*MockActorRepository)(nil)
var _ usecase.IDGenerator = (*MockIDGenerator)(nil)
