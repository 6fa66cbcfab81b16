package memory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/aryasulebhavi/digital-wallet-system/internal/adapter/repository/memory"
	"github.com/aryasulebhavi/digital-wallet-system/internal/domain"
)

func TestTransactionLog_AppendAndLoad(t *testing.T) {
	log := memory.NewTransactionLog()
	ctx := context.Background()

	pair := []*domain.Transaction{
		{ID: "tx-1", ActorID: "a", Kind: domain.KindTransferOut, Amount: decimal.NewFromInt(10)},
		{ID: "tx-2", ActorID: "b", Kind: domain.KindTransferIn, Amount: decimal.NewFromInt(10)},
	}

	if err := log.Append(ctx, pair...); err != nil {
		t.Fatalf("append failed: %v", err)
	}

	loaded, err := log.Load(ctx)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(loaded))
	}
	if loaded[0].ID != "tx-1" || loaded[1].ID != "tx-2" {
		t.Error("load must preserve insertion order")
	}
}

func TestActorRepository_CRUD(t *testing.T) {
	repo := memory.NewActorRepository()
	ctx := context.Background()

	alice := &domain.ActorProfile{ID: "a1", Name: "Alice Smith", Email: "alice@example.com"}
	bob := &domain.ActorProfile{ID: "b1", Name: "Bob Smith", Email: "bob@example.com"}

	if err := repo.Create(ctx, alice); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := repo.Create(ctx, bob); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := repo.Create(ctx, &domain.ActorProfile{ID: "a2", Email: "alice@example.com"}); !errors.Is(err, domain.ErrActorExists) {
		t.Errorf("expected ErrActorExists for duplicate email, got %v", err)
	}

	got, err := repo.GetByID(ctx, "a1")
	if err != nil || got.Name != "Alice Smith" {
		t.Errorf("GetByID returned %+v, %v", got, err)
	}

	if _, err := repo.GetByID(ctx, "missing"); !errors.Is(err, domain.ErrActorNotFound) {
		t.Errorf("expected ErrActorNotFound, got %v", err)
	}

	got, err = repo.GetByEmail(ctx, "bob@example.com")
	if err != nil || got.ID != "b1" {
		t.Errorf("GetByEmail returned %+v, %v", got, err)
	}

	found, err := repo.SearchByName(ctx, "smith", 10)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(found) != 2 || found[0].Name != "Alice Smith" {
		t.Errorf("expected both smiths sorted by name, got %+v", found)
	}

	found, err = repo.SearchByName(ctx, "smith", 1)
	if err != nil || len(found) != 1 {
		t.Errorf("expected limit to apply, got %d results", len(found))
	}
}

func TestActorRepository_ReturnsCopies(t *testing.T) {
	repo := memory.NewActorRepository()
	ctx := context.Background()

	if err := repo.Create(ctx, &domain.ActorProfile{ID: "a1", Name: "Alice", Email: "alice@example.com"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	got, _ := repo.GetByID(ctx, "a1")
	got.Name = "Mallory"

	again, _ := repo.GetByID(ctx, "a1")
	if again.Name != "Alice" {
		t.Error("mutating a returned profile must not affect the store")
	}
}
