package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"

	redisrepo "github.com/aryasulebhavi/digital-wallet-system/internal/adapter/repository/redis"
)

func newTestStore(t *testing.T) *redisrepo.IdempotencyStore {
	t.Helper()

	srv := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { client.Close() })

	return redisrepo.NewIdempotencyStore(client)
}

func TestIdempotencyStore_FirstCallClaimsKey(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	exists, _, err := store.CheckAndSet(ctx, "actor-1:key-1", nil, time.Minute)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if exists {
		t.Fatal("first call must not find an existing key")
	}

	// A duplicate while the first is still processing sees it as claimed.
	exists, value, err := store.CheckAndSet(ctx, "actor-1:key-1", nil, time.Minute)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !exists {
		t.Fatal("duplicate call must find the claimed key")
	}
	if string(value) != "processing" {
		t.Errorf("expected processing marker, got %q", value)
	}
}

func TestIdempotencyStore_UpdateThenReplay(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if _, _, err := store.CheckAndSet(ctx, "actor-1:key-2", nil, time.Minute); err != nil {
		t.Fatalf("claim failed: %v", err)
	}

	response := []byte(`{"balance":"70"}`)
	if err := store.Update(ctx, "actor-1:key-2", response, time.Minute); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	exists, stored, err := store.CheckAndSet(ctx, "actor-1:key-2", nil, time.Minute)
	if err != nil {
		t.Fatalf("replay failed: %v", err)
	}
	if !exists || string(stored) != string(response) {
		t.Errorf("replay should return the stored response, got exists=%v value=%q", exists, stored)
	}
}

func TestIdempotencyStore_KeysAreScoped(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if _, _, err := store.CheckAndSet(ctx, "actor-1:key", []byte("a"), time.Minute); err != nil {
		t.Fatal(err)
	}

	exists, _, err := store.CheckAndSet(ctx, "actor-2:key", nil, time.Minute)
	if err != nil {
		t.Fatal(err)
	}
	if exists {
		t.Error("another actor's key must not collide")
	}
}
