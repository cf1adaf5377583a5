package localstore

import (
	"context"
	"errors"
	"testing"

	"github.com/fasco-shop/storefront/pkg/config"
)

func TestKeyBuilders(t *testing.T) {
	if got := CartKey(); got != "fasco:cart" {
		t.Fatalf("expected fasco:cart, got %s", got)
	}
	if got := CatalogKey(); got != "fasco:products" {
		t.Fatalf("expected fasco:products, got %s", got)
	}
	if got := RatingsKey(42); got != "fasco:ratings:42" {
		t.Fatalf("expected fasco:ratings:42, got %s", got)
	}
	if got := DealTimerKey(7); got != "fasco:deal_timer:7" {
		t.Fatalf("expected fasco:deal_timer:7, got %s", got)
	}
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()

	if _, err := store.Get(ctx, CartKey()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := store.Set(ctx, CartKey(), `[{"id":1}]`); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	value, err := store.Get(ctx, CartKey())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if value != `[{"id":1}]` {
		t.Fatalf("unexpected value: %s", value)
	}

	if err := store.Del(ctx, CartKey(), CatalogKey()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := store.Get(ctx, CartKey()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if store.Len() != 0 {
		t.Fatalf("expected empty store, got %d keys", store.Len())
	}
}

func TestOptionsFromConfigRequiresTarget(t *testing.T) {
	if _, err := optionsFromConfig(config.RedisConfig{}); err == nil {
		t.Fatal("expected error for missing url and address")
	}
}
