package cart

import (
	"context"
	"encoding/json"
	"io"
	"testing"

	"github.com/fasco-shop/storefront/internal/catalog"
	"github.com/fasco-shop/storefront/pkg/enums"
	"github.com/fasco-shop/storefront/pkg/localstore"
	"github.com/fasco-shop/storefront/pkg/logger"
	"github.com/rs/zerolog"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "test", Level: zerolog.Disabled, Output: io.Discard})
}

func newTestStore(t *testing.T) (*Store, *localstore.MemoryStore) {
	t.Helper()
	kv := localstore.NewMemory()
	store, err := NewStore(context.Background(), kv, testLogger(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return store, kv
}

func discounted(price float64) *float64 {
	return &price
}

var jacket = catalog.Product{
	ID:         1,
	Slug:       "denim-jacket",
	Title:      "Denim Jacket",
	Price:      80,
	Colors:     []string{"#1b2a41"},
	ColorNames: []string{"Navy"},
	Sizes:      []string{"M", "L"},
}

var shirt = catalog.Product{
	ID:              2,
	Slug:            "linen-shirt",
	Title:           "Linen Shirt",
	Price:           40,
	DiscountedPrice: discounted(28),
}

func TestAddFreezesEffectivePrice(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	store.Add(ctx, shirt, "", "M")

	items := store.Items()
	if len(items) != 1 {
		t.Fatalf("expected 1 line, got %d", len(items))
	}
	if items[0].Price != 28 {
		t.Fatalf("expected frozen discounted price 28, got %v", items[0].Price)
	}
	if items[0].Quantity != 1 {
		t.Fatalf("expected quantity 1, got %d", items[0].Quantity)
	}
}

func TestVariantsAreSeparateLines(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	store.Add(ctx, jacket, "#1b2a41", "M")
	store.Add(ctx, jacket, "#1b2a41", "L")
	store.Add(ctx, jacket, "#1b2a41", "M")

	items := store.Items()
	if len(items) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(items))
	}
	if items[0].Quantity != 2 {
		t.Fatalf("expected merged quantity 2, got %d", items[0].Quantity)
	}
	if items[0].SelectedColorName != "Navy" {
		t.Fatalf("expected resolved color name, got %q", items[0].SelectedColorName)
	}
	if store.Count() != 3 {
		t.Fatalf("expected 3 units, got %d", store.Count())
	}
}

func TestAddQuantityRejectsBelowOne(t *testing.T) {
	store, _ := newTestStore(t)
	if err := store.AddQuantity(context.Background(), jacket, "", "M", 0); err == nil {
		t.Fatal("expected error for zero quantity")
	}
	if len(store.Items()) != 0 {
		t.Fatal("expected cart unchanged after rejected add")
	}
}

func TestDecrementAtOneRemovesLine(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	store.Add(ctx, jacket, "#1b2a41", "M")
	key := Key{ID: 1, Color: "#1b2a41", Size: "M"}

	var events []Event
	unsubscribe := store.Subscribe(func(e Event) { events = append(events, e) })
	defer unsubscribe()

	store.Decrement(ctx, key)

	if store.ContainsVariant(key) {
		t.Fatal("expected line removed at quantity one")
	}
	if len(events) != 2 {
		t.Fatalf("expected removal plus update events, got %d", len(events))
	}
	if events[0].Kind != enums.CartEventItemRemoved {
		t.Fatalf("expected item_removed first, got %s", events[0].Kind)
	}
	if events[0].Removed == nil || *events[0].Removed != key {
		t.Fatalf("expected removal detail %+v, got %+v", key, events[0].Removed)
	}
	if events[1].Kind != enums.CartEventUpdated {
		t.Fatalf("expected cart_updated second, got %s", events[1].Kind)
	}
}

func TestIncrementDecrementUnknownLineIsNoop(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)
	store.Add(ctx, jacket, "", "M")

	ghost := Key{ID: 99, Color: "", Size: "S"}
	store.Increment(ctx, ghost)
	store.Decrement(ctx, ghost)
	store.Remove(ctx, ghost)

	if store.Count() != 1 {
		t.Fatalf("expected cart untouched, got %d units", store.Count())
	}
}

func TestClearEmitsClearedEvent(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)
	store.Add(ctx, jacket, "", "M")

	var kinds []enums.CartEventKind
	store.Subscribe(func(e Event) { kinds = append(kinds, e.Kind) })

	store.Clear(ctx)

	if len(store.Items()) != 0 {
		t.Fatal("expected empty cart")
	}
	if len(kinds) != 2 || kinds[0] != enums.CartEventCleared || kinds[1] != enums.CartEventUpdated {
		t.Fatalf("unexpected event sequence: %v", kinds)
	}
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	calls := 0
	unsubscribe := store.Subscribe(func(Event) { calls++ })

	store.Add(ctx, jacket, "", "M")
	unsubscribe()
	store.Add(ctx, jacket, "", "M")

	if calls != 1 {
		t.Fatalf("expected 1 delivery, got %d", calls)
	}
}

func TestCartSurvivesRestart(t *testing.T) {
	ctx := context.Background()
	kv := localstore.NewMemory()

	first, err := NewStore(ctx, kv, testLogger(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	first.Add(ctx, jacket, "#1b2a41", "M")
	first.Add(ctx, shirt, "", "L")

	second, err := NewStore(ctx, kv, testLogger(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.Count() != 2 {
		t.Fatalf("expected reloaded cart of 2 units, got %d", second.Count())
	}
	if got := second.Total().StringFixed(2); got != "108.00" {
		t.Fatalf("expected total 108.00, got %s", got)
	}
}

func TestCorruptPersistedCartStartsEmpty(t *testing.T) {
	ctx := context.Background()
	kv := localstore.NewMemory()
	if err := kv.Set(ctx, localstore.CartKey(), "{broken"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	store, err := NewStore(ctx, kv, testLogger(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(store.Items()) != 0 {
		t.Fatal("expected empty cart for corrupt record")
	}
}

func TestQuantityDecodesLeniently(t *testing.T) {
	var items []Item
	raw := `[
		{"id":1,"title":"a","price":10,"quantity":2},
		{"id":2,"title":"b","price":10,"quantity":"3"},
		{"id":3,"title":"c","price":10,"quantity":null},
		{"id":4,"title":"d","price":10,"quantity":"oops"},
		{"id":5,"title":"e","price":10}
	]`
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []Quantity{2, 3, 0, 0, 0}
	for i, item := range items {
		if item.Quantity != want[i] {
			t.Fatalf("item %d: expected quantity %d, got %d", i, want[i], item.Quantity)
		}
	}
}

func TestTotalIgnoresInvalidQuantities(t *testing.T) {
	ctx := context.Background()
	kv := localstore.NewMemory()
	raw := `[{"id":1,"title":"a","price":10,"quantity":"oops"},{"id":2,"title":"b","price":25,"quantity":2}]`
	if err := kv.Set(ctx, localstore.CartKey(), raw); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	store, err := NewStore(ctx, kv, testLogger(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := store.Total().StringFixed(2); got != "50.00" {
		t.Fatalf("expected total 50.00, got %s", got)
	}
	if store.Count() != 2 {
		t.Fatalf("expected 2 countable units, got %d", store.Count())
	}
}
