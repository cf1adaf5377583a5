package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"

	"github.com/fasco-shop/storefront/pkg/localstore"
	"github.com/fasco-shop/storefront/pkg/logger"
	"github.com/rs/zerolog"
)

type stubFetcher struct {
	products []Product
	err      error
}

func (s *stubFetcher) FetchProducts(context.Context) ([]Product, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.products, nil
}

func (s *stubFetcher) FetchBySlug(_ context.Context, slug string) (*Product, error) {
	if s.err != nil {
		return nil, s.err
	}
	for i := range s.products {
		if s.products[i].Slug == slug {
			return &s.products[i], nil
		}
	}
	return nil, errors.New("not found")
}

func testLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "test", Level: zerolog.Disabled, Output: io.Discard})
}

func discounted(price float64) *float64 {
	return &price
}

func testProducts() []Product {
	return []Product{
		{ID: 1, Slug: "denim-jacket", Title: "Denim Jacket", Price: 80},
		{ID: 2, Slug: "linen-shirt", Title: "Linen Shirt", Price: 40, DiscountedPrice: discounted(28)},
	}
}

func TestFetchAllCachesRemoteFeed(t *testing.T) {
	ctx := context.Background()
	kv := localstore.NewMemory()
	cache, err := NewCache(&stubFetcher{products: testProducts()}, kv, testLogger(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	products := cache.FetchAll(ctx)
	if len(products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(products))
	}

	raw, err := kv.Get(ctx, localstore.CatalogKey())
	if err != nil {
		t.Fatalf("expected cached catalog: %v", err)
	}
	var cached []Product
	if err := json.Unmarshal([]byte(raw), &cached); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cached) != 2 {
		t.Fatalf("expected 2 cached products, got %d", len(cached))
	}
}

func TestFetchAllFallsBackToCache(t *testing.T) {
	ctx := context.Background()
	kv := localstore.NewMemory()
	fetcher := &stubFetcher{products: testProducts()}
	cache, err := NewCache(fetcher, kv, testLogger(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cache.FetchAll(ctx)

	fetcher.err = errors.New("connection refused")
	products := cache.FetchAll(ctx)
	if len(products) != 2 {
		t.Fatalf("expected cached fallback of 2 products, got %d", len(products))
	}
}

func TestFetchAllColdCacheReturnsEmpty(t *testing.T) {
	cache, err := NewCache(&stubFetcher{err: errors.New("down")}, localstore.NewMemory(), testLogger(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	products := cache.FetchAll(context.Background())
	if products == nil {
		t.Fatal("expected non-nil empty slice")
	}
	if len(products) != 0 {
		t.Fatalf("expected empty slice, got %d products", len(products))
	}
}

func TestFetchAllIgnoresCorruptCache(t *testing.T) {
	ctx := context.Background()
	kv := localstore.NewMemory()
	if err := kv.Set(ctx, localstore.CatalogKey(), "{not json"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cache, err := NewCache(&stubFetcher{err: errors.New("down")}, kv, testLogger(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := cache.FetchAll(ctx); len(got) != 0 {
		t.Fatalf("expected empty slice for corrupt cache, got %d products", len(got))
	}
}

func TestFetchOnePrefersCache(t *testing.T) {
	ctx := context.Background()
	kv := localstore.NewMemory()
	fetcher := &stubFetcher{products: testProducts()}
	cache, err := NewCache(fetcher, kv, testLogger(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cache.FetchAll(ctx)

	fetcher.err = errors.New("down")
	product := cache.FetchOne(ctx, "linen-shirt")
	if product == nil {
		t.Fatal("expected cached product")
	}
	if product.ID != 2 {
		t.Fatalf("expected product 2, got %d", product.ID)
	}

	if missing := cache.FetchOne(ctx, "no-such-slug"); missing != nil {
		t.Fatalf("expected nil for unknown slug, got %+v", missing)
	}
}

func TestDiscounted(t *testing.T) {
	cache, err := NewCache(&stubFetcher{products: testProducts()}, localstore.NewMemory(), testLogger(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	deals := cache.Discounted(context.Background())
	if len(deals) != 1 {
		t.Fatalf("expected 1 deal, got %d", len(deals))
	}
	if deals[0].Slug != "linen-shirt" {
		t.Fatalf("unexpected deal: %s", deals[0].Slug)
	}
}

func TestEffectivePrice(t *testing.T) {
	plain := Product{Price: 50}
	if got := plain.EffectivePrice(); got != 50 {
		t.Fatalf("expected 50, got %v", got)
	}

	deal := Product{Price: 50, DiscountedPrice: discounted(30)}
	if got := deal.EffectivePrice(); got != 30 {
		t.Fatalf("expected 30, got %v", got)
	}
	if got := deal.DiscountPercent(); got != 40 {
		t.Fatalf("expected 40 percent, got %d", got)
	}

	// A "discount" at or above list price does not apply.
	bogus := Product{Price: 50, DiscountedPrice: discounted(60)}
	if bogus.HasDiscount() {
		t.Fatal("expected no discount when discounted price exceeds list price")
	}
	if got := bogus.EffectivePrice(); got != 50 {
		t.Fatalf("expected 50, got %v", got)
	}
}

func TestColorNameAt(t *testing.T) {
	p := Product{
		Colors:     []string{"#112233", "#445566"},
		ColorNames: []string{"Navy", "Slate"},
	}
	if got := p.ColorNameAt("#445566"); got != "Slate" {
		t.Fatalf("expected Slate, got %s", got)
	}
	if got := p.ColorNameAt("#999999"); got != "#999999" {
		t.Fatalf("expected raw fallback, got %s", got)
	}
}
