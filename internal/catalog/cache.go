package catalog

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/fasco-shop/storefront/pkg/localstore"
	"github.com/fasco-shop/storefront/pkg/logger"
	"github.com/fasco-shop/storefront/pkg/metrics"
)

// Fetcher pulls products from the remote feed.
type Fetcher interface {
	FetchProducts(ctx context.Context) ([]Product, error)
	FetchBySlug(ctx context.Context, slug string) (*Product, error)
}

// Cache layers the remote catalog feed over local storage. A successful fetch
// overwrites the cached feed wholesale; a failed fetch falls back to whatever
// was cached last, so browsing keeps working while the feed is down.
type Cache struct {
	client  Fetcher
	kv      localstore.Store
	logger  *logger.Logger
	metrics *metrics.StorefrontMetrics
}

var (
	errCacheClientRequired = errors.New("catalog fetcher is required")
	errCacheStoreRequired  = errors.New("catalog store is required")
	errCacheLoggerRequired = errors.New("catalog cache logger is required")
)

// NewCache validates collaborators and returns a ready cache.
func NewCache(client Fetcher, kv localstore.Store, logg *logger.Logger, m *metrics.StorefrontMetrics) (*Cache, error) {
	if client == nil {
		return nil, errCacheClientRequired
	}
	if kv == nil {
		return nil, errCacheStoreRequired
	}
	if logg == nil {
		return nil, errCacheLoggerRequired
	}
	return &Cache{client: client, kv: kv, logger: logg, metrics: m}, nil
}

// FetchAll returns the catalog, preferring the live feed. It never returns an
// error: remote failure degrades to the cached copy, and a cold cache degrades
// to an empty slice.
func (c *Cache) FetchAll(ctx context.Context) []Product {
	products, err := c.client.FetchProducts(ctx)
	if err == nil {
		c.metrics.IncCatalogFetch(metrics.CatalogResultRemote)
		c.persist(ctx, products)
		return products
	}
	c.logger.Warn(ctx, "catalog feed unavailable, serving cached products")

	cached, ok := c.cached(ctx)
	if !ok {
		c.metrics.IncCatalogFetch(metrics.CatalogResultEmpty)
		return []Product{}
	}
	c.metrics.IncCatalogFetch(metrics.CatalogResultCache)
	return cached
}

// FetchOne resolves a product by slug, checking the cached feed before going
// remote. It returns nil when the product cannot be found anywhere.
func (c *Cache) FetchOne(ctx context.Context, slug string) *Product {
	if cached, ok := c.cached(ctx); ok {
		for i := range cached {
			if cached[i].Slug == slug {
				return &cached[i]
			}
		}
	}
	product, err := c.client.FetchBySlug(ctx, slug)
	if err != nil {
		c.logger.Warn(ctx, "product lookup failed: "+err.Error())
		return nil
	}
	return product
}

// Discounted returns the cached or live products carrying an active discount.
func (c *Cache) Discounted(ctx context.Context) []Product {
	deals := []Product{}
	for _, product := range c.FetchAll(ctx) {
		if product.HasDiscount() {
			deals = append(deals, product)
		}
	}
	return deals
}

func (c *Cache) persist(ctx context.Context, products []Product) {
	raw, err := json.Marshal(products)
	if err != nil {
		c.logger.Error(ctx, "encoding catalog for cache", err)
		return
	}
	if err := c.kv.Set(ctx, localstore.CatalogKey(), string(raw)); err != nil {
		c.logger.Error(ctx, "caching catalog", err)
	}
}

func (c *Cache) cached(ctx context.Context) ([]Product, bool) {
	raw, err := c.kv.Get(ctx, localstore.CatalogKey())
	if err != nil {
		if !errors.Is(err, localstore.ErrNotFound) {
			c.logger.Error(ctx, "reading cached catalog", err)
		}
		return nil, false
	}
	var products []Product
	if err := json.Unmarshal([]byte(raw), &products); err != nil {
		c.logger.Error(ctx, "decoding cached catalog", err)
		return nil, false
	}
	for i := range products {
		normalize(&products[i])
	}
	return products, true
}
