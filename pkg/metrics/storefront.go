package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// StorefrontMetrics tracks catalog fetches, cart mutations and rating votes.
// All methods tolerate a nil receiver so callers never guard instrumentation.
type StorefrontMetrics struct {
	catalogFetches *prometheus.CounterVec
	cartOps        *prometheus.CounterVec
	ratingVotes    prometheus.Counter
}

// Catalog fetch result labels.
const (
	CatalogResultRemote = "remote"
	CatalogResultCache  = "cache"
	CatalogResultEmpty  = "empty"
)

// NewStorefrontMetrics registers the storefront metrics on the provided
// registerer. A nil registerer yields a no-op instance.
func NewStorefrontMetrics(reg prometheus.Registerer) *StorefrontMetrics {
	if reg == nil {
		return &StorefrontMetrics{}
	}
	catalogFetches := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "catalog_fetch_total",
		Help: "Catalog fetches by result source.",
	}, []string{"result"})
	cartOps := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cart_operations_total",
		Help: "Cart mutations by operation.",
	}, []string{"op"})
	ratingVotes := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "rating_votes_total",
		Help: "Submitted product rating votes.",
	})
	reg.MustRegister(catalogFetches, cartOps, ratingVotes)
	return &StorefrontMetrics{
		catalogFetches: catalogFetches,
		cartOps:        cartOps,
		ratingVotes:    ratingVotes,
	}
}

// IncCatalogFetch counts a catalog load by its result source.
func (m *StorefrontMetrics) IncCatalogFetch(result string) {
	if m == nil || m.catalogFetches == nil {
		return
	}
	m.catalogFetches.WithLabelValues(normalizeLabel(result)).Inc()
}

// IncCartOp counts a cart mutation by operation name.
func (m *StorefrontMetrics) IncCartOp(op string) {
	if m == nil || m.cartOps == nil {
		return
	}
	m.cartOps.WithLabelValues(normalizeLabel(op)).Inc()
}

// IncRatingVote counts a submitted rating.
func (m *StorefrontMetrics) IncRatingVote() {
	if m == nil || m.ratingVotes == nil {
		return
	}
	m.ratingVotes.Inc()
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
