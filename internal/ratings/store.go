package ratings

import (
	"context"
	"encoding/json"
	"errors"

	pkgerrors "github.com/fasco-shop/storefront/pkg/errors"
	"github.com/fasco-shop/storefront/pkg/localstore"
	"github.com/fasco-shop/storefront/pkg/logger"
	"github.com/fasco-shop/storefront/pkg/metrics"
)

// Record holds the accumulated votes for one product.
type Record struct {
	Count      int     `json:"count"`
	Average    float64 `json:"average"`
	Individual []int   `json:"individual"`
}

// Store reads and accumulates per-product rating records.
type Store struct {
	kv      localstore.Store
	logger  *logger.Logger
	metrics *metrics.StorefrontMetrics
}

var (
	errRatingsKVRequired     = errors.New("ratings store backend is required")
	errRatingsLoggerRequired = errors.New("ratings logger is required")
)

// NewStore validates collaborators.
func NewStore(kv localstore.Store, logg *logger.Logger, m *metrics.StorefrontMetrics) (*Store, error) {
	if kv == nil {
		return nil, errRatingsKVRequired
	}
	if logg == nil {
		return nil, errRatingsLoggerRequired
	}
	return &Store{kv: kv, logger: logg, metrics: m}, nil
}

// Get returns the rating record for a product. Missing or corrupt records
// read as an empty record rather than an error.
func (s *Store) Get(ctx context.Context, productID int64) Record {
	raw, err := s.kv.Get(ctx, localstore.RatingsKey(productID))
	if err != nil {
		if !errors.Is(err, localstore.ErrNotFound) {
			s.logger.Error(ctx, "reading rating record", err)
		}
		return Record{Individual: []int{}}
	}
	var record Record
	if err := json.Unmarshal([]byte(raw), &record); err != nil {
		s.logger.Warn(ctx, "rating record is corrupt, treating as empty")
		return Record{Individual: []int{}}
	}
	if record.Individual == nil {
		record.Individual = []int{}
	}
	return record
}

// Add appends a vote, recomputes the running average and persists the record.
// Votes outside 1..5 are rejected.
func (s *Store) Add(ctx context.Context, productID int64, vote int) (Record, error) {
	if vote < 1 || vote > 5 {
		return Record{}, pkgerrors.New(pkgerrors.CodeValidation, "rating must be between 1 and 5")
	}

	record := s.Get(ctx, productID)
	record.Individual = append(record.Individual, vote)
	record.Count = len(record.Individual)

	sum := 0
	for _, v := range record.Individual {
		sum += v
	}
	record.Average = float64(sum) / float64(record.Count)

	raw, err := json.Marshal(record)
	if err != nil {
		return Record{}, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encoding rating record")
	}
	if err := s.kv.Set(ctx, localstore.RatingsKey(productID), string(raw)); err != nil {
		return Record{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persisting rating record")
	}
	s.metrics.IncRatingVote()
	return record, nil
}
