package cart

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/fasco-shop/storefront/internal/catalog"
	"github.com/fasco-shop/storefront/pkg/enums"
	pkgerrors "github.com/fasco-shop/storefront/pkg/errors"
	"github.com/fasco-shop/storefront/pkg/localstore"
	"github.com/fasco-shop/storefront/pkg/logger"
	"github.com/fasco-shop/storefront/pkg/metrics"
)

// Event describes a cart mutation delivered to subscribers. Removed is set
// only for item removal events.
type Event struct {
	Kind    enums.CartEventKind
	Removed *Key
}

// Store holds the shopper's cart, persisting every mutation wholesale before
// notifying subscribers. Persistence failures are logged but never block the
// mutation: the in-memory cart is the source of truth for the session.
type Store struct {
	mu      sync.Mutex
	kv      localstore.Store
	logger  *logger.Logger
	metrics *metrics.StorefrontMetrics

	items   []Item
	subs    map[int]func(Event)
	nextSub int
}

var (
	errStoreKVRequired     = errors.New("cart store backend is required")
	errStoreLoggerRequired = errors.New("cart logger is required")
)

// NewStore loads the persisted cart. A missing or corrupt record yields an
// empty cart rather than an error.
func NewStore(ctx context.Context, kv localstore.Store, logg *logger.Logger, m *metrics.StorefrontMetrics) (*Store, error) {
	if kv == nil {
		return nil, errStoreKVRequired
	}
	if logg == nil {
		return nil, errStoreLoggerRequired
	}
	s := &Store{
		kv:      kv,
		logger:  logg,
		metrics: m,
		items:   []Item{},
		subs:    make(map[int]func(Event)),
	}
	s.load(ctx)
	return s, nil
}

func (s *Store) load(ctx context.Context) {
	raw, err := s.kv.Get(ctx, localstore.CartKey())
	if err != nil {
		if !errors.Is(err, localstore.ErrNotFound) {
			s.logger.Error(ctx, "loading persisted cart", err)
		}
		return
	}
	var items []Item
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		s.logger.Warn(ctx, "persisted cart is corrupt, starting empty")
		return
	}
	s.items = items
}

// Subscribe registers a callback for cart events and returns the matching
// unsubscribe. Callbacks run after the mutation has been persisted.
func (s *Store) Subscribe(fn func(Event)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

// Add puts one unit of the product variant in the cart, freezing the
// effective price at add time. Adding an existing line bumps its quantity.
func (s *Store) Add(ctx context.Context, product catalog.Product, color, size string) {
	s.AddQuantity(ctx, product, color, size, 1)
}

// AddQuantity adds the given number of units. Quantities below one are
// rejected.
func (s *Store) AddQuantity(ctx context.Context, product catalog.Product, color, size string, qty int) error {
	if qty < 1 {
		return pkgerrors.New(pkgerrors.CodeValidation, "quantity must be at least 1")
	}
	key := Key{ID: product.ID, Color: color, Size: size}

	s.mu.Lock()
	if idx := s.indexOf(key); idx >= 0 {
		s.items[idx].Quantity += Quantity(qty)
	} else {
		s.items = append(s.items, Item{
			ID:                product.ID,
			Title:             product.Title,
			Price:             product.EffectivePrice(),
			Images:            product.Images,
			SelectedColor:     color,
			SelectedColorName: product.ColorNameAt(color),
			SelectedSize:      size,
			Quantity:          Quantity(qty),
		})
	}
	s.persistLocked(ctx)
	s.mu.Unlock()

	s.metrics.IncCartOp("add")
	s.notify(Event{Kind: enums.CartEventUpdated})
	return nil
}

// Increment bumps a line's quantity by one. Unknown lines are ignored.
func (s *Store) Increment(ctx context.Context, key Key) {
	s.mu.Lock()
	idx := s.indexOf(key)
	if idx < 0 {
		s.mu.Unlock()
		return
	}
	s.items[idx].Quantity++
	s.persistLocked(ctx)
	s.mu.Unlock()

	s.metrics.IncCartOp("increment")
	s.notify(Event{Kind: enums.CartEventUpdated})
}

// Decrement lowers a line's quantity by one; at quantity one the line is
// removed entirely.
func (s *Store) Decrement(ctx context.Context, key Key) {
	s.mu.Lock()
	idx := s.indexOf(key)
	if idx < 0 {
		s.mu.Unlock()
		return
	}

	removed := false
	if s.items[idx].Quantity <= 1 {
		s.items = append(s.items[:idx], s.items[idx+1:]...)
		removed = true
	} else {
		s.items[idx].Quantity--
	}
	s.persistLocked(ctx)
	s.mu.Unlock()

	s.metrics.IncCartOp("decrement")
	if removed {
		s.notify(Event{Kind: enums.CartEventItemRemoved, Removed: &key})
	}
	s.notify(Event{Kind: enums.CartEventUpdated})
}

// Remove drops a line regardless of quantity. Unknown lines are ignored.
func (s *Store) Remove(ctx context.Context, key Key) {
	s.mu.Lock()
	idx := s.indexOf(key)
	if idx < 0 {
		s.mu.Unlock()
		return
	}
	s.items = append(s.items[:idx], s.items[idx+1:]...)
	s.persistLocked(ctx)
	s.mu.Unlock()

	s.metrics.IncCartOp("remove")
	s.notify(Event{Kind: enums.CartEventItemRemoved, Removed: &key})
	s.notify(Event{Kind: enums.CartEventUpdated})
}

// Clear empties the cart.
func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	s.items = []Item{}
	s.persistLocked(ctx)
	s.mu.Unlock()

	s.metrics.IncCartOp("clear")
	s.notify(Event{Kind: enums.CartEventCleared})
	s.notify(Event{Kind: enums.CartEventUpdated})
}

// Items returns a copy of the cart lines in insertion order.
func (s *Store) Items() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

// Contains reports whether any line exists for the product, regardless of
// color or size.
func (s *Store) Contains(productID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range s.items {
		if item.ID == productID {
			return true
		}
	}
	return false
}

// ContainsVariant reports whether the exact line exists.
func (s *Store) ContainsVariant(key Key) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.indexOf(key) >= 0
}

// Count is the total number of units across all lines.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, item := range s.items {
		if item.Quantity > 0 {
			total += int(item.Quantity)
		}
	}
	return total
}

// Total is the cart subtotal over frozen unit prices.
func (s *Store) Total() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := decimal.Zero
	for _, item := range s.items {
		total = total.Add(item.LineTotal())
	}
	return total
}

func (s *Store) indexOf(key Key) int {
	for i, item := range s.items {
		if item.Key() == key {
			return i
		}
	}
	return -1
}

func (s *Store) persistLocked(ctx context.Context) {
	raw, err := json.Marshal(s.items)
	if err != nil {
		s.logger.Error(ctx, "encoding cart", err)
		return
	}
	if err := s.kv.Set(ctx, localstore.CartKey(), string(raw)); err != nil {
		s.logger.Error(ctx, "persisting cart", err)
	}
}

func (s *Store) notify(event Event) {
	s.mu.Lock()
	ids := make([]int, 0, len(s.subs))
	for id := range s.subs {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	callbacks := make([]func(Event), 0, len(ids))
	for _, id := range ids {
		callbacks = append(callbacks, s.subs[id])
	}
	s.mu.Unlock()

	for _, fn := range callbacks {
		fn(event)
	}
}
