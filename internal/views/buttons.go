package views

import (
	"sync"

	"github.com/fasco-shop/storefront/internal/cart"
)

// Buttons tracks "already in cart" state for every add-to-cart button on a
// page. Each registered variant is recomputed from the store whenever the
// cart changes, so buttons never drift from cart contents.
type Buttons struct {
	store *cart.Store

	mu          sync.Mutex
	states      map[cart.Key]bool
	unsubscribe func()
}

// NewButtons builds the tracker and subscribes it to the store.
func NewButtons(store *cart.Store) *Buttons {
	b := &Buttons{
		store:  store,
		states: make(map[cart.Key]bool),
	}
	b.unsubscribe = store.Subscribe(func(cart.Event) {
		b.recompute()
	})
	return b
}

// Register starts tracking a variant and returns its current state.
func (b *Buttons) Register(key cart.Key) bool {
	inCart := b.store.ContainsVariant(key)
	b.mu.Lock()
	b.states[key] = inCart
	b.mu.Unlock()
	return inCart
}

// InCart reports the tracked state for a variant. Unregistered variants read
// straight from the store.
func (b *Buttons) InCart(key cart.Key) bool {
	b.mu.Lock()
	state, ok := b.states[key]
	b.mu.Unlock()
	if ok {
		return state
	}
	return b.store.ContainsVariant(key)
}

func (b *Buttons) recompute() {
	b.mu.Lock()
	keys := make([]cart.Key, 0, len(b.states))
	for key := range b.states {
		keys = append(keys, key)
	}
	b.mu.Unlock()

	for _, key := range keys {
		inCart := b.store.ContainsVariant(key)
		b.mu.Lock()
		b.states[key] = inCart
		b.mu.Unlock()
	}
}

// Close detaches the tracker from the store.
func (b *Buttons) Close() {
	if b.unsubscribe != nil {
		b.unsubscribe()
		b.unsubscribe = nil
	}
}
