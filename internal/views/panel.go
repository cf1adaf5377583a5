package views

import (
	"github.com/fasco-shop/storefront/internal/cart"
)

// Panel projects the cart into render-ready state: its lines, subtotal and
// the header badge count. It re-derives everything from the store on each
// notification rather than patching prior output.
type Panel struct {
	store *cart.Store

	lines       []cart.Item
	subtotal    string
	badge       int
	unsubscribe func()
}

// NewPanel builds the panel and subscribes it to the store.
func NewPanel(store *cart.Store) *Panel {
	p := &Panel{store: store}
	p.rebuild()
	p.unsubscribe = store.Subscribe(func(cart.Event) {
		p.rebuild()
	})
	return p
}

func (p *Panel) rebuild() {
	p.lines = p.store.Items()
	p.subtotal = p.store.Total().StringFixed(2)
	p.badge = p.store.Count()
}

// Lines returns the rendered cart lines in insertion order.
func (p *Panel) Lines() []cart.Item {
	return p.lines
}

// Subtotal returns the display subtotal.
func (p *Panel) Subtotal() string {
	return p.subtotal
}

// Badge returns the unit count shown on the cart icon.
func (p *Panel) Badge() int {
	return p.badge
}

// Close detaches the panel from the store.
func (p *Panel) Close() {
	if p.unsubscribe != nil {
		p.unsubscribe()
		p.unsubscribe = nil
	}
}
