package views

import (
	"context"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/fasco-shop/storefront/internal/cart"
	"github.com/fasco-shop/storefront/internal/catalog"
	"github.com/fasco-shop/storefront/internal/filters"
	"github.com/fasco-shop/storefront/pkg/localstore"
	"github.com/fasco-shop/storefront/pkg/logger"
	"github.com/rs/zerolog"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "test", Level: zerolog.Disabled, Output: io.Discard})
}

func newCartStore(t *testing.T) *cart.Store {
	t.Helper()
	store, err := cart.NewStore(context.Background(), localstore.NewMemory(), testLogger(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return store
}

func gridProducts(n int) []catalog.Product {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	products := make([]catalog.Product, 0, n)
	for i := 0; i < n; i++ {
		products = append(products, catalog.Product{
			ID:        int64(i + 1),
			Title:     fmt.Sprintf("p%d", i+1),
			CreatedAt: base.AddDate(0, 0, i),
		})
	}
	return products
}

var jacket = catalog.Product{ID: 1, Title: "Denim Jacket", Price: 80}

func TestGridPagination(t *testing.T) {
	grid := NewGrid(9)
	grid.SetProducts(gridProducts(12))

	if grid.TotalPages() != 2 {
		t.Fatalf("expected 2 pages, got %d", grid.TotalPages())
	}
	if page := grid.Page(); len(page) != 9 {
		t.Fatalf("expected 9 products on page 1, got %d", len(page))
	}

	grid.NextPage()
	page := grid.Page()
	if len(page) != 3 {
		t.Fatalf("expected 3 products on page 2, got %d", len(page))
	}
	if page[0].ID != 10 {
		t.Fatalf("expected page 2 to start at product 10, got %d", page[0].ID)
	}

	grid.NextPage()
	if grid.CurrentPage() != 2 {
		t.Fatalf("expected page clamp at 2, got %d", grid.CurrentPage())
	}
}

func TestGridResetsToPageOneOnNewSet(t *testing.T) {
	grid := NewGrid(9)
	grid.SetProducts(gridProducts(12))
	grid.NextPage()

	// An identical set keeps the page.
	grid.SetProducts(gridProducts(12))
	if grid.CurrentPage() != 2 {
		t.Fatalf("expected page kept for identical set, got %d", grid.CurrentPage())
	}

	// A changed set snaps back to page one.
	grid.SetProducts(gridProducts(11))
	if grid.CurrentPage() != 1 {
		t.Fatalf("expected reset to page 1, got %d", grid.CurrentPage())
	}
}

func TestGridEmptySet(t *testing.T) {
	grid := NewGrid(9)
	grid.SetProducts(nil)
	if grid.TotalPages() != 1 {
		t.Fatalf("expected 1 page for empty set, got %d", grid.TotalPages())
	}
	if page := grid.Page(); len(page) != 0 {
		t.Fatalf("expected empty page, got %d products", len(page))
	}
}

func TestPanelTracksCart(t *testing.T) {
	ctx := context.Background()
	store := newCartStore(t)
	panel := NewPanel(store)
	defer panel.Close()

	if panel.Badge() != 0 || panel.Subtotal() != "0.00" {
		t.Fatalf("expected empty panel, got badge=%d subtotal=%s", panel.Badge(), panel.Subtotal())
	}

	store.Add(ctx, jacket, "", "M")
	store.Add(ctx, jacket, "", "M")

	if panel.Badge() != 2 {
		t.Fatalf("expected badge 2, got %d", panel.Badge())
	}
	if panel.Subtotal() != "160.00" {
		t.Fatalf("expected subtotal 160.00, got %s", panel.Subtotal())
	}
	if len(panel.Lines()) != 1 {
		t.Fatalf("expected 1 line, got %d", len(panel.Lines()))
	}

	store.Clear(ctx)
	if panel.Badge() != 0 || len(panel.Lines()) != 0 {
		t.Fatal("expected panel cleared with cart")
	}
}

func TestPanelCloseStopsUpdates(t *testing.T) {
	ctx := context.Background()
	store := newCartStore(t)
	panel := NewPanel(store)

	store.Add(ctx, jacket, "", "M")
	panel.Close()
	store.Add(ctx, jacket, "", "M")

	if panel.Badge() != 1 {
		t.Fatalf("expected stale badge 1 after close, got %d", panel.Badge())
	}
}

func TestButtonsRecomputeOnCartChanges(t *testing.T) {
	ctx := context.Background()
	store := newCartStore(t)
	buttons := NewButtons(store)
	defer buttons.Close()

	key := cart.Key{ID: 1, Color: "", Size: "M"}
	if buttons.Register(key) {
		t.Fatal("expected variant absent initially")
	}

	store.Add(ctx, jacket, "", "M")
	if !buttons.InCart(key) {
		t.Fatal("expected button to flip after add")
	}

	store.Decrement(ctx, key)
	if buttons.InCart(key) {
		t.Fatal("expected button to flip back after removal")
	}
}

func TestChipStripRemove(t *testing.T) {
	sel := filters.NewSelection()
	sel.ToggleSize("M")
	sel.ToggleBrand("Acme")
	sel.TogglePriceRange(filters.PriceRange{Min: 0, Max: 50})
	sel.SetCollection("Winter")

	strip := NewChipStrip(sel)
	chips := strip.Chips()
	if len(chips) != 4 {
		t.Fatalf("expected 4 chips, got %d", len(chips))
	}

	for _, chip := range chips {
		strip.Remove(chip)
	}
	if !sel.IsEmpty() {
		t.Fatalf("expected empty selection, remaining chips: %+v", strip.Chips())
	}
}
