package views

import (
	"github.com/fasco-shop/storefront/internal/catalog"
)

// Grid owns pagination over the filtered product set. Nothing else tracks the
// current page; handing the grid a different product set snaps it back to
// page one.
type Grid struct {
	pageSize  int
	page      int
	products  []catalog.Product
	signature []int64
}

// NewGrid returns a grid on page one. Page sizes below one fall back to one.
func NewGrid(pageSize int) *Grid {
	if pageSize < 1 {
		pageSize = 1
	}
	return &Grid{pageSize: pageSize, page: 1, products: []catalog.Product{}}
}

// SetProducts replaces the underlying product set. The current page is kept
// only when the set is identical to the previous one.
func (g *Grid) SetProducts(products []catalog.Product) {
	signature := make([]int64, len(products))
	for i, p := range products {
		signature[i] = p.ID
	}
	if !sameSignature(g.signature, signature) {
		g.page = 1
	}
	g.products = products
	g.signature = signature
	g.clampPage()
}

// Page returns the products visible on the current page.
func (g *Grid) Page() []catalog.Product {
	start := (g.page - 1) * g.pageSize
	if start >= len(g.products) {
		return []catalog.Product{}
	}
	end := start + g.pageSize
	if end > len(g.products) {
		end = len(g.products)
	}
	out := make([]catalog.Product, end-start)
	copy(out, g.products[start:end])
	return out
}

// CurrentPage reports the one-based page number.
func (g *Grid) CurrentPage() int {
	return g.page
}

// TotalPages reports how many pages the current set spans, at least one.
func (g *Grid) TotalPages() int {
	if len(g.products) == 0 {
		return 1
	}
	return (len(g.products) + g.pageSize - 1) / g.pageSize
}

// TotalItems reports the size of the underlying set.
func (g *Grid) TotalItems() int {
	return len(g.products)
}

// SetPage jumps to a page, clamped to the valid range.
func (g *Grid) SetPage(page int) {
	g.page = page
	g.clampPage()
}

// NextPage advances one page when possible.
func (g *Grid) NextPage() {
	g.SetPage(g.page + 1)
}

// PrevPage steps back one page when possible.
func (g *Grid) PrevPage() {
	g.SetPage(g.page - 1)
}

func (g *Grid) clampPage() {
	if g.page < 1 {
		g.page = 1
	}
	if max := g.TotalPages(); g.page > max {
		g.page = max
	}
}

func sameSignature(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
