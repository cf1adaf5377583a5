package checkout

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/fasco-shop/storefront/internal/cart"
)

// Line is one cart line priced for the order summary.
type Line struct {
	Item  cart.Item `json:"item"`
	Total string    `json:"total"`
}

// Summary is the order summary presented on the checkout page. Amounts are
// computed exactly and rendered to two decimal places only at the edge.
type Summary struct {
	Lines    []Line `json:"lines"`
	Subtotal string `json:"subtotal"`
	Shipping string `json:"shipping"`
	Total    string `json:"total"`
	Units    int    `json:"units"`
}

// Calculator prices the cart with a flat shipping fee.
type Calculator struct {
	shippingFee decimal.Decimal
}

// NewCalculator validates the flat shipping fee.
func NewCalculator(shippingFee decimal.Decimal) (*Calculator, error) {
	if shippingFee.IsNegative() {
		return nil, errors.New("shipping fee cannot be negative")
	}
	return &Calculator{shippingFee: shippingFee}, nil
}

// Summarize prices the given cart lines. An empty cart carries no shipping
// charge.
func (c *Calculator) Summarize(items []cart.Item) Summary {
	lines := make([]Line, 0, len(items))
	subtotal := decimal.Zero
	units := 0

	for _, item := range items {
		lineTotal := item.LineTotal()
		subtotal = subtotal.Add(lineTotal)
		if item.Quantity > 0 {
			units += int(item.Quantity)
		}
		lines = append(lines, Line{Item: item, Total: lineTotal.StringFixed(2)})
	}

	shipping := decimal.Zero
	if len(items) > 0 {
		shipping = c.shippingFee
	}

	return Summary{
		Lines:    lines,
		Subtotal: subtotal.StringFixed(2),
		Shipping: shipping.StringFixed(2),
		Total:    subtotal.Add(shipping).StringFixed(2),
		Units:    units,
	}
}
