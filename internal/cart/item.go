package cart

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Quantity decodes leniently: missing, null or non-numeric values become zero
// rather than failing the whole cart load, so one bad record never wipes the
// shopper's cart.
type Quantity int

// UnmarshalJSON accepts numbers, numeric strings and garbage alike.
func (q *Quantity) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "" || raw == "null" {
		*q = 0
		return nil
	}
	if n, err := strconv.Atoi(raw); err == nil {
		*q = Quantity(n)
		return nil
	}
	var viaString string
	if err := json.Unmarshal(data, &viaString); err == nil {
		if n, err := strconv.Atoi(strings.TrimSpace(viaString)); err == nil {
			*q = Quantity(n)
			return nil
		}
	}
	var viaFloat float64
	if err := json.Unmarshal(data, &viaFloat); err == nil {
		*q = Quantity(int(viaFloat))
		return nil
	}
	*q = 0
	return nil
}

// Item is one cart line. A line is identified by product plus the chosen
// color and size, so the same product in two colors occupies two lines.
type Item struct {
	ID                int64    `json:"id"`
	Title             string   `json:"title"`
	Price             float64  `json:"price"`
	Images            []string `json:"images"`
	SelectedColor     string   `json:"selectedColor"`
	SelectedColorName string   `json:"selectedColorName"`
	SelectedSize      string   `json:"selectedSize"`
	Quantity          Quantity `json:"quantity"`
}

// Key identifies a cart line.
type Key struct {
	ID    int64
	Color string
	Size  string
}

// Key returns the line identity of the item.
func (i Item) Key() Key {
	return Key{ID: i.ID, Color: i.SelectedColor, Size: i.SelectedSize}
}

// LineTotal multiplies the frozen unit price by quantity. Invalid quantities
// count as zero.
func (i Item) LineTotal() decimal.Decimal {
	qty := int64(i.Quantity)
	if qty <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromFloat(i.Price).Mul(decimal.NewFromInt(qty))
}
