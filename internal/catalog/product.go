package catalog

import "time"

// RatingSummary mirrors the aggregate rating shipped alongside a product.
type RatingSummary struct {
	Count   int     `json:"count"`
	Average float64 `json:"average"`
}

// Product is a catalog entry. Optional fields arrive absent from the remote
// feed and are defaulted during decode so downstream code never nil-checks
// slices.
type Product struct {
	ID              int64          `json:"id"`
	Slug            string         `json:"slug"`
	Title           string         `json:"title"`
	Brand           string         `json:"brand"`
	Category        string         `json:"category"`
	Status          string         `json:"status"`
	Price           float64        `json:"price"`
	DiscountedPrice *float64       `json:"discountedPrice,omitempty"`
	Colors          []string       `json:"colors"`
	ColorNames      []string       `json:"colorNames"`
	Sizes           []string       `json:"sizes"`
	Images          []string       `json:"images"`
	ImageURL        string         `json:"imageUrl"`
	Tags            []string       `json:"tags"`
	Collections     []string       `json:"collections"`
	Ratings         *RatingSummary `json:"ratings,omitempty"`
	CreatedAt       time.Time      `json:"createdAt"`
	SalesCount      int            `json:"salesCount"`
}

// HasDiscount reports whether a strictly lower discounted price is set.
func (p Product) HasDiscount() bool {
	return p.DiscountedPrice != nil && *p.DiscountedPrice < p.Price
}

// EffectivePrice is the price the shopper actually pays: the discounted price
// when one applies, the list price otherwise.
func (p Product) EffectivePrice() float64 {
	if p.HasDiscount() {
		return *p.DiscountedPrice
	}
	return p.Price
}

// DiscountPercent is the rounded-down percentage off, zero without a discount.
func (p Product) DiscountPercent() int {
	if !p.HasDiscount() || p.Price <= 0 {
		return 0
	}
	return int((p.Price - *p.DiscountedPrice) / p.Price * 100)
}

// ColorNameAt resolves the display name for a color value, falling back to the
// raw value when names and values are out of step.
func (p Product) ColorNameAt(color string) string {
	for i, candidate := range p.Colors {
		if candidate == color && i < len(p.ColorNames) {
			return p.ColorNames[i]
		}
	}
	return color
}

// FeaturedImage is the first gallery image, or the standalone image URL when
// the gallery is empty.
func (p Product) FeaturedImage() string {
	if len(p.Images) > 0 {
		return p.Images[0]
	}
	return p.ImageURL
}

func normalize(p *Product) {
	if p.Colors == nil {
		p.Colors = []string{}
	}
	if p.ColorNames == nil {
		p.ColorNames = []string{}
	}
	if p.Sizes == nil {
		p.Sizes = []string{}
	}
	if p.Images == nil {
		p.Images = []string{}
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
	if p.Collections == nil {
		p.Collections = []string{}
	}
}
