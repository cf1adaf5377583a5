package filters

import (
	"sort"

	"github.com/fasco-shop/storefront/internal/catalog"
)

// ColorOption pairs a color value with its display name for the sidebar.
type ColorOption struct {
	Value string `json:"value"`
	Name  string `json:"name"`
}

// Facets are the selectable filter options derived from a catalog.
type Facets struct {
	Sizes       []string      `json:"sizes"`
	Colors      []ColorOption `json:"colors"`
	PriceRanges []PriceRange  `json:"priceRanges"`
	Brands      []string      `json:"brands"`
	Tags        []string      `json:"tags"`
	Collections []string      `json:"collections"`
}

// Sizes appear in garment order rather than alphabetically.
var sizeOrder = []string{"S", "M", "L", "XL", "XXL"}

// The shop offers a fixed ladder of price bands regardless of catalog content.
var priceBands = []PriceRange{
	{Min: 0, Max: 50},
	{Min: 50, Max: 100},
	{Min: 100, Max: 150},
	{Min: 150, Max: 200},
	{Min: 300, Max: 400},
}

// PriceBands returns the fixed price intervals offered by the sidebar.
func PriceBands() []PriceRange {
	bands := make([]PriceRange, len(priceBands))
	copy(bands, priceBands)
	return bands
}

// BuildFacets derives the unique filter options present in the catalog.
func BuildFacets(products []catalog.Product) Facets {
	sizeSet := make(map[string]struct{})
	colorSet := make(map[string]string)
	brandSet := make(map[string]struct{})
	tagSet := make(map[string]struct{})
	collectionSet := make(map[string]struct{})

	for _, p := range products {
		for _, size := range p.Sizes {
			sizeSet[size] = struct{}{}
		}
		for _, color := range p.Colors {
			if _, ok := colorSet[color]; !ok {
				colorSet[color] = p.ColorNameAt(color)
			}
		}
		if p.Brand != "" {
			brandSet[p.Brand] = struct{}{}
		}
		for _, tag := range p.Tags {
			tagSet[tag] = struct{}{}
		}
		for _, collection := range p.Collections {
			collectionSet[collection] = struct{}{}
		}
	}

	sizes := []string{}
	for _, size := range sizeOrder {
		if _, ok := sizeSet[size]; ok {
			sizes = append(sizes, size)
			delete(sizeSet, size)
		}
	}
	// Unconventional sizes trail the standard ladder.
	for _, size := range sortedKeys(sizeSet) {
		sizes = append(sizes, size)
	}

	colorValues := make([]string, 0, len(colorSet))
	for value := range colorSet {
		colorValues = append(colorValues, value)
	}
	sort.Strings(colorValues)
	colors := make([]ColorOption, 0, len(colorValues))
	for _, value := range colorValues {
		colors = append(colors, ColorOption{Value: value, Name: colorSet[value]})
	}

	return Facets{
		Sizes:       sizes,
		Colors:      colors,
		PriceRanges: PriceBands(),
		Brands:      sortedKeys(brandSet),
		Tags:        sortedKeys(tagSet),
		Collections: append([]string{CollectionAll}, sortedKeys(collectionSet)...),
	}
}
