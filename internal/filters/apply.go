package filters

import (
	"sort"
	"strings"

	"github.com/fasco-shop/storefront/internal/catalog"
	"github.com/fasco-shop/storefront/pkg/enums"
)

// Apply derives the visible subset of the catalog: every non-empty category
// must be satisfied (AND across categories), a product matches a category by
// matching any selected value in it (OR within a category), and the sort runs
// last without mutating the input. Apply is a pure function of its inputs.
func Apply(products []catalog.Product, sel *Selection) []catalog.Product {
	filtered := []catalog.Product{}
	for _, product := range products {
		if matches(product, sel) {
			filtered = append(filtered, product)
		}
	}
	sortProducts(filtered, sel)
	return filtered
}

// Search keeps products whose title contains the query, case-insensitively.
// An empty query keeps everything.
func Search(products []catalog.Product, query string) []catalog.Product {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		out := make([]catalog.Product, len(products))
		copy(out, products)
		return out
	}
	matched := []catalog.Product{}
	for _, product := range products {
		if strings.Contains(strings.ToLower(product.Title), query) {
			matched = append(matched, product)
		}
	}
	return matched
}

func matches(p catalog.Product, sel *Selection) bool {
	if sel == nil {
		return true
	}
	if len(sel.sizes) > 0 && !anyInSet(p.Sizes, sel.sizes) {
		return false
	}
	if len(sel.colors) > 0 {
		found := false
		for _, color := range p.Colors {
			if _, ok := sel.colors[color]; ok {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if len(sel.priceRanges) > 0 {
		price := p.EffectivePrice()
		found := false
		for r := range sel.priceRanges {
			if r.Contains(price) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if len(sel.brands) > 0 {
		if _, ok := sel.brands[p.Brand]; !ok {
			return false
		}
	}
	if len(sel.tags) > 0 && !anyInSet(p.Tags, sel.tags) {
		return false
	}
	if sel.collection != "" {
		found := false
		for _, collection := range p.Collections {
			if collection == sel.collection {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func sortProducts(products []catalog.Product, sel *Selection) {
	if sel == nil {
		return
	}
	switch sel.sortKey {
	case enums.SortKeyNewest:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].CreatedAt.After(products[j].CreatedAt)
		})
	case enums.SortKeyPriceLow:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].EffectivePrice() < products[j].EffectivePrice()
		})
	case enums.SortKeyPriceHigh:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].EffectivePrice() > products[j].EffectivePrice()
		})
	case enums.SortKeyBestSelling:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].SalesCount > products[j].SalesCount
		})
	}
}

func anyInSet(values []string, set map[string]struct{}) bool {
	for _, value := range values {
		if _, ok := set[value]; ok {
			return true
		}
	}
	return false
}
