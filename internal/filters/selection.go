package filters

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fasco-shop/storefront/pkg/enums"
)

// CollectionAll is the sentinel collection meaning "no collection constraint".
const CollectionAll = "All products"

// PriceRange is an inclusive effective-price interval.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Label renders the interval for chips and sidebars.
func (r PriceRange) Label() string {
	return fmt.Sprintf("$%.0f - $%.0f", r.Min, r.Max)
}

// Contains tests inclusive membership.
func (r PriceRange) Contains(price float64) bool {
	return price >= r.Min && price <= r.Max
}

// Selection is the active filter state. Each category set holds unique
// entries; an empty set means no constraint from that category. Selections
// are transient per browsing session and never persisted.
type Selection struct {
	sizes       map[string]struct{}
	colors      map[string]string // value -> display name
	priceRanges map[PriceRange]struct{}
	brands      map[string]struct{}
	tags        map[string]struct{}
	collection  string
	sortKey     enums.SortKey
}

// NewSelection returns an empty selection with no sort applied.
func NewSelection() *Selection {
	s := &Selection{}
	s.reset()
	return s
}

func (s *Selection) reset() {
	s.sizes = make(map[string]struct{})
	s.colors = make(map[string]string)
	s.priceRanges = make(map[PriceRange]struct{})
	s.brands = make(map[string]struct{})
	s.tags = make(map[string]struct{})
	s.collection = ""
	s.sortKey = enums.SortKeyNone
}

// ToggleSize flips membership of a size label.
func (s *Selection) ToggleSize(size string) {
	toggle(s.sizes, size)
}

// ToggleColor flips membership of a color value, keeping its display name for
// chip rendering.
func (s *Selection) ToggleColor(value, name string) {
	if _, ok := s.colors[value]; ok {
		delete(s.colors, value)
		return
	}
	if name == "" {
		name = value
	}
	s.colors[value] = name
}

// TogglePriceRange flips membership of an inclusive price interval.
func (s *Selection) TogglePriceRange(r PriceRange) {
	if _, ok := s.priceRanges[r]; ok {
		delete(s.priceRanges, r)
		return
	}
	s.priceRanges[r] = struct{}{}
}

// ToggleBrand flips membership of a brand.
func (s *Selection) ToggleBrand(brand string) {
	toggle(s.brands, brand)
}

// ToggleTag flips membership of a tag.
func (s *Selection) ToggleTag(tag string) {
	toggle(s.tags, tag)
}

// SetCollection restricts results to one collection. The sentinel
// CollectionAll (or empty input) clears the constraint.
func (s *Selection) SetCollection(collection string) {
	collection = strings.TrimSpace(collection)
	if collection == "" || strings.EqualFold(collection, CollectionAll) {
		s.collection = ""
		return
	}
	s.collection = collection
}

// Collection returns the active collection constraint, empty when unset.
func (s *Selection) Collection() string {
	return s.collection
}

// SetSort replaces the active sort key.
func (s *Selection) SetSort(key enums.SortKey) {
	s.sortKey = key
}

// Sort returns the active sort key.
func (s *Selection) Sort() enums.SortKey {
	return s.sortKey
}

// ClearAll empties every category and unsets collection and sort.
func (s *Selection) ClearAll() {
	s.reset()
}

// IsEmpty reports whether no constraint of any kind is active.
func (s *Selection) IsEmpty() bool {
	return len(s.sizes) == 0 &&
		len(s.colors) == 0 &&
		len(s.priceRanges) == 0 &&
		len(s.brands) == 0 &&
		len(s.tags) == 0 &&
		s.collection == "" &&
		s.sortKey == enums.SortKeyNone
}

// Chip is one active filter rendered in the selected-filters strip.
type Chip struct {
	Category enums.FilterCategory `json:"category"`
	Value    string               `json:"value"`
	Label    string               `json:"label"`
}

// Chips lists the active filters in a stable order for display.
func (s *Selection) Chips() []Chip {
	chips := []Chip{}
	for _, size := range sortedKeys(s.sizes) {
		chips = append(chips, Chip{Category: enums.FilterCategorySize, Value: size, Label: size})
	}
	colorValues := make([]string, 0, len(s.colors))
	for value := range s.colors {
		colorValues = append(colorValues, value)
	}
	sort.Strings(colorValues)
	for _, value := range colorValues {
		chips = append(chips, Chip{Category: enums.FilterCategoryColor, Value: value, Label: s.colors[value]})
	}
	ranges := make([]PriceRange, 0, len(s.priceRanges))
	for r := range s.priceRanges {
		ranges = append(ranges, r)
	}
	sort.Slice(ranges, func(i, j int) bool { return ranges[i].Min < ranges[j].Min })
	for _, r := range ranges {
		chips = append(chips, Chip{Category: enums.FilterCategoryPrice, Value: r.Label(), Label: r.Label()})
	}
	for _, brand := range sortedKeys(s.brands) {
		chips = append(chips, Chip{Category: enums.FilterCategoryBrand, Value: brand, Label: brand})
	}
	for _, tag := range sortedKeys(s.tags) {
		chips = append(chips, Chip{Category: enums.FilterCategoryTag, Value: tag, Label: tag})
	}
	if s.collection != "" {
		chips = append(chips, Chip{Category: enums.FilterCategoryCollection, Value: s.collection, Label: s.collection})
	}
	return chips
}

func toggle(set map[string]struct{}, value string) {
	if _, ok := set[value]; ok {
		delete(set, value)
		return
	}
	set[value] = struct{}{}
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
