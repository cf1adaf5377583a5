package enums

import "fmt"

// FilterCategory identifies one facet of the shop filter sidebar.
type FilterCategory string

const (
	FilterCategorySize       FilterCategory = "size"
	FilterCategoryColor      FilterCategory = "color"
	FilterCategoryPrice      FilterCategory = "price"
	FilterCategoryBrand      FilterCategory = "brand"
	FilterCategoryTag        FilterCategory = "tag"
	FilterCategoryCollection FilterCategory = "collection"
)

var validFilterCategories = []FilterCategory{
	FilterCategorySize,
	FilterCategoryColor,
	FilterCategoryPrice,
	FilterCategoryBrand,
	FilterCategoryTag,
	FilterCategoryCollection,
}

// String implements fmt.Stringer.
func (f FilterCategory) String() string {
	return string(f)
}

// IsValid reports whether the value is a known FilterCategory.
func (f FilterCategory) IsValid() bool {
	for _, candidate := range validFilterCategories {
		if candidate == f {
			return true
		}
	}
	return false
}

// ParseFilterCategory converts raw input into a FilterCategory.
func ParseFilterCategory(value string) (FilterCategory, error) {
	for _, candidate := range validFilterCategories {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid filter category %q", value)
}
