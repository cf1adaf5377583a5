package enums

import "fmt"

// SortKey names the orderings offered by the shop listing.
type SortKey string

const (
	SortKeyNone        SortKey = "none"
	SortKeyNewest      SortKey = "newest"
	SortKeyPriceLow    SortKey = "price-low"
	SortKeyPriceHigh   SortKey = "price-high"
	SortKeyBestSelling SortKey = "best-selling"
)

var validSortKeys = []SortKey{
	SortKeyNone,
	SortKeyNewest,
	SortKeyPriceLow,
	SortKeyPriceHigh,
	SortKeyBestSelling,
}

// String implements fmt.Stringer.
func (s SortKey) String() string {
	return string(s)
}

// IsValid reports whether the value is a known SortKey.
func (s SortKey) IsValid() bool {
	for _, candidate := range validSortKeys {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseSortKey converts raw input into a SortKey. Empty input means no sort.
func ParseSortKey(value string) (SortKey, error) {
	if value == "" {
		return SortKeyNone, nil
	}
	for _, candidate := range validSortKeys {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid sort key %q", value)
}
