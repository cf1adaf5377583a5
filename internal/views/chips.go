package views

import (
	"github.com/fasco-shop/storefront/internal/filters"
	"github.com/fasco-shop/storefront/pkg/enums"
)

// ChipStrip projects the active filter selection into removable chips.
type ChipStrip struct {
	selection *filters.Selection
}

// NewChipStrip binds the strip to a selection.
func NewChipStrip(selection *filters.Selection) *ChipStrip {
	return &ChipStrip{selection: selection}
}

// Chips lists the active filters in display order.
func (c *ChipStrip) Chips() []filters.Chip {
	return c.selection.Chips()
}

// Remove clears one chip by toggling its filter off.
func (c *ChipStrip) Remove(chip filters.Chip) {
	switch chip.Category {
	case enums.FilterCategorySize:
		c.selection.ToggleSize(chip.Value)
	case enums.FilterCategoryColor:
		c.selection.ToggleColor(chip.Value, chip.Label)
	case enums.FilterCategoryPrice:
		for _, band := range filters.PriceBands() {
			if band.Label() == chip.Value {
				c.selection.TogglePriceRange(band)
				return
			}
		}
	case enums.FilterCategoryBrand:
		c.selection.ToggleBrand(chip.Value)
	case enums.FilterCategoryTag:
		c.selection.ToggleTag(chip.Value)
	case enums.FilterCategoryCollection:
		c.selection.SetCollection("")
	}
}
