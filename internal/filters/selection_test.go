package filters

import (
	"testing"

	"github.com/fasco-shop/storefront/pkg/enums"
)

func TestToggleFlipsMembership(t *testing.T) {
	sel := NewSelection()
	sel.ToggleSize("M")
	sel.ToggleSize("L")
	sel.ToggleSize("M")

	chips := sel.Chips()
	if len(chips) != 1 || chips[0].Value != "L" {
		t.Fatalf("expected single L chip, got %+v", chips)
	}
}

func TestClearAllResetsEverything(t *testing.T) {
	sel := NewSelection()
	sel.ToggleSize("M")
	sel.ToggleColor("#123456", "Navy")
	sel.TogglePriceRange(PriceRange{Min: 0, Max: 50})
	sel.ToggleBrand("Acme")
	sel.ToggleTag("summer")
	sel.SetCollection("Winter")
	sel.SetSort(enums.SortKeyNewest)

	if sel.IsEmpty() {
		t.Fatal("expected populated selection")
	}
	sel.ClearAll()
	if !sel.IsEmpty() {
		t.Fatal("expected empty selection after clear")
	}
	if len(sel.Chips()) != 0 {
		t.Fatal("expected no chips after clear")
	}
}

func TestChipsCarryColorDisplayNames(t *testing.T) {
	sel := NewSelection()
	sel.ToggleColor("#1b2a41", "Navy")
	sel.ToggleColor("#f5f5f0", "")

	chips := sel.Chips()
	if len(chips) != 2 {
		t.Fatalf("expected 2 chips, got %d", len(chips))
	}
	if chips[0].Label != "Navy" {
		t.Fatalf("expected display name label, got %q", chips[0].Label)
	}
	if chips[1].Label != "#f5f5f0" {
		t.Fatalf("expected raw value fallback, got %q", chips[1].Label)
	}
}

func TestPriceRangeLabel(t *testing.T) {
	r := PriceRange{Min: 50, Max: 100}
	if got := r.Label(); got != "$50 - $100" {
		t.Fatalf("unexpected label %q", got)
	}
	if !r.Contains(50) || !r.Contains(100) {
		t.Fatal("expected inclusive bounds")
	}
	if r.Contains(100.01) {
		t.Fatal("expected exclusion above max")
	}
}
