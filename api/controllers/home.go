package controllers

import (
	"net/http"

	"github.com/fasco-shop/storefront/api/responses"
	"github.com/fasco-shop/storefront/internal/catalog"
	"github.com/fasco-shop/storefront/internal/filters"
	"github.com/fasco-shop/storefront/internal/promos"
	"github.com/fasco-shop/storefront/pkg/config"
	"github.com/fasco-shop/storefront/pkg/enums"
	"github.com/fasco-shop/storefront/pkg/logger"
)

type homeDeal struct {
	Product   catalog.Product `json:"product"`
	Remaining string          `json:"remaining"`
	Percent   int             `json:"percent"`
}

type homeResponse struct {
	NewArrivals map[string][]catalog.Product `json:"newArrivals"`
	Deals       []homeDeal                   `json:"deals"`
}

// Home serves the landing page payload: new arrivals grouped per category
// tab, capped per tab, plus the deals of the month with their countdowns.
func Home(cache *catalog.Cache, deals *promos.Timer, cfg *config.Config, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		products := cache.FetchAll(ctx)

		sel := filters.NewSelection()
		sel.SetSort(enums.SortKeyNewest)
		newest := filters.Apply(products, sel)

		tabs := map[string][]catalog.Product{}
		for _, product := range newest {
			category := product.Category
			if category == "" {
				category = "Other"
			}
			if len(tabs[category]) >= cfg.Shop.HomeTabCap {
				continue
			}
			tabs[category] = append(tabs[category], product)
		}

		dealItems := []homeDeal{}
		for _, product := range cache.Discounted(ctx) {
			dealItems = append(dealItems, homeDeal{
				Product:   product,
				Remaining: promos.FormatRemaining(deals.Remaining(ctx, product.ID)),
				Percent:   product.DiscountPercent(),
			})
		}

		responses.WriteSuccess(w, homeResponse{
			NewArrivals: tabs,
			Deals:       dealItems,
		})
	}
}
