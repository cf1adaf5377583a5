package controllers

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/fasco-shop/storefront/api/responses"
	"github.com/fasco-shop/storefront/api/validators"
	"github.com/fasco-shop/storefront/internal/catalog"
	"github.com/fasco-shop/storefront/internal/filters"
	"github.com/fasco-shop/storefront/internal/promos"
	"github.com/fasco-shop/storefront/internal/ratings"
	"github.com/fasco-shop/storefront/internal/views"
	"github.com/fasco-shop/storefront/pkg/config"
	"github.com/fasco-shop/storefront/pkg/enums"
	pkgerrors "github.com/fasco-shop/storefront/pkg/errors"
	"github.com/fasco-shop/storefront/pkg/logger"
)

type productListResponse struct {
	Products   []catalog.Product `json:"products"`
	Chips      []filters.Chip    `json:"chips"`
	Page       int               `json:"page"`
	TotalPages int               `json:"totalPages"`
	TotalItems int               `json:"totalItems"`
}

// ListProducts serves the shop listing: the filtered, sorted, paginated
// product window plus the active filter chips.
func ListProducts(cache *catalog.Cache, cfg *config.Config, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		query := r.URL.Query()

		sel, err := selectionFromQuery(query)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		page, err := validators.QueryInt(query, "page", 1)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		products := cache.FetchAll(ctx)
		if q := query.Get("q"); q != "" {
			products = filters.Search(products, q)
		}
		visible := filters.Apply(products, sel)

		grid := views.NewGrid(cfg.Shop.PageSize)
		grid.SetProducts(visible)
		grid.SetPage(page)

		responses.WriteSuccess(w, productListResponse{
			Products:   grid.Page(),
			Chips:      sel.Chips(),
			Page:       grid.CurrentPage(),
			TotalPages: grid.TotalPages(),
			TotalItems: grid.TotalItems(),
		})
	}
}

type productDetailResponse struct {
	Product *catalog.Product `json:"product"`
	Rating  ratings.Record   `json:"rating"`
	Deal    *dealResponse    `json:"deal,omitempty"`
}

type dealResponse struct {
	EndsAt    string `json:"endsAt"`
	Remaining string `json:"remaining"`
	Percent   int    `json:"percent"`
}

// GetProduct serves the detail page payload. Unknown slugs are a not-found,
// which the storefront turns into a redirect to the listing.
func GetProduct(cache *catalog.Cache, ratingStore *ratings.Store, deals *promos.Timer, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		slug := chi.URLParam(r, "slug")

		product := cache.FetchOne(ctx, slug)
		if product == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "product not found"))
			return
		}

		ctx = logg.WithProductID(ctx, product.ID)
		payload := productDetailResponse{
			Product: product,
			Rating:  ratingStore.Get(ctx, product.ID),
		}
		if product.HasDiscount() {
			end := deals.EndTime(ctx, product.ID)
			payload.Deal = &dealResponse{
				EndsAt:    end.UTC().Format(time.RFC3339),
				Remaining: promos.FormatRemaining(deals.Remaining(ctx, product.ID)),
				Percent:   product.DiscountPercent(),
			}
		}
		responses.WriteSuccess(w, payload)
	}
}

func selectionFromQuery(query url.Values) (*filters.Selection, error) {
	sel := filters.NewSelection()
	for _, size := range validators.QueryList(query, "sizes") {
		sel.ToggleSize(size)
	}
	for _, color := range validators.QueryList(query, "colors") {
		sel.ToggleColor(color, "")
	}
	for _, raw := range validators.QueryList(query, "price") {
		band, err := parsePriceRange(raw)
		if err != nil {
			return nil, err
		}
		sel.TogglePriceRange(band)
	}
	for _, brand := range validators.QueryList(query, "brands") {
		sel.ToggleBrand(brand)
	}
	for _, tag := range validators.QueryList(query, "tags") {
		sel.ToggleTag(tag)
	}
	sel.SetCollection(query.Get("collection"))

	sortKey, err := enums.ParseSortKey(query.Get("sort"))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid sort key")
	}
	sel.SetSort(sortKey)
	return sel, nil
}

func parsePriceRange(raw string) (filters.PriceRange, error) {
	parts := strings.SplitN(raw, "-", 2)
	if len(parts) != 2 {
		return filters.PriceRange{}, pkgerrors.New(pkgerrors.CodeValidation, "price range must be min-max")
	}
	min, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return filters.PriceRange{}, pkgerrors.New(pkgerrors.CodeValidation, "price range must be min-max")
	}
	max, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return filters.PriceRange{}, pkgerrors.New(pkgerrors.CodeValidation, "price range must be min-max")
	}
	if max < min {
		return filters.PriceRange{}, pkgerrors.New(pkgerrors.CodeValidation, "price range max must not be below min")
	}
	return filters.PriceRange{Min: min, Max: max}, nil
}
