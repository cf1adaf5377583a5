package controllers

import (
	"net/http"

	"github.com/fasco-shop/storefront/api/responses"
	"github.com/fasco-shop/storefront/internal/catalog"
	"github.com/fasco-shop/storefront/internal/filters"
)

// ListFilters serves the sidebar facets derived from the current catalog.
func ListFilters(cache *catalog.Cache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		products := cache.FetchAll(r.Context())
		responses.WriteSuccess(w, filters.BuildFacets(products))
	}
}
