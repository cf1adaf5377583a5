package controllers

import (
	"net/http"

	"github.com/fasco-shop/storefront/api/responses"
	"github.com/fasco-shop/storefront/api/validators"
	"github.com/fasco-shop/storefront/internal/cart"
	"github.com/fasco-shop/storefront/internal/catalog"
	pkgerrors "github.com/fasco-shop/storefront/pkg/errors"
	"github.com/fasco-shop/storefront/pkg/logger"
)

type cartResponse struct {
	Items    []cart.Item `json:"items"`
	Count    int         `json:"count"`
	Subtotal string      `json:"subtotal"`
}

func cartView(store *cart.Store) cartResponse {
	return cartResponse{
		Items:    store.Items(),
		Count:    store.Count(),
		Subtotal: store.Total().StringFixed(2),
	}
}

// GetCart serves the current cart contents.
func GetCart(store *cart.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, cartView(store))
	}
}

type addItemRequest struct {
	Slug     string `json:"slug" validate:"required"`
	Color    string `json:"color"`
	Size     string `json:"size"`
	Quantity int    `json:"quantity" validate:"omitempty,min=1"`
}

// AddCartItem resolves the product and adds the chosen variant, quantity one
// unless the body says otherwise.
func AddCartItem(store *cart.Store, cache *catalog.Cache, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var body addItemRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		product := cache.FetchOne(ctx, body.Slug)
		if product == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "product not found"))
			return
		}

		qty := body.Quantity
		if qty == 0 {
			qty = 1
		}
		if err := store.AddQuantity(ctx, *product, body.Color, body.Size, qty); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, cartView(store))
	}
}

type lineRequest struct {
	ID    int64  `json:"id" validate:"required"`
	Color string `json:"color"`
	Size  string `json:"size"`
}

func (l lineRequest) key() cart.Key {
	return cart.Key{ID: l.ID, Color: l.Color, Size: l.Size}
}

// IncrementCartItem bumps a line's quantity. Unknown lines are a no-op.
func IncrementCartItem(store *cart.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		var body lineRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		store.Increment(ctx, body.key())
		responses.WriteSuccess(w, cartView(store))
	}
}

// DecrementCartItem lowers a line's quantity, removing the line at one.
func DecrementCartItem(store *cart.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		var body lineRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		store.Decrement(ctx, body.key())
		responses.WriteSuccess(w, cartView(store))
	}
}

// RemoveCartItem deletes a line regardless of quantity.
func RemoveCartItem(store *cart.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		var body lineRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		store.Remove(ctx, body.key())
		responses.WriteSuccess(w, cartView(store))
	}
}

// ClearCart empties the cart.
func ClearCart(store *cart.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store.Clear(r.Context())
		responses.WriteSuccess(w, cartView(store))
	}
}
