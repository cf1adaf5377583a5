package controllers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/fasco-shop/storefront/api/responses"
	"github.com/fasco-shop/storefront/api/validators"
	"github.com/fasco-shop/storefront/internal/ratings"
	pkgerrors "github.com/fasco-shop/storefront/pkg/errors"
	"github.com/fasco-shop/storefront/pkg/logger"
)

func productIDParam(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "productID")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "product id must be a positive integer")
	}
	return id, nil
}

// GetRating serves the accumulated rating record for a product.
func GetRating(store *ratings.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		id, err := productIDParam(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, store.Get(ctx, id))
	}
}

type addRatingRequest struct {
	Vote int `json:"vote" validate:"required,min=1,max=5"`
}

// AddRating records a vote and returns the updated record.
func AddRating(store *ratings.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		id, err := productIDParam(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		var body addRatingRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		record, err := store.Add(logg.WithProductID(ctx, id), id, body.Vote)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, record)
	}
}
