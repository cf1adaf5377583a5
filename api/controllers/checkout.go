package controllers

import (
	"net/http"

	"github.com/fasco-shop/storefront/api/responses"
	"github.com/fasco-shop/storefront/internal/cart"
	"github.com/fasco-shop/storefront/internal/checkout"
)

// CheckoutSummary prices the current cart with the flat shipping fee.
func CheckoutSummary(store *cart.Store, calc *checkout.Calculator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, calc.Summarize(store.Items()))
	}
}
