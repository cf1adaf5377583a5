package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/fasco-shop/storefront/api/controllers"
	"github.com/fasco-shop/storefront/api/middleware"
	"github.com/fasco-shop/storefront/internal/cart"
	"github.com/fasco-shop/storefront/internal/catalog"
	"github.com/fasco-shop/storefront/internal/checkout"
	"github.com/fasco-shop/storefront/internal/promos"
	"github.com/fasco-shop/storefront/internal/ratings"
	"github.com/fasco-shop/storefront/pkg/config"
	"github.com/fasco-shop/storefront/pkg/localstore"
	"github.com/fasco-shop/storefront/pkg/logger"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	kv localstore.Store,
	cache *catalog.Cache,
	cartStore *cart.Store,
	ratingStore *ratings.Store,
	dealTimer *promos.Timer,
	calculator *checkout.Calculator,
	registry *prometheus.Registry,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
	)

	r.Get("/health/live", controllers.HealthLive(cfg))
	r.Get("/health/ready", controllers.HealthReady(cfg, kv, logg))
	if registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/home", controllers.Home(cache, dealTimer, cfg, logg))
		r.Get("/filters", controllers.ListFilters(cache))

		r.Get("/products", controllers.ListProducts(cache, cfg, logg))
		r.Get("/products/{slug}", controllers.GetProduct(cache, ratingStore, dealTimer, logg))

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", controllers.GetCart(cartStore))
			r.Post("/items", controllers.AddCartItem(cartStore, cache, logg))
			r.Post("/increment", controllers.IncrementCartItem(cartStore, logg))
			r.Post("/decrement", controllers.DecrementCartItem(cartStore, logg))
			r.Post("/remove", controllers.RemoveCartItem(cartStore, logg))
			r.Post("/clear", controllers.ClearCart(cartStore))
		})

		r.Get("/checkout/summary", controllers.CheckoutSummary(cartStore, calculator))

		r.Route("/ratings/{productID}", func(r chi.Router) {
			r.Get("/", controllers.GetRating(ratingStore, logg))
			r.Post("/", controllers.AddRating(ratingStore, logg))
		})
	})

	return r
}
