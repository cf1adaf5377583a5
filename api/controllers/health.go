package controllers

import (
	"net/http"

	"github.com/fasco-shop/storefront/api/responses"
	"github.com/fasco-shop/storefront/pkg/config"
	pkgerrors "github.com/fasco-shop/storefront/pkg/errors"
	"github.com/fasco-shop/storefront/pkg/localstore"
	"github.com/fasco-shop/storefront/pkg/logger"
)

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Fasco-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

func HealthReady(cfg *config.Config, kv localstore.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Fasco-Env", cfg.App.Env)
		if err := kv.Ping(r.Context()); err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "storage not ready"))
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
