package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/fasco-shop/storefront/api/routes"
	"github.com/fasco-shop/storefront/internal/cart"
	"github.com/fasco-shop/storefront/internal/catalog"
	"github.com/fasco-shop/storefront/internal/checkout"
	"github.com/fasco-shop/storefront/internal/promos"
	"github.com/fasco-shop/storefront/internal/ratings"
	"github.com/fasco-shop/storefront/pkg/config"
	"github.com/fasco-shop/storefront/pkg/localstore"
	"github.com/fasco-shop/storefront/pkg/logger"
	"github.com/fasco-shop/storefront/pkg/metrics"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	var kv localstore.Store
	if cfg.Redis.Configured() {
		redisStore, err := localstore.NewRedis(context.Background(), cfg.Redis)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap redis", err)
			os.Exit(1)
		}
		defer func() {
			if err := redisStore.Close(); err != nil {
				logg.Error(context.Background(), "error closing redis", err)
			}
		}()
		kv = redisStore
	} else {
		logg.Warn(context.Background(), "redis not configured, storefront state is in-process only")
		kv = localstore.NewMemory()
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	storeMetrics := metrics.NewStorefrontMetrics(registry)

	client, err := catalog.NewClient(cfg.Catalog, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create catalog client", err)
		os.Exit(1)
	}
	cache, err := catalog.NewCache(client, kv, logg, storeMetrics)
	if err != nil {
		logg.Error(context.Background(), "failed to create catalog cache", err)
		os.Exit(1)
	}

	cartStore, err := cart.NewStore(context.Background(), kv, logg, storeMetrics)
	if err != nil {
		logg.Error(context.Background(), "failed to create cart store", err)
		os.Exit(1)
	}

	ratingStore, err := ratings.NewStore(kv, logg, storeMetrics)
	if err != nil {
		logg.Error(context.Background(), "failed to create ratings store", err)
		os.Exit(1)
	}

	dealTimer, err := promos.NewTimer(kv, logg, cfg.Shop.DealTTL)
	if err != nil {
		logg.Error(context.Background(), "failed to create deal timer", err)
		os.Exit(1)
	}

	shippingFee, err := cfg.Shop.ShippingFeeAmount()
	if err != nil {
		logg.Error(context.Background(), "invalid shipping fee", err)
		os.Exit(1)
	}
	calculator, err := checkout.NewCalculator(shippingFee)
	if err != nil {
		logg.Error(context.Background(), "failed to create checkout calculator", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting storefront api")

	server := &http.Server{
		Addr:    addr,
		Handler: routes.NewRouter(cfg, logg, kv, cache, cartStore, ratingStore, dealTimer, calculator, registry),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "storefront api stopped unexpectedly", err)
		os.Exit(1)
	}
}
