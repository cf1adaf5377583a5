// Command warmcache primes the local catalog cache from the remote feed so a
// fresh deployment serves products before its first listing request.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/fasco-shop/storefront/internal/catalog"
	"github.com/fasco-shop/storefront/pkg/config"
	"github.com/fasco-shop/storefront/pkg/localstore"
	"github.com/fasco-shop/storefront/pkg/logger"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "warmcache"})
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		logg.Warn(ctx, ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(ctx, "failed to load config", err)
		os.Exit(1)
	}

	if !cfg.Redis.Configured() {
		logg.Error(ctx, "warmcache requires redis", fmt.Errorf("no redis endpoint configured"))
		os.Exit(1)
	}
	kv, err := localstore.NewRedis(ctx, cfg.Redis)
	if err != nil {
		logg.Error(ctx, "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer kv.Close()

	client, err := catalog.NewClient(cfg.Catalog, logg)
	if err != nil {
		logg.Error(ctx, "failed to create catalog client", err)
		os.Exit(1)
	}
	cache, err := catalog.NewCache(client, kv, logg, nil)
	if err != nil {
		logg.Error(ctx, "failed to create catalog cache", err)
		os.Exit(1)
	}

	products := cache.FetchAll(ctx)
	if len(products) == 0 {
		logg.Error(ctx, "catalog warm-up fetched no products", fmt.Errorf("empty catalog"))
		os.Exit(1)
	}
	logg.Info(logg.WithField(ctx, "products", len(products)), "catalog cache warmed")
}
