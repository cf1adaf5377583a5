package localstore

import (
	"context"
	"errors"
	"strconv"
	"strings"
)

const (
	keyNamespace    = "fasco"
	cartKey         = "cart"
	catalogKey      = "products"
	ratingsPrefix   = "ratings"
	dealTimerPrefix = "deal_timer"
)

// ErrNotFound is returned when a key has no stored value.
var ErrNotFound = errors.New("localstore: key not found")

// Store is the persistent key-value surface the storefront state lives on.
// Values are JSON documents written wholesale; a missing key is not an error
// condition for callers, who fall back to empty structures.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Del(ctx context.Context, keys ...string) error
	Ping(ctx context.Context) error
}

// CartKey is the fixed key the persisted cart lives under.
func CartKey() string {
	return buildKey(cartKey)
}

// CatalogKey is the fixed key the cached product catalog lives under.
func CatalogKey() string {
	return buildKey(catalogKey)
}

// RatingsKey namespaces the per-product rating record.
func RatingsKey(productID int64) string {
	return buildKey(ratingsPrefix, strconv.FormatInt(productID, 10))
}

// DealTimerKey namespaces the per-product deal countdown end time.
func DealTimerKey(productID int64) string {
	return buildKey(dealTimerPrefix, strconv.FormatInt(productID, 10))
}

func buildKey(parts ...string) string {
	if len(parts) == 0 {
		return keyNamespace
	}
	clean := []string{keyNamespace}
	for _, part := range parts {
		if part == "" {
			continue
		}
		clean = append(clean, strings.TrimSpace(part))
	}
	return strings.Join(clean, ":")
}
