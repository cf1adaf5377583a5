package localstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/fasco-shop/storefront/pkg/config"
	"github.com/redis/go-redis/v9"
)

// RedisStore persists storefront state in Redis. Entries never expire; the
// shopper clears them explicitly, mirroring browser local storage.
type RedisStore struct {
	raw *redis.Client
}

var _ Store = (*RedisStore)(nil)

// NewRedis bootstraps a Redis-backed store and verifies connectivity.
func NewRedis(ctx context.Context, cfg config.RedisConfig) (*RedisStore, error) {
	opts, err := optionsFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	raw := redis.NewClient(opts)
	if err := raw.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return &RedisStore{raw: raw}, nil
}

func optionsFromConfig(cfg config.RedisConfig) (*redis.Options, error) {
	if cfg.URL == "" && cfg.Address == "" {
		return nil, errors.New("redis url or address is required")
	}
	var opts *redis.Options
	if cfg.URL != "" {
		parsed, err := redis.ParseURL(cfg.URL)
		if err != nil {
			return nil, fmt.Errorf("parsing redis url: %w", err)
		}
		opts = parsed
	} else {
		opts = &redis.Options{
			Addr:     cfg.Address,
			Password: cfg.Password,
			DB:       cfg.DB,
		}
	}
	if opts.DB == 0 {
		opts.DB = cfg.DB
	}
	if opts.PoolSize == 0 {
		opts.PoolSize = cfg.PoolSize
	}
	if opts.MinIdleConns == 0 {
		opts.MinIdleConns = cfg.MinIdleConns
	}
	if opts.DialTimeout == 0 {
		opts.DialTimeout = cfg.DialTimeout
	}
	if opts.ReadTimeout == 0 {
		opts.ReadTimeout = cfg.ReadTimeout
	}
	if opts.WriteTimeout == 0 {
		opts.WriteTimeout = cfg.WriteTimeout
	}
	return opts, nil
}

// Get returns the string value stored at key.
func (s *RedisStore) Get(ctx context.Context, key string) (string, error) {
	if s.raw == nil {
		return "", errors.New("redis store not initialized")
	}
	value, err := s.raw.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNotFound
	}
	return value, err
}

// Set stores a value without expiry.
func (s *RedisStore) Set(ctx context.Context, key, value string) error {
	if s.raw == nil {
		return errors.New("redis store not initialized")
	}
	return s.raw.Set(ctx, key, value, 0).Err()
}

// Del removes the provided keys.
func (s *RedisStore) Del(ctx context.Context, keys ...string) error {
	if s.raw == nil {
		return errors.New("redis store not initialized")
	}
	return s.raw.Del(ctx, keys...).Err()
}

// Ping verifies the connection.
func (s *RedisStore) Ping(ctx context.Context) error {
	if s.raw == nil {
		return errors.New("redis store not initialized")
	}
	return s.raw.Ping(ctx).Err()
}

// Close shuts down the underlying client.
func (s *RedisStore) Close() error {
	if s.raw == nil {
		return nil
	}
	return s.raw.Close()
}
