package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	appErrors "github.com/MatthewMo520/CalendarOptimizer/pkg/errors"
)

// CacheRepository wraps Redis for optimization result caching.
type CacheRepository struct {
	client *redis.Client
}

// NewCacheRepository constructs a cache repository.
func NewCacheRepository(client *redis.Client) *CacheRepository {
	return &CacheRepository{client: client}
}

// Get reads a cached value into dest, returning ErrCacheMiss when absent.
func (r *CacheRepository) Get(ctx context.Context, key string, dest interface{}) error {
	data, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return appErrors.ErrCacheMiss
	}
	if err != nil {
		return appErrors.Wrap(err, "CACHE_ERROR", 500, "failed to read cache")
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return appErrors.Wrap(err, "CACHE_ERROR", 500, "failed to decode cached value")
	}
	return nil
}

// Set stores value under key for ttl.
func (r *CacheRepository) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return appErrors.Wrap(err, "CACHE_ERROR", 500, "failed to encode value for cache")
	}
	if err := r.client.Set(ctx, key, data, ttl).Err(); err != nil {
		return appErrors.Wrap(err, "CACHE_ERROR", 500, "failed to write cache")
	}
	return nil
}

// Delete removes a key. Missing keys are not an error.
func (r *CacheRepository) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, key).Err(); err != nil {
		return appErrors.Wrap(err, "CACHE_ERROR", 500, "failed to delete cache key")
	}
	return nil
}
