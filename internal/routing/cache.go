package routing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache stores resolved routes by request key
type Cache interface {
	Get(ctx context.Context, key string) (Route, bool, error)
	Set(ctx context.Context, key string, route Route) error
}

// RedisCache keeps routes in Redis as JSON with a TTL
type RedisCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisCache creates a Redis backed cache
func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, prefix: "itinerary:route:", ttl: ttl}
}

func (c *RedisCache) key(k string) string {
	return c.prefix + k
}

// Get implements Cache
func (c *RedisCache) Get(ctx context.Context, key string) (Route, bool, error) {
	raw, err := c.client.Get(ctx, c.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return Route{}, false, nil
	}
	if err != nil {
		return Route{}, false, fmt.Errorf("redis get route: %w", err)
	}
	var route Route
	if err := json.Unmarshal(raw, &route); err != nil {
		return Route{}, false, fmt.Errorf("decode cached route: %w", err)
	}
	return route, true, nil
}

// Set implements Cache
func (c *RedisCache) Set(ctx context.Context, key string, route Route) error {
	raw, err := json.Marshal(route)
	if err != nil {
		return fmt.Errorf("encode route: %w", err)
	}
	if err := c.client.Set(ctx, c.key(key), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set route: %w", err)
	}
	return nil
}

// Ping checks the Redis connection
func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// CachedResolver answers from the cache and falls back to next.
// Cache failures are logged and never fail a resolution.
type CachedResolver struct {
	next  Resolver
	cache Cache
}

// NewCachedResolver wraps next with cache
func NewCachedResolver(next Resolver, cache Cache) *CachedResolver {
	return &CachedResolver{next: next, cache: cache}
}

// Resolve implements Resolver
func (r *CachedResolver) Resolve(ctx context.Context, req Request) (Route, error) {
	key := req.Key()
	if route, ok, err := r.cache.Get(ctx, key); err != nil {
		log.Printf("route cache get %s: %v", key, err)
	} else if ok {
		return route, nil
	}

	route, err := r.next.Resolve(ctx, req)
	if err != nil {
		return Route{}, err
	}
	if err := r.cache.Set(ctx, key, route); err != nil {
		log.Printf("route cache set %s: %v", key, err)
	}
	return route, nil
}
