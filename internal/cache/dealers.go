// Package cache provides a Redis read-through cache for dealership names.
package cache

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/donaldgifford/dealer-appraisal/internal/metrics"
)

const (
	defaultPrefix = "dap:dealer:"
	defaultTTL    = time.Hour
)

// NameSource is the authoritative dealership directory behind the cache.
type NameSource interface {
	DealershipNames(ctx context.Context, ids []string) (map[string]string, error)
}

// DealerNames caches dealership ID to name lookups in Redis. Redis failures
// degrade to the source; they are never returned to the caller.
type DealerNames struct {
	client redis.Cmdable
	source NameSource
	ttl    time.Duration
	prefix string
	log    *slog.Logger
}

// Option configures DealerNames.
type Option func(*DealerNames)

// WithTTL sets how long cached names live.
func WithTTL(ttl time.Duration) Option {
	return func(c *DealerNames) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

// WithPrefix sets the Redis key prefix.
func WithPrefix(p string) Option {
	return func(c *DealerNames) {
		c.prefix = p
	}
}

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *DealerNames) {
		c.log = l
	}
}

// NewDealerNames creates a cache in front of source.
func NewDealerNames(client redis.Cmdable, source NameSource, opts ...Option) *DealerNames {
	c := &DealerNames{
		client: client,
		source: source,
		ttl:    defaultTTL,
		prefix: defaultPrefix,
		log:    slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewClient opens a Redis client and verifies it with a PING.
func NewClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("pinging redis at %s: %w", addr, err)
	}
	return client, nil
}

// DealershipNames resolves ids, serving what it can from Redis and loading
// the rest from the source.
func (c *DealerNames) DealershipNames(ctx context.Context, ids []string) (map[string]string, error) {
	names := make(map[string]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}

	missing := c.lookup(ctx, ids, names)
	if len(missing) == 0 {
		return names, nil
	}

	loaded, err := c.source.DealershipNames(ctx, missing)
	if err != nil {
		return nil, fmt.Errorf("loading dealership names: %w", err)
	}

	for id, name := range loaded {
		names[id] = name
		if err := c.client.Set(ctx, c.key(id), name, c.ttl).Err(); err != nil {
			metrics.DealerCacheErrorsTotal.Inc()
			c.log.Warn("caching dealership name failed", "dealership_id", id, "error", err)
		}
	}
	return names, nil
}

// Invalidate drops cached names, e.g. after a dealership is renamed or deleted.
func (c *DealerNames) Invalidate(ctx context.Context, ids ...string) error {
	if len(ids) == 0 {
		return nil
	}
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = c.key(id)
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		metrics.DealerCacheErrorsTotal.Inc()
		return fmt.Errorf("invalidating dealership names: %w", err)
	}
	return nil
}

// lookup fills names from Redis and returns the ids it could not resolve.
func (c *DealerNames) lookup(ctx context.Context, ids []string, names map[string]string) []string {
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = c.key(id)
	}

	vals, err := c.client.MGet(ctx, keys...).Result()
	if err != nil {
		metrics.DealerCacheErrorsTotal.Inc()
		c.log.Warn("reading dealership names from cache failed", "error", err)
		return ids
	}

	var missing []string
	for i, id := range ids {
		if i < len(vals) {
			if name, ok := vals[i].(string); ok {
				names[id] = name
				metrics.DealerCacheHitsTotal.Inc()
				continue
			}
		}
		metrics.DealerCacheMissesTotal.Inc()
		missing = append(missing, id)
	}
	return missing
}

func (c *DealerNames) key(id string) string {
	return c.prefix + id
}
