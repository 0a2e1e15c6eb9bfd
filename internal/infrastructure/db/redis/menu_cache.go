package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/airbean/order-system/internal/core/domain"
)

const (
	menuCacheKey = "menu:list"
	menuCacheTTL = 5 * time.Minute
)

// MenuCache caches the full product listing. The catalog store stays
// authoritative; every mutation invalidates the cached list.
type MenuCache struct {
	client *redis.Client
}

// NewMenuCache creates a MenuCache wrapping the given Redis client.
func NewMenuCache(client *redis.Client) *MenuCache {
	return &MenuCache{client: client}
}

// Get returns the cached listing and whether it was present.
func (c *MenuCache) Get(ctx context.Context) ([]*domain.Product, bool, error) {
	raw, err := c.client.Get(ctx, menuCacheKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("menu cache get: %w", err)
	}

	var products []*domain.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		return nil, false, fmt.Errorf("menu cache decode: %w", err)
	}
	return products, true, nil
}

// Set stores the listing with a bounded TTL.
func (c *MenuCache) Set(ctx context.Context, products []*domain.Product) error {
	raw, err := json.Marshal(products)
	if err != nil {
		return fmt.Errorf("menu cache encode: %w", err)
	}
	return c.client.Set(ctx, menuCacheKey, raw, menuCacheTTL).Err()
}

// Invalidate drops the cached listing.
func (c *MenuCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, menuCacheKey).Err()
}
