package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/kmalyshev/online_store/internal/models"
)

const productTTL = 5 * time.Minute

// ProductCache is a read-through cache in front of the product table.
// A nil *ProductCache is valid and behaves as a permanent miss.
type ProductCache struct {
	Client *redis.Client
}

func NewProductCache(addr, password string) *ProductCache {
	if addr == "" {
		return nil
	}
	return &ProductCache{
		Client: redis.NewClient(&redis.Options{Addr: addr, Password: password}),
	}
}

func productKey(id uint) string {
	return fmt.Sprintf("product:%d", id)
}

func (c *ProductCache) Get(ctx context.Context, id uint) (*models.Product, bool) {
	if c == nil || c.Client == nil {
		return nil, false
	}

	data, err := c.Client.Get(ctx, productKey(id)).Bytes()
	if err != nil {
		return nil, false
	}

	var p models.Product
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, false
	}
	return &p, true
}

func (c *ProductCache) Set(ctx context.Context, p *models.Product) error {
	if c == nil || c.Client == nil {
		return nil
	}

	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("cache product %d: %w", p.ID, err)
	}
	return c.Client.Set(ctx, productKey(p.ID), data, productTTL).Err()
}

func (c *ProductCache) Invalidate(ctx context.Context, id uint) error {
	if c == nil || c.Client == nil {
		return nil
	}

	err := c.Client.Del(ctx, productKey(id)).Err()
	if err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("invalidate product %d: %w", id, err)
	}
	return nil
}
