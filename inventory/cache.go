package main

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// InventoryCache keeps hot inventory rows in Redis. Writers invalidate;
// readers repopulate on miss.
type InventoryCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewInventoryCache(addr string, ttl time.Duration) (*InventoryCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &InventoryCache{
		client: client,
		ttl:    ttl,
	}, nil
}

func (c *InventoryCache) Close() error {
	return c.client.Close()
}

func cacheKey(inventoryID int32) string {
	return fmt.Sprintf("inventory:%d", inventoryID)
}

// Get returns the cached row, or nil on a miss.
func (c *InventoryCache) Get(ctx context.Context, inventoryID int32) (*Inventory, error) {
	data, err := c.client.Get(ctx, cacheKey(inventoryID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get error: %w", err)
	}

	var inv Inventory
	if err := json.Unmarshal(data, &inv); err != nil {
		return nil, fmt.Errorf("failed to unmarshal inventory: %w", err)
	}

	return &inv, nil
}

func (c *InventoryCache) Set(ctx context.Context, inv *Inventory) error {
	data, err := json.Marshal(inv)
	if err != nil {
		return fmt.Errorf("failed to marshal inventory: %w", err)
	}

	if err := c.client.Set(ctx, cacheKey(inv.ID), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set error: %w", err)
	}

	return nil
}

func (c *InventoryCache) Invalidate(ctx context.Context, inventoryID int32) error {
	return c.client.Del(ctx, cacheKey(inventoryID)).Err()
}
