package main

import (
	"context"

	"go.uber.org/zap"
)

// CachedStore wraps PostgresStore with cache-aside reads: Query checks
// Redis first and falls back to postgres, writers invalidate. Cache
// failures never fail the operation.
type CachedStore struct {
	store *PostgresStore
	cache *InventoryCache
}

func NewCachedStore(store *PostgresStore, cache *InventoryCache) *CachedStore {
	return &CachedStore{
		store: store,
		cache: cache,
	}
}

func (s *CachedStore) Query(ctx context.Context, inventoryID int32) (*Inventory, error) {
	cached, err := s.cache.Get(ctx, inventoryID)
	if err != nil {
		zap.L().Warn("inventory cache read failed", zap.Int32("inventory_id", inventoryID), zap.Error(err))
	} else if cached != nil {
		return cached, nil
	}

	inv, err := s.store.Query(ctx, inventoryID)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, inv); err != nil {
		zap.L().Warn("failed to populate inventory cache", zap.Int32("inventory_id", inventoryID), zap.Error(err))
	}

	return inv, nil
}

func (s *CachedStore) Deduct(ctx context.Context, inventoryID, count, orderID int32, description string) error {
	if err := s.store.Deduct(ctx, inventoryID, count, orderID, description); err != nil {
		return err
	}

	if err := s.cache.Invalidate(ctx, inventoryID); err != nil {
		zap.L().Warn("failed to invalidate inventory cache", zap.Int32("inventory_id", inventoryID), zap.Error(err))
	}

	return nil
}

func (s *CachedStore) Add(ctx context.Context, inventoryID, count int32, description string) error {
	if err := s.store.Add(ctx, inventoryID, count, description); err != nil {
		return err
	}

	if err := s.cache.Invalidate(ctx, inventoryID); err != nil {
		zap.L().Warn("failed to invalidate inventory cache", zap.Int32("inventory_id", inventoryID), zap.Error(err))
	}

	return nil
}

// History reads the ledger straight from postgres; audit reads skip
// the cache.
func (s *CachedStore) History(ctx context.Context, inventoryID int32) ([]InventoryChange, error) {
	return s.store.History(ctx, inventoryID)
}

var _ InventoryStore = (*CachedStore)(nil)
