package main

import (
	"context"
)

type service struct {
	store InventoryStore
}

func NewService(store InventoryStore) *service {
	return &service{store}
}

func (s *service) Deduct(ctx context.Context, inventoryID, count, orderID int32, description string) error {
	if count <= 0 {
		return ErrInvalidCount
	}

	return s.store.Deduct(ctx, inventoryID, count, orderID, description)
}

func (s *service) Add(ctx context.Context, inventoryID, count int32, description string) error {
	if count <= 0 {
		return ErrInvalidCount
	}

	return s.store.Add(ctx, inventoryID, count, description)
}

func (s *service) Query(ctx context.Context, inventoryID int32) (*Inventory, error) {
	return s.store.Query(ctx, inventoryID)
}

func (s *service) History(ctx context.Context, inventoryID int32) ([]InventoryChange, error) {
	return s.store.History(ctx, inventoryID)
}
