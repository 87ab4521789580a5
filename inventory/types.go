package main

import (
	"context"
	"errors"
)

var (
	// ErrNotFound means the inventory row does not exist.
	ErrNotFound = errors.New("inventory not found")
	// ErrInvalidCount rejects zero and negative amounts before they
	// reach the database.
	ErrInvalidCount = errors.New("count must be positive")
)

// Inventory is one stock row.
type Inventory struct {
	ID          int32  `json:"id"`
	Count       int32  `json:"count"`
	Description string `json:"description"`
}

// InventoryChange is one ledger row. DeductionOrderID is set only for
// deductions; the unique constraint on it makes deductions idempotent
// per order.
type InventoryChange struct {
	ID               int32  `json:"id"`
	InventoryID      int32  `json:"inventory_id"`
	Count            int32  `json:"count"`
	DeductionOrderID *int32 `json:"deduction_order_id"`
	Description      string `json:"description"`
}

type InventoryService interface {
	Deduct(ctx context.Context, inventoryID, count, orderID int32, description string) error
	Add(ctx context.Context, inventoryID, count int32, description string) error
	Query(ctx context.Context, inventoryID int32) (*Inventory, error)
	History(ctx context.Context, inventoryID int32) ([]InventoryChange, error)
}

type InventoryStore interface {
	Deduct(ctx context.Context, inventoryID, count, orderID int32, description string) error
	Add(ctx context.Context, inventoryID, count int32, description string) error
	Query(ctx context.Context, inventoryID int32) (*Inventory, error)
	History(ctx context.Context, inventoryID int32) ([]InventoryChange, error)
}
