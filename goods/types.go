package main

import (
	"context"
	"errors"
)

var ErrGoodsNotFound = errors.New("goods not found")

// GoodsSummary is the list-view projection of a catalog entry.
type GoodsSummary struct {
	ID    int32  `json:"id"`
	Name  string `json:"goods_name"`
	Image string `json:"goods_image"`
}

// GoodsDetail is the full catalog entry. UnitPrice is in cents.
// InventoryCount comes from the inventory service at read time, not
// from the catalog.
type GoodsDetail struct {
	ID             int32  `json:"id"`
	Name           string `json:"goods_name"`
	Image          string `json:"goods_image"`
	UnitPrice      int32  `json:"unit_price"`
	Description    string `json:"goods_des"`
	InventoryCount int32  `json:"inventory_count"`
}

type GoodsService interface {
	ListGoods(ctx context.Context, page, pageSize int64) ([]GoodsSummary, error)
	GetGoodsDetail(ctx context.Context, goodsID int32) (*GoodsDetail, error)
}

type GoodsStore interface {
	List(ctx context.Context, page, pageSize int64) ([]GoodsSummary, error)
	GetByID(ctx context.Context, goodsID int32) (*GoodsDetail, error)
}

// InventoryCounter reports the live stock count for a catalog entry.
// Catalog ids double as inventory ids across the fleet.
type InventoryCounter interface {
	Count(ctx context.Context, inventoryID int32) (int32, error)
}
