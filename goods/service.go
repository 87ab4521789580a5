package main

import (
	"context"
	"log/slog"
)

type service struct {
	store     GoodsStore
	inventory InventoryCounter
	logger    *slog.Logger
}

func NewService(store GoodsStore, inventory InventoryCounter, logger *slog.Logger) *service {
	return &service{
		store:     store,
		inventory: inventory,
		logger:    logger,
	}
}

func (s *service) ListGoods(ctx context.Context, page, pageSize int64) ([]GoodsSummary, error) {
	return s.store.List(ctx, page, pageSize)
}

// GetGoodsDetail loads the catalog entry and decorates it with the
// live stock count. A catalog read must not fail because inventory is
// down, so a failed count renders as zero.
func (s *service) GetGoodsDetail(ctx context.Context, goodsID int32) (*GoodsDetail, error) {
	detail, err := s.store.GetByID(ctx, goodsID)
	if err != nil {
		return nil, err
	}

	count, err := s.inventory.Count(ctx, goodsID)
	if err != nil {
		s.logger.Warn("inventory count unavailable, rendering zero",
			slog.Int("goods_id", int(goodsID)),
			slog.String("error", err.Error()))
		count = 0
	}
	detail.InventoryCount = count

	return detail, nil
}

var _ GoodsService = (*service)(nil)
