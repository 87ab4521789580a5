package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/minimart/minimart/common/broker"
	"github.com/minimart/minimart/common/idgen"
	"github.com/minimart/minimart/common/metrics"
)

// In-band results of the deduction RPC. 200 and 400 are definitive;
// anything else means try again later.
const (
	deductionOK      = 200
	deductionRefused = 400
)

const deductTimeout = 5 * time.Second

type service struct {
	store     OrdersStore
	inventory InventoryClient
	tokens    *idgen.Generator
	channel   *amqp.Channel
	metrics   *metrics.BusinessMetrics
	logger    *slog.Logger
}

func NewService(store OrdersStore, inventory InventoryClient, tokens *idgen.Generator, channel *amqp.Channel, m *metrics.BusinessMetrics, logger *slog.Logger) *service {
	return &service{
		store:     store,
		inventory: inventory,
		tokens:    tokens,
		channel:   channel,
		metrics:   m,
		logger:    logger,
	}
}

// CreateOrder accepts the order. The order row and its outbox row
// commit together first; from then on the order cannot be lost and the
// call cannot fail. The deduction attempt that follows is best effort,
// the reconciler picks up whatever it leaves behind.
func (s *service) CreateOrder(ctx context.Context, userID uuid.UUID, req AddOrder) (int32, error) {
	order := &Order{
		UserID:         userID,
		ItemID:         req.ItemsID,
		Price:          req.Price,
		Count:          req.Count,
		Currency:       req.Currency,
		SubTime:        time.Now().UnixMilli(),
		PayTime:        0,
		Description:    req.Description,
		InventoryState: StateDoing,
	}

	orderID, err := s.store.CreateWithOutbox(ctx, order)
	if err != nil {
		return 0, fmt.Errorf("failed to create order: %w", err)
	}
	order.ID = orderID
	s.metrics.OrdersCreated.Inc()

	s.logger.Info("order accepted",
		slog.Int("order_id", int(orderID)),
		slog.String("user_id", userID.String()),
		slog.Int("item_id", int(req.ItemsID)),
		slog.Int("count", int(req.Count)),
	)

	if err := s.SettleOrder(ctx, order); err != nil {
		s.logger.Warn("deduction deferred to reconciler",
			slog.Int("order_id", int(orderID)),
			slog.Any("error", err),
		)
	}

	return orderID, nil
}

// SettleOrder calls the inventory deduction and, on a definitive
// answer, runs the completion transaction. A transport failure or an
// unknown result leaves the order DOING with its outbox row intact.
func (s *service) SettleOrder(ctx context.Context, order *Order) error {
	dctx, cancel := context.WithTimeout(ctx, deductTimeout)
	defer cancel()

	result, err := s.inventory.Deduct(dctx, order.ItemID, order.Count, order.ID)
	if err != nil {
		return fmt.Errorf("deduction call for order %d: %w", order.ID, err)
	}

	var state int32
	switch result {
	case deductionOK:
		state = StateSuccess
	case deductionRefused:
		state = StateFail
	default:
		return fmt.Errorf("inconclusive deduction result %d for order %d", result, order.ID)
	}

	if err := s.store.Complete(ctx, order.ID, state); err != nil {
		return fmt.Errorf("failed to complete order %d: %w", order.ID, err)
	}

	s.metrics.OrdersSettled.WithLabelValues(stateLabel(state)).Inc()
	s.logger.Info("order settled",
		slog.Int("order_id", int(order.ID)),
		slog.String("state", stateLabel(state)),
	)

	s.publishSettled(ctx, order, state)
	return nil
}

func (s *service) ListOrders(ctx context.Context, userID uuid.UUID, page, pageSize int64) ([]Order, error) {
	return s.store.ListByUser(ctx, userID, page, pageSize)
}

// NewOrderToken hands out a fresh order token. Tokens are minted, not
// persisted; the placement path carries them without enforcement.
func (s *service) NewOrderToken(ctx context.Context) int64 {
	return s.tokens.Next()
}

type orderSettledEvent struct {
	OrderID        int32  `json:"order_id"`
	UserID         string `json:"user_id"`
	InventoryState int32  `json:"inventory_state"`
}

// publishSettled emits order.settled. Best effort: a nil channel means
// the broker is down or disabled, and publish failures only log.
func (s *service) publishSettled(ctx context.Context, order *Order, state int32) {
	if s.channel == nil {
		return
	}

	event := orderSettledEvent{
		OrderID:        order.ID,
		UserID:         order.UserID.String(),
		InventoryState: state,
	}
	if err := broker.PublishJSON(ctx, s.channel, broker.OrderSettledEvent, event); err != nil {
		s.logger.Error("failed to publish settlement event",
			slog.Int("order_id", int(order.ID)),
			slog.Any("error", err),
		)
	}
}

func stateLabel(state int32) string {
	switch state {
	case StateSuccess:
		return "success"
	case StateFail:
		return "fail"
	default:
		return "doing"
	}
}
