package main

import (
	"context"
	"log/slog"
	"time"

	"github.com/minimart/minimart/common/metrics"
)

const reconcileInterval = 10 * time.Second

// Reconciler drains the deduction outbox. Every tick it lists the
// pending rows and replays each one through the settler; rows that
// settle disappear with their completion transaction, the rest wait
// for the next tick. Errors never stop the sweep.
type Reconciler struct {
	store    OrdersStore
	settler  OrderSettler
	metrics  *metrics.BusinessMetrics
	logger   *slog.Logger
	interval time.Duration
}

func NewReconciler(store OrdersStore, settler OrderSettler, m *metrics.BusinessMetrics, logger *slog.Logger) *Reconciler {
	return &Reconciler{
		store:    store,
		settler:  settler,
		metrics:  m,
		logger:   logger,
		interval: reconcileInterval,
	}
}

// Run ticks until the context is canceled.
func (r *Reconciler) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.logger.Info("reconciler started", slog.Duration("interval", r.interval))

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("reconciler stopped")
			return
		case <-ticker.C:
			r.reconcile(ctx)
		}
	}
}

func (r *Reconciler) reconcile(ctx context.Context) {
	msgs, err := r.store.ListOutbox(ctx)
	if err != nil {
		r.logger.Error("failed to list outbox", slog.Any("error", err))
		return
	}

	r.metrics.OutboxDepth.Set(float64(len(msgs)))
	if len(msgs) == 0 {
		return
	}

	r.logger.Info("reconciling pending deductions", slog.Int("pending", len(msgs)))

	for _, msg := range msgs {
		order, err := r.store.Get(ctx, msg.OrderID)
		if err != nil {
			r.logger.Error("failed to load order for outbox row",
				slog.Int("order_id", int(msg.OrderID)),
				slog.Any("error", err),
			)
			continue
		}

		if err := r.settler.SettleOrder(ctx, order); err != nil {
			r.logger.Warn("order still unsettled",
				slog.Int("order_id", int(msg.OrderID)),
				slog.Any("error", err),
			)
		}
	}
}
