package main

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSettler struct {
	err     error
	settled []int32
}

func (s *recordingSettler) SettleOrder(ctx context.Context, order *Order) error {
	s.settled = append(s.settled, order.ID)
	return s.err
}

func TestReconcileSettlesEachPendingOrder(t *testing.T) {
	userID := uuid.New()
	store := &stubStore{
		outbox: []OutboxMessage{
			{ID: 1, UserID: userID, OrderID: 42},
			{ID: 2, UserID: userID, OrderID: 43},
		},
		orders: map[int32]*Order{
			42: {ID: 42, ItemID: 7, Count: 2},
			43: {ID: 43, ItemID: 8, Count: 1},
		},
	}
	settler := &recordingSettler{}
	r := NewReconciler(store, settler, testBusinessMetrics, newTestLogger())

	r.reconcile(context.Background())

	assert.Equal(t, []int32{42, 43}, settler.settled)
	assert.Equal(t, 2.0, testutil.ToFloat64(testBusinessMetrics.OutboxDepth))
}

func TestReconcileContinuesPastFailures(t *testing.T) {
	store := &stubStore{
		outbox: []OutboxMessage{
			{ID: 1, OrderID: 42},
			{ID: 2, OrderID: 43},
		},
		orders: map[int32]*Order{
			42: {ID: 42},
			43: {ID: 43},
		},
	}
	settler := &recordingSettler{err: errors.New("inventory unreachable")}
	r := NewReconciler(store, settler, testBusinessMetrics, newTestLogger())

	// Failures leave their outbox rows for the next tick but never
	// stop the sweep.
	r.reconcile(context.Background())

	assert.Equal(t, []int32{42, 43}, settler.settled)
}

func TestReconcileSkipsRowsWithMissingOrders(t *testing.T) {
	store := &stubStore{
		outbox: []OutboxMessage{
			{ID: 1, OrderID: 41},
			{ID: 2, OrderID: 42},
		},
		orders: map[int32]*Order{
			42: {ID: 42},
		},
	}
	settler := &recordingSettler{}
	r := NewReconciler(store, settler, testBusinessMetrics, newTestLogger())

	r.reconcile(context.Background())

	assert.Equal(t, []int32{42}, settler.settled)
}

func TestReconcileToleratesOutboxListFailure(t *testing.T) {
	store := &stubStore{outboxErr: errors.New("database down")}
	settler := &recordingSettler{}
	r := NewReconciler(store, settler, testBusinessMetrics, newTestLogger())

	r.reconcile(context.Background())

	assert.Empty(t, settler.settled)
}

func TestRunStopsOnContextCancel(t *testing.T) {
	r := &Reconciler{
		store:    &stubStore{},
		settler:  &recordingSettler{},
		metrics:  testBusinessMetrics,
		logger:   newTestLogger(),
		interval: 5 * time.Millisecond,
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		r.Run(ctx)
		close(done)
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		require.FailNow(t, "reconciler did not stop on cancel")
	}
}
