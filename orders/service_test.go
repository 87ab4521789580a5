package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minimart/minimart/common/idgen"
	"github.com/minimart/minimart/common/metrics"
)

// Registered once; promauto panics on duplicate collector names.
var testBusinessMetrics = metrics.NewBusinessMetrics("orders_test")

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type completion struct {
	orderID int32
	state   int32
}

type stubStore struct {
	createID    int32
	createErr   error
	created     []*Order
	completeErr error
	completions []completion
	orders      map[int32]*Order
	getErr      error
	listOrders  []Order
	listErr     error
	outbox      []OutboxMessage
	outboxErr   error
}

func (s *stubStore) CreateWithOutbox(ctx context.Context, order *Order) (int32, error) {
	if s.createErr != nil {
		return 0, s.createErr
	}
	s.created = append(s.created, order)
	return s.createID, nil
}

func (s *stubStore) Complete(ctx context.Context, orderID, state int32) error {
	if s.completeErr != nil {
		return s.completeErr
	}
	s.completions = append(s.completions, completion{orderID: orderID, state: state})
	return nil
}

func (s *stubStore) Get(ctx context.Context, orderID int32) (*Order, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	order, ok := s.orders[orderID]
	if !ok {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

func (s *stubStore) ListByUser(ctx context.Context, userID uuid.UUID, page, pageSize int64) ([]Order, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.listOrders, nil
}

func (s *stubStore) ListOutbox(ctx context.Context) ([]OutboxMessage, error) {
	if s.outboxErr != nil {
		return nil, s.outboxErr
	}
	return s.outbox, nil
}

type stubInventory struct {
	result      int32
	err         error
	calls       [][3]int32
	sawDeadline bool
}

func (s *stubInventory) Deduct(ctx context.Context, inventoryID, count, orderID int32) (int32, error) {
	_, s.sawDeadline = ctx.Deadline()
	s.calls = append(s.calls, [3]int32{inventoryID, count, orderID})
	if s.err != nil {
		return 0, s.err
	}
	return s.result, nil
}

func newTestService(t *testing.T, store OrdersStore, inventory InventoryClient) *service {
	t.Helper()

	tokens, err := idgen.NewGenerator(1)
	require.NoError(t, err)

	return NewService(store, inventory, tokens, nil, testBusinessMetrics, newTestLogger())
}

func TestCreateOrderSettlesSuccessImmediately(t *testing.T) {
	store := &stubStore{createID: 42}
	inv := &stubInventory{result: deductionOK}
	svc := newTestService(t, store, inv)
	userID := uuid.New()

	orderID, err := svc.CreateOrder(context.Background(), userID, AddOrder{
		ItemsID:     7,
		Price:       1299,
		Count:       2,
		Currency:    "CNY",
		Description: "two of item 7",
	})
	require.NoError(t, err)
	assert.Equal(t, int32(42), orderID)

	require.Len(t, store.created, 1)
	created := store.created[0]
	assert.Equal(t, userID, created.UserID)
	assert.Equal(t, int32(7), created.ItemID)
	assert.Equal(t, StateDoing, created.InventoryState)
	assert.Positive(t, created.SubTime)
	assert.Zero(t, created.PayTime)

	require.Len(t, inv.calls, 1)
	assert.Equal(t, [3]int32{7, 2, 42}, inv.calls[0])
	assert.True(t, inv.sawDeadline)

	require.Len(t, store.completions, 1)
	assert.Equal(t, completion{orderID: 42, state: StateSuccess}, store.completions[0])
}

func TestCreateOrderSettlesFailOnRefusal(t *testing.T) {
	store := &stubStore{createID: 42}
	inv := &stubInventory{result: deductionRefused}
	svc := newTestService(t, store, inv)

	// A 400 is a definitive answer: the order settles FAIL but the
	// placement itself still succeeds.
	orderID, err := svc.CreateOrder(context.Background(), uuid.New(), AddOrder{ItemsID: 7, Count: 2})
	require.NoError(t, err)
	assert.Equal(t, int32(42), orderID)

	require.Len(t, store.completions, 1)
	assert.Equal(t, completion{orderID: 42, state: StateFail}, store.completions[0])
}

func TestCreateOrderSurvivesDeductionTransportFailure(t *testing.T) {
	store := &stubStore{createID: 42}
	inv := &stubInventory{err: errors.New("connection refused")}
	svc := newTestService(t, store, inv)

	// Once the outbox row committed the API cannot fail; the order
	// stays DOING for the reconciler.
	orderID, err := svc.CreateOrder(context.Background(), uuid.New(), AddOrder{ItemsID: 7, Count: 2})
	require.NoError(t, err)
	assert.Equal(t, int32(42), orderID)
	assert.Empty(t, store.completions)
}

func TestCreateOrderFailsWhenOutboxWriteFails(t *testing.T) {
	store := &stubStore{createErr: errors.New("database down")}
	inv := &stubInventory{result: deductionOK}
	svc := newTestService(t, store, inv)

	_, err := svc.CreateOrder(context.Background(), uuid.New(), AddOrder{ItemsID: 7, Count: 2})
	assert.ErrorContains(t, err, "failed to create order")
	assert.Empty(t, inv.calls)
}

func TestSettleOrderInconclusiveResultLeavesOrderDoing(t *testing.T) {
	store := &stubStore{}
	inv := &stubInventory{result: 500}
	svc := newTestService(t, store, inv)

	err := svc.SettleOrder(context.Background(), &Order{ID: 42, ItemID: 7, Count: 2})
	assert.ErrorContains(t, err, "inconclusive deduction result")
	assert.Empty(t, store.completions)
}

func TestSettleOrderPropagatesCompletionFailure(t *testing.T) {
	store := &stubStore{completeErr: errors.New("database down")}
	inv := &stubInventory{result: deductionOK}
	svc := newTestService(t, store, inv)

	err := svc.SettleOrder(context.Background(), &Order{ID: 42, ItemID: 7, Count: 2})
	assert.ErrorContains(t, err, "failed to complete order 42")
}

func TestListOrdersDelegatesToStore(t *testing.T) {
	store := &stubStore{listOrders: []Order{{ID: 1}, {ID: 2}}}
	svc := newTestService(t, store, &stubInventory{})

	orders, err := svc.ListOrders(context.Background(), uuid.New(), 0, 10)
	require.NoError(t, err)
	assert.Len(t, orders, 2)
}

func TestNewOrderTokenMintsDistinctTokens(t *testing.T) {
	svc := newTestService(t, &stubStore{}, &stubInventory{})

	first := svc.NewOrderToken(context.Background())
	second := svc.NewOrderToken(context.Background())
	assert.Positive(t, first)
	assert.Positive(t, second)
	assert.NotEqual(t, first, second)
}
