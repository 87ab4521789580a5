package main

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	orderInsertQuery  = `INSERT INTO orders (user_id, item_id, price, count, currency, sub_time, pay_time, description, inventory_state) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	outboxInsertQuery = `INSERT INTO orders_de_inventory_msg (user_id, order_id) VALUES ($1, $2)`
	outboxDeleteQuery = `DELETE FROM orders_de_inventory_msg WHERE order_id = $1`
	stateUpdateQuery  = `UPDATE orders SET inventory_state = $1 WHERE id = $2`
	orderSelectQuery  = `SELECT id, user_id, item_id, price, count, currency, sub_time, pay_time, description, inventory_state FROM orders WHERE id = $1`
	listByUserQuery   = `SELECT id, user_id, item_id, price, count, currency, sub_time, pay_time, description, inventory_state FROM orders WHERE user_id = $1 ORDER BY id LIMIT $2 OFFSET $3`
	outboxSelectQuery = `SELECT id, user_id, order_id FROM orders_de_inventory_msg ORDER BY id`
)

var orderColumns = []string{"id", "user_id", "item_id", "price", "count", "currency", "sub_time", "pay_time", "description", "inventory_state"}

func newMockStore(t *testing.T) (*store, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewStore(db), mock
}

func testOrder(userID uuid.UUID) *Order {
	return &Order{
		UserID:         userID,
		ItemID:         7,
		Price:          1299,
		Count:          2,
		Currency:       "CNY",
		SubTime:        1700000000000,
		PayTime:        0,
		Description:    "two of item 7",
		InventoryState: StateDoing,
	}
}

func TestCreateWithOutboxCommitsBothRows(t *testing.T) {
	st, mock := newMockStore(t)
	userID := uuid.New()
	order := testOrder(userID)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(orderInsertQuery)).
		WithArgs(userID, int32(7), int32(1299), int32(2), "CNY", int64(1700000000000), int64(0), "two of item 7", StateDoing).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int32(42)))
	mock.ExpectExec(regexp.QuoteMeta(outboxInsertQuery)).
		WithArgs(userID, int32(42)).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	orderID, err := st.CreateWithOutbox(context.Background(), order)
	require.NoError(t, err)
	assert.Equal(t, int32(42), orderID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateWithOutboxRollsBackWhenOutboxInsertFails(t *testing.T) {
	st, mock := newMockStore(t)
	userID := uuid.New()

	// If the outbox row cannot land, the order must not either.
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(orderInsertQuery)).
		WithArgs(userID, int32(7), int32(1299), int32(2), "CNY", int64(1700000000000), int64(0), "two of item 7", StateDoing).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int32(42)))
	mock.ExpectExec(regexp.QuoteMeta(outboxInsertQuery)).
		WithArgs(userID, int32(42)).
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	_, err := st.CreateWithOutbox(context.Background(), testOrder(userID))
	assert.ErrorContains(t, err, "failed to insert outbox message")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCompleteDeletesOutboxAndSettlesState(t *testing.T) {
	st, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(outboxDeleteQuery)).
		WithArgs(int32(42)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(stateUpdateQuery)).
		WithArgs(StateSuccess, int32(42)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := st.Complete(context.Background(), 42, StateSuccess)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCompleteRepeatedSettlementStillCommits(t *testing.T) {
	st, mock := newMockStore(t)

	// A replay finds no outbox row but the order still exists; the
	// state rewrite commits and the call stays idempotent.
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(outboxDeleteQuery)).
		WithArgs(int32(42)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta(stateUpdateQuery)).
		WithArgs(StateFail, int32(42)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := st.Complete(context.Background(), 42, StateFail)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCompleteUnknownOrderRollsBack(t *testing.T) {
	st, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(outboxDeleteQuery)).
		WithArgs(int32(999)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta(stateUpdateQuery)).
		WithArgs(StateSuccess, int32(999)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := st.Complete(context.Background(), 999, StateSuccess)
	assert.ErrorIs(t, err, ErrOrderNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetReturnsOrder(t *testing.T) {
	st, mock := newMockStore(t)
	userID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(orderSelectQuery)).
		WithArgs(int32(42)).
		WillReturnRows(sqlmock.NewRows(orderColumns).
			AddRow(int32(42), userID.String(), int32(7), int32(1299), int32(2), "CNY", int64(1700000000000), int64(0), "two of item 7", StateDoing))

	order, err := st.Get(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, int32(42), order.ID)
	assert.Equal(t, userID, order.UserID)
	assert.Equal(t, int32(7), order.ItemID)
	assert.Equal(t, StateDoing, order.InventoryState)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUnknownOrder(t *testing.T) {
	st, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta(orderSelectQuery)).
		WithArgs(int32(999)).
		WillReturnRows(sqlmock.NewRows(orderColumns))

	_, err := st.Get(context.Background(), 999)
	assert.ErrorIs(t, err, ErrOrderNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListByUserAppliesPaging(t *testing.T) {
	st, mock := newMockStore(t)
	userID := uuid.New()

	// Page 2 of size 10 starts at offset 20.
	mock.ExpectQuery(regexp.QuoteMeta(listByUserQuery)).
		WithArgs(userID, int64(10), int64(20)).
		WillReturnRows(sqlmock.NewRows(orderColumns).
			AddRow(int32(21), userID.String(), int32(7), int32(1299), int32(2), "CNY", int64(1700000000000), int64(0), "", StateSuccess).
			AddRow(int32(22), userID.String(), int32(8), int32(499), int32(1), "CNY", int64(1700000001000), int64(0), "", StateFail))

	orders, err := st.ListByUser(context.Background(), userID, 2, 10)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, int32(21), orders[0].ID)
	assert.Equal(t, StateSuccess, orders[0].InventoryState)
	assert.Equal(t, int32(22), orders[1].ID)
	assert.Equal(t, StateFail, orders[1].InventoryState)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListOutboxScansPending(t *testing.T) {
	st, mock := newMockStore(t)
	userID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(outboxSelectQuery)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "order_id"}).
			AddRow(int32(1), userID.String(), int32(42)).
			AddRow(int32(2), userID.String(), int32(43)))

	msgs, err := st.ListOutbox(context.Background())
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, int32(42), msgs[0].OrderID)
	assert.Equal(t, int32(43), msgs[1].OrderID)
	assert.Equal(t, userID, msgs[1].UserID)
	require.NoError(t, mock.ExpectationsWereMet())
}
