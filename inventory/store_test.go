package main

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	deductGuardQuery  = `SELECT id FROM inventory_change WHERE deduction_order_id = $1`
	deductUpdateQuery = `UPDATE inventory SET count = count - $1 WHERE id = $2`
	addUpdateQuery    = `UPDATE inventory SET count = count + $1 WHERE id = $2`
	changeInsertQuery = `INSERT INTO inventory_change (inventory_id, count, deduction_order_id, description) VALUES ($1, $2, $3, $4)`
	addInsertQuery    = `INSERT INTO inventory_change (inventory_id, count, deduction_order_id, description) VALUES ($1, $2, NULL, $3)`
)

func newMockStore(t *testing.T) (*PostgresStore, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return &PostgresStore{db: db}, mock
}

func TestDeductCommitsUpdateAndLedgerRow(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(deductGuardQuery)).
		WithArgs(int32(77)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectExec(regexp.QuoteMeta(deductUpdateQuery)).
		WithArgs(int32(3), int32(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(changeInsertQuery)).
		WithArgs(int32(1), int32(-3), int32(77), "deduction for order 77").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := store.Deduct(context.Background(), 1, 3, 77, "deduction for order 77")
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeductReplayedOrderIsOK(t *testing.T) {
	store, mock := newMockStore(t)

	// A ledger row for the order already exists; nothing else runs.
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(deductGuardQuery)).
		WithArgs(int32(77)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int32(5)))
	mock.ExpectCommit()

	err := store.Deduct(context.Background(), 1, 3, 77, "deduction for order 77")
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeductUnknownInventoryRollsBack(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(deductGuardQuery)).
		WithArgs(int32(77)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectExec(regexp.QuoteMeta(deductUpdateQuery)).
		WithArgs(int32(3), int32(999)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := store.Deduct(context.Background(), 999, 3, 77, "")
	assert.ErrorIs(t, err, ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeductConcurrentLoserIsOK(t *testing.T) {
	store, mock := newMockStore(t)

	// The guard saw no row, but by insert time a concurrent deduction
	// for the same order committed. The unique constraint rejects ours
	// and the update rolls back; the caller still gets ok.
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(deductGuardQuery)).
		WithArgs(int32(77)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectExec(regexp.QuoteMeta(deductUpdateQuery)).
		WithArgs(int32(3), int32(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(changeInsertQuery)).
		WithArgs(int32(1), int32(-3), int32(77), "").
		WillReturnError(&pq.Error{Code: "23505"})
	mock.ExpectRollback()

	err := store.Deduct(context.Background(), 1, 3, 77, "")
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAddCommitsUpdateAndLedgerRow(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(addUpdateQuery)).
		WithArgs(int32(10), int32(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(addInsertQuery)).
		WithArgs(int32(1), int32(10), "restock").
		WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectCommit()

	err := store.Add(context.Background(), 1, 10, "restock")
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAddUnknownInventoryRollsBack(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(addUpdateQuery)).
		WithArgs(int32(10), int32(999)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := store.Add(context.Background(), 999, 10, "restock")
	assert.ErrorIs(t, err, ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestQueryReturnsInventory(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, count, description FROM inventory WHERE id = $1`)).
		WithArgs(int32(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "count", "description"}).
			AddRow(int32(1), int32(50), "widgets"))

	inv, err := store.Query(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, &Inventory{ID: 1, Count: 50, Description: "widgets"}, inv)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestQueryUnknownInventory(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, count, description FROM inventory WHERE id = $1`)).
		WithArgs(int32(404)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "count", "description"}))

	_, err := store.Query(context.Background(), 404)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestHistoryScansLedger(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, inventory_id, count, deduction_order_id, description FROM inventory_change WHERE inventory_id = $1 ORDER BY id`)).
		WithArgs(int32(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "inventory_id", "count", "deduction_order_id", "description"}).
			AddRow(int32(1), int32(1), int32(100), nil, "restock").
			AddRow(int32(2), int32(1), int32(-3), int32(77), "deduction for order 77"))

	changes, err := store.History(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, changes, 2)

	assert.Nil(t, changes[0].DeductionOrderID)
	assert.Equal(t, int32(100), changes[0].Count)

	require.NotNil(t, changes[1].DeductionOrderID)
	assert.Equal(t, int32(77), *changes[1].DeductionOrderID)
	assert.Equal(t, int32(-3), changes[1].Count)
}
