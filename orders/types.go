package main

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// Inventory settlement states of an order. Every order is born DOING;
// the deduction call's definitive answer moves it to SUCCESS or FAIL.
const (
	StateDoing   int32 = 0
	StateSuccess int32 = 1
	StateFail    int32 = 2
)

var ErrOrderNotFound = errors.New("order not found")

// Order is one row of the orders table. Times are unix milliseconds;
// PayTime stays zero until payment lands (out of scope here).
type Order struct {
	ID             int32     `json:"id"`
	UserID         uuid.UUID `json:"user_id"`
	ItemID         int32     `json:"item_id"`
	Price          int32     `json:"price"`
	Count          int32     `json:"count"`
	Currency       string    `json:"currency"`
	SubTime        int64     `json:"sub_time"`
	PayTime        int64     `json:"pay_time"`
	Description    string    `json:"description"`
	InventoryState int32     `json:"inventory_state"`
}

// OutboxMessage is one pending deduction in orders_de_inventory_msg.
// A row exists exactly while its order is still DOING.
type OutboxMessage struct {
	ID      int32     `json:"id"`
	UserID  uuid.UUID `json:"user_id"`
	OrderID int32     `json:"order_id"`
}

// AddOrder is the order placement request body. Token comes from
// request_order_token; it is carried but not enforced.
type AddOrder struct {
	ItemsID     int32  `json:"items_id"`
	Price       int32  `json:"price"`
	Count       int32  `json:"count"`
	Currency    string `json:"currency"`
	Description string `json:"description"`
	Token       int64  `json:"token"`
}

type OrdersService interface {
	CreateOrder(ctx context.Context, userID uuid.UUID, req AddOrder) (int32, error)
	ListOrders(ctx context.Context, userID uuid.UUID, page, pageSize int64) ([]Order, error)
	NewOrderToken(ctx context.Context) int64
}

// OrderSettler drives one order through its deduction call and, on a
// definitive answer, through the completion transaction. The service
// implements it for the request path; the reconciler reuses it for
// leftover outbox rows.
type OrderSettler interface {
	SettleOrder(ctx context.Context, order *Order) error
}

type OrdersStore interface {
	CreateWithOutbox(ctx context.Context, order *Order) (int32, error)
	Complete(ctx context.Context, orderID, state int32) error
	Get(ctx context.Context, orderID int32) (*Order, error)
	ListByUser(ctx context.Context, userID uuid.UUID, page, pageSize int64) ([]Order, error)
	ListOutbox(ctx context.Context) ([]OutboxMessage, error)
}

// InventoryClient performs the deduction RPC and returns its in-band
// result code. A transport failure returns an error instead; only 200
// and 400 are definitive answers.
type InventoryClient interface {
	Deduct(ctx context.Context, inventoryID, count, orderID int32) (int32, error)
}
