package main

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/google/uuid"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// store holds the orders table and the orders_de_inventory_msg outbox.
// Two instances exist at runtime, one per connection pool: the request
// path writes through the primary, the reconciler reads through the
// local pool. Both see the same schema.
type store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *store {
	return &store{db: db}
}

// Migrate applies the embedded schema migrations. Run it on the
// primary pool only.
func (s *store) Migrate() error {
	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.Up(s.db, "migrations")
}

// CreateWithOutbox inserts the order and its deduction outbox row in
// one transaction. Once this commits, the deduction is owed: either
// the immediate attempt or the reconciler will deliver it.
func (s *store) CreateWithOutbox(ctx context.Context, order *Order) (int32, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var orderID int32
	err = tx.QueryRowContext(ctx,
		`INSERT INTO orders (user_id, item_id, price, count, currency, sub_time, pay_time, description, inventory_state) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`,
		order.UserID, order.ItemID, order.Price, order.Count, order.Currency,
		order.SubTime, order.PayTime, order.Description, order.InventoryState,
	).Scan(&orderID)
	if err != nil {
		return 0, fmt.Errorf("failed to insert order: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO orders_de_inventory_msg (user_id, order_id) VALUES ($1, $2)`,
		order.UserID, orderID,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert outbox message: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit order: %w", err)
	}

	return orderID, nil
}

// Complete settles an order: the outbox row goes and the final
// inventory state lands, in one transaction. Safe to repeat; a second
// completion just rewrites the same state with no outbox row left.
func (s *store) Complete(ctx context.Context, orderID, state int32) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`DELETE FROM orders_de_inventory_msg WHERE order_id = $1`,
		orderID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete outbox message: %w", err)
	}

	result, err := tx.ExecContext(ctx,
		`UPDATE orders SET inventory_state = $1 WHERE id = $2`,
		state, orderID,
	)
	if err != nil {
		return fmt.Errorf("failed to update order state: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrOrderNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit completion: %w", err)
	}

	return nil
}

func (s *store) Get(ctx context.Context, orderID int32) (*Order, error) {
	var order Order

	query := `SELECT id, user_id, item_id, price, count, currency, sub_time, pay_time, description, inventory_state FROM orders WHERE id = $1`
	err := s.db.QueryRowContext(ctx, query, orderID).Scan(
		&order.ID, &order.UserID, &order.ItemID, &order.Price, &order.Count,
		&order.Currency, &order.SubTime, &order.PayTime, &order.Description, &order.InventoryState,
	)

	if err == sql.ErrNoRows {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query order: %w", err)
	}

	return &order, nil
}

// ListByUser pages through one user's orders, oldest first. Page is
// zero-based; the offset is page * pageSize.
func (s *store) ListByUser(ctx context.Context, userID uuid.UUID, page, pageSize int64) ([]Order, error) {
	query := `SELECT id, user_id, item_id, price, count, currency, sub_time, pay_time, description, inventory_state FROM orders WHERE user_id = $1 ORDER BY id LIMIT $2 OFFSET $3`
	rows, err := s.db.QueryContext(ctx, query, userID, pageSize, page*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	var orders []Order
	for rows.Next() {
		var order Order
		if err := rows.Scan(
			&order.ID, &order.UserID, &order.ItemID, &order.Price, &order.Count,
			&order.Currency, &order.SubTime, &order.PayTime, &order.Description, &order.InventoryState,
		); err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return orders, nil
}

// ListOutbox returns every pending deduction, oldest first.
func (s *store) ListOutbox(ctx context.Context) ([]OutboxMessage, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, user_id, order_id FROM orders_de_inventory_msg ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query outbox: %w", err)
	}
	defer rows.Close()

	var msgs []OutboxMessage
	for rows.Next() {
		var msg OutboxMessage
		if err := rows.Scan(&msg.ID, &msg.UserID, &msg.OrderID); err != nil {
			return nil, fmt.Errorf("failed to scan outbox message: %w", err)
		}
		msgs = append(msgs, msg)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return msgs, nil
}
