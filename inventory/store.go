package main

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// PostgresStore holds the inventory table and its change ledger.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(connectionString string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresStore{db: db}, nil
}

func (s *PostgresStore) Close() error {
	return s.db.Close()
}

// Migrate applies the embedded schema migrations.
func (s *PostgresStore) Migrate() error {
	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.Up(s.db, "migrations")
}

// Deduct removes count from the inventory row and records the delta in
// the ledger, all in one transaction. The ledger's unique constraint on
// deduction_order_id makes the operation idempotent: a repeat of an
// already-deducted order commits nothing and reports ok.
func (s *PostgresStore) Deduct(ctx context.Context, inventoryID, count, orderID int32, description string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// An existing ledger row means this order already deducted.
	var existingID int32
	err = tx.QueryRowContext(ctx,
		`SELECT id FROM inventory_change WHERE deduction_order_id = $1`,
		orderID,
	).Scan(&existingID)
	if err == nil {
		return tx.Commit()
	}
	if err != sql.ErrNoRows {
		return fmt.Errorf("failed to check deduction ledger: %w", err)
	}

	result, err := tx.ExecContext(ctx,
		`UPDATE inventory SET count = count - $1 WHERE id = $2`,
		count, inventoryID,
	)
	if err != nil {
		return fmt.Errorf("failed to deduct inventory: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO inventory_change (inventory_id, count, deduction_order_id, description) VALUES ($1, $2, $3, $4)`,
		inventoryID, -count, orderID, description,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			// A concurrent deduction for the same order won the race;
			// its ledger row already accounts for the stock. Our
			// update rolls back via the deferred Rollback.
			return nil
		}
		return fmt.Errorf("failed to insert inventory change: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit deduction: %w", err)
	}

	return nil
}

// Add restocks the inventory row and records the positive delta. No
// idempotency key: every call adds.
func (s *PostgresStore) Add(ctx context.Context, inventoryID, count int32, description string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		`UPDATE inventory SET count = count + $1 WHERE id = $2`,
		count, inventoryID,
	)
	if err != nil {
		return fmt.Errorf("failed to add inventory: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO inventory_change (inventory_id, count, deduction_order_id, description) VALUES ($1, $2, NULL, $3)`,
		inventoryID, count, description,
	)
	if err != nil {
		return fmt.Errorf("failed to insert inventory change: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit add: %w", err)
	}

	return nil
}

func (s *PostgresStore) Query(ctx context.Context, inventoryID int32) (*Inventory, error) {
	var inv Inventory

	query := `SELECT id, count, description FROM inventory WHERE id = $1`
	err := s.db.QueryRowContext(ctx, query, inventoryID).Scan(&inv.ID, &inv.Count, &inv.Description)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query inventory: %w", err)
	}

	return &inv, nil
}

// History returns the full change ledger of one inventory row, oldest
// first.
func (s *PostgresStore) History(ctx context.Context, inventoryID int32) ([]InventoryChange, error) {
	query := `SELECT id, inventory_id, count, deduction_order_id, description FROM inventory_change WHERE inventory_id = $1 ORDER BY id`
	rows, err := s.db.QueryContext(ctx, query, inventoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to query inventory changes: %w", err)
	}
	defer rows.Close()

	var changes []InventoryChange
	for rows.Next() {
		var change InventoryChange
		var orderID sql.NullInt32
		if err := rows.Scan(&change.ID, &change.InventoryID, &change.Count, &orderID, &change.Description); err != nil {
			return nil, fmt.Errorf("failed to scan inventory change: %w", err)
		}
		if orderID.Valid {
			v := orderID.Int32
			change.DeductionOrderID = &v
		}
		changes = append(changes, change)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return changes, nil
}
