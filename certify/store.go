package main

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// PostgresStore holds the users table.
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

// CreateUser inserts the user and returns the generated id. The unique
// constraint on email decides duplicates; no read-then-write race.
func (s *PostgresStore) CreateUser(ctx context.Context, email, passwordHash string, createTime int64) (uuid.UUID, error) {
	var id uuid.UUID

	err := s.db.QueryRowContext(ctx,
		`INSERT INTO users (email, password_hash, create_time) VALUES ($1, $2, $3) RETURNING id`,
		email, passwordHash, createTime,
	).Scan(&id)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return uuid.Nil, ErrDuplicateEmail
		}
		return uuid.Nil, fmt.Errorf("failed to insert user: %w", err)
	}

	return id, nil
}

func (s *PostgresStore) GetByEmail(ctx context.Context, email string) (*User, error) {
	var user User

	query := `SELECT id, email, password_hash, create_time FROM users WHERE email = $1`
	err := s.db.QueryRowContext(ctx, query, email).Scan(&user.ID, &user.Email, &user.PasswordHash, &user.CreateTime)

	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query user: %w", err)
	}

	return &user, nil
}
