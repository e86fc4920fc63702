package repository

import (
	"context"
	"database/sql"
	"fmt"

	"book-reader-server/internal/domain"
)

// PostgresUserRepository implements the domain.UserRepository interface
type PostgresUserRepository struct {
	db     *sql.DB
	logger domain.Logger
}

// NewUserRepository creates a new Postgres user repository
func NewUserRepository(db *sql.DB, logger domain.Logger) domain.UserRepository {
	return &PostgresUserRepository{
		db:     db,
		logger: logger,
	}
}

// EnsureSchema creates the users table when it does not exist yet.
func (r *PostgresUserRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx,
		`CREATE TABLE IF NOT EXISTS users (id TEXT PRIMARY KEY, email TEXT NOT NULL)`)
	if err != nil {
		return fmt.Errorf("failed to ensure users table: %w", err)
	}
	return nil
}

// Create inserts a user row. A duplicate id fails; users are never updated.
func (r *PostgresUserRepository) Create(ctx context.Context, user *domain.User) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (id, email) VALUES ($1, $2)`,
		user.ID, user.Email)
	if err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}

	r.logger.Info("User created", "id", user.ID, "email", user.Email)
	return nil
}

// Exists reports whether a user row with the given id is present. Only
// presence is returned, never the row contents.
func (r *PostgresUserRepository) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to look up user: %w", err)
	}
	return exists, nil
}
