package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"blog-backend/internal/domains/user"
)

// sqliteRepository implements user.Repository over the SQLite file
type sqliteRepository struct {
	db *sqlx.DB
}

// NewSQLiteRepository creates a new user repository instance
// Dependency injection pattern - receives db from container
func NewSQLiteRepository(db *sqlx.DB) user.Repository {
	return &sqliteRepository{db: db}
}

// GetByUsername retrieves a user by username
func (r *sqliteRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	query := `SELECT id, username, password_hash FROM users WHERE username = ?`

	var u user.User
	err := r.db.GetContext(ctx, &u, query, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}

	return &u, nil
}

// Create inserts a new user record
func (r *sqliteRepository) Create(ctx context.Context, u *user.User) error {
	query := `INSERT INTO users (username, password_hash) VALUES (?, ?)`

	res, err := r.db.ExecContext(ctx, query, u.Username, u.PasswordHash)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return user.ErrUserAlreadyExists
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get inserted user id: %w", err)
	}
	u.ID = id

	return nil
}
