package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"blog-backend/internal/domains/friend"
	"blog-backend/pkg/database"
)

type sqliteRepository struct {
	db *sqlx.DB
}

// NewSQLiteRepository tạo friend repository với SQLite
func NewSQLiteRepository(db *sqlx.DB) friend.Repository {
	return &sqliteRepository{db: db}
}

// "desc" là từ khoá SQL nên luôn phải đặt trong nháy kép
func (r *sqliteRepository) GetByID(ctx context.Context, id int64) (*friend.Friend, error) {
	query := `
		SELECT id, COALESCE(name, '') AS name, COALESCE("desc", '') AS "desc",
		       COALESCE(url, '') AS url, COALESCE(avatar, '') AS avatar,
		       COALESCE(tags, '[]') AS tags
		FROM friends
		WHERE id = ?`

	var f friend.Friend
	err := r.db.GetContext(ctx, &f, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get friend by id: %w", err)
	}
	return &f, nil
}

func (r *sqliteRepository) List(ctx context.Context) ([]friend.Friend, error) {
	query := `
		SELECT id, COALESCE(name, '') AS name, COALESCE("desc", '') AS "desc",
		       COALESCE(url, '') AS url, COALESCE(avatar, '') AS avatar,
		       COALESCE(tags, '[]') AS tags
		FROM friends
		ORDER BY id ASC`

	friends := make([]friend.Friend, 0)
	if err := r.db.SelectContext(ctx, &friends, query); err != nil {
		return nil, fmt.Errorf("list friends: %w", err)
	}
	return friends, nil
}

func (r *sqliteRepository) Create(ctx context.Context, f *friend.Friend) error {
	return database.WithTransaction(ctx, r.db, func(tx *sqlx.Tx) error {
		query := `INSERT INTO friends (name, "desc", url, avatar, tags) VALUES (?, ?, ?, ?, ?)`

		result, err := tx.ExecContext(ctx, query, f.Name, f.Desc, f.URL, f.Avatar, f.Tags)
		if err != nil {
			return fmt.Errorf("create friend: %w", err)
		}

		id, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("create friend: %w", err)
		}
		f.ID = id
		return nil
	})
}

func (r *sqliteRepository) Update(ctx context.Context, f *friend.Friend) error {
	return database.WithTransaction(ctx, r.db, func(tx *sqlx.Tx) error {
		query := `UPDATE friends SET name = ?, "desc" = ?, url = ?, avatar = ?, tags = ? WHERE id = ?`

		if _, err := tx.ExecContext(ctx, query, f.Name, f.Desc, f.URL, f.Avatar, f.Tags, f.ID); err != nil {
			return fmt.Errorf("update friend: %w", err)
		}
		return nil
	})
}

func (r *sqliteRepository) Delete(ctx context.Context, id int64) error {
	return database.WithTransaction(ctx, r.db, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM friends WHERE id = ?`, id); err != nil {
			return fmt.Errorf("delete friend: %w", err)
		}
		return nil
	})
}
