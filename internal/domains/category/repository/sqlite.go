package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"blog-backend/internal/domains/category"
)

type sqliteRepository struct {
	db *sqlx.DB
}

// NewSQLiteRepository tạo category repository với SQLite
func NewSQLiteRepository(db *sqlx.DB) category.Repository {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) GetBySlug(ctx context.Context, slug string) (*category.Category, error) {
	query := `SELECT id, slug, name FROM categories WHERE slug = ?`

	var c category.Category
	err := r.db.GetContext(ctx, &c, query, slug)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get category by slug: %w", err)
	}
	return &c, nil
}

func (r *sqliteRepository) List(ctx context.Context) ([]category.Category, error) {
	query := `SELECT id, slug, name FROM categories ORDER BY id ASC`

	categories := make([]category.Category, 0)
	if err := r.db.SelectContext(ctx, &categories, query); err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

func (r *sqliteRepository) CreateIfAbsent(ctx context.Context, slug, name string) (*category.Category, error) {
	query := `INSERT INTO categories (slug, name) VALUES (?, ?) ON CONFLICT (slug) DO NOTHING`

	if _, err := r.db.ExecContext(ctx, query, slug, name); err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	return r.GetBySlug(ctx, slug)
}
