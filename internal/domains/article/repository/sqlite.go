package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"blog-backend/internal/domains/article"
	"blog-backend/pkg/database"
)

type sqliteRepository struct {
	db *sqlx.DB
}

// NewSQLiteRepository tạo article repository với SQLite
func NewSQLiteRepository(db *sqlx.DB) article.Repository {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) GetBySlug(ctx context.Context, slug string) (*article.Article, error) {
	query := `
		SELECT id, slug, COALESCE(uid, '') AS uid, COALESCE(title, '') AS title,
		       COALESCE(date, '') AS date, COALESCE(content, '') AS content, category_id
		FROM articles
		WHERE slug = ?`

	var a article.Article
	err := r.db.GetContext(ctx, &a, query, slug)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get article by slug: %w", err)
	}
	return &a, nil
}

func (r *sqliteRepository) GetBySlugAndCategory(ctx context.Context, slug string, categoryID int64) (*article.Article, error) {
	query := `
		SELECT id, slug, COALESCE(uid, '') AS uid, COALESCE(title, '') AS title,
		       COALESCE(date, '') AS date, COALESCE(content, '') AS content, category_id
		FROM articles
		WHERE slug = ? AND category_id = ?`

	var a article.Article
	err := r.db.GetContext(ctx, &a, query, slug, categoryID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get article by slug and category: %w", err)
	}
	return &a, nil
}

func (r *sqliteRepository) ListByCategory(ctx context.Context, categoryID int64) ([]article.Article, error) {
	query := `
		SELECT id, slug, COALESCE(uid, '') AS uid, COALESCE(title, '') AS title,
		       COALESCE(date, '') AS date, COALESCE(content, '') AS content, category_id
		FROM articles
		WHERE category_id = ?
		ORDER BY id ASC`

	articles := make([]article.Article, 0)
	if err := r.db.SelectContext(ctx, &articles, query, categoryID); err != nil {
		return nil, fmt.Errorf("list articles by category: %w", err)
	}
	return articles, nil
}

func (r *sqliteRepository) Create(ctx context.Context, a *article.Article) error {
	return database.WithTransaction(ctx, r.db, func(tx *sqlx.Tx) error {
		query := `
			INSERT INTO articles (slug, uid, title, date, content, category_id)
			VALUES (?, ?, ?, ?, ?, ?)`

		result, err := tx.ExecContext(ctx, query, a.Slug, a.UID, a.Title, a.Date, a.Content, a.CategoryID)
		if err != nil {
			if strings.Contains(err.Error(), "UNIQUE constraint failed") {
				return article.ErrDuplicateSlug
			}
			return fmt.Errorf("create article: %w", err)
		}

		id, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("create article: %w", err)
		}
		a.ID = id
		return nil
	})
}

func (r *sqliteRepository) Update(ctx context.Context, a *article.Article) error {
	return database.WithTransaction(ctx, r.db, func(tx *sqlx.Tx) error {
		query := `
			UPDATE articles
			SET title = ?, date = ?, content = ?, category_id = ?
			WHERE id = ?`

		if _, err := tx.ExecContext(ctx, query, a.Title, a.Date, a.Content, a.CategoryID, a.ID); err != nil {
			return fmt.Errorf("update article: %w", err)
		}
		return nil
	})
}

func (r *sqliteRepository) Delete(ctx context.Context, id int64) error {
	return database.WithTransaction(ctx, r.db, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM articles WHERE id = ?`, id); err != nil {
			return fmt.Errorf("delete article: %w", err)
		}
		return nil
	})
}
