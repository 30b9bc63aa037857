package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"blog-backend/internal/domains/artwork"
	"blog-backend/pkg/database"
)

type sqliteRepository struct {
	db *sqlx.DB
}

// NewSQLiteRepository tạo artwork repository với SQLite
func NewSQLiteRepository(db *sqlx.DB) artwork.Repository {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) GetByID(ctx context.Context, id int64) (*artwork.Artwork, error) {
	query := `
		SELECT id, COALESCE(title, '') AS title, COALESCE(thumbnail, '') AS thumbnail,
		       COALESCE(fullsize, '') AS fullsize, COALESCE(description, '') AS description,
		       COALESCE(date, '') AS date
		FROM artworks
		WHERE id = ?`

	var a artwork.Artwork
	err := r.db.GetContext(ctx, &a, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get artwork by id: %w", err)
	}
	return &a, nil
}

func (r *sqliteRepository) List(ctx context.Context) ([]artwork.Artwork, error) {
	query := `
		SELECT id, COALESCE(title, '') AS title, COALESCE(thumbnail, '') AS thumbnail,
		       COALESCE(fullsize, '') AS fullsize, COALESCE(description, '') AS description,
		       COALESCE(date, '') AS date
		FROM artworks
		ORDER BY id ASC`

	artworks := make([]artwork.Artwork, 0)
	if err := r.db.SelectContext(ctx, &artworks, query); err != nil {
		return nil, fmt.Errorf("list artworks: %w", err)
	}
	return artworks, nil
}

func (r *sqliteRepository) Create(ctx context.Context, a *artwork.Artwork) error {
	return database.WithTransaction(ctx, r.db, func(tx *sqlx.Tx) error {
		query := `
			INSERT INTO artworks (title, thumbnail, fullsize, description, date)
			VALUES (?, ?, ?, ?, ?)`

		result, err := tx.ExecContext(ctx, query, a.Title, a.Thumbnail, a.Fullsize, a.Description, a.Date)
		if err != nil {
			return fmt.Errorf("create artwork: %w", err)
		}

		id, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("create artwork: %w", err)
		}
		a.ID = id
		return nil
	})
}

func (r *sqliteRepository) Update(ctx context.Context, a *artwork.Artwork) error {
	return database.WithTransaction(ctx, r.db, func(tx *sqlx.Tx) error {
		query := `
			UPDATE artworks
			SET title = ?, thumbnail = ?, fullsize = ?, description = ?, date = ?
			WHERE id = ?`

		if _, err := tx.ExecContext(ctx, query, a.Title, a.Thumbnail, a.Fullsize, a.Description, a.Date, a.ID); err != nil {
			return fmt.Errorf("update artwork: %w", err)
		}
		return nil
	})
}

func (r *sqliteRepository) Delete(ctx context.Context, id int64) error {
	return database.WithTransaction(ctx, r.db, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM artworks WHERE id = ?`, id); err != nil {
			return fmt.Errorf("delete artwork: %w", err)
		}
		return nil
	})
}
