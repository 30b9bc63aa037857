package repository

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-backend/internal/db"
)

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	conn, err := sqlx.Open("sqlite", ":memory:")
	require.NoError(t, err)
	// In-memory database lives per connection
	conn.SetMaxOpenConns(1)

	require.NoError(t, db.RunMigrations(conn.DB))

	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestSQLiteRepository_GetBySlug(t *testing.T) {
	repo := NewSQLiteRepository(newTestDB(t))
	ctx := context.Background()

	cat, err := repo.GetBySlug(ctx, "frontend")
	require.NoError(t, err)
	require.NotNil(t, cat)
	assert.Equal(t, "技术手记", cat.Name)

	missing, err := repo.GetBySlug(ctx, "does-not-exist")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestSQLiteRepository_List(t *testing.T) {
	repo := NewSQLiteRepository(newTestDB(t))

	categories, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 4)

	// Seeded bootstrap set in insertion order
	slugs := make([]string, 0, len(categories))
	for _, c := range categories {
		slugs = append(slugs, c.Slug)
	}
	assert.Equal(t, []string{"frontend", "topics", "novels", "tools"}, slugs)
}

func TestSQLiteRepository_CreateIfAbsent(t *testing.T) {
	repo := NewSQLiteRepository(newTestDB(t))
	ctx := context.Background()

	created, err := repo.CreateIfAbsent(ctx, "music", "Music")
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "Music", created.Name)

	// Repeat calls keep the existing row untouched
	again, err := repo.CreateIfAbsent(ctx, "music", "Other Name")
	require.NoError(t, err)
	require.NotNil(t, again)
	assert.Equal(t, created.ID, again.ID)
	assert.Equal(t, "Music", again.Name)
}

func TestSQLiteRepository_CreateIfAbsentSeeded(t *testing.T) {
	repo := NewSQLiteRepository(newTestDB(t))
	ctx := context.Background()

	// Bootstrap categories are not duplicated or renamed
	cat, err := repo.CreateIfAbsent(ctx, "frontend", "Renamed")
	require.NoError(t, err)
	require.NotNil(t, cat)
	assert.Equal(t, "技术手记", cat.Name)

	categories, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, categories, 4)
}
