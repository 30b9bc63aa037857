package service

import (
	"context"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-backend/internal/db"
	"blog-backend/internal/domains/article"
	articleRepo "blog-backend/internal/domains/article/repository"
	categoryRepo "blog-backend/internal/domains/category/repository"
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

func newTestService(t *testing.T) article.Service {
	t.Helper()

	conn := newTestDB(t)
	return NewArticleService(
		articleRepo.NewSQLiteRepository(conn),
		categoryRepo.NewSQLiteRepository(conn),
	)
}

func TestArticleService_SaveNew(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	slug, err := svc.Save(ctx, article.SaveArticleRequest{
		IsNew:    true,
		Slug:     "hello-world",
		Title:    "Hello World",
		Category: "frontend",
		Content:  "# Hello",
	})
	require.NoError(t, err)
	assert.Equal(t, "hello-world", slug)

	detail, err := svc.Get(ctx, "frontend", "hello-world")
	require.NoError(t, err)
	assert.Equal(t, "Hello World", detail.Title)
	assert.Equal(t, "# Hello", detail.Content)
	// Omitted date defaults to today on create
	assert.Equal(t, time.Now().Format("2006-01-02"), detail.Date)

	index, err := svc.ListIndex(ctx)
	require.NoError(t, err)
	require.Len(t, index["frontend"], 1)
	assert.Len(t, index["frontend"][0].UID, 8)
}

func TestArticleService_SaveMissingFields(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Save(context.Background(), article.SaveArticleRequest{
		IsNew: true,
		Slug:  "no-title",
	})
	assert.Error(t, err)
}

func TestArticleService_SaveUnknownCategory(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Save(context.Background(), article.SaveArticleRequest{
		IsNew:    true,
		Slug:     "post",
		Title:    "Post",
		Category: "does-not-exist",
	})
	assert.ErrorIs(t, err, article.ErrInvalidCategory)
}

func TestArticleService_SaveDuplicateSlug(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Save(ctx, article.SaveArticleRequest{
		IsNew: true, Slug: "post", Title: "Post", Category: "frontend",
	})
	require.NoError(t, err)

	// Slugs are unique across the whole site, not per category
	_, err = svc.Save(ctx, article.SaveArticleRequest{
		IsNew: true, Slug: "post", Title: "Other", Category: "novels",
	})
	assert.ErrorIs(t, err, article.ErrDuplicateSlug)
}

func TestArticleService_UpdateClearsOmittedContent(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Save(ctx, article.SaveArticleRequest{
		IsNew: true, Slug: "post", Title: "Post", Category: "frontend",
		Date: "2024-01-15", Content: "body",
	})
	require.NoError(t, err)

	indexBefore, err := svc.ListIndex(ctx)
	require.NoError(t, err)
	uidBefore := indexBefore["frontend"][0].UID

	// Update without content wipes the stored content; omitted date is kept
	_, err = svc.Save(ctx, article.SaveArticleRequest{
		Slug: "post", Title: "Post v2", Category: "frontend",
	})
	require.NoError(t, err)

	after, err := svc.Get(ctx, "frontend", "post")
	require.NoError(t, err)
	assert.Equal(t, "Post v2", after.Title)
	assert.Empty(t, after.Content)
	assert.Equal(t, "2024-01-15", after.Date)

	// uid survives updates
	indexAfter, err := svc.ListIndex(ctx)
	require.NoError(t, err)
	assert.Equal(t, uidBefore, indexAfter["frontend"][0].UID)
}

func TestArticleService_UpdateMissingArticle(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Save(context.Background(), article.SaveArticleRequest{
		Slug: "ghost", Title: "Ghost", Category: "frontend",
	})
	assert.ErrorIs(t, err, article.ErrArticleNotFound)
}

func TestArticleService_GetWrongCategory(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Save(ctx, article.SaveArticleRequest{
		IsNew: true, Slug: "post", Title: "Post", Category: "frontend",
	})
	require.NoError(t, err)

	// Existing article looked up under a different existing category
	_, err = svc.Get(ctx, "novels", "post")
	assert.ErrorIs(t, err, article.ErrArticleNotFound)

	_, err = svc.Get(ctx, "nope", "post")
	assert.ErrorIs(t, err, article.ErrInvalidCategory)
}

func TestArticleService_ListIndex(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Save(ctx, article.SaveArticleRequest{
		IsNew: true, Slug: "first", Title: "First", Category: "frontend", Date: "2024-01-01",
	})
	require.NoError(t, err)
	_, err = svc.Save(ctx, article.SaveArticleRequest{
		IsNew: true, Slug: "second", Title: "Second", Category: "frontend", Date: "2024-02-01",
	})
	require.NoError(t, err)

	index, err := svc.ListIndex(ctx)
	require.NoError(t, err)

	// Seeded categories all present, even the empty ones
	require.Contains(t, index, "frontend")
	require.Contains(t, index, "topics")
	require.Contains(t, index, "novels")
	require.Contains(t, index, "tools")
	assert.Empty(t, index["topics"])

	require.Len(t, index["frontend"], 2)
	assert.Equal(t, "first", index["frontend"][0].ID)
	assert.Equal(t, "second", index["frontend"][1].ID)
}

func TestArticleService_Delete(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Save(ctx, article.SaveArticleRequest{
		IsNew: true, Slug: "post", Title: "Post", Category: "frontend",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, "post"))

	_, err = svc.Get(ctx, "frontend", "post")
	assert.ErrorIs(t, err, article.ErrArticleNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, "post"), article.ErrArticleNotFound)
}
