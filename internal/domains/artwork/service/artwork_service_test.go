package service

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-backend/internal/db"
	"blog-backend/internal/domains/artwork"
	artworkRepo "blog-backend/internal/domains/artwork/repository"
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

func newTestService(t *testing.T) artwork.Service {
	t.Helper()
	return NewArtworkService(artworkRepo.NewSQLiteRepository(newTestDB(t)))
}

func ptr[T any](v T) *T { return &v }

func TestArtworkService_AddAndList(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	dto, err := svc.Add(ctx, artwork.AddArtworkRequest{
		Title:     "Sunset",
		Thumbnail: "/uploads/artwork/thumb.png",
		Fullsize:  "/uploads/artwork/full.png",
		Date:      "2024-06-01",
	})
	require.NoError(t, err)
	assert.NotZero(t, dto.ID)

	artworks, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, artworks, 1)
	assert.Equal(t, "Sunset", artworks[0].Title)
}

func TestArtworkService_AddMissingImages(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Add(context.Background(), artwork.AddArtworkRequest{Title: "Sunset"})
	assert.Error(t, err)

	_, err = svc.Add(context.Background(), artwork.AddArtworkRequest{
		Title: "Sunset", Thumbnail: "/uploads/artwork/thumb.png",
	})
	assert.Error(t, err)
}

func TestArtworkService_AddOmittedDateStaysEmpty(t *testing.T) {
	svc := newTestService(t)

	dto, err := svc.Add(context.Background(), artwork.AddArtworkRequest{
		Thumbnail: "t.png", Fullsize: "f.png",
	})
	require.NoError(t, err)
	assert.Empty(t, dto.Date)
}

func TestArtworkService_UpdatePartial(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	dto, err := svc.Add(ctx, artwork.AddArtworkRequest{
		Title: "Sunset", Thumbnail: "t.png", Fullsize: "f.png", Date: "2024-06-01",
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, dto.ID, artwork.UpdateArtworkRequest{
		Title:       ptr("Sunrise"),
		Description: ptr("morning glow"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Sunrise", updated.Title)
	assert.Equal(t, "morning glow", updated.Description)
	assert.Equal(t, "t.png", updated.Thumbnail)
	assert.Equal(t, "2024-06-01", updated.Date)
}

func TestArtworkService_NotFound(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Update(ctx, 999, artwork.UpdateArtworkRequest{Title: ptr("x")})
	assert.ErrorIs(t, err, artwork.ErrArtworkNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, 999), artwork.ErrArtworkNotFound)
}

func TestArtworkService_Delete(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	dto, err := svc.Add(ctx, artwork.AddArtworkRequest{Thumbnail: "t.png", Fullsize: "f.png"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, dto.ID))

	artworks, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, artworks)
}
