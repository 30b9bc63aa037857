package service

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-backend/internal/db"
	"blog-backend/internal/domains/friend"
	friendRepo "blog-backend/internal/domains/friend/repository"
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

func newTestService(t *testing.T) friend.Service {
	t.Helper()
	return NewFriendService(friendRepo.NewSQLiteRepository(newTestDB(t)))
}

func ptr[T any](v T) *T { return &v }

func TestFriendService_AddAndList(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	dto, err := svc.Add(ctx, friend.AddFriendRequest{
		Name:   "alice",
		Desc:   "blogger",
		URL:    "https://alice.example",
		Avatar: "/uploads/avatar/a.png",
		Tags:   []string{"dev", "art"},
	})
	require.NoError(t, err)
	assert.NotZero(t, dto.ID)

	friends, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, friends, 1)
	assert.Equal(t, "alice", friends[0].Name)
	assert.Equal(t, []string{"dev", "art"}, friends[0].Tags)
}

func TestFriendService_AddMissingFields(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Add(context.Background(), friend.AddFriendRequest{Name: "alice"})
	assert.Error(t, err)

	_, err = svc.Add(context.Background(), friend.AddFriendRequest{URL: "https://x.example"})
	assert.Error(t, err)
}

func TestFriendService_AddNilTags(t *testing.T) {
	svc := newTestService(t)

	dto, err := svc.Add(context.Background(), friend.AddFriendRequest{
		Name: "bob", URL: "https://bob.example",
	})
	require.NoError(t, err)
	// Tags always serialize as a list, never null
	assert.NotNil(t, dto.Tags)
	assert.Empty(t, dto.Tags)
}

func TestFriendService_UpdatePartial(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	dto, err := svc.Add(ctx, friend.AddFriendRequest{
		Name: "alice", Desc: "blogger", URL: "https://alice.example", Tags: []string{"dev"},
	})
	require.NoError(t, err)

	// Only the fields present in the request change
	updated, err := svc.Update(ctx, dto.ID, friend.UpdateFriendRequest{
		Desc: ptr("painter"),
		Tags: ptr([]string{"art"}),
	})
	require.NoError(t, err)
	assert.Equal(t, "alice", updated.Name)
	assert.Equal(t, "https://alice.example", updated.URL)
	assert.Equal(t, "painter", updated.Desc)
	assert.Equal(t, []string{"art"}, updated.Tags)
}

func TestFriendService_UpdateEmptyStringOverwrites(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	dto, err := svc.Add(ctx, friend.AddFriendRequest{
		Name: "alice", Desc: "blogger", URL: "https://alice.example",
	})
	require.NoError(t, err)

	// An explicit empty string is an overwrite, not an omission
	updated, err := svc.Update(ctx, dto.ID, friend.UpdateFriendRequest{Desc: ptr("")})
	require.NoError(t, err)
	assert.Empty(t, updated.Desc)
}

func TestFriendService_NotFound(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Update(ctx, 999, friend.UpdateFriendRequest{Name: ptr("x")})
	assert.ErrorIs(t, err, friend.ErrFriendNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, 999), friend.ErrFriendNotFound)
}

func TestFriendService_Delete(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	dto, err := svc.Add(ctx, friend.AddFriendRequest{Name: "alice", URL: "https://alice.example"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, dto.ID))

	friends, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, friends)
}
