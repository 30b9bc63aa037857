package service

import (
	"context"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-backend/internal/db"
	"blog-backend/internal/domains/user"
	userRepo "blog-backend/internal/domains/user/repository"
	"blog-backend/pkg/jwt"
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

func newTestService(t *testing.T) user.Service {
	t.Helper()

	manager := jwt.NewManager("test-secret", time.Hour, 24*time.Hour)
	return NewUserService(userRepo.NewSQLiteRepository(newTestDB(t)), manager)
}

func TestUserService_LoginSuccess(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.CreateAdmin(ctx, "admin", "s3cret"))

	tokens, err := svc.Login(ctx, user.LoginRequest{Username: "admin", Password: "s3cret"})
	require.NoError(t, err)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)
}

func TestUserService_LoginFailure(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.CreateAdmin(ctx, "admin", "s3cret"))

	// Unknown user and wrong password must be indistinguishable
	_, err := svc.Login(ctx, user.LoginRequest{Username: "nobody", Password: "s3cret"})
	assert.ErrorIs(t, err, user.ErrInvalidCredentials)

	_, err = svc.Login(ctx, user.LoginRequest{Username: "admin", Password: "wrong"})
	assert.ErrorIs(t, err, user.ErrInvalidCredentials)
}

func TestUserService_LoginMissingFields(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Login(context.Background(), user.LoginRequest{Username: "admin"})
	assert.ErrorIs(t, err, user.ErrInvalidCredentials)
}

func TestUserService_Refresh(t *testing.T) {
	manager := jwt.NewManager("test-secret", time.Hour, 24*time.Hour)
	svc := NewUserService(userRepo.NewSQLiteRepository(newTestDB(t)), manager)
	ctx := context.Background()

	require.NoError(t, svc.CreateAdmin(ctx, "admin", "s3cret"))

	tokens, err := svc.Login(ctx, user.LoginRequest{Username: "admin", Password: "s3cret"})
	require.NoError(t, err)

	accessToken, err := svc.Refresh(ctx, tokens.RefreshToken)
	require.NoError(t, err)

	claims, err := manager.ValidateAccessToken(accessToken)
	require.NoError(t, err)
	assert.NotEmpty(t, claims.Subject)
}

func TestUserService_RefreshRejectsAccessToken(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.CreateAdmin(ctx, "admin", "s3cret"))

	tokens, err := svc.Login(ctx, user.LoginRequest{Username: "admin", Password: "s3cret"})
	require.NoError(t, err)

	_, err = svc.Refresh(ctx, tokens.AccessToken)
	assert.ErrorIs(t, err, user.ErrInvalidToken)
}

func TestUserService_CreateAdminDuplicate(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.CreateAdmin(ctx, "admin", "s3cret"))

	err := svc.CreateAdmin(ctx, "admin", "other")
	assert.ErrorIs(t, err, user.ErrUserAlreadyExists)
}
