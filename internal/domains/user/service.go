package user

import "context"

// Service định nghĩa business logic cho authentication
type Service interface {
	// Login verifies credentials and issues an access/refresh token pair.
	Login(ctx context.Context, req LoginRequest) (*TokenPair, error)

	// Refresh mints a fresh access token from a refresh-class token.
	// The refresh token itself is not rotated.
	Refresh(ctx context.Context, refreshToken string) (string, error)

	// CreateAdmin provisions an admin account (cmd/createadmin only).
	CreateAdmin(ctx context.Context, username, password string) error
}
