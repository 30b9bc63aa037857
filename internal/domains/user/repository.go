package user

import "context"

// Repository định nghĩa data access cho users table
type Repository interface {
	// GetByUsername returns (nil, nil) when the username does not exist.
	GetByUsername(ctx context.Context, username string) (*User, error)

	// Create inserts a new user. Returns ErrUserAlreadyExists on a
	// username collision.
	Create(ctx context.Context, u *User) error
}
