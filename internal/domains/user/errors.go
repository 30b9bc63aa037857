package user

import "errors"

// ErrInvalidCredentials covers both unknown username and wrong password.
// The same error is returned for both so callers cannot probe which
// usernames exist.
var ErrInvalidCredentials = errors.New("invalid username or password")

// ErrInvalidToken covers tampered, expired and wrong-class tokens.
var ErrInvalidToken = errors.New("invalid or expired token")

// ErrUserAlreadyExists xảy ra khi provisioning một username đã tồn tại
var ErrUserAlreadyExists = errors.New("user already exists")
