package friend

import "errors"

var (
	ErrFriendNotFound = errors.New("friend not found")
)
