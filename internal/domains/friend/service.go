package friend

import "context"

// Service định nghĩa business logic cho friends
type Service interface {
	List(ctx context.Context) ([]DTO, error)

	Add(ctx context.Context, req AddFriendRequest) (*DTO, error)

	// Update chỉ ghi đè các trường có mặt trong request
	Update(ctx context.Context, id int64, req UpdateFriendRequest) (*DTO, error)

	Delete(ctx context.Context, id int64) error
}
