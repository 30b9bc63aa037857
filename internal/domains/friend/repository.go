package friend

import "context"

// Repository định nghĩa các thao tác với bảng friends
type Repository interface {
	// GetByID trả về (nil, nil) nếu không tìm thấy
	GetByID(ctx context.Context, id int64) (*Friend, error)

	// List trả về toàn bộ friends theo id tăng dần
	List(ctx context.Context) ([]Friend, error)

	Create(ctx context.Context, f *Friend) error

	Update(ctx context.Context, f *Friend) error

	Delete(ctx context.Context, id int64) error
}
