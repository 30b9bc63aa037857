package artwork

import "context"

// Repository định nghĩa các thao tác với bảng artworks
type Repository interface {
	// GetByID trả về (nil, nil) nếu không tìm thấy
	GetByID(ctx context.Context, id int64) (*Artwork, error)

	// List trả về toàn bộ artworks theo id tăng dần
	List(ctx context.Context) ([]Artwork, error)

	Create(ctx context.Context, a *Artwork) error

	Update(ctx context.Context, a *Artwork) error

	Delete(ctx context.Context, id int64) error
}
