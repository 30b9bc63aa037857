package article

import "context"

// Repository định nghĩa các thao tác với bảng articles
type Repository interface {
	// GetBySlug trả về (nil, nil) nếu không tìm thấy
	GetBySlug(ctx context.Context, slug string) (*Article, error)

	// GetBySlugAndCategory trả về (nil, nil) nếu bài viết không
	// tồn tại trong chuyên mục đó
	GetBySlugAndCategory(ctx context.Context, slug string, categoryID int64) (*Article, error)

	// ListByCategory trả về bài viết của chuyên mục theo id tăng dần
	ListByCategory(ctx context.Context, categoryID int64) ([]Article, error)

	// Create trả về ErrDuplicateSlug nếu slug đã tồn tại
	Create(ctx context.Context, a *Article) error

	Update(ctx context.Context, a *Article) error

	Delete(ctx context.Context, id int64) error
}
