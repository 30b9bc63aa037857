package category

import "context"

// Repository định nghĩa các thao tác với bảng categories
type Repository interface {
	// GetBySlug trả về (nil, nil) nếu không tìm thấy
	GetBySlug(ctx context.Context, slug string) (*Category, error)

	// List trả về toàn bộ chuyên mục theo thứ tự id tăng dần
	List(ctx context.Context) ([]Category, error)

	// CreateIfAbsent tạo chuyên mục nếu slug chưa tồn tại, trả về
	// bản ghi hiện có hoặc vừa tạo
	CreateIfAbsent(ctx context.Context, slug, name string) (*Category, error)
}
