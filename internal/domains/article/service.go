package article

import "context"

// Index ánh xạ slug chuyên mục sang danh sách bài viết của nó
type Index map[string][]Summary

// Service định nghĩa business logic cho bài viết
type Service interface {
	// ListIndex trả về toàn bộ bài viết gom theo chuyên mục; chuyên
	// mục chưa có bài vẫn xuất hiện với danh sách rỗng
	ListIndex(ctx context.Context) (Index, error)

	// Get trả về ErrInvalidCategory nếu chuyên mục không tồn tại,
	// ErrArticleNotFound nếu bài viết không thuộc chuyên mục đó
	Get(ctx context.Context, categorySlug, articleSlug string) (*Detail, error)

	// Save tạo mới hoặc cập nhật bài viết, trả về slug của nó
	Save(ctx context.Context, req SaveArticleRequest) (string, error)

	// Delete xoá bài viết theo slug
	Delete(ctx context.Context, slug string) error
}
