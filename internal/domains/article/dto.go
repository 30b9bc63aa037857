package article

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ========================================
// REQUEST DTOs
// ========================================

// SaveArticleRequest là payload cho POST /api/articles, dùng chung
// cho cả tạo mới lẫn cập nhật (phân biệt qua IsNew)
type SaveArticleRequest struct {
	IsNew    bool   `json:"isNew"`
	Slug     string `json:"slug"`
	Title    string `json:"title"`
	Category string `json:"category"`
	Date     string `json:"date"`
	Content  string `json:"content"`
}

func (r SaveArticleRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Slug, validation.Required),
		validation.Field(&r.Title, validation.Required),
		validation.Field(&r.Category, validation.Required),
	)
}

// ========================================
// RESPONSE DTOs
// ========================================

// Summary là một mục trong danh sách bài viết của chuyên mục,
// không kèm nội dung
type Summary struct {
	ID    string `json:"id"`
	UID   string `json:"uid"`
	Title string `json:"title"`
	Date  string `json:"date"`
}

// Detail là bài viết đầy đủ trả về cho trang đọc
type Detail struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Date    string `json:"date"`
	Content string `json:"content"`
}
