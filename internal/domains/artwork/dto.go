package artwork

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ========================================
// REQUEST DTOs
// ========================================

// AddArtworkRequest là payload cho POST /api/artworks
type AddArtworkRequest struct {
	Title       string `json:"title"`
	Thumbnail   string `json:"thumbnail"`
	Fullsize    string `json:"fullsize"`
	Description string `json:"description"`
	Date        string `json:"date"`
}

func (r AddArtworkRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Thumbnail, validation.Required),
		validation.Field(&r.Fullsize, validation.Required),
	)
}

// UpdateArtworkRequest dùng con trỏ để phân biệt trường vắng mặt
// với trường được gửi giá trị rỗng
type UpdateArtworkRequest struct {
	Title       *string `json:"title"`
	Thumbnail   *string `json:"thumbnail"`
	Fullsize    *string `json:"fullsize"`
	Description *string `json:"description"`
	Date        *string `json:"date"`
}

// ========================================
// RESPONSE DTOs
// ========================================

// DTO là hình dạng JSON của artwork trả về cho client; id luôn là chuỗi
type DTO struct {
	ID          int64  `json:"id,string"`
	Title       string `json:"title"`
	Thumbnail   string `json:"thumbnail"`
	Fullsize    string `json:"fullsize"`
	Description string `json:"description"`
	Date        string `json:"date"`
}

// ToDTO chuyển model sang hình dạng trả về
func ToDTO(a *Artwork) DTO {
	return DTO{
		ID:          a.ID,
		Title:       a.Title,
		Thumbnail:   a.Thumbnail,
		Fullsize:    a.Fullsize,
		Description: a.Description,
		Date:        a.Date,
	}
}
