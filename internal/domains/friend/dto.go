package friend

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ========================================
// REQUEST DTOs
// ========================================

// AddFriendRequest là payload cho POST /api/friends
type AddFriendRequest struct {
	Name   string   `json:"name"`
	Desc   string   `json:"desc"`
	URL    string   `json:"url"`
	Avatar string   `json:"avatar"`
	Tags   []string `json:"tags"`
}

func (r AddFriendRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.URL, validation.Required),
	)
}

// UpdateFriendRequest dùng con trỏ để phân biệt trường vắng mặt
// với trường được gửi giá trị rỗng
type UpdateFriendRequest struct {
	Name   *string   `json:"name"`
	Desc   *string   `json:"desc"`
	URL    *string   `json:"url"`
	Avatar *string   `json:"avatar"`
	Tags   *[]string `json:"tags"`
}

// ========================================
// RESPONSE DTOs
// ========================================

// DTO là hình dạng JSON của friend trả về cho client; id luôn là chuỗi
type DTO struct {
	ID     int64    `json:"id,string"`
	Name   string   `json:"name"`
	Desc   string   `json:"desc"`
	URL    string   `json:"url"`
	Avatar string   `json:"avatar"`
	Tags   []string `json:"tags"`
}

// ToDTO chuyển model sang hình dạng trả về
func ToDTO(f *Friend) DTO {
	tags := f.Tags
	if tags == nil {
		tags = Tags{}
	}
	return DTO{
		ID:     f.ID,
		Name:   f.Name,
		Desc:   f.Desc,
		URL:    f.URL,
		Avatar: f.Avatar,
		Tags:   tags,
	}
}
