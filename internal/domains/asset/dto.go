package asset

// Info mô tả một asset đã upload, trả về cho trang quản trị
type Info struct {
	Name       string `json:"name"`
	URL        string `json:"url"`
	ModifiedAt int64  `json:"modifiedAt"`
}
