package asset

import "io"

// Service định nghĩa business logic cho quản lý asset
type Service interface {
	// Upload lưu file ảnh với tên ngẫu nhiên, trả về URL công khai.
	// Trả về ErrUnsupportedFileType nếu phần mở rộng không được phép
	Upload(originalName, assetType string, src io.Reader) (*Info, error)

	// List trả về assets của một loại, mới nhất trước
	List(assetType string) ([]Info, error)

	// Delete trả về ErrAssetNotFound nếu file không tồn tại
	Delete(assetType, filename string) error
}
