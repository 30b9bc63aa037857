package service

import (
	"io"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"blog-backend/internal/domains/asset"
	"blog-backend/internal/infrastructure/storage"
	"blog-backend/internal/shared/utils"
)

// Chỉ nhận file ảnh; phần mở rộng luôn được chuẩn hoá về chữ thường
var allowedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
}

// Các loại asset hợp lệ; loại lạ bị gom vào misc
var knownTypes = map[string]bool{
	"article": true,
	"artwork": true,
	"friend":  true,
	"misc":    true,
}

type assetService struct {
	storage *storage.LocalStorage
}

// NewAssetService tạo asset service
func NewAssetService(st *storage.LocalStorage) asset.Service {
	return &assetService{storage: st}
}

func normalizeType(assetType string) string {
	if assetType == "" {
		return "article"
	}
	if !knownTypes[assetType] {
		return "misc"
	}
	return assetType
}

func (s *assetService) Upload(originalName, assetType string, src io.Reader) (*asset.Info, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	if !allowedExtensions[ext] {
		return nil, asset.ErrUnsupportedFileType
	}

	dir := normalizeType(assetType)
	name := utils.RandomFileName() + ext

	if err := s.storage.Save(dir, name, src); err != nil {
		return nil, err
	}

	return &asset.Info{
		Name: name,
		URL:  path.Join("/uploads", dir, name),
	}, nil
}

func (s *assetService) List(assetType string) ([]asset.Info, error) {
	dir := normalizeType(assetType)

	files, err := s.storage.List(dir)
	if err != nil {
		return nil, err
	}

	infos := make([]asset.Info, 0, len(files))
	for _, f := range files {
		if !allowedExtensions[strings.ToLower(filepath.Ext(f.Name))] {
			continue
		}
		infos = append(infos, asset.Info{
			Name:       f.Name,
			URL:        path.Join("/uploads", dir, f.Name),
			ModifiedAt: f.ModTime.Unix(),
		})
	}

	// Mới nhất lên đầu
	sort.Slice(infos, func(i, j int) bool {
		return infos[i].ModifiedAt > infos[j].ModifiedAt
	})
	return infos, nil
}

func (s *assetService) Delete(assetType, filename string) error {
	dir := normalizeType(assetType)

	// filepath.Base chặn mọi đường dẫn vượt thư mục kiểu ../../
	name := filepath.Base(filename)

	err := s.storage.Delete(dir, name)
	if os.IsNotExist(err) {
		return asset.ErrAssetNotFound
	}
	return err
}
