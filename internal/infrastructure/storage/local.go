package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// LocalStorage handles file storage on the local filesystem
type LocalStorage struct {
	baseDir string
}

// FileInfo mô tả một file đã lưu
type FileInfo struct {
	Name    string
	Size    int64
	ModTime time.Time
}

// NewLocalStorage khởi tạo storage trên đĩa, tạo thư mục gốc nếu chưa có
func NewLocalStorage(baseDir string) (*LocalStorage, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}
	return &LocalStorage{baseDir: baseDir}, nil
}

// Save ghi file vào <baseDir>/<dir>/<filename>
// filename đã được sanitize ở tầng service
func (s *LocalStorage) Save(dir, filename string, src io.Reader) error {
	target := filepath.Join(s.baseDir, dir)
	if err := os.MkdirAll(target, 0o755); err != nil {
		return fmt.Errorf("failed to create dir: %w", err)
	}

	dst, err := os.Create(filepath.Join(target, filename))
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

// List trả về các file trong <baseDir>/<dir>; thư mục chưa tồn tại
// được coi là rỗng
func (s *LocalStorage) List(dir string) ([]FileInfo, error) {
	entries, err := os.ReadDir(filepath.Join(s.baseDir, dir))
	if os.IsNotExist(err) {
		return []FileInfo{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read dir: %w", err)
	}

	files := make([]FileInfo, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		files = append(files, FileInfo{
			Name:    entry.Name(),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}
	return files, nil
}

// Delete xoá <baseDir>/<dir>/<filename>, trả về os.ErrNotExist nếu
// file không tồn tại
func (s *LocalStorage) Delete(dir, filename string) error {
	path := filepath.Join(s.baseDir, dir, filename)
	if _, err := os.Stat(path); err != nil {
		return err
	}
	return os.Remove(path)
}
