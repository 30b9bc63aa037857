package asset

import "errors"

var (
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrAssetNotFound       = errors.New("asset not found")
)
