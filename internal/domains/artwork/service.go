package artwork

import "context"

// Service định nghĩa business logic cho artworks
type Service interface {
	List(ctx context.Context) ([]DTO, error)

	Add(ctx context.Context, req AddArtworkRequest) (*DTO, error)

	// Update chỉ ghi đè các trường có mặt trong request
	Update(ctx context.Context, id int64, req UpdateArtworkRequest) (*DTO, error)

	Delete(ctx context.Context, id int64) error
}
