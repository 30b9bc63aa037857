package service

import (
	"context"

	"blog-backend/internal/domains/artwork"
)

type artworkService struct {
	repo artwork.Repository
}

// NewArtworkService tạo artwork service
func NewArtworkService(repo artwork.Repository) artwork.Service {
	return &artworkService{repo: repo}
}

func (s *artworkService) List(ctx context.Context) ([]artwork.DTO, error) {
	artworks, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	dtos := make([]artwork.DTO, 0, len(artworks))
	for i := range artworks {
		dtos = append(dtos, artwork.ToDTO(&artworks[i]))
	}
	return dtos, nil
}

func (s *artworkService) Add(ctx context.Context, req artwork.AddArtworkRequest) (*artwork.DTO, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// Date là optional và được lưu nguyên trạng, không tự điền ngày hiện tại
	a := &artwork.Artwork{
		Title:       req.Title,
		Thumbnail:   req.Thumbnail,
		Fullsize:    req.Fullsize,
		Description: req.Description,
		Date:        req.Date,
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}

	dto := artwork.ToDTO(a)
	return &dto, nil
}

func (s *artworkService) Update(ctx context.Context, id int64, req artwork.UpdateArtworkRequest) (*artwork.DTO, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, artwork.ErrArtworkNotFound
	}

	// Chỉ ghi đè trường nào client thực sự gửi lên
	if req.Title != nil {
		a.Title = *req.Title
	}
	if req.Thumbnail != nil {
		a.Thumbnail = *req.Thumbnail
	}
	if req.Fullsize != nil {
		a.Fullsize = *req.Fullsize
	}
	if req.Description != nil {
		a.Description = *req.Description
	}
	if req.Date != nil {
		a.Date = *req.Date
	}

	if err := s.repo.Update(ctx, a); err != nil {
		return nil, err
	}

	dto := artwork.ToDTO(a)
	return &dto, nil
}

func (s *artworkService) Delete(ctx context.Context, id int64) error {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if a == nil {
		return artwork.ErrArtworkNotFound
	}
	return s.repo.Delete(ctx, id)
}
