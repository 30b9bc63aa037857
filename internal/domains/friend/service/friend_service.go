package service

import (
	"context"

	"blog-backend/internal/domains/friend"
)

type friendService struct {
	repo friend.Repository
}

// NewFriendService tạo friend service
func NewFriendService(repo friend.Repository) friend.Service {
	return &friendService{repo: repo}
}

func (s *friendService) List(ctx context.Context) ([]friend.DTO, error) {
	friends, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	dtos := make([]friend.DTO, 0, len(friends))
	for i := range friends {
		dtos = append(dtos, friend.ToDTO(&friends[i]))
	}
	return dtos, nil
}

func (s *friendService) Add(ctx context.Context, req friend.AddFriendRequest) (*friend.DTO, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	f := &friend.Friend{
		Name:   req.Name,
		Desc:   req.Desc,
		URL:    req.URL,
		Avatar: req.Avatar,
		Tags:   friend.Tags(req.Tags),
	}
	if err := s.repo.Create(ctx, f); err != nil {
		return nil, err
	}

	dto := friend.ToDTO(f)
	return &dto, nil
}

func (s *friendService) Update(ctx context.Context, id int64, req friend.UpdateFriendRequest) (*friend.DTO, error) {
	f, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, friend.ErrFriendNotFound
	}

	// Chỉ ghi đè trường nào client thực sự gửi lên
	if req.Name != nil {
		f.Name = *req.Name
	}
	if req.Desc != nil {
		f.Desc = *req.Desc
	}
	if req.URL != nil {
		f.URL = *req.URL
	}
	if req.Avatar != nil {
		f.Avatar = *req.Avatar
	}
	if req.Tags != nil {
		f.Tags = friend.Tags(*req.Tags)
	}

	if err := s.repo.Update(ctx, f); err != nil {
		return nil, err
	}

	dto := friend.ToDTO(f)
	return &dto, nil
}

func (s *friendService) Delete(ctx context.Context, id int64) error {
	f, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if f == nil {
		return friend.ErrFriendNotFound
	}
	return s.repo.Delete(ctx, id)
}
