package service

import (
	"context"
	"time"

	"blog-backend/internal/domains/article"
	"blog-backend/internal/domains/category"
	"blog-backend/internal/shared/utils"
)

type articleService struct {
	repo         article.Repository
	categoryRepo category.Repository
}

// NewArticleService tạo article service
func NewArticleService(repo article.Repository, categoryRepo category.Repository) article.Service {
	return &articleService{
		repo:         repo,
		categoryRepo: categoryRepo,
	}
}

func (s *articleService) ListIndex(ctx context.Context) (article.Index, error) {
	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	index := make(article.Index, len(categories))
	for _, c := range categories {
		articles, err := s.repo.ListByCategory(ctx, c.ID)
		if err != nil {
			return nil, err
		}

		summaries := make([]article.Summary, 0, len(articles))
		for _, a := range articles {
			summaries = append(summaries, article.Summary{
				ID:    a.Slug,
				UID:   a.UID,
				Title: a.Title,
				Date:  a.Date,
			})
		}
		index[c.Slug] = summaries
	}
	return index, nil
}

func (s *articleService) Get(ctx context.Context, categorySlug, articleSlug string) (*article.Detail, error) {
	cat, err := s.categoryRepo.GetBySlug(ctx, categorySlug)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, article.ErrInvalidCategory
	}

	a, err := s.repo.GetBySlugAndCategory(ctx, articleSlug, cat.ID)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, article.ErrArticleNotFound
	}

	return &article.Detail{
		ID:      a.Slug,
		Title:   a.Title,
		Date:    a.Date,
		Content: a.Content,
	}, nil
}

func (s *articleService) Save(ctx context.Context, req article.SaveArticleRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}

	cat, err := s.categoryRepo.GetBySlug(ctx, req.Category)
	if err != nil {
		return "", err
	}
	if cat == nil {
		return "", article.ErrInvalidCategory
	}

	if req.IsNew {
		// Slug là duy nhất trên toàn hệ thống, không chỉ trong chuyên mục
		existing, err := s.repo.GetBySlug(ctx, req.Slug)
		if err != nil {
			return "", err
		}
		if existing != nil {
			return "", article.ErrDuplicateSlug
		}

		date := req.Date
		if date == "" {
			date = time.Now().Format("2006-01-02")
		}

		a := &article.Article{
			Slug:       req.Slug,
			UID:        utils.ShortUID(),
			Title:      req.Title,
			Date:       date,
			Content:    req.Content,
			CategoryID: cat.ID,
		}
		if err := s.repo.Create(ctx, a); err != nil {
			return "", err
		}
		return a.Slug, nil
	}

	a, err := s.repo.GetBySlug(ctx, req.Slug)
	if err != nil {
		return "", err
	}
	if a == nil {
		return "", article.ErrArticleNotFound
	}

	// Cập nhật ghi đè nội dung: content vắng mặt đồng nghĩa bị xoá trắng,
	// nhưng date vắng mặt thì giữ nguyên giá trị cũ
	a.Title = req.Title
	if req.Date != "" {
		a.Date = req.Date
	}
	a.Content = req.Content
	a.CategoryID = cat.ID

	if err := s.repo.Update(ctx, a); err != nil {
		return "", err
	}
	return a.Slug, nil
}

func (s *articleService) Delete(ctx context.Context, slug string) error {
	a, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return err
	}
	if a == nil {
		return article.ErrArticleNotFound
	}
	return s.repo.Delete(ctx, a.ID)
}
