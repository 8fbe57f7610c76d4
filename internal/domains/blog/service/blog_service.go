package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"pcstore-backend/internal/domains/blog/model"
	"pcstore-backend/internal/domains/blog/repository"
	"pcstore-backend/internal/shared/utils"
)

type blogService struct {
	repo repository.RepositoryInterface
}

func NewBlogService(repo repository.RepositoryInterface) ServiceInterface {
	return &blogService{repo: repo}
}

func (s *blogService) ListPublished(ctx context.Context, filter *model.PostFilter) ([]*model.Post, int64, error) {
	filter.Normalize()
	return s.repo.ListPublished(ctx, filter)
}

func (s *blogService) GetPublishedBySlug(ctx context.Context, slug string) (*model.Post, error) {
	post, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !post.Published {
		return nil, model.ErrPostNotFound
	}
	return post, nil
}

func (s *blogService) ListAll(ctx context.Context, filter *model.PostFilter) ([]*model.Post, int64, error) {
	filter.Normalize()
	return s.repo.List(ctx, filter)
}

func (s *blogService) GetByID(ctx context.Context, id uuid.UUID) (*model.Post, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *blogService) Create(ctx context.Context, authorID uuid.UUID, req *model.PostRequest) (*model.Post, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	slug := utils.GenerateSlug(req.Title)
	exists, err := s.repo.SlugExists(ctx, slug, nil)
	if err != nil {
		return nil, fmt.Errorf("check slug: %w", err)
	}
	if exists {
		return nil, model.ErrSlugAlreadyExists
	}

	now := time.Now()
	post := &model.Post{
		ID:        uuid.New(),
		Title:     req.Title,
		Slug:      slug,
		Excerpt:   req.Excerpt,
		Content:   req.Content,
		CoverURL:  req.CoverURL,
		AuthorID:  authorID,
		Published: false,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *blogService) Update(ctx context.Context, id uuid.UUID, req *model.PostRequest) (*model.Post, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	post, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Retitling changes the slug, with the usual uniqueness check
	slug := utils.GenerateSlug(req.Title)
	if slug != post.Slug {
		exists, err := s.repo.SlugExists(ctx, slug, &id)
		if err != nil {
			return nil, fmt.Errorf("check slug: %w", err)
		}
		if exists {
			return nil, model.ErrSlugAlreadyExists
		}
	}

	post.Title = req.Title
	post.Slug = slug
	post.Excerpt = req.Excerpt
	post.Content = req.Content
	post.CoverURL = req.CoverURL
	post.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *blogService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *blogService) SetPublished(ctx context.Context, id uuid.UUID, published bool) (*model.Post, error) {
	post, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	post.Published = published
	now := time.Now()
	if published && post.PublishedAt == nil {
		post.PublishedAt = &now
	}
	if !published {
		post.PublishedAt = nil
	}
	post.UpdatedAt = now

	if err := s.repo.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}
