package repository

import (
	"context"

	"github.com/google/uuid"

	"pcstore-backend/internal/domains/blog/model"
)

// RepositoryInterface defines blog persistence operations
type RepositoryInterface interface {
	ListPublished(ctx context.Context, filter *model.PostFilter) ([]*model.Post, int64, error)
	List(ctx context.Context, filter *model.PostFilter) ([]*model.Post, int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Post, error)
	GetBySlug(ctx context.Context, slug string) (*model.Post, error)
	Create(ctx context.Context, post *model.Post) error
	Update(ctx context.Context, post *model.Post) error
	Delete(ctx context.Context, id uuid.UUID) error
	SlugExists(ctx context.Context, slug string, excludeID *uuid.UUID) (bool, error)
}
