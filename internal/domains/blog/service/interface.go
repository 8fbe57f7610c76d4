package service

import (
	"context"

	"github.com/google/uuid"

	"pcstore-backend/internal/domains/blog/model"
)

// ServiceInterface defines blog operations
type ServiceInterface interface {
	ListPublished(ctx context.Context, filter *model.PostFilter) ([]*model.Post, int64, error)
	GetPublishedBySlug(ctx context.Context, slug string) (*model.Post, error)

	// Staff operations
	ListAll(ctx context.Context, filter *model.PostFilter) ([]*model.Post, int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Post, error)
	Create(ctx context.Context, authorID uuid.UUID, req *model.PostRequest) (*model.Post, error)
	Update(ctx context.Context, id uuid.UUID, req *model.PostRequest) (*model.Post, error)
	Delete(ctx context.Context, id uuid.UUID) error
	SetPublished(ctx context.Context, id uuid.UUID, published bool) (*model.Post, error)
}
