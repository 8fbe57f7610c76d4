package repository

import (
	"context"

	"github.com/google/uuid"

	"pcstore-backend/internal/domains/product/model"
)

// RepositoryInterface is the catalog data access contract
type RepositoryInterface interface {
	List(ctx context.Context, filter *model.ProductFilter) ([]model.Product, int, error)
	ListByCategories(ctx context.Context, categories []model.Category) ([]model.Product, error)
	ListFeatured(ctx context.Context, limit int) ([]model.Product, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Product, error)
	GetBySlug(ctx context.Context, slug string) (*model.Product, error)
	Create(ctx context.Context, p *model.Product) error
	Update(ctx context.Context, p *model.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
	SlugExists(ctx context.Context, slug string, excludeID *uuid.UUID) (bool, error)
}
