package service

import (
	"context"

	"github.com/google/uuid"

	"pcstore-backend/internal/domains/product/model"
)

type ServiceInterface interface {
	List(ctx context.Context, filter *model.ProductFilter) ([]model.Product, int, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error)
	GetBySlug(ctx context.Context, slug string) (*model.Product, error)
	ListFeatured(ctx context.Context) ([]model.ProductListItem, error)
	WarmFeaturedCache(ctx context.Context) error

	Create(ctx context.Context, req *model.ProductRequest) (*model.Product, error)
	Update(ctx context.Context, id uuid.UUID, req *model.ProductRequest) (*model.Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
	UploadImage(ctx context.Context, id uuid.UUID, filename string, data []byte, contentType string) (string, error)
	ExportExcel(ctx context.Context) ([]byte, error)
}
