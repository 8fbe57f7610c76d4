package service

import (
	"context"
	"fmt"
	"path"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"pcstore-backend/internal/domains/product/model"
	"pcstore-backend/internal/domains/product/repository"
	"pcstore-backend/internal/infrastructure/storage"
	"pcstore-backend/internal/shared/utils"
	"pcstore-backend/pkg/cache"
	"pcstore-backend/pkg/logger"
)

const (
	featuredCacheKey = "products:featured"
	featuredCacheTTL = time.Hour
	featuredLimit    = 8
)

type productService struct {
	repo    repository.RepositoryInterface
	cache   cache.Cache
	storage *storage.MinIOStorage
}

func NewProductService(repo repository.RepositoryInterface, cache cache.Cache, storage *storage.MinIOStorage) ServiceInterface {
	return &productService{
		repo:    repo,
		cache:   cache,
		storage: storage,
	}
}

func (s *productService) List(ctx context.Context, filter *model.ProductFilter) ([]model.Product, int, error) {
	filter.Normalize()
	return s.repo.List(ctx, filter)
}

func (s *productService) GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *productService) GetBySlug(ctx context.Context, slug string) (*model.Product, error) {
	return s.repo.GetBySlug(ctx, slug)
}

// ListFeatured serves the home page strip from cache when possible.
func (s *productService) ListFeatured(ctx context.Context) ([]model.ProductListItem, error) {
	var cached []model.ProductListItem
	if found, err := s.cache.Get(ctx, featuredCacheKey, &cached); err == nil && found {
		return cached, nil
	}

	products, err := s.repo.ListFeatured(ctx, featuredLimit)
	if err != nil {
		return nil, err
	}

	items := make([]model.ProductListItem, 0, len(products))
	for i := range products {
		items = append(items, products[i].ToListItem())
	}

	if err := s.cache.Set(ctx, featuredCacheKey, items, featuredCacheTTL); err != nil {
		logger.Warn("failed to cache featured products", map[string]interface{}{"error": err.Error()})
	}
	return items, nil
}

// WarmFeaturedCache refreshes the featured listing cache. Run by the worker.
func (s *productService) WarmFeaturedCache(ctx context.Context) error {
	products, err := s.repo.ListFeatured(ctx, featuredLimit)
	if err != nil {
		return err
	}

	items := make([]model.ProductListItem, 0, len(products))
	for i := range products {
		items = append(items, products[i].ToListItem())
	}
	return s.cache.Set(ctx, featuredCacheKey, items, featuredCacheTTL)
}

func (s *productService) Create(ctx context.Context, req *model.ProductRequest) (*model.Product, error) {
	// Step 1: Validate input
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Resolve a unique slug
	slug := req.Slug
	if slug == "" {
		slug = utils.GenerateSlug(req.Name)
	}
	exists, err := s.repo.SlugExists(ctx, slug, nil)
	if err != nil {
		return nil, fmt.Errorf("check slug: %w", err)
	}
	if exists {
		return nil, model.ErrSlugAlreadyExists
	}

	// Step 3: Build and validate the entity
	now := time.Now()
	p := &model.Product{
		ID:          uuid.New(),
		Name:        req.Name,
		Slug:        slug,
		Description: req.Description,
		Category:    model.Category(req.Category),
		Price:       decimal.NewFromFloat(req.Price),
		Stock:       req.Stock,
		SpecsRaw:    req.Specs,
		ImageURL:    req.ImageURL,
		Featured:    req.Featured,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if req.SalePrice != nil {
		sp := decimal.NewFromFloat(*req.SalePrice)
		p.SalePrice = &sp
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	p.ParseSpecs()

	// Step 4: Persist
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	s.invalidateCaches(ctx)
	return p, nil
}

func (s *productService) Update(ctx context.Context, id uuid.UUID, req *model.ProductRequest) (*model.Product, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	slug := req.Slug
	if slug == "" {
		slug = p.Slug
	}
	if slug != p.Slug {
		exists, err := s.repo.SlugExists(ctx, slug, &id)
		if err != nil {
			return nil, fmt.Errorf("check slug: %w", err)
		}
		if exists {
			return nil, model.ErrSlugAlreadyExists
		}
	}

	p.Name = req.Name
	p.Slug = slug
	p.Description = req.Description
	p.Category = model.Category(req.Category)
	p.Price = decimal.NewFromFloat(req.Price)
	p.SalePrice = nil
	if req.SalePrice != nil {
		sp := decimal.NewFromFloat(*req.SalePrice)
		p.SalePrice = &sp
	}
	p.Stock = req.Stock
	p.SpecsRaw = req.Specs
	if req.ImageURL != nil {
		p.ImageURL = req.ImageURL
	}
	p.Featured = req.Featured
	p.UpdatedAt = time.Now()

	if err := p.Validate(); err != nil {
		return nil, err
	}
	p.ParseSpecs()

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}

	s.invalidateCaches(ctx)
	return p, nil
}

func (s *productService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateCaches(ctx)
	return nil
}

// UploadImage stores an image in object storage and binds its URL to the product.
func (s *productService) UploadImage(ctx context.Context, id uuid.UUID, filename string, data []byte, contentType string) (string, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}

	key := fmt.Sprintf("products/%s/%d%s", id, time.Now().Unix(), path.Ext(filename))
	url, err := s.storage.Upload(ctx, key, data, contentType)
	if err != nil {
		return "", fmt.Errorf("upload image: %w", err)
	}

	p.ImageURL = &url
	p.UpdatedAt = time.Now()
	if err := s.repo.Update(ctx, p); err != nil {
		return "", err
	}
	return url, nil
}

// ExportExcel dumps the whole catalog as an .xlsx sheet for the admin UI.
func (s *productService) ExportExcel(ctx context.Context) ([]byte, error) {
	filter := &model.ProductFilter{Page: 1, Limit: 100, Sort: "name"}
	filter.Normalize()

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	headers := []string{"ID", "Name", "Slug", "Category", "Price", "Sale Price", "Stock", "Featured"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for {
		products, total, err := s.repo.List(ctx, filter)
		if err != nil {
			return nil, fmt.Errorf("export list page %d: %w", filter.Page, err)
		}

		for i := range products {
			p := &products[i]
			sale := ""
			if p.SalePrice != nil {
				sale = p.SalePrice.StringFixed(2)
			}
			values := []interface{}{
				p.ID.String(), p.Name, p.Slug, p.Category.String(),
				p.Price.StringFixed(2), sale, p.Stock, p.Featured,
			}
			for col, v := range values {
				cell, _ := excelize.CoordinatesToCellName(col+1, row)
				f.SetCellValue(sheet, cell, v)
			}
			row++
		}

		if filter.Page*filter.Limit >= total {
			break
		}
		filter.Page++
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write excel buffer: %w", err)
	}
	return buf.Bytes(), nil
}

func (s *productService) invalidateCaches(ctx context.Context) {
	if err := s.cache.Delete(ctx, featuredCacheKey); err != nil {
		logger.Warn("failed to invalidate featured cache", map[string]interface{}{"error": err.Error()})
	}
}
