package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"pcstore-backend/internal/domains/cart/model"
	"pcstore-backend/internal/domains/cart/repository"
	productmodel "pcstore-backend/internal/domains/product/model"
	productrepo "pcstore-backend/internal/domains/product/repository"
)

type cartService struct {
	cartRepo    repository.RepositoryInterface
	productRepo productrepo.RepositoryInterface
}

func NewCartService(
	cartRepo repository.RepositoryInterface,
	productRepo productrepo.RepositoryInterface,
) ServiceInterface {
	return &cartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

func (s *cartService) GetCart(ctx context.Context, userID uuid.UUID) (*model.Cart, error) {
	items, err := s.cartRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return assembleCart(items), nil
}

func (s *cartService) AddItem(ctx context.Context, userID uuid.UUID, req *model.AddItemRequest) (*model.Cart, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return nil, productmodel.ErrProductNotFound
	}

	// Step 1: the product must exist and have enough stock for the total
	// quantity that would end up in the cart
	p, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	existingQty := 0
	existing, err := s.cartRepo.GetItemByProduct(ctx, userID, productID)
	if err != nil && !errors.Is(err, model.ErrItemNotFound) {
		return nil, err
	}
	if existing != nil {
		existingQty = existing.Quantity
	}
	if existingQty+req.Quantity > p.Stock {
		return nil, model.ErrInsufficientStock
	}

	// Step 2: upsert merges with any existing line for the same product
	now := time.Now()
	item := &model.CartItem{
		ID:        uuid.New(),
		UserID:    userID,
		ProductID: productID,
		Quantity:  req.Quantity,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.cartRepo.Upsert(ctx, item); err != nil {
		return nil, err
	}

	return s.GetCart(ctx, userID)
}

func (s *cartService) UpdateItem(ctx context.Context, userID, itemID uuid.UUID, req *model.UpdateItemRequest) (*model.Cart, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	item, err := s.cartRepo.GetItem(ctx, userID, itemID)
	if err != nil {
		return nil, err
	}
	if req.Quantity > item.Stock {
		return nil, model.ErrInsufficientStock
	}

	if err := s.cartRepo.UpdateQuantity(ctx, userID, itemID, req.Quantity); err != nil {
		return nil, err
	}
	return s.GetCart(ctx, userID)
}

func (s *cartService) RemoveItem(ctx context.Context, userID, itemID uuid.UUID) (*model.Cart, error) {
	if err := s.cartRepo.Remove(ctx, userID, itemID); err != nil {
		return nil, err
	}
	return s.GetCart(ctx, userID)
}

func (s *cartService) Clear(ctx context.Context, userID uuid.UUID) error {
	return s.cartRepo.Clear(ctx, userID)
}

func assembleCart(items []model.CartItem) *model.Cart {
	subtotal := decimal.Zero
	count := 0
	for i := range items {
		subtotal = subtotal.Add(items[i].LineTotal())
		count += items[i].Quantity
	}
	return &model.Cart{
		Items:    items,
		Subtotal: subtotal,
		Count:    count,
	}
}
