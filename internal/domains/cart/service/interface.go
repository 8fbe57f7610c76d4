package service

import (
	"context"

	"github.com/google/uuid"

	"pcstore-backend/internal/domains/cart/model"
)

// ServiceInterface defines cart operations, all scoped to one user
type ServiceInterface interface {
	GetCart(ctx context.Context, userID uuid.UUID) (*model.Cart, error)
	AddItem(ctx context.Context, userID uuid.UUID, req *model.AddItemRequest) (*model.Cart, error)
	UpdateItem(ctx context.Context, userID, itemID uuid.UUID, req *model.UpdateItemRequest) (*model.Cart, error)
	RemoveItem(ctx context.Context, userID, itemID uuid.UUID) (*model.Cart, error)
	Clear(ctx context.Context, userID uuid.UUID) error
}
