package repository

import (
	"context"

	"github.com/google/uuid"

	"pcstore-backend/internal/domains/cart/model"
)

// RepositoryInterface defines cart persistence operations
type RepositoryInterface interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.CartItem, error)
	GetItem(ctx context.Context, userID, itemID uuid.UUID) (*model.CartItem, error)
	GetItemByProduct(ctx context.Context, userID, productID uuid.UUID) (*model.CartItem, error)
	Upsert(ctx context.Context, item *model.CartItem) error
	UpdateQuantity(ctx context.Context, userID, itemID uuid.UUID, quantity int) error
	Remove(ctx context.Context, userID, itemID uuid.UUID) error
	Clear(ctx context.Context, userID uuid.UUID) error
}
