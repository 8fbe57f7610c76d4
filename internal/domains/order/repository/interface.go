package repository

import (
	"context"

	"github.com/google/uuid"

	"pcstore-backend/internal/domains/order/model"
)

// RepositoryInterface defines order persistence operations
type RepositoryInterface interface {
	// CreateFromCart atomically decrements product stock for every line,
	// inserts the order and empties the user's cart. Any stock shortage
	// rolls the whole checkout back.
	CreateFromCart(ctx context.Context, order *model.Order) error

	GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*model.Order, error)
	List(ctx context.Context, filter *model.OrderFilter) ([]*model.Order, int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.Status) error
}
