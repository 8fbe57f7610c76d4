package service

import (
	"context"

	"github.com/google/uuid"

	"pcstore-backend/internal/domains/order/model"
)

// ServiceInterface defines checkout and order management operations
type ServiceInterface interface {
	// Checkout converts the user's cart into a paid order. Payment is
	// simulated; no gateway is involved.
	Checkout(ctx context.Context, userID uuid.UUID, req *model.CheckoutRequest) (*model.Order, error)

	GetOrder(ctx context.Context, userID, orderID uuid.UUID) (*model.Order, error)
	ListOrders(ctx context.Context, userID uuid.UUID) ([]*model.Order, error)

	// Admin operations
	ListAllOrders(ctx context.Context, filter *model.OrderFilter) ([]*model.Order, int64, error)
	UpdateStatus(ctx context.Context, orderID uuid.UUID, req *model.UpdateStatusRequest) (*model.Order, error)
}
