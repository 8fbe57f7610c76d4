package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	cartmodel "pcstore-backend/internal/domains/cart/model"
	cartrepo "pcstore-backend/internal/domains/cart/repository"
	"pcstore-backend/internal/domains/order/model"
	"pcstore-backend/internal/domains/order/repository"
	"pcstore-backend/pkg/logger"
)

type orderService struct {
	orderRepo repository.RepositoryInterface
	cartRepo  cartrepo.RepositoryInterface
}

func NewOrderService(
	orderRepo repository.RepositoryInterface,
	cartRepo cartrepo.RepositoryInterface,
) ServiceInterface {
	return &orderService{
		orderRepo: orderRepo,
		cartRepo:  cartRepo,
	}
}

func (s *orderService) Checkout(ctx context.Context, userID uuid.UUID, req *model.CheckoutRequest) (*model.Order, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// Step 1: snapshot the cart lines at their current prices
	cartItems, err := s.cartRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(cartItems) == 0 {
		return nil, cartmodel.ErrCartEmpty
	}

	items := make([]model.OrderItem, 0, len(cartItems))
	total := decimal.Zero
	for i := range cartItems {
		ci := &cartItems[i]
		items = append(items, model.OrderItem{
			ProductID: ci.ProductID,
			Name:      ci.ProductName,
			UnitPrice: ci.UnitPrice(),
			Quantity:  ci.Quantity,
		})
		total = total.Add(ci.LineTotal())
	}

	// Step 2: persist atomically. The simulated payment always succeeds,
	// so the order is born paid.
	now := time.Now()
	order := &model.Order{
		ID:              uuid.New(),
		UserID:          userID,
		Status:          model.StatusPaid,
		Items:           items,
		Total:           total,
		ShippingAddress: req.ShippingAddress,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.orderRepo.CreateFromCart(ctx, order); err != nil {
		return nil, err
	}

	logger.Info("order placed", map[string]interface{}{
		"order_id": order.ID.String(),
		"user_id":  userID.String(),
		"total":    total.StringFixed(2),
		"lines":    len(items),
	})
	return order, nil
}

func (s *orderService) GetOrder(ctx context.Context, userID, orderID uuid.UUID) (*model.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	// Reported as not found so order ids do not leak across accounts
	if order.UserID != userID {
		return nil, model.ErrOrderNotFound
	}
	return order, nil
}

func (s *orderService) ListOrders(ctx context.Context, userID uuid.UUID) ([]*model.Order, error) {
	return s.orderRepo.ListByUser(ctx, userID)
}

func (s *orderService) ListAllOrders(ctx context.Context, filter *model.OrderFilter) ([]*model.Order, int64, error) {
	filter.Normalize()
	return s.orderRepo.List(ctx, filter)
}

func (s *orderService) UpdateStatus(ctx context.Context, orderID uuid.UUID, req *model.UpdateStatusRequest) (*model.Order, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if !req.Status.IsValid() {
		return nil, model.ErrInvalidStatus
	}

	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !order.Status.CanTransitionTo(req.Status) {
		return nil, model.ErrInvalidTransition
	}

	if err := s.orderRepo.UpdateStatus(ctx, orderID, req.Status); err != nil {
		return nil, err
	}

	order.Status = req.Status
	order.UpdatedAt = time.Now()
	return order, nil
}
