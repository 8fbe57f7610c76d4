package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	cartmodel "pcstore-backend/internal/domains/cart/model"
	"pcstore-backend/internal/domains/order/model"
	"pcstore-backend/internal/domains/order/service"
	"pcstore-backend/internal/shared/middleware"
	"pcstore-backend/internal/shared/response"
	"pcstore-backend/pkg/logger"
)

type OrderHandler struct {
	service service.ServiceInterface
}

func NewOrderHandler(service service.ServiceInterface) *OrderHandler {
	return &OrderHandler{service: service}
}

// Checkout handles POST /orders/checkout
func (h *OrderHandler) Checkout(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	var req model.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	order, err := h.service.Checkout(c.Request.Context(), userID, &req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, order)
}

// ListOrders handles GET /orders
func (h *OrderHandler) ListOrders(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	orders, err := h.service.ListOrders(c.Request.Context(), userID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, orders)
}

// GetOrder handles GET /orders/:id
func (h *OrderHandler) GetOrder(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid order id")
		return
	}

	order, err := h.service.GetOrder(c.Request.Context(), userID, orderID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, order)
}

// ListAllOrders handles GET /admin/orders
func (h *OrderHandler) ListAllOrders(c *gin.Context) {
	var filter model.OrderFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "invalid query parameters")
		return
	}
	filter.Normalize()

	orders, total, err := h.service.ListAllOrders(c.Request.Context(), &filter)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, orders, &response.Meta{
		Page:  filter.Page,
		Limit: filter.Limit,
		Total: int(total),
	})
}

// UpdateStatus handles PUT /admin/orders/:id/status
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid order id")
		return
	}

	var req model.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	order, err := h.service.UpdateStatus(c.Request.Context(), orderID, &req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, order)
}

func (h *OrderHandler) writeError(c *gin.Context, err error) {
	var vErrs validation.Errors
	if errors.As(err, &vErrs) {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "validation failed", vErrs)
		return
	}

	switch {
	case errors.Is(err, model.ErrOrderNotFound):
		response.NotFound(c, "order not found")
	case errors.Is(err, cartmodel.ErrCartEmpty):
		response.BadRequest(c, "cart is empty")
	case errors.Is(err, model.ErrInsufficientStock):
		response.Conflict(c, "insufficient stock for one or more items")
	case errors.Is(err, model.ErrInvalidStatus):
		response.BadRequest(c, "invalid order status")
	case errors.Is(err, model.ErrInvalidTransition):
		response.Conflict(c, "status transition not allowed")
	default:
		logger.Error("order operation failed", err)
		response.InternalServerError(c, "order operation failed")
	}
}
