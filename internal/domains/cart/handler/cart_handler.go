package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"pcstore-backend/internal/domains/cart/model"
	"pcstore-backend/internal/domains/cart/service"
	productmodel "pcstore-backend/internal/domains/product/model"
	"pcstore-backend/internal/shared/middleware"
	"pcstore-backend/internal/shared/response"
	"pcstore-backend/pkg/logger"
)

type CartHandler struct {
	service service.ServiceInterface
}

func NewCartHandler(service service.ServiceInterface) *CartHandler {
	return &CartHandler{service: service}
}

// GetCart handles GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	cart, err := h.service.GetCart(c.Request.Context(), userID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, cart)
}

// AddItem handles POST /cart/items
func (h *CartHandler) AddItem(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	var req model.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	cart, err := h.service.AddItem(c.Request.Context(), userID, &req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, cart)
}

// UpdateItem handles PUT /cart/items/:id
func (h *CartHandler) UpdateItem(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid item id")
		return
	}

	var req model.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	cart, err := h.service.UpdateItem(c.Request.Context(), userID, itemID, &req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, cart)
}

// RemoveItem handles DELETE /cart/items/:id
func (h *CartHandler) RemoveItem(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid item id")
		return
	}

	cart, err := h.service.RemoveItem(c.Request.Context(), userID, itemID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, cart)
}

// ClearCart handles DELETE /cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	if err := h.service.Clear(c.Request.Context(), userID); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"cleared": true})
}

func (h *CartHandler) writeError(c *gin.Context, err error) {
	var vErrs validation.Errors
	if errors.As(err, &vErrs) {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "validation failed", vErrs)
		return
	}

	switch {
	case errors.Is(err, model.ErrItemNotFound):
		response.NotFound(c, "cart item not found")
	case errors.Is(err, productmodel.ErrProductNotFound):
		response.NotFound(c, "product not found")
	case errors.Is(err, model.ErrInsufficientStock):
		response.Conflict(c, "insufficient stock")
	default:
		logger.Error("cart operation failed", err)
		response.InternalServerError(c, "cart operation failed")
	}
}
