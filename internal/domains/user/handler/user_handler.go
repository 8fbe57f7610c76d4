package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"pcstore-backend/internal/domains/user/model"
	"pcstore-backend/internal/domains/user/service"
	"pcstore-backend/internal/shared/middleware"
	"pcstore-backend/internal/shared/response"
	"pcstore-backend/pkg/logger"
)

type UserHandler struct {
	service service.ServiceInterface
}

func NewUserHandler(service service.ServiceInterface) *UserHandler {
	return &UserHandler{service: service}
}

// Register handles POST /auth/register
func (h *UserHandler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	auth, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, auth)
}

// Login handles POST /auth/login
func (h *UserHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	auth, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, auth)
}

// Refresh handles POST /auth/refresh
func (h *UserHandler) Refresh(c *gin.Context) {
	var req model.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	pair, err := h.service.Refresh(c.Request.Context(), &req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, pair)
}

// Me handles GET /auth/me
func (h *UserHandler) Me(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	user, err := h.service.GetProfile(c.Request.Context(), userID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, user)
}

// UpdateProfile handles PUT /auth/me
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	var req model.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	user, err := h.service.UpdateProfile(c.Request.Context(), userID, &req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, user)
}

// ListUsers handles GET /admin/users
func (h *UserHandler) ListUsers(c *gin.Context) {
	var filter model.UserFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "invalid query parameters")
		return
	}
	filter.Normalize()

	users, total, err := h.service.ListUsers(c.Request.Context(), &filter)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, users, &response.Meta{
		Page:  filter.Page,
		Limit: filter.Limit,
		Total: int(total),
	})
}

// UpdateRole handles PUT /admin/users/:id/role
func (h *UserHandler) UpdateRole(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid user id")
		return
	}

	var req model.UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	user, err := h.service.UpdateRole(c.Request.Context(), userID, &req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, user)
}

func (h *UserHandler) writeError(c *gin.Context, err error) {
	var vErrs validation.Errors
	if errors.As(err, &vErrs) {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "validation failed", vErrs)
		return
	}

	switch {
	case errors.Is(err, model.ErrUserNotFound):
		response.NotFound(c, "user not found")
	case errors.Is(err, model.ErrEmailAlreadyExists):
		response.Conflict(c, "email already registered")
	case errors.Is(err, model.ErrInvalidCredentials):
		response.Unauthorized(c, "invalid email or password")
	case errors.Is(err, model.ErrInvalidToken):
		response.Unauthorized(c, "invalid or expired token")
	case errors.Is(err, model.ErrInvalidRole):
		response.BadRequest(c, "invalid role")
	default:
		logger.Error("user operation failed", err)
		response.InternalServerError(c, "user operation failed")
	}
}
