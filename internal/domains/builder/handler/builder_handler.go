package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	buildmodel "pcstore-backend/internal/domains/build/model"
	"pcstore-backend/internal/domains/builder/model"
	"pcstore-backend/internal/domains/builder/service"
	product "pcstore-backend/internal/domains/product/model"
	"pcstore-backend/internal/shared/middleware"
	"pcstore-backend/internal/shared/response"
	"pcstore-backend/pkg/logger"
)

type BuilderHandler struct {
	service service.ServiceInterface
}

func NewBuilderHandler(service service.ServiceInterface) *BuilderHandler {
	return &BuilderHandler{service: service}
}

// ListSlots handles GET /builder/slots
func (h *BuilderHandler) ListSlots(c *gin.Context) {
	response.Success(c, http.StatusOK, h.service.Slots())
}

// ListComponents handles GET /builder/components/:category
func (h *BuilderHandler) ListComponents(c *gin.Context) {
	category := product.Category(c.Param("category"))

	products, err := h.service.ListComponents(c.Request.Context(), category)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, products)
}

// CreateSession handles POST /builder/sessions. With ?load=<build_id> the new
// session starts from a saved build instead of empty.
func (h *BuilderHandler) CreateSession(c *gin.Context) {
	loadParam := c.Query("load")
	if loadParam == "" {
		state, err := h.service.StartSession(c.Request.Context())
		if err != nil {
			h.writeError(c, err)
			return
		}
		response.Success(c, http.StatusCreated, state)
		return
	}

	buildID, err := uuid.Parse(loadParam)
	if err != nil {
		response.BadRequest(c, "invalid build id")
		return
	}

	result, err := h.service.LoadBuild(c.Request.Context(), optionalUserID(c), buildID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, result)
}

// GetSession handles GET /builder/sessions/:id
func (h *BuilderHandler) GetSession(c *gin.Context) {
	state, err := h.service.GetSession(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, state)
}

// SelectComponent handles PUT /builder/sessions/:id/components
func (h *BuilderHandler) SelectComponent(c *gin.Context) {
	var req model.SelectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		h.writeError(c, err)
		return
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		response.BadRequest(c, "invalid product id")
		return
	}

	state, err := h.service.SelectComponent(c.Request.Context(), c.Param("id"), productID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, state)
}

// RemoveComponent handles DELETE /builder/sessions/:id/components/:category
func (h *BuilderHandler) RemoveComponent(c *gin.Context) {
	category := product.Category(c.Param("category"))

	state, err := h.service.RemoveComponent(c.Request.Context(), c.Param("id"), category)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, state)
}

// SaveBuild handles POST /builder/builds
func (h *BuilderHandler) SaveBuild(c *gin.Context) {
	var req buildmodel.SaveBuildRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	build, err := h.service.SaveBuild(c.Request.Context(), optionalUserID(c), &req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, build)
}

// optionalUserID returns the authenticated user id or nil for anonymous
// requests. Builder routes sit behind the optional auth middleware.
func optionalUserID(c *gin.Context) *uuid.UUID {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return nil
	}
	return &userID
}

func (h *BuilderHandler) writeError(c *gin.Context, err error) {
	var vErrs validation.Errors
	if errors.As(err, &vErrs) {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "validation failed", vErrs)
		return
	}

	switch {
	case errors.Is(err, model.ErrSessionNotFound):
		response.NotFound(c, "builder session not found or expired")
	case errors.Is(err, model.ErrProductNotInCatalog):
		response.NotFound(c, "product not in catalog")
	case errors.Is(err, model.ErrNotABuilderCategory):
		response.BadRequest(c, "category has no builder slot")
	case errors.Is(err, model.ErrUnauthenticated):
		response.Unauthorized(c, "sign in to save builds")
	case errors.Is(err, model.ErrEmptySelection):
		response.BadRequest(c, "select at least one component before saving")
	case errors.Is(err, buildmodel.ErrBuildNotFound):
		response.NotFound(c, "build not found")
	default:
		logger.Error("builder operation failed", err)
		response.InternalServerError(c, "builder operation failed")
	}
}
