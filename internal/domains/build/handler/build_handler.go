package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"pcstore-backend/internal/domains/build/model"
	"pcstore-backend/internal/domains/build/service"
	usermodel "pcstore-backend/internal/domains/user/model"
	"pcstore-backend/internal/shared/middleware"
	"pcstore-backend/internal/shared/response"
	"pcstore-backend/pkg/logger"
)

type BuildHandler struct {
	service service.ServiceInterface
}

func NewBuildHandler(service service.ServiceInterface) *BuildHandler {
	return &BuildHandler{service: service}
}

// ListPublic handles GET /builds
func (h *BuildHandler) ListPublic(c *gin.Context) {
	var filter model.BuildFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "invalid query parameters")
		return
	}
	filter.Normalize()

	builds, total, err := h.service.ListPublic(c.Request.Context(), &filter)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, builds, &response.Meta{
		Page:  filter.Page,
		Limit: filter.Limit,
		Total: int(total),
	})
}

// GetBuild handles GET /builds/:id
func (h *BuildHandler) GetBuild(c *gin.Context) {
	buildID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid build id")
		return
	}

	var viewerID *uuid.UUID
	if id, ok := middleware.UserIDFromContext(c); ok {
		viewerID = &id
	}

	detail, err := h.service.GetBuild(c.Request.Context(), viewerID, buildID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, detail)
}

// ListMine handles GET /builds/mine
func (h *BuildHandler) ListMine(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	builds, err := h.service.ListMine(c.Request.Context(), userID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, builds)
}

// UpdateBuild handles PUT /builds/:id
func (h *BuildHandler) UpdateBuild(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	buildID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid build id")
		return
	}

	var req model.UpdateBuildRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	build, err := h.service.UpdateBuild(c.Request.Context(), userID, buildID, &req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, build)
}

// DeleteBuild handles DELETE /builds/:id
func (h *BuildHandler) DeleteBuild(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	buildID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid build id")
		return
	}

	if err := h.service.DeleteBuild(c.Request.Context(), userID, callerRole(c), buildID); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

// Like handles POST /builds/:id/like
func (h *BuildHandler) Like(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	buildID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid build id")
		return
	}

	if err := h.service.Like(c.Request.Context(), userID, buildID); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"liked": true})
}

// Unlike handles DELETE /builds/:id/like
func (h *BuildHandler) Unlike(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	buildID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid build id")
		return
	}

	if err := h.service.Unlike(c.Request.Context(), userID, buildID); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"liked": false})
}

// AddComment handles POST /builds/:id/comments
func (h *BuildHandler) AddComment(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	buildID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid build id")
		return
	}

	var req model.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	comment, err := h.service.AddComment(c.Request.Context(), userID, buildID, &req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, comment)
}

// DeleteComment handles DELETE /builds/comments/:id
func (h *BuildHandler) DeleteComment(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	commentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid comment id")
		return
	}

	if err := h.service.DeleteComment(c.Request.Context(), userID, callerRole(c), commentID); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func callerRole(c *gin.Context) usermodel.Role {
	role, _ := middleware.RoleFromContext(c)
	return usermodel.Role(role)
}

func (h *BuildHandler) writeError(c *gin.Context, err error) {
	var vErrs validation.Errors
	if errors.As(err, &vErrs) {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "validation failed", vErrs)
		return
	}

	switch {
	case errors.Is(err, model.ErrBuildNotFound):
		response.NotFound(c, "build not found")
	case errors.Is(err, model.ErrCommentNotFound):
		response.NotFound(c, "comment not found")
	case errors.Is(err, model.ErrNotOwner):
		response.Forbidden(c, "not allowed")
	case errors.Is(err, model.ErrAlreadyLiked):
		response.Conflict(c, "already liked")
	case errors.Is(err, model.ErrNotLiked):
		response.Conflict(c, "not liked")
	default:
		logger.Error("build operation failed", err)
		response.InternalServerError(c, "build operation failed")
	}
}
