package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"pcstore-backend/internal/domains/blog/model"
	"pcstore-backend/internal/domains/blog/service"
	"pcstore-backend/internal/shared/middleware"
	"pcstore-backend/internal/shared/response"
	"pcstore-backend/pkg/logger"
)

type BlogHandler struct {
	service service.ServiceInterface
}

func NewBlogHandler(service service.ServiceInterface) *BlogHandler {
	return &BlogHandler{service: service}
}

// ListPosts handles GET /blog
func (h *BlogHandler) ListPosts(c *gin.Context) {
	var filter model.PostFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "invalid query parameters")
		return
	}
	filter.Normalize()

	posts, total, err := h.service.ListPublished(c.Request.Context(), &filter)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, posts, &response.Meta{
		Page:  filter.Page,
		Limit: filter.Limit,
		Total: int(total),
	})
}

// GetPost handles GET /blog/:slug
func (h *BlogHandler) GetPost(c *gin.Context) {
	post, err := h.service.GetPublishedBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, post)
}

// ListAllPosts handles GET /admin/blog
func (h *BlogHandler) ListAllPosts(c *gin.Context) {
	var filter model.PostFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "invalid query parameters")
		return
	}
	filter.Normalize()

	posts, total, err := h.service.ListAll(c.Request.Context(), &filter)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, posts, &response.Meta{
		Page:  filter.Page,
		Limit: filter.Limit,
		Total: int(total),
	})
}

// CreatePost handles POST /admin/blog
func (h *BlogHandler) CreatePost(c *gin.Context) {
	authorID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	var req model.PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	post, err := h.service.Create(c.Request.Context(), authorID, &req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, post)
}

// UpdatePost handles PUT /admin/blog/:id
func (h *BlogHandler) UpdatePost(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid post id")
		return
	}

	var req model.PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	post, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, post)
}

// DeletePost handles DELETE /admin/blog/:id
func (h *BlogHandler) DeletePost(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid post id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

// PublishPost handles PUT /admin/blog/:id/publish
func (h *BlogHandler) PublishPost(c *gin.Context) {
	h.setPublished(c, true)
}

// UnpublishPost handles PUT /admin/blog/:id/unpublish
func (h *BlogHandler) UnpublishPost(c *gin.Context) {
	h.setPublished(c, false)
}

func (h *BlogHandler) setPublished(c *gin.Context, published bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid post id")
		return
	}

	post, err := h.service.SetPublished(c.Request.Context(), id, published)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, post)
}

func (h *BlogHandler) writeError(c *gin.Context, err error) {
	var vErrs validation.Errors
	if errors.As(err, &vErrs) {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "validation failed", vErrs)
		return
	}

	switch {
	case errors.Is(err, model.ErrPostNotFound):
		response.NotFound(c, "post not found")
	case errors.Is(err, model.ErrSlugAlreadyExists):
		response.Conflict(c, "slug already exists")
	default:
		logger.Error("blog operation failed", err)
		response.InternalServerError(c, "blog operation failed")
	}
}
