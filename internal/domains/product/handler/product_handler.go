package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"pcstore-backend/internal/domains/product/model"
	"pcstore-backend/internal/domains/product/service"
	"pcstore-backend/internal/shared/response"
	"pcstore-backend/pkg/logger"
)

const maxImageSize = 5 << 20 // 5 MB

type ProductHandler struct {
	service service.ServiceInterface
}

func NewProductHandler(service service.ServiceInterface) *ProductHandler {
	return &ProductHandler{service: service}
}

// ListProducts handles GET /products
func (h *ProductHandler) ListProducts(c *gin.Context) {
	var filter model.ProductFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "invalid query parameters")
		return
	}
	filter.Normalize()

	products, total, err := h.service.List(c.Request.Context(), &filter)
	if err != nil {
		logger.Error("list products failed", err)
		response.InternalServerError(c, "failed to list products")
		return
	}

	items := make([]model.ProductListItem, 0, len(products))
	for i := range products {
		items = append(items, products[i].ToListItem())
	}

	response.SuccessWithMeta(c, http.StatusOK, items, &response.Meta{
		Page:  filter.Page,
		Limit: filter.Limit,
		Total: total,
	})
}

// GetProduct handles GET /products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid product id")
		return
	}

	p, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrProductNotFound) {
			response.NotFound(c, "product not found")
			return
		}
		logger.Error("get product failed", err)
		response.InternalServerError(c, "failed to get product")
		return
	}

	response.Success(c, http.StatusOK, p)
}

// GetProductBySlug handles GET /products/by-slug/:slug
func (h *ProductHandler) GetProductBySlug(c *gin.Context) {
	p, err := h.service.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, model.ErrProductNotFound) {
			response.NotFound(c, "product not found")
			return
		}
		logger.Error("get product by slug failed", err)
		response.InternalServerError(c, "failed to get product")
		return
	}

	response.Success(c, http.StatusOK, p)
}

// ListFeatured handles GET /products/featured
func (h *ProductHandler) ListFeatured(c *gin.Context) {
	items, err := h.service.ListFeatured(c.Request.Context())
	if err != nil {
		logger.Error("list featured failed", err)
		response.InternalServerError(c, "failed to list featured products")
		return
	}

	response.Success(c, http.StatusOK, items)
}

// CreateProduct handles POST /admin/products
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req model.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	p, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, p)
}

// UpdateProduct handles PUT /admin/products/:id
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid product id")
		return
	}

	var req model.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	p, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, p)
}

// DeleteProduct handles DELETE /admin/products/:id
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid product id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

// UploadImage handles POST /admin/products/:id/image (multipart)
func (h *ProductHandler) UploadImage(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid product id")
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		response.BadRequest(c, "image file is required")
		return
	}
	if fileHeader.Size > maxImageSize {
		response.BadRequest(c, "image exceeds 5MB limit")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.InternalServerError(c, "failed to read image")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		response.InternalServerError(c, "failed to read image")
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	url, err := h.service.UploadImage(c.Request.Context(), id, fileHeader.Filename, data, contentType)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"image_url": url})
}

// ExportProducts handles GET /admin/products/export
func (h *ProductHandler) ExportProducts(c *gin.Context) {
	data, err := h.service.ExportExcel(c.Request.Context())
	if err != nil {
		logger.Error("export products failed", err)
		response.InternalServerError(c, "failed to export products")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="products.xlsx"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

func (h *ProductHandler) writeError(c *gin.Context, err error) {
	var vErrs validation.Errors
	if errors.As(err, &vErrs) {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "validation failed", vErrs)
		return
	}

	switch {
	case errors.Is(err, model.ErrProductNotFound):
		response.NotFound(c, "product not found")
	case errors.Is(err, model.ErrSlugAlreadyExists):
		response.Conflict(c, "slug already exists")
	case errors.Is(err, model.ErrInvalidName),
		errors.Is(err, model.ErrDescriptionTooLong),
		errors.Is(err, model.ErrInvalidCategory),
		errors.Is(err, model.ErrInvalidPrice),
		errors.Is(err, model.ErrInvalidSalePrice),
		errors.Is(err, model.ErrInvalidStock):
		response.BadRequest(c, err.Error())
	default:
		logger.Error("product operation failed", err)
		response.InternalServerError(c, "product operation failed")
	}
}
