// Package response defines the JSON envelope every handler writes. Success
// payloads carry data plus optional paging meta; failures carry a stable
// machine-readable code so the storefront client can branch without parsing
// messages.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *Error      `json:"error,omitempty"`
	Meta    *Meta       `json:"meta,omitempty"`
}

type Error struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// Meta describes the page window of a list response. Pages is derived from
// Total and Limit, handlers never set it.
type Meta struct {
	Page  int `json:"page,omitempty"`
	Limit int `json:"limit,omitempty"`
	Total int `json:"total,omitempty"`
	Pages int `json:"pages,omitempty"`
}

func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, Response{
		Success: true,
		Data:    data,
	})
}

func SuccessWithMeta(c *gin.Context, statusCode int, data interface{}, meta *Meta) {
	if meta != nil && meta.Limit > 0 {
		meta.Pages = (meta.Total + meta.Limit - 1) / meta.Limit
	}
	c.JSON(statusCode, Response{
		Success: true,
		Data:    data,
		Meta:    meta,
	})
}

// ErrorWithDetails is for failures that carry structured context, typically
// per-field validation errors.
func ErrorWithDetails(c *gin.Context, statusCode int, code, message string, details interface{}) {
	fail(c, statusCode, code, message, details)
}

func fail(c *gin.Context, statusCode int, code, message string, details interface{}) {
	c.JSON(statusCode, Response{
		Success: false,
		Error: &Error{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

// Common error responses
func BadRequest(c *gin.Context, message string) {
	fail(c, http.StatusBadRequest, "BAD_REQUEST", message, nil)
}

func Unauthorized(c *gin.Context, message string) {
	fail(c, http.StatusUnauthorized, "UNAUTHORIZED", message, nil)
}

func Forbidden(c *gin.Context, message string) {
	fail(c, http.StatusForbidden, "FORBIDDEN", message, nil)
}

func NotFound(c *gin.Context, message string) {
	fail(c, http.StatusNotFound, "NOT_FOUND", message, nil)
}

func Conflict(c *gin.Context, message string) {
	fail(c, http.StatusConflict, "CONFLICT", message, nil)
}

func InternalServerError(c *gin.Context, message string) {
	fail(c, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", message, nil)
}
