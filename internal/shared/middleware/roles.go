package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// AdminMiddleware checks if user has admin role
func AdminMiddleware() gin.HandlerFunc {
	return requireRoles("admin")
}

// ModeratorMiddleware allows moderators and admins
func ModeratorMiddleware() gin.HandlerFunc {
	return requireRoles("moderator", "admin")
}

func requireRoles(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Role is set by AuthMiddleware
		roleInterface, exists := c.Get("role")
		if !exists {
			forbidden(c)
			return
		}

		role, ok := roleInterface.(string)
		if !ok {
			forbidden(c)
			return
		}

		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}

		forbidden(c)
	}
}

func forbidden(c *gin.Context) {
	c.JSON(http.StatusForbidden, gin.H{
		"success": false,
		"error":   "Access denied: insufficient role",
	})
	c.Abort()
}
