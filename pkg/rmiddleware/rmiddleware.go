package rmiddleware

import (
	"net/http"
	"strings"

	"github.com/carlosvidal/streetball/internal/middleware"
	"github.com/carlosvidal/streetball/internal/user"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RoleMiddleware allows the request through only when the authenticated
// user's stored role matches one of requiredRoles. The role is read from the
// database, never from the token or the client.
func RoleMiddleware(db *gorm.DB, requiredRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := middleware.GetUserIDFromContext(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: " + err.Error()})
			return
		}

		var u user.User
		if err := db.Select("role").First(&u, userID).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to get user role"})
			return
		}

		hasRequiredRole := false
		for _, requiredRole := range requiredRoles {
			if strings.EqualFold(u.Role, requiredRole) {
				hasRequiredRole = true
				break
			}
		}

		if !hasRequiredRole {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":    "Forbidden",
				"message":  "You don't have permission to access this resource",
				"required": requiredRoles,
			})
			return
		}

		c.Set("user_role", u.Role)
		c.Next()
	}
}

// AdminMiddleware is a convenience middleware for admin-only access
func AdminMiddleware(db *gorm.DB) gin.HandlerFunc {
	return RoleMiddleware(db, user.RoleAdmin)
}
