package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/carlosvidal/streetball/pkg/token"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	AuthUserIDKey   = "auth_user_id"
	AuthUsernameKey = "auth_username"
)

// AuthMiddleware validates the bearer token and confirms the user still exists.
// Only the server-side verification gates protected routes; clients may decode
// the payload for display but are never trusted for authorization.
func AuthMiddleware(jwtSecret string, db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			return
		}

		bearerToken := strings.Split(authHeader, " ")
		if len(bearerToken) != 2 || strings.ToLower(bearerToken[0]) != "bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid Authorization header format. Expected: Bearer <token>"})
			return
		}

		claims, err := token.ValidateJWT(bearerToken[1], jwtSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Invalid or expired token: " + err.Error()})
			return
		}

		var exists bool
		if err := db.Table("users").Select("count(*) > 0").Where("id = ? AND deleted_at IS NULL", claims.UserID).Find(&exists).Error; err != nil || !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User not found or inactive"})
			return
		}

		c.Set(AuthUserIDKey, claims.UserID)
		c.Set(AuthUsernameKey, claims.Username)
		c.Next()
	}
}

// GetUserIDFromContext extracts the user ID from the context
func GetUserIDFromContext(c *gin.Context) (uint, error) {
	userID, exists := c.Get(AuthUserIDKey)
	if !exists {
		return 0, errors.New("user ID not found in context")
	}

	uid, ok := userID.(uint)
	if !ok {
		return 0, fmt.Errorf("user ID has unexpected type: %T", userID)
	}

	return uid, nil
}
