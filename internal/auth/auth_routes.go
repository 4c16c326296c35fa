package auth

import (
	"github.com/carlosvidal/streetball/config"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterAuthRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	authRepo := NewAuthRepository(db)
	authController := NewAuthController(authRepo, appConfig)

	authPublic := router.Group("/auth")
	{
		authPublic.POST("/register", authController.Register)
		authPublic.POST("/login", authController.Login)
	}
}
