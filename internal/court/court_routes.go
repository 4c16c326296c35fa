package court

import (
	"github.com/carlosvidal/streetball/config"
	mw "github.com/carlosvidal/streetball/internal/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CourtRoutes sets up all court-related routes.
func CourtRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	courtRepo := NewCourtRepository(db)
	courtController := NewCourtController(courtRepo, appConfig)

	courts := router.Group("/courts")
	{
		// Public routes
		courts.GET("", courtController.GetAllCourts)
		courts.GET("/:court_id", courtController.GetCourtByID)

		// Protected routes
		courts.POST("", mw.AuthMiddleware(appConfig.JWT.Secret, db), courtController.CreateCourt)
	}
}
