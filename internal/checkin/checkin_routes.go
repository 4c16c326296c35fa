package checkin

import (
	"github.com/carlosvidal/streetball/config"
	mw "github.com/carlosvidal/streetball/internal/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CheckinRoutes sets up all check-in related routes.
func CheckinRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	checkinRepo := NewCheckinRepository(db)
	checkinController := NewCheckinController(checkinRepo, appConfig)

	checkins := router.Group("/checkins")
	{
		// Active check-ins are public; the map polls this endpoint.
		checkins.GET("", checkinController.GetActiveCheckins)

		checkins.POST("", mw.AuthMiddleware(appConfig.JWT.Secret, db), checkinController.DoCheckin)
	}
}
