package event

import (
	"github.com/carlosvidal/streetball/config"
	mw "github.com/carlosvidal/streetball/internal/middleware"
	"github.com/carlosvidal/streetball/pkg/rmiddleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// EventRoutes sets up all event-related routes.
func EventRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	eventRepo := NewEventRepository(db)
	eventController := NewEventController(eventRepo, appConfig)

	events := router.Group("/events")
	{
		// Public routes
		events.GET("", eventController.GetAllEvents)

		// Protected routes
		authRoutes := events.Group("")
		authRoutes.Use(mw.AuthMiddleware(appConfig.JWT.Secret, db))
		{
			authRoutes.POST("", eventController.CreateEvent)
			authRoutes.POST("/:event_id/join", eventController.JoinEvent)
			authRoutes.POST("/:event_id/leave", eventController.LeaveEvent)
			authRoutes.DELETE("/:event_id", eventController.DeleteEvent)
		}
	}

	// Admin event routes
	adminRoutes := router.Group("/admin/events")
	adminRoutes.Use(mw.AuthMiddleware(appConfig.JWT.Secret, db))
	adminRoutes.Use(rmiddleware.AdminMiddleware(db))
	{
		adminRoutes.DELETE("/:event_id", eventController.ForceDeleteEvent)
	}
}
