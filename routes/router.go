package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/carlosvidal/streetball/config"
	"github.com/carlosvidal/streetball/internal/auth"
	"github.com/carlosvidal/streetball/internal/checkin"
	"github.com/carlosvidal/streetball/internal/court"
	"github.com/carlosvidal/streetball/internal/event"
)

func SetupRoutes(db *gorm.DB, appConfig *config.Config) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default()) // allows all origins, GET/POST/PUT

	// Welcome page
	r.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(`
			<html>
				<head><title>StreetBall Finder</title></head>
				<body style="text-align:center; margin-top: 40px;">
					<h1>StreetBall Finder API 🏀</h1>
					<div>
						<a href="/swagger/index.html">swagger</a>
					</div>
				</body>
			</html>
		`))
	})

	// Swagger route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes
	api := r.Group("/api")
	auth.RegisterAuthRoutes(api, db, appConfig)
	court.CourtRoutes(api, db, appConfig)
	checkin.CheckinRoutes(api, db, appConfig)
	event.EventRoutes(api, db, appConfig)

	return r
}
