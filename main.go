package main

import (
	"log"

	"github.com/carlosvidal/streetball/config"
	_ "github.com/carlosvidal/streetball/docs"
	"github.com/carlosvidal/streetball/internal/checkin"
	"github.com/carlosvidal/streetball/internal/court"
	"github.com/carlosvidal/streetball/internal/event"
	"github.com/carlosvidal/streetball/internal/user"
	"github.com/carlosvidal/streetball/routes"
)

// @title StreetBall Finder REST API
// @version 1.0
// @description Court map, live check-ins and pickup events 🏀
// @host localhost:8088
// @BasePath /api
func main() {
	if err := config.Initialize(); err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	cfg := config.GetConfig()

	err := config.DB.AutoMigrate(
		&user.User{},
		&court.Court{},
		&checkin.Checkin{},
		&event.Event{}, &event.EventParticipant{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
	log.Println("AutoMigrate successful")

	r := routes.SetupRoutes(config.DB, cfg)

	// Use port from loaded configuration
	log.Printf("Starting server on port %s in %s mode\n", cfg.App.Port, cfg.App.Env)
	if err := r.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
