package main

import (
	"log"

	"github.com/carlosvidal/streetball/config"
	"github.com/carlosvidal/streetball/internal/checkin"
	"github.com/carlosvidal/streetball/internal/court"
	"github.com/carlosvidal/streetball/internal/event"
	"github.com/carlosvidal/streetball/internal/user"
	"github.com/carlosvidal/streetball/pkg/utils"
	"gorm.io/gorm"
)

var courtsData = []court.Court{
	{
		Name:     "Parque del Retiro",
		Lat:      40.4153,
		Lng:      -3.6844,
		Rating:   5,
		Lighting: true,
		Address:  "Plaza de la Independencia, 7",
		Image:    "https://upload.wikimedia.org/wikipedia/commons/thumb/c/c2/Basketball_court_in_shimokitazawa.jpg/640px-Basketball_court_in_shimokitazawa.jpg",
	},
	{
		Name:     "Cancha Rio Manzanares",
		Lat:      40.3950,
		Lng:      -3.7040,
		Rating:   4,
		Lighting: false,
		Address:  "Madrid Río - Zona Matadero",
		Image:    "https://upload.wikimedia.org/wikipedia/commons/thumb/8/82/Basketball_court_at_Rucker_Park.jpg/640px-Basketball_court_at_Rucker_Park.jpg",
	},
	{
		Name:     "Polideportivo La Elipa",
		Lat:      40.4286,
		Lng:      -3.6495,
		Rating:   3,
		Lighting: true,
		Address:  "Calle de Sta. Irene",
		Image:    "https://upload.wikimedia.org/wikipedia/commons/thumb/4/4b/Basketball_court_Resulo.jpg/640px-Basketball_court_Resulo.jpg",
	},
	{
		Name:     "Parque de Atenas",
		Lat:      40.4125,
		Lng:      -3.7196,
		Rating:   4,
		Lighting: true,
		Address:  "Calle de Segovia, s/n",
		Image:    "https://upload.wikimedia.org/wikipedia/commons/thumb/1/1b/Basketball_court.jpg/640px-Basketball_court.jpg",
	},
	{
		Name:     "Instalación D. Pradolongo",
		Lat:      40.3800,
		Lng:      -3.7083,
		Rating:   3,
		Lighting: false,
		Address:  "Parque Pradolongo",
		Image:    "https://upload.wikimedia.org/wikipedia/commons/thumb/a/a2/Basketball_in_Beijing.jpg/640px-Basketball_in_Beijing.jpg",
	},
	{
		Name:     "Cancha Vallecas",
		Lat:      40.3916,
		Lng:      -3.6601,
		Rating:   5,
		Lighting: true,
		Address:  "Calle del Payaso Fofó",
		Image:    "https://upload.wikimedia.org/wikipedia/commons/thumb/3/30/Basketball_hoop_at_sunset.jpg/640px-Basketball_hoop_at_sunset.jpg",
	},
	{
		Name:     "Pista Casino de la Reina",
		Lat:      40.4072,
		Lng:      -3.7038,
		Rating:   4,
		Lighting: true,
		Address:  "Calle de Embajadores",
		Image:    "https://upload.wikimedia.org/wikipedia/commons/thumb/8/8d/Basketball_court_-_panoramio.jpg/640px-Basketball_court_-_panoramio.jpg",
	},
	{
		Name:     "Parque Rodríguez Sahagún",
		Lat:      40.4632,
		Lng:      -3.7099,
		Rating:   4,
		Lighting: false,
		Address:  "Paseo de la Dirección",
		Image:    "https://upload.wikimedia.org/wikipedia/commons/thumb/e/e0/Basketball_court_in_Hong_Kong.jpg/640px-Basketball_court_in_Hong_Kong.jpg",
	},
	{
		Name:     "Cancha Parque Eva Perón",
		Lat:      40.4295,
		Lng:      -3.6655,
		Rating:   3,
		Lighting: true,
		Address:  "Plaza de Manuel Becerra",
		Image:    "https://upload.wikimedia.org/wikipedia/commons/thumb/2/23/Streetball_Court_Berlin.jpg/640px-Streetball_Court_Berlin.jpg",
	},
}

func main() {
	if err := config.Initialize(); err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	cfg := config.GetConfig()
	db := config.DB

	err := db.AutoMigrate(
		&user.User{},
		&court.Court{},
		&checkin.Checkin{},
		&event.Event{}, &event.EventParticipant{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}

	admin, err := ensureAdminUser(db, cfg.Admin.Email)
	if err != nil {
		log.Fatalf("Failed to ensure admin user: %v", err)
	}
	log.Printf("Admin user ready: %s", admin.Username)

	inserted := 0
	for _, c := range courtsData {
		var existing court.Court
		err := db.Where("name = ?", c.Name).First(&existing).Error
		if err == nil {
			continue // already seeded
		}
		if err != gorm.ErrRecordNotFound {
			log.Fatalf("Failed to look up court %q: %v", c.Name, err)
		}

		c.CreatedBy = admin.ID
		if err := db.Create(&c).Error; err != nil {
			log.Fatalf("Failed to insert court %q: %v", c.Name, err)
		}
		inserted++
	}

	log.Printf("Seed complete: %d courts inserted, %d already present", inserted, len(courtsData)-inserted)
}

func ensureAdminUser(db *gorm.DB, email string) (*user.User, error) {
	var admin user.User
	err := db.Where("email = ?", email).First(&admin).Error
	if err == nil {
		return &admin, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	hashed, err := utils.HashPassword("password123")
	if err != nil {
		return nil, err
	}

	admin = user.User{
		Username: "AdminBasket",
		Email:    email,
		Password: hashed,
		Role:     user.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}
