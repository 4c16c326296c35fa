package court

import (
	"github.com/carlosvidal/streetball/internal/user"
	"gorm.io/gorm"
)

type Court struct {
	gorm.Model
	Name      string     `gorm:"not null" json:"name"`
	Lat       float64    `gorm:"type:decimal(10,8);not null" json:"lat"`
	Lng       float64    `gorm:"type:decimal(11,8);not null" json:"lng"`
	Address   string     `json:"address,omitempty"`
	Image     string     `json:"image,omitempty"`
	Rating    int        `gorm:"default:3;check:rating >= 1 AND rating <= 5" json:"rating"`
	Lighting  bool       `gorm:"default:false" json:"lighting"`
	CreatedBy uint       `gorm:"index;not null" json:"created_by"`
	Creator   *user.User `gorm:"foreignKey:CreatedBy" json:"creator,omitempty"`
}

type CourtInput struct {
	Name string `json:"name" binding:"required" example:"Parque del Retiro"`
	// Pointers so that 0 (equator, prime meridian) is a valid coordinate.
	Lat      *float64 `json:"lat" binding:"required,min=-90,max=90" example:"40.415300"`
	Lng      *float64 `json:"lng" binding:"required,min=-180,max=180" example:"-3.684400"`
	Address  string  `json:"address,omitempty" example:"Plaza de la Independencia, 7"`
	Image    string  `json:"image,omitempty"`
	Rating   *int    `json:"rating,omitempty" binding:"omitempty,min=1,max=5" example:"4"`
	Lighting bool    `json:"lighting,omitempty"`
}
