package user

import "gorm.io/gorm"

const (
	RolePlayer = "player"
	RoleAdmin  = "admin"
)

type User struct {
	gorm.Model
	Username string `gorm:"unique;not null" json:"username"`
	Email    string `gorm:"unique;not null" json:"email"`
	Password string `json:"-"`
	Position string `json:"position,omitempty"` // e.g. "base", "alero", "pivot"
	Avatar   string `json:"avatar,omitempty"`
	Role     string `gorm:"type:VARCHAR(20);not null;default:'player'" json:"role"`
}
