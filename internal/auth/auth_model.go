package auth

import (
	"time"

	"github.com/carlosvidal/streetball/internal/user"
)

type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=30" example:"hoopsfan23"`
	Email    string `json:"email" binding:"required,email" example:"hoops@example.com"`
	Password string `json:"password" binding:"required,min=8,max=72" example:"password123"`
	Position string `json:"position,omitempty" example:"alero"`
	Avatar   string `json:"avatar,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"hoops@example.com"`
	Password string `json:"password" binding:"required" example:"password123"`
}

type RegisterResponse struct {
	Message string `json:"message"`
	UserID  uint   `json:"userId"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type UserResponse struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Position  string    `json:"position,omitempty"`
	Avatar    string    `json:"avatar,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func FilterUserRecord(u *user.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Position:  u.Position,
		Avatar:    u.Avatar,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
