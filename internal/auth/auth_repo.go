package auth

import (
	"github.com/carlosvidal/streetball/internal/user"
	"gorm.io/gorm"
)

type AuthRepository interface {
	CreateUser(u *user.User) error
	GetUserByEmail(email string) (*user.User, error)
	GetUserByUsername(username string) (*user.User, error)
	GetUserByID(id uint) (*user.User, error)
}

type authRepository struct {
	db *gorm.DB
}

func NewAuthRepository(db *gorm.DB) AuthRepository {
	return &authRepository{db: db}
}

func (r *authRepository) CreateUser(u *user.User) error {
	return r.db.Create(u).Error
}

func (r *authRepository) GetUserByEmail(email string) (*user.User, error) {
	var u user.User
	if err := r.db.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *authRepository) GetUserByUsername(username string) (*user.User, error) {
	var u user.User
	if err := r.db.Where("username = ?", username).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *authRepository) GetUserByID(id uint) (*user.User, error) {
	var u user.User
	if err := r.db.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}
