package court

import (
	"errors"

	"gorm.io/gorm"
)

type CourtRepository interface {
	CreateCourt(c *Court) error
	GetCourtByID(id uint) (*Court, error)
	GetAllCourts() ([]Court, error)
}

type courtRepository struct {
	db *gorm.DB
}

func NewCourtRepository(db *gorm.DB) CourtRepository {
	return &courtRepository{db: db}
}

func (r *courtRepository) CreateCourt(c *Court) error {
	return r.db.Create(c).Error
}

func (r *courtRepository) GetCourtByID(id uint) (*Court, error) {
	var c Court
	err := r.db.
		Preload("Creator", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "username")
		}).
		First(&c, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("court not found")
		}
		return nil, err
	}
	return &c, nil
}

func (r *courtRepository) GetAllCourts() ([]Court, error) {
	var courts []Court
	err := r.db.
		Preload("Creator", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "username")
		}).
		Order("created_at ASC").
		Find(&courts).Error
	return courts, err
}
