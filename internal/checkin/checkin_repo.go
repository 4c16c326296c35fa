package checkin

import (
	"errors"
	"time"

	"github.com/carlosvidal/streetball/internal/user"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CheckinRepository interface {
	// PerformCheckIn atomically replaces all of the user's checkin rows with a
	// single fresh claim and returns it.
	PerformCheckIn(userID, courtID uint, count int, now time.Time) (*Checkin, error)
	GetActiveCheckins(now time.Time) ([]Checkin, error)
}

type checkinRepository struct {
	db *gorm.DB
}

func NewCheckinRepository(db *gorm.DB) CheckinRepository {
	return &checkinRepository{db: db}
}

func (r *checkinRepository) PerformCheckIn(userID, courtID uint, count int, now time.Time) (*Checkin, error) {
	var created *Checkin

	// The replace sequence serializes on the users row, not on the checkin
	// row: the checkin row is deleted mid-transaction (and a first check-in
	// has none at all), so a lock on it would not order concurrent replaces.
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var owner user.User
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("id").
			First(&owner, userID).Error
		if err != nil {
			return err
		}

		var previous Checkin
		havePrevious := true
		err = tx.
			Where("user_id = ? AND expires_at > ?", userID, now).
			First(&previous).Error
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			havePrevious = false
		}

		// Full replace: expired rows go too, not just the live claim.
		if err := tx.Unscoped().Where("user_id = ?", userID).Delete(&Checkin{}).Error; err != nil {
			return err
		}

		var prev *Checkin
		if havePrevious {
			prev = &previous
		}

		fresh := &Checkin{
			UserID:      userID,
			CourtID:     courtID,
			PeopleCount: resolveFinalCount(prev, courtID, count, now),
			ExpiresAt:   now.Add(CheckinDuration),
		}
		if err := tx.Create(fresh).Error; err != nil {
			return err
		}

		created = fresh
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (r *checkinRepository) GetActiveCheckins(now time.Time) ([]Checkin, error) {
	var checkins []Checkin
	err := r.db.
		Where("expires_at > ?", now).
		Preload("User", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "username", "avatar", "position")
		}).
		Preload("Court", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name")
		}).
		Find(&checkins).Error
	return checkins, err
}
