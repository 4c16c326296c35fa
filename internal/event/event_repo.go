package event

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrEventNotFound         = errors.New("event not found")
	ErrEventFull             = errors.New("event is full")
	ErrParticipationNotFound = errors.New("participation not found")
)

type EventRepository interface {
	CreateEvent(e *Event) error
	GetEventByID(id uint) (*Event, error)
	GetAllEvents() ([]Event, error)
	// JoinEvent atomically registers `count` extra people for (eventID,
	// userID), creating the participation row or adding to it, and rejects
	// with ErrEventFull when the event's aggregate headcount would exceed
	// max_participants.
	JoinEvent(eventID, userID uint, count int) error
	LeaveEvent(eventID, userID uint) error
	DeleteEvent(eventID uint) error
}

type eventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) CreateEvent(e *Event) error {
	return r.db.Create(e).Error
}

func (r *eventRepository) GetEventByID(id uint) (*Event, error) {
	var e Event
	err := r.db.
		Preload("Creator", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "username", "avatar")
		}).
		Preload("Court", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name")
		}).
		Preload("Participants.User", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "username", "avatar")
		}).
		First(&e, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return &e, nil
}

func (r *eventRepository) GetAllEvents() ([]Event, error) {
	var events []Event
	err := r.db.
		Preload("Creator", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "username", "avatar")
		}).
		Preload("Court", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name")
		}).
		Preload("Participants.User", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "username", "avatar")
		}).
		Order("date ASC").
		Find(&events).Error
	return events, err
}

func (r *eventRepository) JoinEvent(eventID, userID uint, count int) error {
	// The event row is locked for the whole transaction so that concurrent
	// joins near capacity serialize instead of racing past the limit.
	return r.db.Transaction(func(tx *gorm.DB) error {
		var e Event
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&e, eventID).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrEventNotFound
			}
			return err
		}

		var currentTotal int64
		err = tx.Model(&EventParticipant{}).
			Where("event_id = ?", eventID).
			Select("COALESCE(SUM(count), 0)").
			Scan(&currentTotal).Error
		if err != nil {
			return err
		}

		if wouldExceedCapacity(int(currentTotal), count, e.MaxParticipants) {
			return ErrEventFull
		}

		var participation EventParticipant
		err = tx.Where("event_id = ? AND user_id = ?", eventID, userID).
			First(&participation).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			participation = EventParticipant{
				EventID: eventID,
				UserID:  userID,
				Count:   count,
			}
			return tx.Create(&participation).Error
		case err != nil:
			return err
		default:
			// Repeated joins accumulate, mirroring check-in semantics.
			return tx.Model(&participation).
				Update("count", gorm.Expr("count + ?", count)).Error
		}
	})
}

func (r *eventRepository) LeaveEvent(eventID, userID uint) error {
	// Leaving removes the whole row, it never decrements.
	result := r.db.Unscoped().
		Where("event_id = ? AND user_id = ?", eventID, userID).
		Delete(&EventParticipant{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrParticipationNotFound
	}
	return nil
}

func (r *eventRepository) DeleteEvent(eventID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("event_id = ?", eventID).Delete(&EventParticipant{}).Error; err != nil {
			return err
		}
		return tx.Delete(&Event{}, eventID).Error
	})
}
