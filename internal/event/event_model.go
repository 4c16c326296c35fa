package event

import (
	"time"

	"github.com/carlosvidal/streetball/internal/court"
	"github.com/carlosvidal/streetball/internal/user"
	"gorm.io/gorm"
)

type EventType string

const (
	TypePickup     EventType = "pickup"
	TypeTournament EventType = "tournament"
	TypeFriendly   EventType = "friendly"
)

const DefaultMaxParticipants = 10

// Event lifecycle is create → join/leave freely → delete by creator (or
// admin). Past events stay listed; "active" badges are a client concern.
type Event struct {
	gorm.Model
	Title           string             `gorm:"not null" json:"title"`
	Description     string             `gorm:"type:text" json:"description,omitempty"`
	Date            time.Time          `gorm:"index;not null" json:"date"`
	Type            EventType          `gorm:"type:VARCHAR(20);not null;default:'pickup'" json:"type"`
	MaxParticipants int                `gorm:"not null;default:10" json:"max_participants"`
	CreatorID       uint               `gorm:"index;not null" json:"creator_id"`
	Creator         *user.User         `gorm:"foreignKey:CreatorID" json:"creator,omitempty"`
	CourtID         uint               `gorm:"index;not null" json:"court_id"`
	Court           *court.Court       `gorm:"foreignKey:CourtID" json:"court,omitempty"`
	Participants    []EventParticipant `gorm:"foreignKey:EventID" json:"participants,omitempty"`
}

// EventParticipant is the (event, user) join row; Count is how many people
// that participant brings. One row per pair, repeated joins accumulate.
type EventParticipant struct {
	gorm.Model
	EventID uint       `gorm:"not null;uniqueIndex:idx_event_participant" json:"event_id"`
	UserID  uint       `gorm:"not null;uniqueIndex:idx_event_participant" json:"user_id"`
	User    *user.User `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Count   int        `gorm:"not null;default:1" json:"count"`
}

type EventInput struct {
	Title           string    `json:"title" binding:"required" example:"Pickup 3x3 en el Retiro"`
	Description     string    `json:"description,omitempty"`
	Date            time.Time `json:"date" binding:"required" example:"2026-09-05T18:00:00Z"`
	Type            string    `json:"type,omitempty" binding:"omitempty,oneof=pickup tournament friendly" example:"pickup"`
	CourtID         uint      `json:"court_id" binding:"required" example:"1"`
	MaxParticipants *int      `json:"max_participants,omitempty" binding:"omitempty,min=1" example:"10"`
}

type JoinEventInput struct {
	Count *int `json:"count,omitempty" binding:"omitempty,min=1" example:"2"`
}

// TotalParticipants is the aggregate headcount of an event, the sum of each
// participant's count. It is derived, never stored.
func (e *Event) TotalParticipants() int {
	total := 0
	for _, p := range e.Participants {
		total += p.Count
	}
	return total
}

// wouldExceedCapacity reports whether adding `count` people on top of the
// current total would push past the event's limit.
func wouldExceedCapacity(currentTotal, count, maxParticipants int) bool {
	return currentTotal+count > maxParticipants
}
