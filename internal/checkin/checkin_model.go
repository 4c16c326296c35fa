package checkin

import (
	"time"

	"github.com/carlosvidal/streetball/internal/court"
	"github.com/carlosvidal/streetball/internal/user"
	"gorm.io/gorm"
)

// CheckinDuration is how long a presence claim stays live.
const CheckinDuration = 2 * time.Hour

// Checkin is a time-bounded claim that a user (plus companions) is present at
// a court. At most one live row exists per user; the write path replaces all
// of the user's rows, and reads filter on ExpiresAt.
type Checkin struct {
	gorm.Model
	UserID      uint         `gorm:"index;not null" json:"user_id"`
	User        *user.User   `gorm:"foreignKey:UserID" json:"user,omitempty"`
	CourtID     uint         `gorm:"index;not null" json:"court_id"`
	Court       *court.Court `gorm:"foreignKey:CourtID" json:"court,omitempty"`
	PeopleCount int          `gorm:"default:1;not null" json:"people_count"`
	ExpiresAt   time.Time    `gorm:"index;not null" json:"expires_at"`
}

// IsLive reports whether the claim has not yet expired.
func (c *Checkin) IsLive(now time.Time) bool {
	return c.ExpiresAt.After(now)
}

type CheckinInput struct {
	CourtID uint `json:"court_id" binding:"required" example:"1"`
	Count   *int `json:"count,omitempty" binding:"omitempty,min=1,max=10" example:"3"`
}

// resolveFinalCount applies the re-check-in rule: a live claim at the same
// court accumulates, anything else (no claim, expired claim, different court)
// resets to the new count.
func resolveFinalCount(previous *Checkin, courtID uint, count int, now time.Time) int {
	if previous != nil && previous.IsLive(now) && previous.CourtID == courtID {
		return count + previous.PeopleCount
	}
	return count
}
