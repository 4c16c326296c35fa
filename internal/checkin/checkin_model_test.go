package checkin

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResolveFinalCount(t *testing.T) {
	now := time.Now()
	live := func(courtID uint, count int) *Checkin {
		return &Checkin{
			CourtID:     courtID,
			PeopleCount: count,
			ExpiresAt:   now.Add(time.Hour),
		}
	}
	expired := func(courtID uint, count int) *Checkin {
		return &Checkin{
			CourtID:     courtID,
			PeopleCount: count,
			ExpiresAt:   now.Add(-time.Minute),
		}
	}

	t.Run("no previous claim resets to the new count", func(t *testing.T) {
		assert.Equal(t, 3, resolveFinalCount(nil, 1, 3, now))
	})

	t.Run("live claim at the same court accumulates", func(t *testing.T) {
		assert.Equal(t, 5, resolveFinalCount(live(1, 2), 1, 3, now))
	})

	t.Run("live claim at a different court resets", func(t *testing.T) {
		assert.Equal(t, 3, resolveFinalCount(live(2, 4), 1, 3, now))
	})

	t.Run("expired claim never accumulates", func(t *testing.T) {
		assert.Equal(t, 3, resolveFinalCount(expired(1, 4), 1, 3, now))
	})
}

func TestCheckinIsLive(t *testing.T) {
	now := time.Now()

	c := Checkin{ExpiresAt: now.Add(time.Second)}
	assert.True(t, c.IsLive(now))

	c = Checkin{ExpiresAt: now}
	assert.False(t, c.IsLive(now))

	c = Checkin{ExpiresAt: now.Add(-CheckinDuration)}
	assert.False(t, c.IsLive(now))
}
