package checkin

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/carlosvidal/streetball/config"
	"github.com/carlosvidal/streetball/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCheckinRepo struct {
	active []Checkin

	lastUserID  uint
	lastCourtID uint
	lastCount   int
	err         error
}

func (f *fakeCheckinRepo) PerformCheckIn(userID, courtID uint, count int, now time.Time) (*Checkin, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.lastUserID = userID
	f.lastCourtID = courtID
	f.lastCount = count
	return &Checkin{
		UserID:      userID,
		CourtID:     courtID,
		PeopleCount: count,
		ExpiresAt:   now.Add(CheckinDuration),
	}, nil
}

func (f *fakeCheckinRepo) GetActiveCheckins(now time.Time) ([]Checkin, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.active, nil
}

func newCheckinRouter(repo CheckinRepository, userID uint) *gin.Engine {
	gin.SetMode(gin.TestMode)
	controller := NewCheckinController(repo, &config.Config{})

	r := gin.New()
	r.GET("/checkins", controller.GetActiveCheckins)
	r.POST("/checkins", func(c *gin.Context) {
		c.Set(middleware.AuthUserIDKey, userID)
		c.Next()
	}, controller.DoCheckin)
	return r
}

func TestDoCheckinCreatesClaim(t *testing.T) {
	repo := &fakeCheckinRepo{}
	r := newCheckinRouter(repo, 7)

	body, _ := json.Marshal(gin.H{"court_id": 3, "count": 4})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/checkins", bytes.NewReader(body))
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, uint(7), repo.lastUserID)
	assert.Equal(t, uint(3), repo.lastCourtID)
	assert.Equal(t, 4, repo.lastCount)
}

func TestDoCheckinDefaultsCountToOne(t *testing.T) {
	repo := &fakeCheckinRepo{}
	r := newCheckinRouter(repo, 7)

	body, _ := json.Marshal(gin.H{"court_id": 3})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/checkins", bytes.NewReader(body))
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 1, repo.lastCount)
}

func TestDoCheckinRequiresCourtID(t *testing.T) {
	repo := &fakeCheckinRepo{}
	r := newCheckinRouter(repo, 7)

	body, _ := json.Marshal(gin.H{"count": 2})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/checkins", bytes.NewReader(body))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDoCheckinRejectsCountAboveCap(t *testing.T) {
	repo := &fakeCheckinRepo{}
	r := newCheckinRouter(repo, 7)

	body, _ := json.Marshal(gin.H{"court_id": 3, "count": 11})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/checkins", bytes.NewReader(body))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetActiveCheckins(t *testing.T) {
	repo := &fakeCheckinRepo{
		active: []Checkin{
			{UserID: 1, CourtID: 2, PeopleCount: 3, ExpiresAt: time.Now().Add(time.Hour)},
			{UserID: 4, CourtID: 2, PeopleCount: 2, ExpiresAt: time.Now().Add(time.Hour)},
		},
	}
	r := newCheckinRouter(repo, 7)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/checkins", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var got []Checkin
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 2)

	// Occupancy per court is the caller's aggregation over the flat list.
	occupancy := 0
	for _, c := range got {
		if c.CourtID == 2 {
			occupancy += c.PeopleCount
		}
	}
	assert.Equal(t, 5, occupancy)
}
