package event

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

type fakeEventRepo struct {
	events map[uint]*Event

	joinErr     error
	lastEventID uint
	lastUserID  uint
	lastCount   int
	deletedID   uint
	leftEventID uint
}

func newFakeEventRepo(events ...*Event) *fakeEventRepo {
	repo := &fakeEventRepo{events: make(map[uint]*Event)}
	for _, e := range events {
		repo.events[e.ID] = e
	}
	return repo
}

func (f *fakeEventRepo) CreateEvent(e *Event) error {
	e.ID = uint(len(f.events) + 1)
	f.events[e.ID] = e
	return nil
}

func (f *fakeEventRepo) GetEventByID(id uint) (*Event, error) {
	e, ok := f.events[id]
	if !ok {
		return nil, ErrEventNotFound
	}
	return e, nil
}

func (f *fakeEventRepo) GetAllEvents() ([]Event, error) {
	out := make([]Event, 0, len(f.events))
	for _, e := range f.events {
		out = append(out, *e)
	}
	return out, nil
}

func (f *fakeEventRepo) JoinEvent(eventID, userID uint, count int) error {
	if _, ok := f.events[eventID]; !ok {
		return ErrEventNotFound
	}
	if f.joinErr != nil {
		return f.joinErr
	}
	f.lastEventID = eventID
	f.lastUserID = userID
	f.lastCount = count
	return nil
}

func (f *fakeEventRepo) LeaveEvent(eventID, userID uint) error {
	e, ok := f.events[eventID]
	if !ok {
		return ErrParticipationNotFound
	}
	for i, p := range e.Participants {
		if p.UserID == userID {
			e.Participants = append(e.Participants[:i], e.Participants[i+1:]...)
			f.leftEventID = eventID
			return nil
		}
	}
	return ErrParticipationNotFound
}

func (f *fakeEventRepo) DeleteEvent(eventID uint) error {
	delete(f.events, eventID)
	f.deletedID = eventID
	return nil
}

func newEventRouter(repo EventRepository, userID uint) *gin.Engine {
	gin.SetMode(gin.TestMode)
	controller := NewEventController(repo, &config.Config{})

	authStub := func(c *gin.Context) {
		c.Set(middleware.AuthUserIDKey, userID)
		c.Next()
	}

	r := gin.New()
	r.GET("/events", controller.GetAllEvents)
	r.POST("/events", authStub, controller.CreateEvent)
	r.POST("/events/:event_id/join", authStub, controller.JoinEvent)
	r.POST("/events/:event_id/leave", authStub, controller.LeaveEvent)
	r.DELETE("/events/:event_id", authStub, controller.DeleteEvent)
	r.DELETE("/admin/events/:event_id", authStub, controller.ForceDeleteEvent)
	return r
}

func TestCreateEventAppliesDefaults(t *testing.T) {
	repo := newFakeEventRepo()
	r := newEventRouter(repo, 5)

	body, _ := json.Marshal(gin.H{
		"title":    "Pickup 3x3",
		"date":     time.Now().Add(48 * time.Hour).Format(time.RFC3339),
		"court_id": 2,
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/events", bytes.NewReader(body))
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var created Event
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, TypePickup, created.Type)
	assert.Equal(t, DefaultMaxParticipants, created.MaxParticipants)
	assert.Equal(t, uint(5), created.CreatorID)
	assert.Empty(t, created.Participants, "creator must not be auto-joined")
}

func TestCreateEventRejectsUnknownType(t *testing.T) {
	repo := newFakeEventRepo()
	r := newEventRouter(repo, 5)

	body, _ := json.Marshal(gin.H{
		"title":    "Pickup 3x3",
		"date":     time.Now().Format(time.RFC3339),
		"court_id": 2,
		"type":     "scrimmage",
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/events", bytes.NewReader(body))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestJoinEventWithEmptyBodyJoinsAlone(t *testing.T) {
	e := &Event{Title: "Run it back", MaxParticipants: 10}
	e.ID = 1
	repo := newFakeEventRepo(e)
	r := newEventRouter(repo, 9)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/events/1/join", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(1), repo.lastEventID)
	assert.Equal(t, uint(9), repo.lastUserID)
	assert.Equal(t, 1, repo.lastCount)
}

func TestJoinEventWithCount(t *testing.T) {
	e := &Event{Title: "Run it back", MaxParticipants: 10}
	e.ID = 1
	repo := newFakeEventRepo(e)
	r := newEventRouter(repo, 9)

	body, _ := json.Marshal(gin.H{"count": 3})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/events/1/join", bytes.NewReader(body))
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 3, repo.lastCount)
}

func TestJoinEventNotFound(t *testing.T) {
	repo := newFakeEventRepo()
	r := newEventRouter(repo, 9)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/events/42/join", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestJoinEventFull(t *testing.T) {
	e := &Event{Title: "Run it back", MaxParticipants: 2}
	e.ID = 1
	repo := newFakeEventRepo(e)
	repo.joinErr = ErrEventFull
	r := newEventRouter(repo, 9)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/events/1/join", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "event is full")
}

func TestLeaveEvent(t *testing.T) {
	e := &Event{Title: "Run it back", MaxParticipants: 10,
		Participants: []EventParticipant{{EventID: 1, UserID: 9, Count: 4}}}
	e.ID = 1
	repo := newFakeEventRepo(e)
	r := newEventRouter(repo, 9)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/events/1/leave", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, e.Participants)
}

func TestLeaveEventWithoutParticipation(t *testing.T) {
	e := &Event{Title: "Run it back", MaxParticipants: 10}
	e.ID = 1
	repo := newFakeEventRepo(e)
	r := newEventRouter(repo, 9)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/events/1/leave", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteEventByCreator(t *testing.T) {
	e := &Event{Title: "Run it back", CreatorID: 9}
	e.ID = 1
	repo := newFakeEventRepo(e)
	r := newEventRouter(repo, 9)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/events/1", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(1), repo.deletedID)
}

func TestDeleteEventByNonCreator(t *testing.T) {
	e := &Event{Title: "Run it back", CreatorID: 3}
	e.ID = 1
	repo := newFakeEventRepo(e)
	r := newEventRouter(repo, 9)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/events/1", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusForbidden, w.Code)
	_, stillThere := repo.events[1]
	assert.True(t, stillThere)
}

func TestForceDeleteEventIgnoresOwnership(t *testing.T) {
	e := &Event{Title: "Run it back", CreatorID: 3}
	e.ID = 1
	repo := newFakeEventRepo(e)
	r := newEventRouter(repo, 9)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/admin/events/1", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(1), repo.deletedID)
}

func TestForceDeleteEventNotFound(t *testing.T) {
	repo := newFakeEventRepo()
	r := newEventRouter(repo, 9)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/admin/events/42", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
