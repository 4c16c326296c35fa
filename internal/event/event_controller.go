package event

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/carlosvidal/streetball/config"
	"github.com/carlosvidal/streetball/internal/middleware"
	"github.com/carlosvidal/streetball/pkg/utils"
	"github.com/gin-gonic/gin"
)

// EventController handles event-related HTTP requests
type EventController struct {
	repo      EventRepository
	appConfig *config.Config
}

// NewEventController creates a new event controller
func NewEventController(repo EventRepository, appConfig *config.Config) *EventController {
	return &EventController{
		repo:      repo,
		appConfig: appConfig,
	}
}

// CreateEvent godoc
// @Summary Create a new event
// @Description Create a pickup, tournament or friendly event at a court. The
// @Description creator is not added as a participant automatically.
// @Tags events
// @Accept json
// @Produce json
// @Param event body EventInput true "Event information"
// @Success 201 {object} Event "Event created successfully"
// @Failure 400 {object} utils.ErrorResponse "Invalid input"
// @Failure 401 {object} utils.ErrorResponse "Unauthorized"
// @Failure 500 {object} utils.ErrorResponse "Internal server error"
// @Router /events [post]
// @Security Bearer
func (ec *EventController) CreateEvent(ctx *gin.Context) {
	var input EventInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, utils.ErrorResponse{Error: err.Error()})
		return
	}

	userID, err := middleware.GetUserIDFromContext(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, utils.ErrorResponse{Error: "unauthorized"})
		return
	}

	eventType := TypePickup
	if input.Type != "" {
		eventType = EventType(input.Type)
	}

	maxParticipants := DefaultMaxParticipants
	if input.MaxParticipants != nil {
		maxParticipants = *input.MaxParticipants
	}

	event := &Event{
		Title:           input.Title,
		Description:     input.Description,
		Date:            input.Date,
		Type:            eventType,
		MaxParticipants: maxParticipants,
		CourtID:         input.CourtID,
		CreatorID:       userID,
	}

	if err := ec.repo.CreateEvent(event); err != nil {
		ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to create event: " + err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, event)
}

// GetAllEvents godoc
// @Summary Get all events
// @Description Get every event with creator, court and the participant list,
// @Description each participant annotated with the number of people it brings.
// @Tags events
// @Produce json
// @Success 200 {array} Event "List of events"
// @Failure 500 {object} utils.ErrorResponse "Internal server error"
// @Router /events [get]
func (ec *EventController) GetAllEvents(ctx *gin.Context) {
	events, err := ec.repo.GetAllEvents()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to get events: " + err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, events)
}

// JoinEvent godoc
// @Summary Join an event
// @Description Join an event, optionally bringing extra people. Repeated
// @Description joins add to the existing count. The join is rejected once the
// @Description event's aggregate headcount would exceed max_participants.
// @Tags events
// @Accept json
// @Produce json
// @Param event_id path int true "Event ID"
// @Param join body JoinEventInput false "Join information"
// @Success 200 {object} utils.SuccessResponse "Participation registered"
// @Failure 400 {object} utils.ErrorResponse "Invalid input"
// @Failure 401 {object} utils.ErrorResponse "Unauthorized"
// @Failure 404 {object} utils.ErrorResponse "Event not found"
// @Failure 409 {object} utils.ErrorResponse "Event is full"
// @Failure 500 {object} utils.ErrorResponse "Internal server error"
// @Router /events/{event_id}/join [post]
// @Security Bearer
func (ec *EventController) JoinEvent(ctx *gin.Context) {
	eventID, err := strconv.ParseUint(ctx.Param("event_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, utils.ErrorResponse{Error: "invalid event ID"})
		return
	}

	// An absent body means "join alone"; only malformed JSON is rejected.
	var input JoinEventInput
	if err := ctx.ShouldBindJSON(&input); err != nil && !errors.Is(err, io.EOF) {
		ctx.JSON(http.StatusBadRequest, utils.ErrorResponse{Error: err.Error()})
		return
	}

	userID, err := middleware.GetUserIDFromContext(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, utils.ErrorResponse{Error: "unauthorized"})
		return
	}

	count := 1
	if input.Count != nil {
		count = *input.Count
	}

	if err := ec.repo.JoinEvent(uint(eventID), userID, count); err != nil {
		switch {
		case errors.Is(err, ErrEventNotFound):
			ctx.JSON(http.StatusNotFound, utils.ErrorResponse{Error: "event not found"})
		case errors.Is(err, ErrEventFull):
			ctx.JSON(http.StatusConflict, utils.ErrorResponse{Error: "event is full"})
		default:
			ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to join event: " + err.Error()})
		}
		return
	}

	utils.SuccessJSON(ctx, http.StatusOK, "Participation registered", nil)
}

// LeaveEvent godoc
// @Summary Leave an event
// @Description Remove the caller's participation row entirely, regardless of
// @Description how many people it brought.
// @Tags events
// @Produce json
// @Param event_id path int true "Event ID"
// @Success 200 {object} utils.SuccessResponse "Left the event"
// @Failure 400 {object} utils.ErrorResponse "Invalid event ID"
// @Failure 401 {object} utils.ErrorResponse "Unauthorized"
// @Failure 404 {object} utils.ErrorResponse "Participation not found"
// @Failure 500 {object} utils.ErrorResponse "Internal server error"
// @Router /events/{event_id}/leave [post]
// @Security Bearer
func (ec *EventController) LeaveEvent(ctx *gin.Context) {
	eventID, err := strconv.ParseUint(ctx.Param("event_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, utils.ErrorResponse{Error: "invalid event ID"})
		return
	}

	userID, err := middleware.GetUserIDFromContext(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, utils.ErrorResponse{Error: "unauthorized"})
		return
	}

	if err := ec.repo.LeaveEvent(uint(eventID), userID); err != nil {
		if errors.Is(err, ErrParticipationNotFound) {
			ctx.JSON(http.StatusNotFound, utils.ErrorResponse{Error: "participation not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to leave event: " + err.Error()})
		}
		return
	}

	utils.SuccessJSON(ctx, http.StatusOK, "Left the event", nil)
}

// DeleteEvent godoc
// @Summary Delete an event
// @Description Delete an event and its participations. Only the creator may
// @Description delete through this endpoint.
// @Tags events
// @Produce json
// @Param event_id path int true "Event ID"
// @Success 200 {object} utils.SuccessResponse "Event deleted"
// @Failure 400 {object} utils.ErrorResponse "Invalid event ID"
// @Failure 401 {object} utils.ErrorResponse "Unauthorized"
// @Failure 403 {object} utils.ErrorResponse "Not the event creator"
// @Failure 404 {object} utils.ErrorResponse "Event not found"
// @Failure 500 {object} utils.ErrorResponse "Internal server error"
// @Router /events/{event_id} [delete]
// @Security Bearer
func (ec *EventController) DeleteEvent(ctx *gin.Context) {
	eventID, err := strconv.ParseUint(ctx.Param("event_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, utils.ErrorResponse{Error: "invalid event ID"})
		return
	}

	userID, err := middleware.GetUserIDFromContext(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, utils.ErrorResponse{Error: "unauthorized"})
		return
	}

	event, err := ec.repo.GetEventByID(uint(eventID))
	if err != nil {
		if errors.Is(err, ErrEventNotFound) {
			ctx.JSON(http.StatusNotFound, utils.ErrorResponse{Error: "event not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to get event: " + err.Error()})
		}
		return
	}

	if event.CreatorID != userID {
		ctx.JSON(http.StatusForbidden, utils.ErrorResponse{Error: "you are not authorized to delete this event"})
		return
	}

	if err := ec.repo.DeleteEvent(uint(eventID)); err != nil {
		ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to delete event: " + err.Error()})
		return
	}

	utils.SuccessJSON(ctx, http.StatusOK, "Event deleted", nil)
}

// ForceDeleteEvent godoc
// @Summary Delete any event (admin)
// @Description Delete any event regardless of ownership. Guarded by the
// @Description server-side admin role check.
// @Tags events
// @Produce json
// @Param event_id path int true "Event ID"
// @Success 200 {object} utils.SuccessResponse "Event deleted"
// @Failure 400 {object} utils.ErrorResponse "Invalid event ID"
// @Failure 401 {object} utils.ErrorResponse "Unauthorized"
// @Failure 403 {object} utils.ErrorResponse "Not an admin"
// @Failure 404 {object} utils.ErrorResponse "Event not found"
// @Failure 500 {object} utils.ErrorResponse "Internal server error"
// @Router /admin/events/{event_id} [delete]
// @Security Bearer
func (ec *EventController) ForceDeleteEvent(ctx *gin.Context) {
	eventID, err := strconv.ParseUint(ctx.Param("event_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, utils.ErrorResponse{Error: "invalid event ID"})
		return
	}

	if _, err := ec.repo.GetEventByID(uint(eventID)); err != nil {
		if errors.Is(err, ErrEventNotFound) {
			ctx.JSON(http.StatusNotFound, utils.ErrorResponse{Error: "event not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to get event: " + err.Error()})
		}
		return
	}

	if err := ec.repo.DeleteEvent(uint(eventID)); err != nil {
		ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to delete event: " + err.Error()})
		return
	}

	utils.SuccessJSON(ctx, http.StatusOK, "Event deleted", nil)
}
