package checkin

import (
	"net/http"
	"time"

	"github.com/carlosvidal/streetball/config"
	"github.com/carlosvidal/streetball/internal/middleware"
	"github.com/carlosvidal/streetball/pkg/utils"
	"github.com/gin-gonic/gin"
)

// CheckinController handles presence-related HTTP requests
type CheckinController struct {
	repo      CheckinRepository
	appConfig *config.Config
}

func NewCheckinController(repo CheckinRepository, appConfig *config.Config) *CheckinController {
	return &CheckinController{
		repo:      repo,
		appConfig: appConfig,
	}
}

// DoCheckin godoc
// @Summary Check in at a court
// @Description Register live presence at a court for the next two hours. A
// @Description repeated check-in at the same court adds to the previous
// @Description headcount; checking in at a different court resets it.
// @Tags checkins
// @Accept json
// @Produce json
// @Param checkin body CheckinInput true "Check-in information"
// @Success 201 {object} utils.SuccessResponse{data=Checkin} "Check-in registered"
// @Failure 400 {object} utils.ErrorResponse "Invalid input"
// @Failure 401 {object} utils.ErrorResponse "Unauthorized"
// @Failure 500 {object} utils.ErrorResponse "Internal server error"
// @Router /checkins [post]
// @Security Bearer
func (cc *CheckinController) DoCheckin(ctx *gin.Context) {
	var input CheckinInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
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

	created, err := cc.repo.PerformCheckIn(userID, input.CourtID, count, time.Now())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to check in: " + err.Error()})
		return
	}

	utils.SuccessJSON(ctx, http.StatusCreated, "Check-in registered", created)
}

// GetActiveCheckins godoc
// @Summary List active check-ins
// @Description Get every check-in that has not yet expired, with minimal user
// @Description and court identity. Occupancy per court is the caller's sum of
// @Description people_count over this list.
// @Tags checkins
// @Produce json
// @Success 200 {array} Checkin "List of active check-ins"
// @Failure 500 {object} utils.ErrorResponse "Internal server error"
// @Router /checkins [get]
func (cc *CheckinController) GetActiveCheckins(ctx *gin.Context) {
	checkins, err := cc.repo.GetActiveCheckins(time.Now())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to get checkins: " + err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, checkins)
}
