package court

import (
	"net/http"
	"strconv"

	"github.com/carlosvidal/streetball/config"
	"github.com/carlosvidal/streetball/internal/middleware"
	"github.com/carlosvidal/streetball/pkg/utils"
	"github.com/gin-gonic/gin"
)

// CourtController handles court-related HTTP requests
type CourtController struct {
	repo      CourtRepository
	appConfig *config.Config
}

// NewCourtController creates a new court controller
func NewCourtController(repo CourtRepository, appConfig *config.Config) *CourtController {
	return &CourtController{
		repo:      repo,
		appConfig: appConfig,
	}
}

// CreateCourt godoc
// @Summary Create a new court
// @Description Register a new basketball court on the map
// @Tags courts
// @Accept json
// @Produce json
// @Param court body CourtInput true "Court information"
// @Success 201 {object} Court "Court created successfully"
// @Failure 400 {object} utils.ErrorResponse "Invalid input"
// @Failure 401 {object} utils.ErrorResponse "Unauthorized"
// @Failure 500 {object} utils.ErrorResponse "Internal server error"
// @Router /courts [post]
// @Security Bearer
func (c *CourtController) CreateCourt(ctx *gin.Context) {
	var input CourtInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, utils.ErrorResponse{Error: err.Error()})
		return
	}

	userID, err := middleware.GetUserIDFromContext(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, utils.ErrorResponse{Error: "unauthorized"})
		return
	}

	court := &Court{
		Name:      input.Name,
		Lat:       *input.Lat,
		Lng:       *input.Lng,
		Address:   input.Address,
		Image:     input.Image,
		Lighting:  input.Lighting,
		CreatedBy: userID,
	}
	if input.Rating != nil {
		court.Rating = *input.Rating
	} else {
		court.Rating = 3
	}

	if err := c.repo.CreateCourt(court); err != nil {
		ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to create court: " + err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, court)
}

// GetCourtByID godoc
// @Summary Get court by ID
// @Description Get detailed information about a court by its ID
// @Tags courts
// @Produce json
// @Param court_id path int true "Court ID"
// @Success 200 {object} Court "Court details"
// @Failure 400 {object} utils.ErrorResponse "Invalid court ID"
// @Failure 404 {object} utils.ErrorResponse "Court not found"
// @Failure 500 {object} utils.ErrorResponse "Internal server error"
// @Router /courts/{court_id} [get]
func (c *CourtController) GetCourtByID(ctx *gin.Context) {
	courtID, err := strconv.ParseUint(ctx.Param("court_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, utils.ErrorResponse{Error: "invalid court ID"})
		return
	}

	court, err := c.repo.GetCourtByID(uint(courtID))
	if err != nil {
		if err.Error() == "court not found" {
			ctx.JSON(http.StatusNotFound, utils.ErrorResponse{Error: "court not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to get court: " + err.Error()})
		}
		return
	}

	ctx.JSON(http.StatusOK, court)
}

// GetAllCourts godoc
// @Summary Get all courts
// @Description Get the full list of courts with their creator
// @Tags courts
// @Produce json
// @Success 200 {array} Court "List of courts"
// @Failure 500 {object} utils.ErrorResponse "Internal server error"
// @Router /courts [get]
func (c *CourtController) GetAllCourts(ctx *gin.Context) {
	courts, err := c.repo.GetAllCourts()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to get courts: " + err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, courts)
}
