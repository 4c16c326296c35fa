package auth

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/carlosvidal/streetball/config"
	"github.com/carlosvidal/streetball/internal/user"
	"github.com/carlosvidal/streetball/pkg/token"
	"github.com/carlosvidal/streetball/pkg/utils"
	"github.com/carlosvidal/streetball/pkg/validator"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AuthController struct {
	repo   AuthRepository
	config *config.Config
}

func NewAuthController(repo AuthRepository, cfg *config.Config) *AuthController {
	return &AuthController{
		repo:   repo,
		config: cfg,
	}
}

// Register godoc
// @Summary      Register a new user
// @Description  Create a new user with username, email and password.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        user  body  RegisterRequest  true  "User registration details"
// @Success      201   {object} RegisterResponse "User registered successfully"
// @Failure      400   {object} utils.ErrorResponse "Validation error or email already in use"
// @Failure      500   {object} utils.ErrorResponse "Internal server error"
// @Router       /auth/register [post]
func (ac *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fields := make(map[string]interface{})
		for k, v := range validator.ParseError(err) {
			fields[k] = v
		}
		utils.ValidationErrorJSON(c, "Invalid input", fields)
		return
	}

	// Duplicate email responds 400, matching the public API contract.
	if _, err := ac.repo.GetUserByEmail(strings.ToLower(req.Email)); err == nil {
		utils.BadRequestJSON(c, "Email is already in use")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.InternalErrorJSON(c, "Database error: "+err.Error())
		return
	}
	if _, err := ac.repo.GetUserByUsername(req.Username); err == nil {
		utils.BadRequestJSON(c, "Username is already in use")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.InternalErrorJSON(c, "Database error: "+err.Error())
		return
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		utils.InternalErrorJSON(c, "Error hashing password")
		return
	}

	newUser := &user.User{
		Username: req.Username,
		Email:    strings.ToLower(req.Email),
		Password: hashedPassword,
		Position: req.Position,
		Avatar:   req.Avatar,
		Role:     user.RolePlayer,
	}

	if err := ac.repo.CreateUser(newUser); err != nil {
		log.Printf("CreateUser failed: %v", err)
		utils.InternalErrorJSON(c, "User creation failed: "+err.Error())
		return
	}

	c.JSON(http.StatusCreated, RegisterResponse{
		Message: "User registered successfully",
		UserID:  newUser.ID,
	})
}

// Login godoc
// @Summary      Login user
// @Description  Authenticate user with email and password.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        credentials  body  LoginRequest  true  "Login credentials"
// @Success      200   {object} AuthResponse "Login successful, returns token and user info"
// @Failure      400   {object} utils.ErrorResponse "Invalid input"
// @Failure      401   {object} utils.ErrorResponse "Invalid credentials"
// @Failure      404   {object} utils.ErrorResponse "User not found"
// @Failure      500   {object} utils.ErrorResponse "Internal server error"
// @Router       /auth/login [post]
func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestJSON(c, "Invalid input: "+err.Error())
		return
	}

	foundUser, err := ac.repo.GetUserByEmail(strings.ToLower(req.Email))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		utils.NotFoundJSON(c, "User")
		return
	}
	if err != nil {
		utils.InternalErrorJSON(c, "Database error: "+err.Error())
		return
	}

	if !utils.CheckPassword(foundUser.Password, req.Password) {
		utils.ErrorJSON(c, http.StatusUnauthorized, errors.New("Invalid credentials"))
		return
	}

	accessToken, err := token.GenerateJWT(foundUser.ID, foundUser.Username, ac.config.JWT.Secret, ac.config.JWT.ExpiryHours)
	if err != nil {
		utils.InternalErrorJSON(c, "Token generation failed: "+err.Error())
		return
	}

	c.JSON(http.StatusOK, AuthResponse{
		Token: accessToken,
		User:  FilterUserRecord(foundUser),
	})
}
