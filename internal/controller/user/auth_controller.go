package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"quizhub/internal/controller"
	"quizhub/internal/dto"
	"quizhub/internal/service"
)

type AuthController struct {
	authService service.AuthService
}

func NewAuthController(authService service.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Signup godoc
// @Summary Create a new account
// @Description Registers a user with the default role. Username and email must be unused.
// @Tags Auth
// @Accept json
// @Produce json
// @Param signup_data body dto.SignupRequest true "New account credentials"
// @Success 201 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse "Malformed payload"
// @Failure 409 {object} dto.ErrorResponse "Username or email taken"
// @Router /signup [post]
func (c *AuthController) Signup(ctx *gin.Context) {
	var req dto.SignupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	if err := c.authService.Signup(req); err != nil {
		log.Warn().Err(err).Str("username", req.Username).Msg("Signup failed")
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.MessageResponse{Message: "User created successfully!"})
}

// Login godoc
// @Summary Log in and open a session
// @Description Verifies credentials, records a login session and returns a signed session token.
// @Tags Auth
// @Accept json
// @Produce json
// @Param login_data body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Router /login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	resp, err := c.authService.Login(req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// Logout godoc
// @Summary Close the most recent open session
// @Tags Auth
// @Accept json
// @Produce json
// @Param logout_data body dto.LogoutRequest true "Username"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse "No open session"
// @Router /logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	var req dto.LogoutRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	if err := c.authService.Logout(req.Username); err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Logout successful!"})
}

// Profile godoc
// @Summary Get a user profile with quiz history
// @Tags Auth
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} dto.ProfileResponseDTO
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /profile/{username} [get]
func (c *AuthController) Profile(ctx *gin.Context) {
	profile, err := c.authService.Profile(ctx.Param("username"))
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, profile)
}
