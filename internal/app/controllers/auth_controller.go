// Package controllers handles HTTP request handling
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/stagemed/stagemed/internal/app/models/dto"
	"github.com/stagemed/stagemed/internal/app/services"
	"github.com/stagemed/stagemed/internal/middleware"
)

// AuthController handles authentication related operations
type AuthController struct {
	authService *services.AuthService
	logger      zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *services.AuthService, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		logger:      logger,
	}
}

// Login authenticates a user
// @Summary Sign in
// @Description Authenticates a student by matricule or any other role by email, and returns a JWT
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.APIResponse "Invalid request format"
// @Failure 401 {object} dto.APIResponse "Wrong credentials or disabled account"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Email ou matricule et mot de passe requis"))
		return
	}
	if req.Email == "" && req.Matricule == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Email ou matricule et mot de passe requis"))
		return
	}

	user, token, err := c.authService.Login(ctx.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("userId", user.ID).Str("role", string(user.Role)).Msg("User logged in")

	// Cookie for the server-rendered pages; API clients use the token field
	ctx.SetCookie("jwt", token, int(c.authService.TokenExpiry().Seconds()), "/", "", false, true)

	ctx.JSON(http.StatusOK, dto.LoginResponse{
		Status: dto.StatusSuccess,
		Token:  token,
		Data:   dto.LoginedUser{User: dto.NewUserResponse(user)},
	})
}

// GetMe returns the authenticated user's role profile
// @Summary Current profile
// @Description Returns the role-specific profile of the authenticated user
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse
// @Failure 401 {object} dto.APIResponse
// @Router /auth/me [get]
func (c *AuthController) GetMe(ctx *gin.Context) {
	profile, err := c.authService.GetProfile(ctx.Request.Context(), middleware.GetUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(profile))
}

// Logout ends the session. The token itself stays valid until it expires;
// this clears the cookie used by the pages.
// @Summary Sign out
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse
// @Router /auth/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	ctx.SetCookie("jwt", "", -1, "/", "", false, true)
	ctx.JSON(http.StatusOK, dto.NewSuccessMessage("Déconnexion réussie"))
}

// ChangePassword replaces the authenticated user's password
// @Summary Change password
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ChangePasswordRequest true "Current and new password"
// @Success 200 {object} dto.APIResponse
// @Failure 401 {object} dto.APIResponse "Wrong current password"
// @Router /auth/change-password [post]
func (c *AuthController) ChangePassword(ctx *gin.Context) {
	var req dto.ChangePasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Le nouveau mot de passe doit contenir au moins 6 caractères"))
		return
	}

	if err := c.authService.ChangePassword(ctx.Request.Context(), middleware.GetUserID(ctx), req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessMessage("Mot de passe modifié avec succès"))
}
