package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/stagemed/stagemed/internal/app/models/dto"
	"github.com/stagemed/stagemed/internal/app/services"
	"github.com/stagemed/stagemed/internal/middleware"
)

// DeanController handles the dean administration endpoints
type DeanController struct {
	deanService *services.DeanService
	logger      zerolog.Logger
}

// NewDeanController creates a new DeanController
func NewDeanController(deanService *services.DeanService, logger zerolog.Logger) *DeanController {
	return &DeanController{
		deanService: deanService,
		logger:      logger,
	}
}

// GetDashboard returns the dean dashboard
// @Summary Dean dashboard
// @Tags dean
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.DeanDashboardResponse}
// @Router /dean/dashboard [get]
func (c *DeanController) GetDashboard(ctx *gin.Context) {
	dashboard, err := c.deanService.GetDashboard(ctx.Request.Context(), middleware.GetUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dashboard))
}

// ListUsers returns users filtered by role and email search
// @Summary List users
// @Tags dean
// @Produce json
// @Security BearerAuth
// @Param role query string false "Role filter"
// @Param search query string false "Email search"
// @Success 200 {object} dto.APIResponse
// @Router /dean/users [get]
func (c *DeanController) ListUsers(ctx *gin.Context) {
	users, err := c.deanService.ListUsers(ctx.Request.Context(), ctx.Query("role"), ctx.Query("search"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(users))
}

// CreateUser creates a user with its role profile
// @Summary Create a user
// @Description Creates an account for any role, mails the initial credentials and forces a password change on first login
// @Tags dean
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateUserRequest true "User"
// @Success 201 {object} dto.APIResponse
// @Failure 400 {object} dto.APIResponse
// @Failure 409 {object} dto.APIResponse "Duplicate email, matricule or license"
// @Router /dean/users [post]
func (c *DeanController) CreateUser(ctx *gin.Context) {
	var req dto.CreateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Email, mot de passe, rôle, prénom et nom requis"))
		return
	}

	user, err := c.deanService.CreateUser(ctx.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("userId", user.ID).Str("role", string(user.Role)).Msg("User created")

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.NewUserResponse(user)))
}

// ToggleUserStatus flips a user's activation state
// @Summary Enable or disable a user
// @Tags dean
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} dto.APIResponse{data=dto.ToggleStatusResponse}
// @Failure 404 {object} dto.APIResponse
// @Router /dean/users/{id}/toggle-status [post]
func (c *DeanController) ToggleUserStatus(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	isActive, err := c.deanService.ToggleUserStatus(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	message := "Utilisateur désactivé avec succès"
	if isActive {
		message = "Utilisateur activé avec succès"
	}

	ctx.JSON(http.StatusOK, &dto.APIResponse{
		Status:  dto.StatusSuccess,
		Message: message,
		Data:    dto.ToggleStatusResponse{IsActive: isActive},
	})
}

// ResetPassword issues a temporary password for a user
// @Summary Reset a user's password
// @Tags dean
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} dto.APIResponse{data=dto.ResetPasswordResponse}
// @Failure 404 {object} dto.APIResponse
// @Router /dean/users/{id}/reset-password [post]
func (c *DeanController) ResetPassword(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	tempPassword, err := c.deanService.ResetPassword(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.ResetPasswordResponse{TempPassword: tempPassword}))
}

// ListEstablishments returns every establishment
// @Summary List establishments
// @Tags dean
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse
// @Router /dean/establishments [get]
func (c *DeanController) ListEstablishments(ctx *gin.Context) {
	establishments, err := c.deanService.ListEstablishments(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(establishments))
}

// CreateEstablishment creates an establishment
// @Summary Create an establishment
// @Tags dean
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateEstablishmentRequest true "Establishment"
// @Success 201 {object} dto.APIResponse
// @Failure 400 {object} dto.APIResponse
// @Router /dean/establishments [post]
func (c *DeanController) CreateEstablishment(ctx *gin.Context) {
	var req dto.CreateEstablishmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Nom de l'établissement requis"))
		return
	}

	establishment, err := c.deanService.CreateEstablishment(ctx.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(establishment))
}

// ListServices returns every service
// @Summary List services
// @Tags dean
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse
// @Router /dean/services [get]
func (c *DeanController) ListServices(ctx *gin.Context) {
	services, err := c.deanService.ListServices(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(services))
}

// CreateService creates a medical service
// @Summary Create a service
// @Tags dean
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateServiceRequest true "Service"
// @Success 201 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse "Establishment not found"
// @Failure 409 {object} dto.APIResponse "Duplicate code"
// @Router /dean/services [post]
func (c *DeanController) CreateService(ctx *gin.Context) {
	var req dto.CreateServiceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Nom, code et établissement requis"))
		return
	}

	service, err := c.deanService.CreateService(ctx.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(service))
}

// GetStatistics returns the platform statistics
// @Summary Platform statistics
// @Tags dean
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.StatisticsResponse}
// @Router /dean/statistics [get]
func (c *DeanController) GetStatistics(ctx *gin.Context) {
	statistics, err := c.deanService.GetStatistics(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(statistics))
}

// ExportReport returns the aggregate platform report
// @Summary Export a report
// @Tags dean
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.ExportReportResponse}
// @Router /dean/reports/export [get]
func (c *DeanController) ExportReport(ctx *gin.Context) {
	report, err := c.deanService.ExportReport(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(report))
}
