package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/stagemed/stagemed/internal/app/models/dto"
	"github.com/stagemed/stagemed/internal/app/services"
	"github.com/stagemed/stagemed/internal/middleware"
)

// ChiefController handles the service chief endpoints
type ChiefController struct {
	chiefService *services.ChiefService
	logger       zerolog.Logger
}

// NewChiefController creates a new ChiefController
func NewChiefController(chiefService *services.ChiefService, logger zerolog.Logger) *ChiefController {
	return &ChiefController{
		chiefService: chiefService,
		logger:       logger,
	}
}

// GetDashboard returns the chief dashboard
// @Summary Chief dashboard
// @Tags service-chiefs
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.ChiefDashboardResponse}
// @Router /service-chiefs/dashboard [get]
func (c *ChiefController) GetDashboard(ctx *gin.Context) {
	dashboard, err := c.chiefService.GetDashboard(ctx.Request.Context(), middleware.GetUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dashboard))
}

// ListInternships returns the chief's internships
// @Summary List my internships
// @Tags service-chiefs
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse
// @Router /service-chiefs/internships [get]
func (c *ChiefController) ListInternships(ctx *gin.Context) {
	internships, err := c.chiefService.ListInternships(ctx.Request.Context(), middleware.GetUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(internships))
}

// CreateInternship publishes a new internship posting
// @Summary Create an internship
// @Tags service-chiefs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateInternshipRequest true "Posting"
// @Success 201 {object} dto.APIResponse
// @Failure 400 {object} dto.APIResponse
// @Router /service-chiefs/internships [post]
func (c *ChiefController) CreateInternship(ctx *gin.Context) {
	var req dto.CreateInternshipRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Tous les champs obligatoires doivent être renseignés"))
		return
	}

	internship, err := c.chiefService.CreateInternship(ctx.Request.Context(), middleware.GetUserID(ctx), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("internshipId", internship.ID).Msg("Internship created")

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(internship))
}

// ListApplications returns applications on the chief's internships
// @Summary List applications
// @Tags service-chiefs
// @Produce json
// @Security BearerAuth
// @Param status query string false "Status filter"
// @Param internshipId query int false "Internship filter"
// @Success 200 {object} dto.APIResponse{data=dto.ChiefApplicationsResponse}
// @Router /service-chiefs/applications [get]
func (c *ChiefController) ListApplications(ctx *gin.Context) {
	response, err := c.chiefService.ListApplications(
		ctx.Request.Context(), middleware.GetUserID(ctx),
		ctx.Query("status"), parseQueryInt64(ctx, "internshipId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(response))
}

// UpdateApplicationStatus accepts or rejects a pending application
// @Summary Process an application
// @Tags service-chiefs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Application ID"
// @Param request body dto.UpdateApplicationStatusRequest true "Decision"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Failure 409 {object} dto.APIResponse "Already processed"
// @Router /service-chiefs/applications/{id}/status [patch]
func (c *ChiefController) UpdateApplicationStatus(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateApplicationStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Statut requis"))
		return
	}

	if err := c.chiefService.UpdateApplicationStatus(ctx.Request.Context(), middleware.GetUserID(ctx), id, req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("applicationId", id).Str("status", req.Status).Msg("Application processed")

	ctx.JSON(http.StatusOK, dto.NewSuccessMessage("Candidature traitée avec succès"))
}

// ListEvaluations returns the chief's evaluations
// @Summary List evaluations
// @Tags service-chiefs
// @Produce json
// @Security BearerAuth
// @Param status query string false "Status filter"
// @Success 200 {object} dto.APIResponse
// @Router /service-chiefs/evaluations [get]
func (c *ChiefController) ListEvaluations(ctx *gin.Context) {
	evaluations, err := c.chiefService.ListEvaluations(ctx.Request.Context(), middleware.GetUserID(ctx), ctx.Query("status"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(evaluations))
}

// ValidateEvaluation validates a submitted evaluation
// @Summary Validate an evaluation
// @Tags service-chiefs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Evaluation ID"
// @Param request body dto.ValidateEvaluationRequest false "Comments"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse "Not found or not submitted"
// @Router /service-chiefs/evaluations/{id}/validate [post]
func (c *ChiefController) ValidateEvaluation(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.ValidateEvaluationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Requête invalide"))
		return
	}

	if err := c.chiefService.ValidateEvaluation(ctx.Request.Context(), middleware.GetUserID(ctx), id, req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessMessage("Évaluation validée avec succès"))
}
