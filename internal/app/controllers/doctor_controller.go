package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/stagemed/stagemed/internal/app/models/dto"
	"github.com/stagemed/stagemed/internal/app/services"
	"github.com/stagemed/stagemed/internal/middleware"
)

// DoctorController handles the doctor endpoints
type DoctorController struct {
	doctorService *services.DoctorService
	logger        zerolog.Logger
}

// NewDoctorController creates a new DoctorController
func NewDoctorController(doctorService *services.DoctorService, logger zerolog.Logger) *DoctorController {
	return &DoctorController{
		doctorService: doctorService,
		logger:        logger,
	}
}

// GetDashboard returns the doctor dashboard
// @Summary Doctor dashboard
// @Tags doctors
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.DoctorDashboardResponse}
// @Router /doctors/dashboard [get]
func (c *DoctorController) GetDashboard(ctx *gin.Context) {
	dashboard, err := c.doctorService.GetDashboard(ctx.Request.Context(), middleware.GetUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dashboard))
}

// GetStudents returns the students supervised by the doctor
// @Summary My students
// @Description Students with an accepted application in the doctor's service and establishment
// @Tags doctors
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse
// @Router /doctors/students [get]
func (c *DoctorController) GetStudents(ctx *gin.Context) {
	students, err := c.doctorService.GetStudents(ctx.Request.Context(), middleware.GetUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(students))
}

// GetStudentDetails returns one student's profile and current internship
// @Summary Student details
// @Tags doctors
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=dto.StudentDetailsResponse}
// @Failure 404 {object} dto.APIResponse
// @Router /doctors/students/{id} [get]
func (c *DoctorController) GetStudentDetails(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	details, err := c.doctorService.GetStudentDetails(ctx.Request.Context(), middleware.GetUserID(ctx), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(details))
}

// ListEvaluations returns the doctor's evaluations
// @Summary List my evaluations
// @Tags doctors
// @Produce json
// @Security BearerAuth
// @Param status query string false "Status filter"
// @Success 200 {object} dto.APIResponse
// @Router /doctors/evaluations [get]
func (c *DoctorController) ListEvaluations(ctx *gin.Context) {
	evaluations, err := c.doctorService.ListEvaluations(ctx.Request.Context(), middleware.GetUserID(ctx), ctx.Query("status"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(evaluations))
}

// CreateEvaluation opens a draft evaluation on an accepted application
// @Summary Open an evaluation
// @Description Opens a draft evaluation. Calling it again for the same application returns the existing one.
// @Tags doctors
// @Produce json
// @Security BearerAuth
// @Param applicationId path int true "Application ID"
// @Success 201 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse "Application not found or not accepted"
// @Router /doctors/applications/{applicationId}/evaluation [post]
func (c *DoctorController) CreateEvaluation(ctx *gin.Context) {
	applicationID, ok := parseIDParam(ctx, "applicationId")
	if !ok {
		return
	}

	evaluation, err := c.doctorService.CreateEvaluation(ctx.Request.Context(), middleware.GetUserID(ctx), applicationID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(evaluation))
}

// SubmitEvaluation records the scores and submits the evaluation
// @Summary Submit an evaluation
// @Tags doctors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Evaluation ID"
// @Param request body dto.SubmitEvaluationRequest true "Scores and comments"
// @Success 200 {object} dto.APIResponse
// @Failure 400 {object} dto.APIResponse "Scores out of range"
// @Failure 404 {object} dto.APIResponse
// @Router /doctors/evaluations/{id} [put]
func (c *DoctorController) SubmitEvaluation(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.SubmitEvaluationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Les trois notes sont requises"))
		return
	}

	evaluation, err := c.doctorService.SubmitEvaluation(ctx.Request.Context(), middleware.GetUserID(ctx), id, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("evaluationId", evaluation.ID).Msg("Evaluation submitted")

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(evaluation))
}
