package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/stagemed/stagemed/internal/app/models/dto"
	"github.com/stagemed/stagemed/internal/app/services"
	"github.com/stagemed/stagemed/internal/middleware"
	"github.com/stagemed/stagemed/internal/pkg/helpers"
)

// StudentController handles the student endpoints
type StudentController struct {
	studentService *services.StudentService
	logger         zerolog.Logger
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService *services.StudentService, logger zerolog.Logger) *StudentController {
	return &StudentController{
		studentService: studentService,
		logger:         logger,
	}
}

// GetDashboard returns the student dashboard
// @Summary Student dashboard
// @Tags students
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.StudentDashboardResponse}
// @Router /students/dashboard [get]
func (c *StudentController) GetDashboard(ctx *gin.Context) {
	dashboard, err := c.studentService.GetDashboard(ctx.Request.Context(), middleware.GetUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dashboard))
}

// GetProfile returns the student profile with documents
// @Summary Student profile
// @Tags students
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.StudentProfileResponse}
// @Router /students/profile [get]
func (c *StudentController) GetProfile(ctx *gin.Context) {
	profile, err := c.studentService.GetProfile(ctx.Request.Context(), middleware.GetUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(profile))
}

// UpdateProfile saves the profile fields and an optional document upload
// @Summary Update student profile
// @Tags students
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param firstName formData string true "First name"
// @Param lastName formData string true "Last name"
// @Param level formData string true "Study level (L1..M2)"
// @Param phone formData string false "Phone number"
// @Param document formData file false "Supporting document"
// @Param documentName formData string false "Document label"
// @Success 200 {object} dto.APIResponse
// @Failure 400 {object} dto.APIResponse
// @Router /students/profile [put]
func (c *StudentController) UpdateProfile(ctx *gin.Context) {
	var req dto.UpdateProfileRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Prénom, nom et niveau requis"))
		return
	}

	// Optional upload, a missing file is not an error
	document, err := ctx.FormFile("document")
	if err != nil {
		document = nil
	}

	student, err := c.studentService.UpdateProfile(ctx.Request.Context(), middleware.GetUserID(ctx), req, document)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(student))
}

// ListInternships returns published internships with filters
// @Summary Browse internships
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param serviceId query int false "Service filter"
// @Param establishmentId query int false "Establishment filter"
// @Param search query string false "Title or description search"
// @Param page query int false "Page number"
// @Param size query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedList}
// @Router /students/internships [get]
func (c *StudentController) ListInternships(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)
	filter := dto.InternshipFilter{
		ServiceID:       parseQueryInt64(ctx, "serviceId"),
		EstablishmentID: parseQueryInt64(ctx, "establishmentId"),
		Search:          ctx.Query("search"),
		Page:            page,
		Size:            size,
	}

	internships, pagination, err := c.studentService.ListInternships(ctx.Request.Context(), filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.PaginatedList{
		Items:      internships,
		Pagination: pagination,
	}))
}

// GetInternship returns an internship with the student's application state
// @Summary Internship details
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path int true "Internship ID"
// @Success 200 {object} dto.APIResponse{data=dto.InternshipDetailsResponse}
// @Failure 404 {object} dto.APIResponse
// @Router /students/internships/{id} [get]
func (c *StudentController) GetInternship(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	details, err := c.studentService.GetInternshipDetails(ctx.Request.Context(), middleware.GetUserID(ctx), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(details))
}

// Apply creates an application to an internship
// @Summary Apply to an internship
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path int true "Internship ID"
// @Success 201 {object} dto.APIResponse
// @Failure 400 {object} dto.APIResponse "Incomplete profile or unavailable internship"
// @Failure 409 {object} dto.APIResponse "Already applied"
// @Router /students/internships/{id}/apply [post]
func (c *StudentController) Apply(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	application, err := c.studentService.Apply(ctx.Request.Context(), middleware.GetUserID(ctx), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("applicationId", application.ID).Int64("internshipId", id).Msg("Application created")

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(application))
}

// ListApplications returns the student's applications
// @Summary List my applications
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param status query string false "Status filter"
// @Param page query int false "Page number"
// @Param size query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedList}
// @Router /students/applications [get]
func (c *StudentController) ListApplications(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	applications, pagination, err := c.studentService.ListApplications(
		ctx.Request.Context(), middleware.GetUserID(ctx), ctx.Query("status"), page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.PaginatedList{
		Items:      applications,
		Pagination: pagination,
	}))
}

// CancelApplication cancels a pending application
// @Summary Cancel an application
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path int true "Application ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse "Not found or already processed"
// @Router /students/applications/{id}/cancel [post]
func (c *StudentController) CancelApplication(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.studentService.CancelApplication(ctx.Request.Context(), middleware.GetUserID(ctx), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessMessage("Candidature annulée avec succès"))
}

// ListEvaluations returns the student's evaluations
// @Summary List my evaluations
// @Tags students
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse
// @Router /students/evaluations [get]
func (c *StudentController) ListEvaluations(ctx *gin.Context) {
	evaluations, err := c.studentService.ListEvaluations(ctx.Request.Context(), middleware.GetUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(evaluations))
}
