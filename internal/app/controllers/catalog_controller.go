package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/stagemed/stagemed/internal/app/models/dto"
	"github.com/stagemed/stagemed/internal/app/services"
	"github.com/stagemed/stagemed/internal/middleware"
	"github.com/stagemed/stagemed/internal/pkg/helpers"
)

// CatalogController handles the public catalog endpoints
type CatalogController struct {
	catalogService *services.CatalogService
	environment    string
	logger         zerolog.Logger
}

// NewCatalogController creates a new CatalogController
func NewCatalogController(catalogService *services.CatalogService, environment string, logger zerolog.Logger) *CatalogController {
	return &CatalogController{
		catalogService: catalogService,
		environment:    environment,
		logger:         logger,
	}
}

// ListInternships returns published internships without authentication
// @Summary Browse internships (public)
// @Tags public
// @Produce json
// @Param serviceId query int false "Service filter"
// @Param establishmentId query int false "Establishment filter"
// @Param search query string false "Title or description search"
// @Param page query int false "Page number"
// @Param size query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedList}
// @Router /internships [get]
func (c *CatalogController) ListInternships(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)
	filter := dto.InternshipFilter{
		ServiceID:       parseQueryInt64(ctx, "serviceId"),
		EstablishmentID: parseQueryInt64(ctx, "establishmentId"),
		Search:          ctx.Query("search"),
		Page:            page,
		Size:            size,
	}

	internships, pagination, err := c.catalogService.ListInternships(ctx.Request.Context(), filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.PaginatedList{
		Items:      internships,
		Pagination: pagination,
	}))
}

// ListEstablishments returns active establishments with their services
// @Summary List establishments (public)
// @Tags public
// @Produce json
// @Success 200 {object} dto.APIResponse
// @Router /establishments [get]
func (c *CatalogController) ListEstablishments(ctx *gin.Context) {
	establishments, err := c.catalogService.ListEstablishments(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(establishments))
}

// ListServices returns active services
// @Summary List services (public)
// @Tags public
// @Produce json
// @Success 200 {object} dto.APIResponse
// @Router /services [get]
func (c *CatalogController) ListServices(ctx *gin.Context) {
	services, err := c.catalogService.ListServices(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(services))
}

// GetInternship returns one published internship without authentication
// @Summary Internship details (public)
// @Tags public
// @Produce json
// @Param id path int true "Internship ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Router /internships/{id} [get]
func (c *CatalogController) GetInternship(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	internship, err := c.catalogService.GetInternship(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(internship))
}

// Health reports service liveness
// @Summary Health check
// @Tags public
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (c *CatalogController) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"status":      "ok",
		"message":     "StageMed API opérationnelle",
		"timestamp":   time.Now().Format(time.RFC3339),
		"environment": c.environment,
	})
}
