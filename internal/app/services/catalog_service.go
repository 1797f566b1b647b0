package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/stagemed/stagemed/internal/app/models"
	"github.com/stagemed/stagemed/internal/app/models/dto"
	"github.com/stagemed/stagemed/internal/app/repositories"
	"github.com/stagemed/stagemed/internal/pkg/apperrors"
	"github.com/stagemed/stagemed/internal/pkg/helpers"
)

// CatalogService serves the public, unauthenticated catalog endpoints
type CatalogService struct {
	internshipRepo    *repositories.InternshipRepository
	establishmentRepo *repositories.EstablishmentRepository
	serviceRepo       *repositories.ServiceRepository
	logger            zerolog.Logger
}

// NewCatalogService creates a new CatalogService
func NewCatalogService(
	internshipRepo *repositories.InternshipRepository,
	establishmentRepo *repositories.EstablishmentRepository,
	serviceRepo *repositories.ServiceRepository,
	logger zerolog.Logger,
) *CatalogService {
	return &CatalogService{
		internshipRepo:    internshipRepo,
		establishmentRepo: establishmentRepo,
		serviceRepo:       serviceRepo,
		logger:            logger,
	}
}

// ListInternships retrieves published internships with filters and pagination
func (s *CatalogService) ListInternships(ctx context.Context, filter dto.InternshipFilter) ([]*models.Internship, dto.PaginationInfo, error) {
	offset, limit := helpers.CalculateOffsetLimit(filter.Page, filter.Size)

	internships, total, err := s.internshipRepo.ListPublished(ctx, filter, offset, limit)
	if err != nil {
		return nil, dto.PaginationInfo{}, err
	}

	return internships, helpers.NewPaginationInfo(total, filter.Page, limit), nil
}

// GetInternship retrieves one published internship
func (s *CatalogService) GetInternship(ctx context.Context, id int64) (*models.Internship, error) {
	internship, err := s.internshipRepo.GetByID(ctx, id)
	if err != nil || !internship.IsPublished || !internship.IsActive {
		return nil, apperrors.NewNotFoundError("Stage non trouvé")
	}
	return internship, nil
}

// ListEstablishments retrieves active establishments with their services
func (s *CatalogService) ListEstablishments(ctx context.Context) ([]*models.Establishment, error) {
	establishments, err := s.establishmentRepo.GetActive(ctx)
	if err != nil {
		return nil, err
	}

	for _, e := range establishments {
		services, err := s.serviceRepo.GetByEstablishment(ctx, e.ID)
		if err != nil {
			return nil, err
		}
		e.Services = services
	}

	return establishments, nil
}

// ListServices retrieves active services with their establishment
func (s *CatalogService) ListServices(ctx context.Context) ([]*models.Service, error) {
	return s.serviceRepo.GetActive(ctx)
}
