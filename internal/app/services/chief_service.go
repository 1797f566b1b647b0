package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/stagemed/stagemed/internal/app/models"
	"github.com/stagemed/stagemed/internal/app/models/dto"
	"github.com/stagemed/stagemed/internal/app/repositories"
	"github.com/stagemed/stagemed/internal/pkg/apperrors"
)

// urgentApplicationAge is how long an application may stay pending before
// the dashboard flags it
const urgentApplicationAge = 7 * 24 * time.Hour

// ChiefService handles the service chief operations
type ChiefService struct {
	profileRepo     *repositories.ProfileRepository
	internshipRepo  *repositories.InternshipRepository
	applicationRepo *repositories.ApplicationRepository
	evaluationRepo  *repositories.EvaluationRepository
	logger          zerolog.Logger
}

// NewChiefService creates a new ChiefService
func NewChiefService(
	profileRepo *repositories.ProfileRepository,
	internshipRepo *repositories.InternshipRepository,
	applicationRepo *repositories.ApplicationRepository,
	evaluationRepo *repositories.EvaluationRepository,
	logger zerolog.Logger,
) *ChiefService {
	return &ChiefService{
		profileRepo:     profileRepo,
		internshipRepo:  internshipRepo,
		applicationRepo: applicationRepo,
		evaluationRepo:  evaluationRepo,
		logger:          logger,
	}
}

func (s *ChiefService) getChief(ctx context.Context, userID int64) (*models.ServiceChief, error) {
	chief, err := s.profileRepo.GetChiefByUserID(ctx, userID)
	if err != nil {
		return nil, apperrors.NewCustomError(apperrors.ErrChiefNotFound, "Profil chef de service non trouvé")
	}
	return chief, nil
}

// GetDashboard assembles the chief dashboard: workload counters, urgent
// applications pending over a week, active postings and evaluations to validate.
func (s *ChiefService) GetDashboard(ctx context.Context, userID int64) (*dto.ChiefDashboardResponse, error) {
	chief, err := s.getChief(ctx, userID)
	if err != nil {
		return nil, err
	}

	var stats dto.ChiefStats
	if stats.PendingApplications, err = s.applicationRepo.CountByChiefAndStatus(ctx, chief.ID, string(models.ApplicationPending)); err != nil {
		return nil, err
	}
	if stats.ActiveInternships, err = s.internshipRepo.CountByChief(ctx, chief.ID); err != nil {
		return nil, err
	}
	if stats.PendingEvaluations, err = s.evaluationRepo.CountByChiefAndStatus(ctx, chief.ID, models.EvaluationSubmitted); err != nil {
		return nil, err
	}
	if stats.TotalStudents, err = s.applicationRepo.CountByChiefAndStatus(ctx, chief.ID, string(models.ApplicationAccepted)); err != nil {
		return nil, err
	}

	urgent, err := s.applicationRepo.ListUrgentByChief(ctx, chief.ID, time.Now().Add(-urgentApplicationAge), 5)
	if err != nil {
		return nil, err
	}

	active, err := s.internshipRepo.ListByChief(ctx, chief.ID, true)
	if err != nil {
		return nil, err
	}

	pendingEvaluations, err := s.evaluationRepo.ListByChief(ctx, chief.ID, string(models.EvaluationSubmitted), 5)
	if err != nil {
		return nil, err
	}

	return &dto.ChiefDashboardResponse{
		Chief:              chief,
		Stats:              stats,
		UrgentApplications: urgent,
		ActiveInternships:  active,
		PendingEvaluations: pendingEvaluations,
	}, nil
}

// ListInternships retrieves the chief's internships, newest first
func (s *ChiefService) ListInternships(ctx context.Context, userID int64) ([]*models.Internship, error) {
	chief, err := s.getChief(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.internshipRepo.ListByChief(ctx, chief.ID, false)
}

// CreateInternship creates a published posting scoped to the chief. Total
// places start equal to available places.
func (s *ChiefService) CreateInternship(ctx context.Context, userID int64, req dto.CreateInternshipRequest) (*models.Internship, error) {
	chief, err := s.getChief(ctx, userID)
	if err != nil {
		return nil, err
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return nil, apperrors.NewBadRequestError("Date de début invalide")
	}
	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return nil, apperrors.NewBadRequestError("Date de fin invalide")
	}

	now := time.Now()
	internship := &models.Internship{
		Title:           req.Title,
		Description:     req.Description,
		ServiceID:       req.ServiceID,
		EstablishmentID: req.EstablishmentID,
		ChiefID:         chief.ID,
		Duration:        req.Duration,
		StartDate:       startDate,
		EndDate:         endDate,
		AvailablePlaces: req.AvailablePlaces,
		TotalPlaces:     req.AvailablePlaces,
		Requirements:    req.Requirements,
		Skills:          req.Skills,
		IsPublished:     true,
		PublishedAt:     &now,
	}
	if internship.Requirements == nil {
		internship.Requirements = []string{}
	}
	if internship.Skills == nil {
		internship.Skills = []string{}
	}

	if err := s.internshipRepo.Create(ctx, internship); err != nil {
		return nil, err
	}

	// TODO: notify students once a notification channel exists

	return internship, nil
}

// ListApplications retrieves the applications on the chief's internships with
// per-status counts, optionally filtered by status and internship
func (s *ChiefService) ListApplications(ctx context.Context, userID int64, status string, internshipID int64) (*dto.ChiefApplicationsResponse, error) {
	chief, err := s.getChief(ctx, userID)
	if err != nil {
		return nil, err
	}

	applications, err := s.applicationRepo.ListByChief(ctx, chief.ID, status, internshipID)
	if err != nil {
		return nil, err
	}

	var stats dto.ChiefApplicationStats
	if stats.Pending, err = s.applicationRepo.CountByChiefAndStatus(ctx, chief.ID, string(models.ApplicationPending)); err != nil {
		return nil, err
	}
	if stats.Accepted, err = s.applicationRepo.CountByChiefAndStatus(ctx, chief.ID, string(models.ApplicationAccepted)); err != nil {
		return nil, err
	}
	if stats.Rejected, err = s.applicationRepo.CountByChiefAndStatus(ctx, chief.ID, string(models.ApplicationRejected)); err != nil {
		return nil, err
	}

	return &dto.ChiefApplicationsResponse{
		Applications: applications,
		Stats:        stats,
	}, nil
}

// UpdateApplicationStatus accepts or rejects a pending application on one of
// the chief's internships. Accepting decrements the posting's available
// places as a separate write.
func (s *ChiefService) UpdateApplicationStatus(ctx context.Context, userID, applicationID int64, req dto.UpdateApplicationStatusRequest) error {
	chief, err := s.getChief(ctx, userID)
	if err != nil {
		return err
	}

	next := models.ApplicationStatus(req.Status)
	if next != models.ApplicationAccepted && next != models.ApplicationRejected {
		return apperrors.NewBadRequestError("Statut invalide")
	}

	application, err := s.applicationRepo.GetOwnedByChief(ctx, applicationID, chief.ID)
	if err != nil {
		return apperrors.NewNotFoundError("Candidature non trouvée")
	}

	if !application.Status.CanTransitionTo(next) {
		return apperrors.NewCustomError(apperrors.ErrInvalidStatusTransition, "Cette candidature a déjà été traitée")
	}

	application.Status = next
	application.ProcessedBy = &chief.ID
	if next == models.ApplicationRejected && req.RejectionReason != "" {
		application.RejectionReason = req.RejectionReason
	}
	application.StampProcessed(time.Now())

	if err := s.applicationRepo.Update(ctx, application); err != nil {
		return err
	}

	// TODO: notify the student once a notification channel exists

	if next == models.ApplicationAccepted {
		if err := s.internshipRepo.DecrementAvailablePlaces(ctx, application.InternshipID); err != nil {
			return err
		}
	}

	return nil
}

// ListEvaluations retrieves the chief's evaluations, optionally filtered by status
func (s *ChiefService) ListEvaluations(ctx context.Context, userID int64, status string) ([]*models.Evaluation, error) {
	chief, err := s.getChief(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.evaluationRepo.ListByChief(ctx, chief.ID, status, 0)
}

// ValidateEvaluation validates one of the chief's submitted evaluations
func (s *ChiefService) ValidateEvaluation(ctx context.Context, userID, evaluationID int64, req dto.ValidateEvaluationRequest) error {
	chief, err := s.getChief(ctx, userID)
	if err != nil {
		return err
	}

	evaluation, err := s.evaluationRepo.GetOwnedByChief(ctx, evaluationID, chief.ID, models.EvaluationSubmitted)
	if err != nil {
		return apperrors.NewNotFoundError("Évaluation non trouvée")
	}

	evaluation.ChiefValidation = true
	evaluation.ChiefComments = req.ChiefComments
	evaluation.Normalize(time.Now())

	// TODO: generate the certificate PDF once a producer exists

	return s.evaluationRepo.Update(ctx, evaluation)
}
