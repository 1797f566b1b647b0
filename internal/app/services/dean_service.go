package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/stagemed/stagemed/internal/app/models"
	"github.com/stagemed/stagemed/internal/app/models/dto"
	"github.com/stagemed/stagemed/internal/app/repositories"
	"github.com/stagemed/stagemed/internal/pkg/apperrors"
	"github.com/stagemed/stagemed/internal/pkg/auth"
	"github.com/stagemed/stagemed/internal/pkg/dberrors"
	"github.com/stagemed/stagemed/internal/pkg/mailer"
	"github.com/stagemed/stagemed/internal/pkg/validation"
)

// tempPasswordLength is the length of generated temporary passwords
const tempPasswordLength = 10

// DeanService handles the dean administration operations
type DeanService struct {
	userRepo          *repositories.UserRepository
	studentRepo       *repositories.StudentRepository
	profileRepo       *repositories.ProfileRepository
	establishmentRepo *repositories.EstablishmentRepository
	serviceRepo       *repositories.ServiceRepository
	internshipRepo    *repositories.InternshipRepository
	applicationRepo   *repositories.ApplicationRepository
	mailer            mailer.Mailer
	logger            zerolog.Logger
}

// NewDeanService creates a new DeanService
func NewDeanService(
	userRepo *repositories.UserRepository,
	studentRepo *repositories.StudentRepository,
	profileRepo *repositories.ProfileRepository,
	establishmentRepo *repositories.EstablishmentRepository,
	serviceRepo *repositories.ServiceRepository,
	internshipRepo *repositories.InternshipRepository,
	applicationRepo *repositories.ApplicationRepository,
	mail mailer.Mailer,
	logger zerolog.Logger,
) *DeanService {
	return &DeanService{
		userRepo:          userRepo,
		studentRepo:       studentRepo,
		profileRepo:       profileRepo,
		establishmentRepo: establishmentRepo,
		serviceRepo:       serviceRepo,
		internshipRepo:    internshipRepo,
		applicationRepo:   applicationRepo,
		mailer:            mail,
		logger:            logger,
	}
}

// GetDashboard assembles the dean dashboard: platform-wide counters, recent
// records and alerts
func (s *DeanService) GetDashboard(ctx context.Context, userID int64) (*dto.DeanDashboardResponse, error) {
	dean, err := s.profileRepo.GetDeanByUserID(ctx, userID)
	if err != nil {
		return nil, apperrors.NewCustomError(apperrors.ErrDeanNotFound, "Profil doyen non trouvé")
	}

	var stats dto.DeanStats
	if stats.TotalStudents, err = s.studentRepo.CountAll(ctx); err != nil {
		return nil, err
	}
	if stats.StudentsWithInternship, err = s.applicationRepo.CountByStatus(ctx, models.ApplicationAccepted); err != nil {
		return nil, err
	}
	if stats.TotalDoctors, err = s.profileRepo.CountDoctors(ctx); err != nil {
		return nil, err
	}
	if stats.TotalServiceChiefs, err = s.profileRepo.CountChiefs(ctx); err != nil {
		return nil, err
	}
	if stats.TotalEstablishments, err = s.establishmentRepo.CountAll(ctx); err != nil {
		return nil, err
	}
	if stats.TotalServices, err = s.serviceRepo.CountAll(ctx); err != nil {
		return nil, err
	}
	if stats.ActiveInternships, err = s.internshipRepo.CountActive(ctx); err != nil {
		return nil, err
	}
	if stats.TotalStudents > 0 {
		stats.PlacementRate = float64(stats.StudentsWithInternship) / float64(stats.TotalStudents) * 100
	}

	recentStudents, err := s.studentRepo.GetRecent(ctx, 5)
	if err != nil {
		return nil, err
	}

	recentEstablishments, err := s.establishmentRepo.GetRecent(ctx, 3)
	if err != nil {
		return nil, err
	}

	servicesWithoutInternships, err := s.serviceRepo.CountWithoutActiveInternships(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.DeanDashboardResponse{
		Dean:                 dean,
		Stats:                stats,
		RecentStudents:       recentStudents,
		RecentEstablishments: recentEstablishments,
		Alerts: dto.DeanAlerts{
			StudentsWithoutInternship:  stats.TotalStudents - stats.StudentsWithInternship,
			ServicesWithoutInternships: servicesWithoutInternships,
		},
	}, nil
}

// ListUsers retrieves users filtered by role and email search
func (s *DeanService) ListUsers(ctx context.Context, role, search string) ([]*models.User, error) {
	return s.userRepo.List(ctx, role, search)
}

// CreateUser creates a user with its role profile and mails the initial
// credentials. The profile insert compensates the user insert on failure.
func (s *DeanService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*models.User, error) {
	role := models.RoleType(req.Role)
	if !role.IsValid() {
		return nil, apperrors.NewBadRequestError("Rôle invalide")
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if existing, err := s.userRepo.GetByEmail(ctx, email); err == nil && existing != nil {
		return nil, apperrors.NewConflictError("Un utilisateur avec cet email existe déjà")
	}

	matricule := strings.ToUpper(strings.TrimSpace(req.Matricule))
	if role == models.RoleStudent {
		if !validation.IsValidMatricule(matricule) {
			return nil, apperrors.NewBadRequestError("Matricule invalide")
		}
		if req.Level != "" && !models.StudyLevel(req.Level).IsValid() {
			return nil, apperrors.NewBadRequestError("Niveau invalide")
		}
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:              email,
		Password:           hash,
		Role:               role,
		IsActive:           true,
		MustChangePassword: true,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if dberrors.IsDuplicateConstraintError(err, "users_email_key") {
			return nil, apperrors.NewConflictError("Un utilisateur avec cet email existe déjà")
		}
		return nil, err
	}

	if err := s.createRoleProfile(ctx, user, req, matricule); err != nil {
		if delErr := s.userRepo.Delete(ctx, user.ID); delErr != nil {
			s.logger.Error().Err(delErr).Int64("userId", user.ID).Msg("Failed to delete user after profile creation failure")
		}
		return nil, err
	}

	if err := s.mailer.SendCredentialsEmail(email, req.FirstName+" "+req.LastName, req.Password); err != nil {
		s.logger.Warn().Err(err).Str("email", email).Msg("Failed to send credentials email")
	}

	user.Password = ""
	return user, nil
}

func (s *DeanService) createRoleProfile(ctx context.Context, user *models.User, req dto.CreateUserRequest, matricule string) error {
	switch user.Role {
	case models.RoleStudent:
		student := &models.Student{
			UserID:    user.ID,
			Matricule: matricule,
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Level:     models.StudyLevel(req.Level),
			Phone:     req.Phone,
		}
		if err := s.studentRepo.Create(ctx, student); err != nil {
			if dberrors.IsDuplicateConstraintError(err, "students_matricule_key") {
				return apperrors.NewConflictError("Un étudiant avec ce matricule existe déjà")
			}
			return err
		}

	case models.RoleDoctor:
		doctor := &models.Doctor{
			UserID:          user.ID,
			FirstName:       req.FirstName,
			LastName:        req.LastName,
			Specialty:       req.Specialty,
			Phone:           req.Phone,
			LicenseNumber:   req.LicenseNumber,
			EstablishmentID: req.EstablishmentID,
			ServiceID:       req.ServiceID,
		}
		if err := s.profileRepo.CreateDoctor(ctx, doctor); err != nil {
			if dberrors.IsDuplicateConstraintError(err, "doctors_license_number_key") {
				return apperrors.NewConflictError("Ce numéro de licence est déjà utilisé")
			}
			return err
		}

	case models.RoleServiceChief:
		chief := &models.ServiceChief{
			UserID:          user.ID,
			FirstName:       req.FirstName,
			LastName:        req.LastName,
			Phone:           req.Phone,
			ServiceID:       req.ServiceID,
			EstablishmentID: req.EstablishmentID,
		}
		if err := s.profileRepo.CreateChief(ctx, chief); err != nil {
			return err
		}
		if err := s.serviceRepo.AssignChief(ctx, req.ServiceID, chief.ID); err != nil {
			s.logger.Warn().Err(err).Int64("serviceId", req.ServiceID).Msg("Failed to assign chief to service")
		}

	case models.RoleDean:
		dean := &models.Dean{
			UserID:    user.ID,
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Phone:     req.Phone,
		}
		if err := s.profileRepo.CreateDean(ctx, dean); err != nil {
			return err
		}
	}

	return nil
}

// ToggleUserStatus flips a user's activation state
func (s *DeanService) ToggleUserStatus(ctx context.Context, id int64) (bool, error) {
	isActive, err := s.userRepo.ToggleActive(ctx, id)
	if err != nil {
		return false, apperrors.NewNotFoundError("Utilisateur non trouvé")
	}
	return isActive, nil
}

// ResetPassword issues a temporary password, forces a change on next login
// and mails it. The temporary password is also returned for display.
func (s *DeanService) ResetPassword(ctx context.Context, id int64) (string, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return "", apperrors.NewNotFoundError("Utilisateur non trouvé")
	}

	tempPassword, err := mailer.GenerateTempPassword(tempPasswordLength)
	if err != nil {
		return "", err
	}

	hash, err := auth.HashPassword(tempPassword)
	if err != nil {
		return "", err
	}

	if err := s.userRepo.UpdatePassword(ctx, user.ID, hash, true); err != nil {
		return "", err
	}

	if err := s.mailer.SendPasswordResetEmail(user.Email, user.Email, tempPassword); err != nil {
		s.logger.Warn().Err(err).Str("email", user.Email).Msg("Failed to send reset email")
	}

	return tempPassword, nil
}

// ListEstablishments retrieves every establishment
func (s *DeanService) ListEstablishments(ctx context.Context) ([]*models.Establishment, error) {
	return s.establishmentRepo.GetAll(ctx)
}

// CreateEstablishment creates an establishment
func (s *DeanService) CreateEstablishment(ctx context.Context, req dto.CreateEstablishmentRequest) (*models.Establishment, error) {
	estType := models.EstablishmentType(req.Type)
	if req.Type == "" {
		estType = models.EstablishmentHopital
	} else if !estType.IsValid() {
		return nil, apperrors.NewBadRequestError("Type d'établissement invalide")
	}

	establishment := &models.Establishment{
		Name:       req.Name,
		Street:     req.Street,
		City:       req.City,
		PostalCode: req.PostalCode,
		Phone:      req.Phone,
		Email:      req.Email,
		Type:       estType,
	}
	if err := s.establishmentRepo.Create(ctx, establishment); err != nil {
		return nil, err
	}
	return establishment, nil
}

// ListServices retrieves every service with its establishment
func (s *DeanService) ListServices(ctx context.Context) ([]*models.Service, error) {
	return s.serviceRepo.GetAll(ctx)
}

// CreateService creates a medical service. The code is stored uppercase.
func (s *DeanService) CreateService(ctx context.Context, req dto.CreateServiceRequest) (*models.Service, error) {
	if _, err := s.establishmentRepo.GetByID(ctx, req.EstablishmentID); err != nil {
		return nil, apperrors.NewNotFoundError("Établissement non trouvé")
	}

	capacity := req.Capacity
	if capacity <= 0 {
		capacity = 5
	}

	service := &models.Service{
		Name:            req.Name,
		Description:     req.Description,
		Code:            strings.ToUpper(strings.TrimSpace(req.Code)),
		EstablishmentID: req.EstablishmentID,
		Capacity:        capacity,
	}
	if err := s.serviceRepo.Create(ctx, service); err != nil {
		if dberrors.IsDuplicateConstraintError(err, "services_code_key") {
			return nil, apperrors.NewConflictError("Un service avec ce code existe déjà")
		}
		return nil, err
	}
	return service, nil
}

// GetStatistics assembles the statistics page counters
func (s *DeanService) GetStatistics(ctx context.Context) (*dto.StatisticsResponse, error) {
	byLevel, err := s.studentRepo.CountByLevel(ctx)
	if err != nil {
		return nil, err
	}

	totalStudents, err := s.studentRepo.CountAll(ctx)
	if err != nil {
		return nil, err
	}

	withInternship, err := s.applicationRepo.CountByStatus(ctx, models.ApplicationAccepted)
	if err != nil {
		return nil, err
	}

	establishments, err := s.internshipRepo.StatsByEstablishment(ctx)
	if err != nil {
		return nil, err
	}

	services, err := s.internshipRepo.StatsByService(ctx)
	if err != nil {
		return nil, err
	}

	trends, err := s.internshipRepo.MonthlyTrends(ctx, time.Now().AddDate(0, 0, -365))
	if err != nil {
		return nil, err
	}

	return &dto.StatisticsResponse{
		Students: dto.StudentStatistics{
			ByLevel:           byLevel,
			WithInternship:    withInternship,
			WithoutInternship: totalStudents - withInternship,
		},
		Establishments: establishments,
		Services:       services,
		MonthlyTrends:  trends,
	}, nil
}

// ExportReport builds the aggregate platform report
func (s *DeanService) ExportReport(ctx context.Context) (*dto.ExportReportResponse, error) {
	totalStudents, err := s.studentRepo.CountAll(ctx)
	if err != nil {
		return nil, err
	}

	totalInternships, err := s.internshipRepo.CountAll(ctx)
	if err != nil {
		return nil, err
	}

	accepted, err := s.applicationRepo.CountByStatus(ctx, models.ApplicationAccepted)
	if err != nil {
		return nil, err
	}

	activeEstablishments, err := s.establishmentRepo.CountActive(ctx)
	if err != nil {
		return nil, err
	}

	activeServices, err := s.serviceRepo.CountActive(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.ExportReportResponse{
		GeneratedAt:          time.Now(),
		TotalStudents:        totalStudents,
		TotalInternships:     totalInternships,
		PlacementRate:        fmt.Sprintf("%.1f", float64(accepted)/float64(totalStudents)*100),
		ActiveEstablishments: activeEstablishments,
		ActiveServices:       activeServices,
	}, nil
}
