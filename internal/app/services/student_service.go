package services

import (
	"context"
	"errors"
	"mime/multipart"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/stagemed/stagemed/internal/app/models"
	"github.com/stagemed/stagemed/internal/app/models/dto"
	"github.com/stagemed/stagemed/internal/app/repositories"
	"github.com/stagemed/stagemed/internal/pkg/apperrors"
	"github.com/stagemed/stagemed/internal/pkg/dberrors"
	"github.com/stagemed/stagemed/internal/pkg/filestorage"
	"github.com/stagemed/stagemed/internal/pkg/helpers"
)

// StudentService handles the student-facing operations
type StudentService struct {
	studentRepo     *repositories.StudentRepository
	internshipRepo  *repositories.InternshipRepository
	applicationRepo *repositories.ApplicationRepository
	evaluationRepo  *repositories.EvaluationRepository
	storage         *filestorage.LocalStorage
	logger          zerolog.Logger
}

// NewStudentService creates a new StudentService
func NewStudentService(
	studentRepo *repositories.StudentRepository,
	internshipRepo *repositories.InternshipRepository,
	applicationRepo *repositories.ApplicationRepository,
	evaluationRepo *repositories.EvaluationRepository,
	storage *filestorage.LocalStorage,
	logger zerolog.Logger,
) *StudentService {
	return &StudentService{
		studentRepo:     studentRepo,
		internshipRepo:  internshipRepo,
		applicationRepo: applicationRepo,
		evaluationRepo:  evaluationRepo,
		storage:         storage,
		logger:          logger,
	}
}

func (s *StudentService) getStudent(ctx context.Context, userID int64) (*models.Student, error) {
	student, err := s.studentRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, apperrors.NewCustomError(apperrors.ErrStudentNotFound, "Profil étudiant non trouvé")
	}
	return student, nil
}

// GetDashboard assembles the student dashboard: recent applications,
// per-status counts and a few recommended internships.
func (s *StudentService) GetDashboard(ctx context.Context, userID int64) (*dto.StudentDashboardResponse, error) {
	student, err := s.getStudent(ctx, userID)
	if err != nil {
		return nil, err
	}

	applications, _, err := s.applicationRepo.ListByStudent(ctx, student.ID, "", 0, 5)
	if err != nil {
		return nil, err
	}

	stats, err := s.applicationRepo.StudentStats(ctx, student.ID)
	if err != nil {
		return nil, err
	}

	recommended, err := s.internshipRepo.ListRecommended(ctx, 3)
	if err != nil {
		return nil, err
	}

	return &dto.StudentDashboardResponse{
		Student:                student,
		Applications:           applications,
		Stats:                  stats,
		RecommendedInternships: recommended,
	}, nil
}

// GetProfile loads a student's profile with their documents
func (s *StudentService) GetProfile(ctx context.Context, userID int64) (*dto.StudentProfileResponse, error) {
	student, err := s.getStudent(ctx, userID)
	if err != nil {
		return nil, err
	}

	docs, err := s.studentRepo.GetDocuments(ctx, student.ID)
	if err != nil {
		return nil, err
	}

	return &dto.StudentProfileResponse{Student: student, Documents: docs}, nil
}

// UpdateProfile saves the editable fields, stores an optional uploaded
// document, then re-evaluates profile completion.
func (s *StudentService) UpdateProfile(ctx context.Context, userID int64, req dto.UpdateProfileRequest, document *multipart.FileHeader) (*models.Student, error) {
	student, err := s.getStudent(ctx, userID)
	if err != nil {
		return nil, err
	}

	if !models.StudyLevel(req.Level).IsValid() {
		return nil, apperrors.NewBadRequestError("Niveau invalide")
	}

	student.FirstName = strings.TrimSpace(req.FirstName)
	student.LastName = strings.TrimSpace(req.LastName)
	student.Level = models.StudyLevel(req.Level)
	student.Phone = strings.TrimSpace(req.Phone)

	if document != nil {
		filePath, err := s.storage.SaveFileWithPath(document, "documents")
		if err != nil {
			return nil, err
		}

		name := req.DocumentName
		if name == "" {
			name = "Document"
		}
		doc := &models.StudentDocument{
			StudentID:    student.ID,
			Name:         name,
			FilePath:     filePath,
			OriginalName: document.Filename,
			FileSize:     document.Size,
		}
		if err := s.studentRepo.AddDocument(ctx, doc); err != nil {
			return nil, err
		}
	}

	docCount, err := s.studentRepo.CountDocuments(ctx, student.ID)
	if err != nil {
		return nil, err
	}
	student.CheckProfileCompletion(docCount, time.Now())

	if err := s.studentRepo.UpdateProfile(ctx, student); err != nil {
		return nil, err
	}

	return student, nil
}

// ListInternships retrieves published internships with filters and pagination
func (s *StudentService) ListInternships(ctx context.Context, filter dto.InternshipFilter) ([]*models.Internship, dto.PaginationInfo, error) {
	offset, limit := helpers.CalculateOffsetLimit(filter.Page, filter.Size)

	internships, total, err := s.internshipRepo.ListPublished(ctx, filter, offset, limit)
	if err != nil {
		return nil, dto.PaginationInfo{}, err
	}

	return internships, helpers.NewPaginationInfo(total, filter.Page, limit), nil
}

// GetInternshipDetails loads an internship and whether the student already applied
func (s *StudentService) GetInternshipDetails(ctx context.Context, userID, internshipID int64) (*dto.InternshipDetailsResponse, error) {
	internship, err := s.internshipRepo.GetByID(ctx, internshipID)
	if err != nil {
		return nil, apperrors.NewNotFoundError("Stage non trouvé")
	}

	student, err := s.getStudent(ctx, userID)
	if err != nil {
		return nil, err
	}

	existing, err := s.applicationRepo.GetByStudentAndInternship(ctx, student.ID, internshipID)
	if err != nil && !errors.Is(err, apperrors.ErrApplicationNotFound) {
		return nil, err
	}

	return &dto.InternshipDetailsResponse{
		Internship: internship,
		HasApplied: existing != nil,
	}, nil
}

// Apply creates a pending application. The profile must be completed, the
// internship must be active with places left, and one application per
// (student, internship) pair is allowed.
func (s *StudentService) Apply(ctx context.Context, userID, internshipID int64) (*models.Application, error) {
	student, err := s.getStudent(ctx, userID)
	if err != nil {
		return nil, err
	}

	if !student.ProfileCompleted {
		return nil, apperrors.NewBadRequestError("Veuillez compléter votre profil avant de postuler")
	}

	existing, err := s.applicationRepo.GetByStudentAndInternship(ctx, student.ID, internshipID)
	if err != nil && !errors.Is(err, apperrors.ErrApplicationNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.NewConflictError("Vous avez déjà postulé à ce stage")
	}

	internship, err := s.internshipRepo.GetByID(ctx, internshipID)
	if err != nil || !internship.IsActive || !internship.HasAvailablePlaces() {
		return nil, apperrors.NewCustomError(apperrors.ErrInternshipUnavailable, "Ce stage n'est plus disponible")
	}

	application := &models.Application{
		StudentID:    student.ID,
		InternshipID: internshipID,
		Status:       models.ApplicationPending,
	}
	if err := s.applicationRepo.Create(ctx, application); err != nil {
		if dberrors.IsDuplicateConstraintError(err, "applications_student_internship_key") {
			return nil, apperrors.NewConflictError("Vous avez déjà postulé à ce stage")
		}
		return nil, err
	}

	// TODO: notify the service chief once a notification channel exists

	return application, nil
}

// ListApplications retrieves the student's applications, optionally filtered
// by status, with pagination
func (s *StudentService) ListApplications(ctx context.Context, userID int64, status string, page, size int) ([]*models.Application, dto.PaginationInfo, error) {
	student, err := s.getStudent(ctx, userID)
	if err != nil {
		return nil, dto.PaginationInfo{}, err
	}

	offset, limit := helpers.CalculateOffsetLimit(page, size)
	applications, total, err := s.applicationRepo.ListByStudent(ctx, student.ID, status, offset, limit)
	if err != nil {
		return nil, dto.PaginationInfo{}, err
	}

	return applications, helpers.NewPaginationInfo(total, page, limit), nil
}

// CancelApplication cancels the student's own pending application
func (s *StudentService) CancelApplication(ctx context.Context, userID, applicationID int64) error {
	student, err := s.getStudent(ctx, userID)
	if err != nil {
		return err
	}

	application, err := s.applicationRepo.GetByID(ctx, applicationID)
	if err != nil || application.StudentID != student.ID || application.Status != models.ApplicationPending {
		return apperrors.NewNotFoundError("Candidature non trouvée ou ne peut pas être annulée")
	}

	application.Status = models.ApplicationCancelled
	application.StampProcessed(time.Now())
	return s.applicationRepo.Update(ctx, application)
}

// ListEvaluations retrieves the student's evaluations with context
func (s *StudentService) ListEvaluations(ctx context.Context, userID int64) ([]*models.Evaluation, error) {
	student, err := s.getStudent(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.evaluationRepo.ListByStudent(ctx, student.ID)
}
