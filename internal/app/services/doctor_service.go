package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/stagemed/stagemed/internal/app/models"
	"github.com/stagemed/stagemed/internal/app/models/dto"
	"github.com/stagemed/stagemed/internal/app/repositories"
	"github.com/stagemed/stagemed/internal/pkg/apperrors"
	"github.com/stagemed/stagemed/internal/pkg/validation"
)

// DoctorService handles the doctor operations
type DoctorService struct {
	profileRepo     *repositories.ProfileRepository
	studentRepo     *repositories.StudentRepository
	internshipRepo  *repositories.InternshipRepository
	applicationRepo *repositories.ApplicationRepository
	evaluationRepo  *repositories.EvaluationRepository
	logger          zerolog.Logger
}

// NewDoctorService creates a new DoctorService
func NewDoctorService(
	profileRepo *repositories.ProfileRepository,
	studentRepo *repositories.StudentRepository,
	internshipRepo *repositories.InternshipRepository,
	applicationRepo *repositories.ApplicationRepository,
	evaluationRepo *repositories.EvaluationRepository,
	logger zerolog.Logger,
) *DoctorService {
	return &DoctorService{
		profileRepo:     profileRepo,
		studentRepo:     studentRepo,
		internshipRepo:  internshipRepo,
		applicationRepo: applicationRepo,
		evaluationRepo:  evaluationRepo,
		logger:          logger,
	}
}

func (s *DoctorService) getDoctor(ctx context.Context, userID int64) (*models.Doctor, error) {
	doctor, err := s.profileRepo.GetDoctorByUserID(ctx, userID)
	if err != nil {
		return nil, apperrors.NewCustomError(apperrors.ErrDoctorNotFound, "Profil médecin non trouvé")
	}
	return doctor, nil
}

// GetDashboard assembles the doctor dashboard: evaluations still in draft
// and the recently submitted ones.
func (s *DoctorService) GetDashboard(ctx context.Context, userID int64) (*dto.DoctorDashboardResponse, error) {
	doctor, err := s.getDoctor(ctx, userID)
	if err != nil {
		return nil, err
	}

	pending, err := s.evaluationRepo.ListByDoctor(ctx, doctor.ID, string(models.EvaluationDraft), 0)
	if err != nil {
		return nil, err
	}

	completed, err := s.evaluationRepo.ListByDoctor(ctx, doctor.ID, string(models.EvaluationSubmitted), 5)
	if err != nil {
		return nil, err
	}

	return &dto.DoctorDashboardResponse{
		Doctor:               doctor,
		PendingEvaluations:   pending,
		CompletedEvaluations: completed,
	}, nil
}

// GetStudents lists the students with an accepted application in the
// doctor's service and establishment
func (s *DoctorService) GetStudents(ctx context.Context, userID int64) ([]dto.SupervisedStudent, error) {
	doctor, err := s.getDoctor(ctx, userID)
	if err != nil {
		return nil, err
	}

	applications, err := s.applicationRepo.ListAcceptedByServiceAndEstablishment(ctx, doctor.ServiceID, doctor.EstablishmentID)
	if err != nil {
		return nil, err
	}

	students := make([]dto.SupervisedStudent, 0, len(applications))
	for _, a := range applications {
		students = append(students, dto.SupervisedStudent{
			Student:     a.Student,
			Internship:  a.Internship,
			Application: a,
		})
	}
	return students, nil
}

// GetStudentDetails loads a student's profile with their current accepted
// internship if any
func (s *DoctorService) GetStudentDetails(ctx context.Context, userID, studentID int64) (*dto.StudentDetailsResponse, error) {
	if _, err := s.getDoctor(ctx, userID); err != nil {
		return nil, err
	}

	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, apperrors.NewNotFoundError("Étudiant non trouvé")
	}

	var internship *models.Internship
	accepted, err := s.applicationRepo.GetAcceptedByStudent(ctx, student.ID)
	if err != nil {
		return nil, err
	}
	if accepted != nil {
		internship = accepted.Internship
	}

	return &dto.StudentDetailsResponse{
		Student:    student,
		Internship: internship,
	}, nil
}

// ListEvaluations retrieves the doctor's evaluations, optionally filtered by status
func (s *DoctorService) ListEvaluations(ctx context.Context, userID int64, status string) ([]*models.Evaluation, error) {
	doctor, err := s.getDoctor(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.evaluationRepo.ListByDoctor(ctx, doctor.ID, status, 0)
}

// CreateEvaluation opens a draft evaluation on an accepted application.
// Calling it again for the same application returns the existing one.
func (s *DoctorService) CreateEvaluation(ctx context.Context, userID, applicationID int64) (*models.Evaluation, error) {
	doctor, err := s.getDoctor(ctx, userID)
	if err != nil {
		return nil, err
	}

	existing, err := s.evaluationRepo.GetByApplicationAndDoctor(ctx, applicationID, doctor.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	application, err := s.applicationRepo.GetByID(ctx, applicationID)
	if err != nil || application.Status != models.ApplicationAccepted {
		return nil, apperrors.NewNotFoundError("Candidature non trouvée ou non acceptée")
	}

	internship, err := s.internshipRepo.GetByID(ctx, application.InternshipID)
	if err != nil {
		return nil, err
	}

	evaluation := &models.Evaluation{
		ApplicationID: application.ID,
		StudentID:     application.StudentID,
		InternshipID:  application.InternshipID,
		DoctorID:      doctor.ID,
		ChiefID:       internship.ChiefID,
		Status:        models.EvaluationDraft,
	}
	if err := s.evaluationRepo.Create(ctx, evaluation); err != nil {
		return nil, err
	}

	return evaluation, nil
}

// SubmitEvaluation records the doctor's scores on one of their evaluations
// and submits it for chief validation
func (s *DoctorService) SubmitEvaluation(ctx context.Context, userID, evaluationID int64, req dto.SubmitEvaluationRequest) (*models.Evaluation, error) {
	doctor, err := s.getDoctor(ctx, userID)
	if err != nil {
		return nil, err
	}

	for _, score := range []*float64{req.Attendance, req.PracticalSkills, req.ProfessionalBehavior} {
		if score == nil || !validation.IsValidScore(*score) {
			return nil, apperrors.NewBadRequestError("Les notes doivent être comprises entre 0 et 20")
		}
	}

	evaluation, err := s.evaluationRepo.GetOwnedByDoctor(ctx, evaluationID, doctor.ID)
	if err != nil {
		return nil, apperrors.NewNotFoundError("Évaluation non trouvée")
	}

	evaluation.Attendance = req.Attendance
	evaluation.PracticalSkills = req.PracticalSkills
	evaluation.ProfessionalBehavior = req.ProfessionalBehavior
	evaluation.DoctorComments = req.DoctorComments
	evaluation.Status = models.EvaluationSubmitted
	evaluation.Normalize(time.Now())

	if err := s.evaluationRepo.Update(ctx, evaluation); err != nil {
		return nil, err
	}

	// TODO: notify the chief once a notification channel exists

	return evaluation, nil
}
