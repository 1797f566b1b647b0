package services

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/stagemed/stagemed/internal/app/models"
	"github.com/stagemed/stagemed/internal/app/models/dto"
	"github.com/stagemed/stagemed/internal/app/repositories"
	"github.com/stagemed/stagemed/internal/pkg/apperrors"
	"github.com/stagemed/stagemed/internal/pkg/auth"
)

// Login failure messages. Wrong identifier and wrong password produce the
// same message so the endpoint does not leak which accounts exist.
const (
	msgBadMatricule    = "Matricule ou mot de passe incorrect"
	msgBadEmail        = "Email ou mot de passe incorrect"
	msgAccountDisabled = "Votre compte est désactivé. Contactez l'administration."
)

// AuthService handles authentication operations
type AuthService struct {
	userRepo    *repositories.UserRepository
	studentRepo *repositories.StudentRepository
	profileRepo *repositories.ProfileRepository
	jwtService  *auth.JWTService
	logger      zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo *repositories.UserRepository,
	studentRepo *repositories.StudentRepository,
	profileRepo *repositories.ProfileRepository,
	jwtService *auth.JWTService,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		studentRepo: studentRepo,
		profileRepo: profileRepo,
		jwtService:  jwtService,
		logger:      logger,
	}
}

// Login authenticates a user by matricule (students) or email (every other
// role) and returns the user with a signed token.
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*models.User, string, error) {
	var user *models.User

	if req.Matricule != "" {
		student, err := s.studentRepo.GetByMatricule(ctx, strings.ToUpper(strings.TrimSpace(req.Matricule)))
		if err != nil {
			return nil, "", apperrors.NewCustomError(apperrors.ErrInvalidCredentials, msgBadMatricule)
		}
		user, err = s.userRepo.GetByID(ctx, student.UserID)
		if err != nil {
			return nil, "", apperrors.NewCustomError(apperrors.ErrInvalidCredentials, msgBadMatricule)
		}
		if !auth.CheckPassword(req.Password, user.Password) {
			return nil, "", apperrors.NewCustomError(apperrors.ErrInvalidCredentials, msgBadMatricule)
		}
	} else {
		var err error
		user, err = s.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
		if err != nil {
			return nil, "", apperrors.NewCustomError(apperrors.ErrInvalidCredentials, msgBadEmail)
		}
		if !auth.CheckPassword(req.Password, user.Password) {
			return nil, "", apperrors.NewCustomError(apperrors.ErrInvalidCredentials, msgBadEmail)
		}
	}

	if !user.IsActive {
		return nil, "", apperrors.NewCustomError(apperrors.ErrAccountDisabled, msgAccountDisabled)
	}

	if err := s.userRepo.UpdateLastLogin(ctx, user.ID); err != nil {
		s.logger.Warn().Err(err).Int64("userId", user.ID).Msg("Failed to update last login")
	}

	token, err := s.jwtService.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// ChangePassword verifies the current password and replaces it, clearing
// the must-change-password flag.
func (s *AuthService) ChangePassword(ctx context.Context, userID int64, req dto.ChangePasswordRequest) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if !auth.CheckPassword(req.CurrentPassword, user.Password) {
		return apperrors.NewCustomError(apperrors.ErrWrongCurrentPassword, "Mot de passe actuel incorrect")
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}

	return s.userRepo.UpdatePassword(ctx, userID, hash, false)
}

// GetProfile loads the role-specific profile for an authenticated user
func (s *AuthService) GetProfile(ctx context.Context, userID int64) (interface{}, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	switch user.Role {
	case models.RoleStudent:
		student, err := s.studentRepo.GetByUserID(ctx, userID)
		if err != nil {
			return nil, err
		}
		student.User = sanitizeUser(user)
		return student, nil

	case models.RoleDoctor:
		doctor, err := s.profileRepo.GetDoctorByUserID(ctx, userID)
		if err != nil {
			return nil, err
		}
		doctor.User = sanitizeUser(user)
		return doctor, nil

	case models.RoleServiceChief:
		chief, err := s.profileRepo.GetChiefByUserID(ctx, userID)
		if err != nil {
			return nil, err
		}
		chief.User = sanitizeUser(user)
		return chief, nil

	case models.RoleDean:
		dean, err := s.profileRepo.GetDeanByUserID(ctx, userID)
		if err != nil {
			return nil, err
		}
		dean.User = sanitizeUser(user)
		return dean, nil
	}

	return nil, apperrors.ErrUserNotFound
}

// TokenExpiry exposes the configured token lifetime for cookie settings
func (s *AuthService) TokenExpiry() time.Duration {
	return s.jwtService.TokenExpiry()
}

func sanitizeUser(user *models.User) *models.User {
	clone := *user
	clone.Password = ""
	return &clone
}
