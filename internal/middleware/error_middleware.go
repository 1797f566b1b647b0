package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/stagemed/stagemed/internal/app/models/dto"
	"github.com/stagemed/stagemed/internal/pkg/apperrors"
)

const msgInternalError = "Une erreur interne est survenue"

// HandleAPIError maps an application error onto an HTTP status and writes
// the error envelope. Controllers delegate every service error here.
func HandleAPIError(c *gin.Context, err error) {
	status := statusFor(err)

	message := err.Error()
	var customErr *apperrors.CustomError
	if errors.As(err, &customErr) && customErr.Message != "" {
		message = customErr.Message
	}
	if status == http.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Unhandled API error")
		message = msgInternalError
	}

	c.JSON(status, dto.NewErrorResponse(message))
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrInvalidCredentials),
		errors.Is(err, apperrors.ErrWrongCurrentPassword),
		errors.Is(err, apperrors.ErrTokenExpired),
		errors.Is(err, apperrors.ErrTokenInvalid),
		errors.Is(err, apperrors.ErrAccountDisabled):
		return http.StatusUnauthorized

	case errors.Is(err, apperrors.ErrPermissionDenied):
		return http.StatusForbidden

	case errors.Is(err, apperrors.ErrResourceNotFound),
		errors.Is(err, apperrors.ErrUserNotFound),
		errors.Is(err, apperrors.ErrStudentNotFound),
		errors.Is(err, apperrors.ErrDoctorNotFound),
		errors.Is(err, apperrors.ErrChiefNotFound),
		errors.Is(err, apperrors.ErrDeanNotFound),
		errors.Is(err, apperrors.ErrEstablishmentNotFound),
		errors.Is(err, apperrors.ErrServiceNotFound),
		errors.Is(err, apperrors.ErrInternshipNotFound),
		errors.Is(err, apperrors.ErrApplicationNotFound),
		errors.Is(err, apperrors.ErrEvaluationNotFound):
		return http.StatusNotFound

	case errors.Is(err, apperrors.ErrConflict),
		errors.Is(err, apperrors.ErrAlreadyApplied),
		errors.Is(err, apperrors.ErrEmailAlreadyExists),
		errors.Is(err, apperrors.ErrMatriculeAlreadyExists),
		errors.Is(err, apperrors.ErrLicenseAlreadyExists),
		errors.Is(err, apperrors.ErrServiceCodeAlreadyExists),
		errors.Is(err, apperrors.ErrInvalidStatusTransition):
		return http.StatusConflict

	case errors.Is(err, apperrors.ErrBadRequest),
		errors.Is(err, apperrors.ErrValidationFailed),
		errors.Is(err, apperrors.ErrProfileIncomplete),
		errors.Is(err, apperrors.ErrInternshipUnavailable):
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}
