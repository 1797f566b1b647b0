package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrAccountDisabled    = errors.New("account is disabled")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// User errors
var (
	ErrUserNotFound          = errors.New("user not found")
	ErrEmailAlreadyExists    = errors.New("email already exists")
	ErrWrongCurrentPassword  = errors.New("current password is incorrect")
)

// Student errors
var (
	ErrStudentNotFound         = errors.New("student profile not found")
	ErrMatriculeAlreadyExists  = errors.New("matricule already exists")
	ErrProfileIncomplete       = errors.New("student profile is not complete")
)

// Doctor errors
var (
	ErrDoctorNotFound       = errors.New("doctor profile not found")
	ErrLicenseAlreadyExists = errors.New("license number already exists")
)

// Service chief / dean errors
var (
	ErrChiefNotFound = errors.New("service chief profile not found")
	ErrDeanNotFound  = errors.New("dean profile not found")
)

// Organizational errors
var (
	ErrEstablishmentNotFound     = errors.New("establishment not found")
	ErrServiceNotFound           = errors.New("service not found")
	ErrServiceCodeAlreadyExists  = errors.New("service with this code already exists")
)

// Internship / application / evaluation errors
var (
	ErrInternshipNotFound      = errors.New("internship not found")
	ErrInternshipUnavailable   = errors.New("internship is no longer available")
	ErrApplicationNotFound     = errors.New("application not found")
	ErrAlreadyApplied          = errors.New("an application for this internship already exists")
	ErrInvalidStatusTransition = errors.New("invalid application status transition")
	ErrEvaluationNotFound      = errors.New("evaluation not found")
)

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements the error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with an underlying sentinel error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// NewNotFoundError creates a not-found error with a message
func NewNotFoundError(message string) error {
	return &CustomError{Err: ErrResourceNotFound, Message: message}
}

// NewConflictError creates a conflict error with a message
func NewConflictError(message string) error {
	return &CustomError{Err: ErrConflict, Message: message}
}

// NewForbiddenError creates a permission-denied error with a message
func NewForbiddenError(message string) error {
	return &CustomError{Err: ErrPermissionDenied, Message: message}
}

// NewBadRequestError creates a bad-request error with a message
func NewBadRequestError(message string) error {
	return &CustomError{Err: ErrBadRequest, Message: message}
}
