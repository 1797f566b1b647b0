package dto

// ErrorCode represents standardized error codes
type ErrorCode string

// Standard error codes for the application
const (
	// Authentication errors
	ErrorCodeInvalidCredentials ErrorCode = "AUTH_001"
	ErrorCodeInvalidToken       ErrorCode = "AUTH_002"
	ErrorCodeExpiredToken       ErrorCode = "AUTH_003"
	ErrorCodeTokenNotFound      ErrorCode = "AUTH_004"
	ErrorCodeAccountDisabled    ErrorCode = "AUTH_005"
	ErrorCodeForbidden          ErrorCode = "AUTH_006"

	// Resource errors
	ErrorCodeResourceNotFound      ErrorCode = "RES_001"
	ErrorCodeResourceAlreadyExists ErrorCode = "RES_002"

	// Validation errors
	ErrorCodeValidationFailed ErrorCode = "VAL_001"

	// Server errors
	ErrorCodeInternalServer ErrorCode = "SRV_001"
)

// ErrorDetail represents a single field or domain error
type ErrorDetail struct {
	Code    ErrorCode `json:"code,omitempty" example:"VAL_001"`
	Field   string    `json:"field,omitempty" example:"email"`
	Message string    `json:"message" example:"Email invalide"`
}

// NewErrorDetail creates a new error detail
func NewErrorDetail(code ErrorCode, message string) ErrorDetail {
	return ErrorDetail{
		Code:    code,
		Message: message,
	}
}

// NewFieldError creates a validation error bound to a field
func NewFieldError(field, message string) ErrorDetail {
	return ErrorDetail{
		Code:    ErrorCodeValidationFailed,
		Field:   field,
		Message: message,
	}
}
