package dto

// Response statuses used by the API envelope
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// APIResponse is the standard response envelope.
// Success responses carry data, error responses carry a message.
type APIResponse struct {
	Status  string        `json:"status" example:"success"`
	Message string        `json:"message,omitempty"`
	Data    interface{}   `json:"data,omitempty"`
	Errors  []ErrorDetail `json:"errors,omitempty"`
}

// NewSuccessResponse creates a success envelope around data
func NewSuccessResponse(data interface{}) *APIResponse {
	return &APIResponse{
		Status: StatusSuccess,
		Data:   data,
	}
}

// NewSuccessMessage creates a success envelope with only a message
func NewSuccessMessage(message string) *APIResponse {
	return &APIResponse{
		Status:  StatusSuccess,
		Message: message,
	}
}

// NewErrorResponse creates an error envelope with a message
func NewErrorResponse(message string) *APIResponse {
	return &APIResponse{
		Status:  StatusError,
		Message: message,
	}
}

// NewValidationErrorResponse creates an error envelope carrying per-field errors
func NewValidationErrorResponse(message string, errors []ErrorDetail) *APIResponse {
	return &APIResponse{
		Status:  StatusError,
		Message: message,
		Errors:  errors,
	}
}

// PaginationInfo describes the pagination state of a list response
type PaginationInfo struct {
	CurrentPage int   `json:"currentPage" example:"1"`
	TotalPages  int   `json:"totalPages" example:"5"`
	PageSize    int   `json:"pageSize" example:"10"`
	TotalItems  int64 `json:"totalItems" example:"42"`
}

// PaginatedList wraps a list payload with its pagination info
type PaginatedList struct {
	Items      interface{}    `json:"items"`
	Pagination PaginationInfo `json:"pagination"`
}
