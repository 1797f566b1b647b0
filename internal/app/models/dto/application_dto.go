package dto

import "github.com/stagemed/stagemed/internal/app/models"

// UpdateApplicationStatusRequest represents a chief's decision on an application
type UpdateApplicationStatusRequest struct {
	Status          string `json:"status" binding:"required"`
	RejectionReason string `json:"rejectionReason"`
}

// ChiefApplicationStats counts the applications on a chief's internships by status
type ChiefApplicationStats struct {
	Pending  int64 `json:"pending"`
	Accepted int64 `json:"accepted"`
	Rejected int64 `json:"rejected"`
}

// ChiefApplicationsResponse lists a chief's applications with per-status counts
type ChiefApplicationsResponse struct {
	Applications []*models.Application `json:"applications"`
	Stats        ChiefApplicationStats `json:"stats"`
}
