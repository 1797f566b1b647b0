package dto

import "github.com/stagemed/stagemed/internal/app/models"

// ChiefStats summarizes a service chief's workload
type ChiefStats struct {
	PendingApplications int64 `json:"pendingApplications"`
	ActiveInternships   int64 `json:"activeInternships"`
	PendingEvaluations  int64 `json:"pendingEvaluations"`
	TotalStudents       int64 `json:"totalStudents"`
}

// ChiefDashboardResponse is the service chief dashboard payload
type ChiefDashboardResponse struct {
	Chief              *models.ServiceChief  `json:"chief"`
	Stats              ChiefStats            `json:"stats"`
	UrgentApplications []*models.Application `json:"urgentApplications"`
	ActiveInternships  []*models.Internship  `json:"activeInternships"`
	PendingEvaluations []*models.Evaluation  `json:"pendingEvaluations"`
}
