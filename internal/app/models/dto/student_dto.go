package dto

import "github.com/stagemed/stagemed/internal/app/models"

// UpdateProfileRequest represents the multipart profile update form.
// An optional document file rides along under the "document" field.
type UpdateProfileRequest struct {
	FirstName    string `form:"firstName" binding:"required"`
	LastName     string `form:"lastName" binding:"required"`
	Level        string `form:"level" binding:"required"`
	Phone        string `form:"phone"`
	DocumentName string `form:"documentName"`
}

// ApplicationStats counts a student's applications by status
type ApplicationStats struct {
	Pending  int64 `json:"pending"`
	Accepted int64 `json:"accepted"`
	Rejected int64 `json:"rejected"`
	Total    int64 `json:"total"`
}

// StudentDashboardResponse is the student dashboard payload
type StudentDashboardResponse struct {
	Student                *models.Student       `json:"student"`
	Applications           []*models.Application `json:"applications"`
	Stats                  ApplicationStats      `json:"stats"`
	RecommendedInternships []*models.Internship  `json:"recommendedInternships"`
}

// StudentProfileResponse wraps a student profile with its documents
type StudentProfileResponse struct {
	Student   *models.Student           `json:"student"`
	Documents []*models.StudentDocument `json:"documents"`
}

// InternshipDetailsResponse is an internship detail payload for a student,
// carrying whether they already applied
type InternshipDetailsResponse struct {
	Internship *models.Internship `json:"internship"`
	HasApplied bool               `json:"hasApplied"`
}
