package dto

import (
	"time"

	"github.com/stagemed/stagemed/internal/app/models"
)

// CreateUserRequest represents a dean's user creation request. Role-specific
// fields are required depending on the role.
type CreateUserRequest struct {
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,min=6"`
	Role            string `json:"role" binding:"required"`
	FirstName       string `json:"firstName" binding:"required"`
	LastName        string `json:"lastName" binding:"required"`
	Phone           string `json:"phone"`
	Matricule       string `json:"matricule"`
	Level           string `json:"level"`
	Specialty       string `json:"specialty"`
	LicenseNumber   string `json:"licenseNumber"`
	ServiceID       int64  `json:"serviceId"`
	EstablishmentID int64  `json:"establishmentId"`
}

// CreateEstablishmentRequest represents a new establishment
type CreateEstablishmentRequest struct {
	Name       string `json:"name" binding:"required"`
	Street     string `json:"street"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	Type       string `json:"type"`
}

// CreateServiceRequest represents a new medical service
type CreateServiceRequest struct {
	Name            string `json:"name" binding:"required"`
	Description     string `json:"description"`
	Code            string `json:"code" binding:"required"`
	EstablishmentID int64  `json:"establishmentId" binding:"required,min=1"`
	Capacity        int    `json:"capacity"`
}

// DeanStats summarizes the platform for the dean dashboard
type DeanStats struct {
	TotalStudents          int64   `json:"totalStudents"`
	StudentsWithInternship int64   `json:"studentsWithInternship"`
	TotalDoctors           int64   `json:"totalDoctors"`
	TotalServiceChiefs     int64   `json:"totalServiceChiefs"`
	TotalEstablishments    int64   `json:"totalEstablishments"`
	TotalServices          int64   `json:"totalServices"`
	ActiveInternships      int64   `json:"activeInternships"`
	PlacementRate          float64 `json:"placementRate"`
}

// DeanAlerts carries the dashboard alert counters
type DeanAlerts struct {
	StudentsWithoutInternship  int64 `json:"studentsWithoutInternship"`
	ServicesWithoutInternships int64 `json:"servicesWithoutInternships"`
}

// DeanDashboardResponse is the dean dashboard payload
type DeanDashboardResponse struct {
	Dean                 *models.Dean            `json:"dean"`
	Stats                DeanStats               `json:"stats"`
	RecentStudents       []*models.Student       `json:"recentStudents"`
	RecentEstablishments []*models.Establishment `json:"recentEstablishments"`
	Alerts               DeanAlerts              `json:"alerts"`
}

// ResetPasswordResponse carries the temporary password issued on reset
type ResetPasswordResponse struct {
	TempPassword string `json:"tempPassword"`
}

// ToggleStatusResponse reports the new activation state of a user
type ToggleStatusResponse struct {
	IsActive bool `json:"isActive"`
}

// LevelCount is the number of students at a study level
type LevelCount struct {
	Level string `json:"level"`
	Count int64  `json:"count"`
}

// EstablishmentStat counts internships per establishment
type EstablishmentStat struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	InternshipCount int64  `json:"internshipCount"`
	ActiveCount     int64  `json:"activeCount"`
}

// ServiceStat counts internships per service
type ServiceStat struct {
	ID                int64  `json:"id"`
	Name              string `json:"name"`
	Code              string `json:"code"`
	InternshipCount   int64  `json:"internshipCount"`
	ActiveInternships int64  `json:"activeInternships"`
}

// MonthlyTrend counts internships created in a given month
type MonthlyTrend struct {
	Year  int   `json:"year"`
	Month int   `json:"month"`
	Count int64 `json:"count"`
}

// StudentStatistics groups student counters for the statistics page
type StudentStatistics struct {
	ByLevel           []LevelCount `json:"byLevel"`
	WithInternship    int64        `json:"withInternship"`
	WithoutInternship int64        `json:"withoutInternship"`
}

// StatisticsResponse is the dean statistics payload
type StatisticsResponse struct {
	Students       StudentStatistics   `json:"students"`
	Establishments []EstablishmentStat `json:"establishments"`
	Services       []ServiceStat       `json:"services"`
	MonthlyTrends  []MonthlyTrend      `json:"monthlyTrends"`
}

// ExportReportResponse is the aggregate report payload. The placement rate
// is formatted with one decimal as a string.
type ExportReportResponse struct {
	GeneratedAt          time.Time `json:"generatedAt"`
	TotalStudents        int64     `json:"totalStudents"`
	TotalInternships     int64     `json:"totalInternships"`
	PlacementRate        string    `json:"placementRate"`
	ActiveEstablishments int64     `json:"activeEstablishments"`
	ActiveServices       int64     `json:"activeServices"`
}
