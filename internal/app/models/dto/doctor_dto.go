package dto

import "github.com/stagemed/stagemed/internal/app/models"

// DoctorDashboardResponse is the doctor dashboard payload
type DoctorDashboardResponse struct {
	Doctor               *models.Doctor       `json:"doctor"`
	PendingEvaluations   []*models.Evaluation `json:"pendingEvaluations"`
	CompletedEvaluations []*models.Evaluation `json:"completedEvaluations"`
}

// SupervisedStudent pairs an accepted application with its student and internship
type SupervisedStudent struct {
	Student     *models.Student     `json:"student"`
	Internship  *models.Internship  `json:"internship"`
	Application *models.Application `json:"application"`
}

// StudentDetailsResponse is a student profile as seen by a doctor,
// with the student's current accepted internship if any
type StudentDetailsResponse struct {
	Student    *models.Student    `json:"student"`
	Internship *models.Internship `json:"internship"`
}
