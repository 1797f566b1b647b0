package dto

// SubmitEvaluationRequest carries a doctor's scores and comments.
// Scores are on a 0-20 scale.
type SubmitEvaluationRequest struct {
	Attendance           *float64 `json:"attendance" binding:"required"`
	PracticalSkills      *float64 `json:"practicalSkills" binding:"required"`
	ProfessionalBehavior *float64 `json:"professionalBehavior" binding:"required"`
	DoctorComments       string   `json:"doctorComments"`
}

// ValidateEvaluationRequest carries a chief's validation comments
type ValidateEvaluationRequest struct {
	ChiefComments string `json:"chiefComments"`
}
