package models

import "time"

// EvaluationStatus represents the lifecycle state of an evaluation
type EvaluationStatus string

const (
	EvaluationDraft     EvaluationStatus = "draft"
	EvaluationSubmitted EvaluationStatus = "submitted"
	EvaluationValidated EvaluationStatus = "validated"
	EvaluationRejected  EvaluationStatus = "rejected"
)

// IsValid reports whether the status is one of the known states
func (s EvaluationStatus) IsValid() bool {
	switch s {
	case EvaluationDraft, EvaluationSubmitted, EvaluationValidated, EvaluationRejected:
		return true
	}
	return false
}

// Evaluation defines the evaluation model based on the 'evaluations' table.
// One evaluation exists per (application, doctor) pair.
type Evaluation struct {
	ID            int64 `json:"id" db:"id"`
	ApplicationID int64 `json:"applicationId" db:"application_id"`
	StudentID     int64 `json:"studentId" db:"student_id"`
	InternshipID  int64 `json:"internshipId" db:"internship_id"`
	DoctorID      int64 `json:"doctorId" db:"doctor_id"`
	ChiefID       int64 `json:"chiefId" db:"chief_id"`

	// Scores from the doctor, 0-20 scale
	Attendance           *float64 `json:"attendance,omitempty" db:"attendance"`
	PracticalSkills      *float64 `json:"practicalSkills,omitempty" db:"practical_skills"`
	ProfessionalBehavior *float64 `json:"professionalBehavior,omitempty" db:"professional_behavior"`
	DoctorComments       string   `json:"doctorComments,omitempty" db:"doctor_comments"`

	// Validation from the chief
	ChiefValidation  bool       `json:"chiefValidation" db:"chief_validation"`
	ChiefComments    string     `json:"chiefComments,omitempty" db:"chief_comments"`
	ChiefValidatedAt *time.Time `json:"chiefValidatedAt,omitempty" db:"chief_validated_at"`

	FinalScore           *float64         `json:"finalScore,omitempty" db:"final_score"`
	Status               EvaluationStatus `json:"status" db:"status"`
	SubmittedAt          *time.Time       `json:"submittedAt,omitempty" db:"submitted_at"`
	CertificateGenerated bool             `json:"certificateGenerated" db:"certificate_generated"`
	CertificatePath      string           `json:"certificatePath,omitempty" db:"certificate_path"`

	Student    *Student      `json:"student,omitempty"`
	Internship *Internship   `json:"internship,omitempty"`
	Doctor     *Doctor       `json:"doctor,omitempty"`
	Chief      *ServiceChief `json:"chief,omitempty"`
}

// Normalize applies the persistence-time rules and is called before every
// save. The final score is recomputed whenever all three sub-scores are set,
// including on records already validated. Chief validation forces the
// validated status whatever the current one is.
func (e *Evaluation) Normalize(now time.Time) {
	if e.Attendance != nil && e.PracticalSkills != nil && e.ProfessionalBehavior != nil {
		score := (*e.Attendance + *e.PracticalSkills + *e.ProfessionalBehavior) / 3
		e.FinalScore = &score
	}

	if e.Status == EvaluationSubmitted && e.SubmittedAt == nil {
		e.SubmittedAt = &now
	}

	if e.ChiefValidation && e.ChiefValidatedAt == nil {
		e.ChiefValidatedAt = &now
		e.Status = EvaluationValidated
	}
}
