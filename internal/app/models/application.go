package models

import "time"

// ApplicationStatus represents the lifecycle state of an application
type ApplicationStatus string

const (
	ApplicationPending   ApplicationStatus = "pending"
	ApplicationAccepted  ApplicationStatus = "accepted"
	ApplicationRejected  ApplicationStatus = "rejected"
	ApplicationCancelled ApplicationStatus = "cancelled"
)

// IsValid reports whether the status is one of the known states
func (s ApplicationStatus) IsValid() bool {
	switch s {
	case ApplicationPending, ApplicationAccepted, ApplicationRejected, ApplicationCancelled:
		return true
	}
	return false
}

// CanTransitionTo reports whether the status may move to next. Only pending
// applications move; accepted, rejected and cancelled are terminal.
func (s ApplicationStatus) CanTransitionTo(next ApplicationStatus) bool {
	if s != ApplicationPending {
		return false
	}
	switch next {
	case ApplicationAccepted, ApplicationRejected, ApplicationCancelled:
		return true
	}
	return false
}

// Application defines the application model based on the 'applications' table
type Application struct {
	ID              int64             `json:"id" db:"id"`
	StudentID       int64             `json:"studentId" db:"student_id"`
	InternshipID    int64             `json:"internshipId" db:"internship_id"`
	Status          ApplicationStatus `json:"status" db:"status"`
	AppliedAt       time.Time         `json:"appliedAt" db:"applied_at"`
	ProcessedAt     *time.Time        `json:"processedAt,omitempty" db:"processed_at"`
	ProcessedBy     *int64            `json:"processedBy,omitempty" db:"processed_by"`
	RejectionReason string            `json:"rejectionReason,omitempty" db:"rejection_reason"`
	Notes           string            `json:"notes,omitempty" db:"notes"`

	Student    *Student    `json:"student,omitempty"`
	Internship *Internship `json:"internship,omitempty"`
}

// StampProcessed records the processing time once the application leaves
// the pending state.
func (a *Application) StampProcessed(now time.Time) {
	if a.Status != ApplicationPending && a.ProcessedAt == nil {
		a.ProcessedAt = &now
	}
}
