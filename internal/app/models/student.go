package models

import (
	"time"
)

// Student defines the student model based on the 'students' table
type Student struct {
	ID               int64      `json:"id" db:"id"`
	UserID           int64      `json:"userId" db:"user_id"`
	Matricule        string     `json:"matricule" db:"matricule"` // Stored uppercase
	FirstName        string     `json:"firstName" db:"first_name"`
	LastName         string     `json:"lastName" db:"last_name"`
	Level            StudyLevel `json:"level" db:"level"`
	Phone            string     `json:"phone" db:"phone"`
	ProfileCompleted bool       `json:"profileCompleted" db:"profile_completed"`
	CompletedAt      *time.Time `json:"completedAt,omitempty" db:"completed_at"`
	User             *User      `json:"user,omitempty"` // Relation, no db tag
}

// StudentDocument defines a document uploaded by a student
type StudentDocument struct {
	ID           int64     `json:"id" db:"id"`
	StudentID    int64     `json:"studentId" db:"student_id"`
	Name         string    `json:"name" db:"name"`
	FilePath     string    `json:"filePath" db:"file_path"`
	OriginalName string    `json:"originalName" db:"original_name"`
	FileSize     int64     `json:"fileSize" db:"file_size"`
	UploadDate   time.Time `json:"uploadDate" db:"upload_date"`
}

// CheckProfileCompletion marks the profile completed when all required
// fields are filled and at least one document has been uploaded. A profile
// that was completed once stays completed.
func (s *Student) CheckProfileCompletion(documentCount int, now time.Time) bool {
	isCompleted := s.FirstName != "" &&
		s.LastName != "" &&
		s.Level != "" &&
		s.Phone != "" &&
		documentCount > 0

	if isCompleted && !s.ProfileCompleted {
		s.ProfileCompleted = true
		s.CompletedAt = &now
	}

	return isCompleted
}
