package models

import (
	"testing"
	"time"
)

func TestStudentCheckProfileCompletion(t *testing.T) {
	now := time.Now()

	complete := Student{
		FirstName: "Marie",
		LastName:  "Dupont",
		Level:     "L3",
		Phone:     "+33 6 00 00 00 00",
	}

	tests := []struct {
		name     string
		student  Student
		docCount int
		want     bool
	}{
		{"all fields and a document", complete, 1, true},
		{"no documents", complete, 0, false},
		{"missing first name", Student{LastName: "Dupont", Level: "L3", Phone: "06"}, 1, false},
		{"missing last name", Student{FirstName: "Marie", Level: "L3", Phone: "06"}, 1, false},
		{"missing level", Student{FirstName: "Marie", LastName: "Dupont", Phone: "06"}, 1, false},
		{"missing phone", Student{FirstName: "Marie", LastName: "Dupont", Level: "L3"}, 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tt.student
			if got := s.CheckProfileCompletion(tt.docCount, now); got != tt.want {
				t.Errorf("CheckProfileCompletion() = %v, want %v", got, tt.want)
			}
			if s.ProfileCompleted != tt.want {
				t.Errorf("ProfileCompleted = %v, want %v", s.ProfileCompleted, tt.want)
			}
			if tt.want && (s.CompletedAt == nil || !s.CompletedAt.Equal(now)) {
				t.Error("expected completedAt to be stamped")
			}
		})
	}
}

func TestStudentCheckProfileCompletionKeepsFirstStamp(t *testing.T) {
	now := time.Now()

	s := Student{FirstName: "Marie", LastName: "Dupont", Level: "L3", Phone: "06"}
	s.CheckProfileCompletion(1, now)
	if !s.ProfileCompleted {
		t.Fatal("expected profile to be completed")
	}

	later := now.Add(time.Hour)
	s.CheckProfileCompletion(1, later)
	if !s.CompletedAt.Equal(now) {
		t.Error("expected completedAt to keep its first value")
	}

	// Removing a field afterwards does not revert the flag.
	s.Phone = ""
	if got := s.CheckProfileCompletion(1, later); got {
		t.Error("expected completion check to report false")
	}
	if !s.ProfileCompleted {
		t.Error("expected profile to stay completed")
	}
}
