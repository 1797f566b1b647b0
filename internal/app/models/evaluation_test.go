package models

import (
	"testing"
	"time"
)

func floatPtr(v float64) *float64 { return &v }

func TestEvaluationNormalizeFinalScore(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name       string
		evaluation Evaluation
		wantScore  *float64
	}{
		{
			name: "all three scores set",
			evaluation: Evaluation{
				Attendance:           floatPtr(15),
				PracticalSkills:      floatPtr(12),
				ProfessionalBehavior: floatPtr(18),
			},
			wantScore: floatPtr(15),
		},
		{
			name: "missing one score leaves final score untouched",
			evaluation: Evaluation{
				Attendance:      floatPtr(15),
				PracticalSkills: floatPtr(12),
			},
			wantScore: nil,
		},
		{
			name:       "no scores at all",
			evaluation: Evaluation{},
			wantScore:  nil,
		},
		{
			name: "recomputed on an already validated record",
			evaluation: Evaluation{
				Status:               EvaluationValidated,
				Attendance:           floatPtr(10),
				PracticalSkills:      floatPtr(10),
				ProfessionalBehavior: floatPtr(16),
				FinalScore:           floatPtr(8),
			},
			wantScore: floatPtr(12),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.evaluation.Normalize(now)
			got := tt.evaluation.FinalScore
			if tt.wantScore == nil {
				if got != nil {
					t.Errorf("FinalScore = %v, want nil", *got)
				}
				return
			}
			if got == nil {
				t.Fatalf("FinalScore = nil, want %v", *tt.wantScore)
			}
			if *got != *tt.wantScore {
				t.Errorf("FinalScore = %v, want %v", *got, *tt.wantScore)
			}
		})
	}
}

func TestEvaluationNormalizeSubmittedAt(t *testing.T) {
	now := time.Now()

	e := Evaluation{Status: EvaluationSubmitted}
	e.Normalize(now)
	if e.SubmittedAt == nil || !e.SubmittedAt.Equal(now) {
		t.Fatal("expected submittedAt to be stamped on submission")
	}

	later := now.Add(time.Hour)
	e.Normalize(later)
	if !e.SubmittedAt.Equal(now) {
		t.Error("expected submittedAt to keep its first value")
	}

	draft := Evaluation{Status: EvaluationDraft}
	draft.Normalize(now)
	if draft.SubmittedAt != nil {
		t.Error("expected draft to stay unstamped")
	}
}

func TestEvaluationNormalizeChiefValidation(t *testing.T) {
	now := time.Now()

	e := Evaluation{Status: EvaluationSubmitted, ChiefValidation: true}
	e.Normalize(now)
	if e.Status != EvaluationValidated {
		t.Errorf("Status = %s, want %s", e.Status, EvaluationValidated)
	}
	if e.ChiefValidatedAt == nil || !e.ChiefValidatedAt.Equal(now) {
		t.Fatal("expected chiefValidatedAt to be stamped")
	}

	later := now.Add(time.Hour)
	e.Normalize(later)
	if !e.ChiefValidatedAt.Equal(now) {
		t.Error("expected chiefValidatedAt to keep its first value")
	}

	// Validation wins over whatever status the record carries.
	forced := Evaluation{Status: EvaluationDraft, ChiefValidation: true}
	forced.Normalize(now)
	if forced.Status != EvaluationValidated {
		t.Errorf("Status = %s, want %s", forced.Status, EvaluationValidated)
	}
}
