package models

import (
	"testing"
	"time"
)

func TestApplicationStatusCanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from ApplicationStatus
		to   ApplicationStatus
		want bool
	}{
		{"pending to accepted", ApplicationPending, ApplicationAccepted, true},
		{"pending to rejected", ApplicationPending, ApplicationRejected, true},
		{"pending to cancelled", ApplicationPending, ApplicationCancelled, true},
		{"accepted to rejected", ApplicationAccepted, ApplicationRejected, false},
		{"accepted to cancelled", ApplicationAccepted, ApplicationCancelled, false},
		{"rejected to accepted", ApplicationRejected, ApplicationAccepted, false},
		{"cancelled to pending", ApplicationCancelled, ApplicationPending, false},
		{"pending to pending", ApplicationPending, ApplicationPending, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.from.CanTransitionTo(tt.to); got != tt.want {
				t.Errorf("CanTransitionTo(%s -> %s) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestApplicationStampProcessed(t *testing.T) {
	now := time.Now()

	a := Application{Status: ApplicationAccepted}
	a.StampProcessed(now)
	if a.ProcessedAt == nil || !a.ProcessedAt.Equal(now) {
		t.Fatal("expected processedAt to be stamped")
	}

	later := now.Add(time.Hour)
	a.StampProcessed(later)
	if !a.ProcessedAt.Equal(now) {
		t.Error("expected processedAt to keep its first value")
	}

	pending := Application{Status: ApplicationPending}
	pending.StampProcessed(now)
	if pending.ProcessedAt != nil {
		t.Error("expected pending application to stay unstamped")
	}
}

func TestInternshipHasAvailablePlaces(t *testing.T) {
	tests := []struct {
		name   string
		places int
		want   bool
	}{
		{"places left", 3, true},
		{"one place", 1, true},
		{"full", 0, false},
		{"negative after overdrawn accept", -1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			i := Internship{AvailablePlaces: tt.places}
			if got := i.HasAvailablePlaces(); got != tt.want {
				t.Errorf("HasAvailablePlaces() with %d places = %v, want %v", tt.places, got, tt.want)
			}
		})
	}
}
