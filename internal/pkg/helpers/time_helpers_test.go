package helpers

import (
	"testing"
	"time"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		defaultDur time.Duration
		want       time.Duration
	}{
		{"hours", "2160h", time.Hour, 2160 * time.Hour},
		{"minutes", "30m", time.Hour, 30 * time.Minute},
		{"invalid falls back to default", "trois heures", 24 * time.Hour, 24 * time.Hour},
		{"empty falls back to default", "", time.Hour, time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseDuration(tt.input, tt.defaultDur); got != tt.want {
				t.Errorf("ParseDuration(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
