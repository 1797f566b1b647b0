package validation

import "testing"

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"marie.dupont@univ.fr", true},
		{"doyen@stagemed.app", true},
		{"Marie@univ.fr", false},
		{"marie@univ", false},
		{"@univ.fr", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsValidEmail(tt.email); got != tt.want {
			t.Errorf("IsValidEmail(%q) = %v, want %v", tt.email, got, tt.want)
		}
	}
}

func TestIsValidMatricule(t *testing.T) {
	tests := []struct {
		matricule string
		want      bool
	}{
		{"MED2024001", true},
		{"AB123", true},
		{"ab123", false},
		{"AB12", false},
		{"MED 2024", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsValidMatricule(tt.matricule); got != tt.want {
			t.Errorf("IsValidMatricule(%q) = %v, want %v", tt.matricule, got, tt.want)
		}
	}
}

func TestIsValidLevel(t *testing.T) {
	for _, level := range Levels {
		if !IsValidLevel(level) {
			t.Errorf("IsValidLevel(%q) = false, want true", level)
		}
	}
	for _, level := range []string{"", "L4", "m1", "Doctorat"} {
		if IsValidLevel(level) {
			t.Errorf("IsValidLevel(%q) = true, want false", level)
		}
	}
}

func TestIsValidScore(t *testing.T) {
	tests := []struct {
		score float64
		want  bool
	}{
		{0, true},
		{10.5, true},
		{20, true},
		{-0.1, false},
		{20.1, false},
	}

	for _, tt := range tests {
		if got := IsValidScore(tt.score); got != tt.want {
			t.Errorf("IsValidScore(%v) = %v, want %v", tt.score, got, tt.want)
		}
	}
}

func TestStringValidation(t *testing.T) {
	tests := []struct {
		name string
		v    *StringValidation
		want bool
	}{
		{"required empty", NewStringValidation(""), false},
		{"optional empty", NewStringValidation("").WithRequired(false).WithMinLength(5), true},
		{"below min length", NewStringValidation("ab").WithMinLength(3), false},
		{"above max length", NewStringValidation("abcdef").WithMaxLength(5), false},
		{"within bounds", NewStringValidation("abcd").WithMinLength(2).WithMaxLength(5), true},
		{"pattern mismatch", NewStringValidation("med01").WithPattern(CompiledPatterns.Matricule), false},
		{"pattern match", NewStringValidation("MED2024001").WithPattern(CompiledPatterns.Matricule), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Validate(); got != tt.want {
				t.Errorf("Validate() = %v, want %v", got, tt.want)
			}
		})
	}
}
