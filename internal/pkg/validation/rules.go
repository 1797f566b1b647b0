package validation

import (
	"regexp"
)

// Validation rule patterns
var (
	// Email validation pattern
	EmailPattern = `^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,4}$`

	// Matricule pattern, at least 5 alphanumeric characters
	MatriculePattern = `^[A-Z0-9]{5,20}$`

	// Password min length
	PasswordMinLength = 6

	// Name validation min/max length
	NameMinLength = 2
	NameMaxLength = 100

	// Evaluation score bounds
	ScoreMin = 0.0
	ScoreMax = 20.0
)

// Levels lists the accepted study levels
var Levels = []string{"L1", "L2", "L3", "M1", "M2"}

// CompiledPatterns caches compiled regex patterns for better performance
var CompiledPatterns = struct {
	Email     *regexp.Regexp
	Matricule *regexp.Regexp
}{
	Email:     regexp.MustCompile(EmailPattern),
	Matricule: regexp.MustCompile(MatriculePattern),
}

// IsValidEmail checks the lowercase form of an email address
func IsValidEmail(email string) bool {
	return CompiledPatterns.Email.MatchString(email)
}

// IsValidMatricule checks the uppercase form of a matricule
func IsValidMatricule(matricule string) bool {
	return CompiledPatterns.Matricule.MatchString(matricule)
}

// IsValidLevel checks a study level against the accepted set
func IsValidLevel(level string) bool {
	for _, l := range Levels {
		if level == l {
			return true
		}
	}
	return false
}

// IsValidScore checks an evaluation sub-score against the 0-20 scale
func IsValidScore(score float64) bool {
	return score >= ScoreMin && score <= ScoreMax
}

// StringValidation validates a string value against length and pattern rules
type StringValidation struct {
	Value    string
	MinLen   int
	MaxLen   int
	Required bool
	Pattern  *regexp.Regexp
}

// NewStringValidation creates a new string validation
func NewStringValidation(value string) *StringValidation {
	return &StringValidation{
		Value:    value,
		Required: true,
	}
}

// WithMinLength sets minimum length
func (v *StringValidation) WithMinLength(min int) *StringValidation {
	v.MinLen = min
	return v
}

// WithMaxLength sets maximum length
func (v *StringValidation) WithMaxLength(max int) *StringValidation {
	v.MaxLen = max
	return v
}

// WithPattern sets regex pattern
func (v *StringValidation) WithPattern(pattern *regexp.Regexp) *StringValidation {
	v.Pattern = pattern
	return v
}

// WithRequired sets if field is required
func (v *StringValidation) WithRequired(required bool) *StringValidation {
	v.Required = required
	return v
}

// Validate performs validation
func (v *StringValidation) Validate() bool {
	if v.Required && v.Value == "" {
		return false
	}

	// Skip other validations for empty optional values
	if !v.Required && v.Value == "" {
		return true
	}

	if v.MinLen > 0 && len(v.Value) < v.MinLen {
		return false
	}

	if v.MaxLen > 0 && len(v.Value) > v.MaxLen {
		return false
	}

	if v.Pattern != nil && !v.Pattern.MatchString(v.Value) {
		return false
	}

	return true
}
