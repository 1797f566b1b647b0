package models

// RoleType defines the user role type
type RoleType string

const (
	RoleStudent      RoleType = "student"
	RoleDoctor       RoleType = "doctor"
	RoleServiceChief RoleType = "service_chief"
	RoleDean         RoleType = "dean"
)

// IsValid reports whether the role is one of the known roles
func (r RoleType) IsValid() bool {
	switch r {
	case RoleStudent, RoleDoctor, RoleServiceChief, RoleDean:
		return true
	}
	return false
}

// StudyLevel represents a student's study level
type StudyLevel string

const (
	LevelL1 StudyLevel = "L1"
	LevelL2 StudyLevel = "L2"
	LevelL3 StudyLevel = "L3"
	LevelM1 StudyLevel = "M1"
	LevelM2 StudyLevel = "M2"
)

// IsValid reports whether the level is one of the known levels
func (l StudyLevel) IsValid() bool {
	switch l {
	case LevelL1, LevelL2, LevelL3, LevelM1, LevelM2:
		return true
	}
	return false
}

// EstablishmentType classifies a medical establishment
type EstablishmentType string

const (
	EstablishmentCHU      EstablishmentType = "CHU"
	EstablishmentHopital  EstablishmentType = "Hôpital"
	EstablishmentClinique EstablishmentType = "Clinique"
	EstablishmentCentre   EstablishmentType = "Centre de santé"
)

// IsValid reports whether the establishment type is known
func (t EstablishmentType) IsValid() bool {
	switch t {
	case EstablishmentCHU, EstablishmentHopital, EstablishmentClinique, EstablishmentCentre:
		return true
	}
	return false
}
