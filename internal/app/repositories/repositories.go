package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository          *UserRepository
	StudentRepository       *StudentRepository
	ProfileRepository       *ProfileRepository
	EstablishmentRepository *EstablishmentRepository
	ServiceRepository       *ServiceRepository
	InternshipRepository    *InternshipRepository
	ApplicationRepository   *ApplicationRepository
	EvaluationRepository    *EvaluationRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:          NewUserRepository(db),
		StudentRepository:       NewStudentRepository(db),
		ProfileRepository:       NewProfileRepository(db),
		EstablishmentRepository: NewEstablishmentRepository(db),
		ServiceRepository:       NewServiceRepository(db),
		InternshipRepository:    NewInternshipRepository(db),
		ApplicationRepository:   NewApplicationRepository(db),
		EvaluationRepository:    NewEvaluationRepository(db),
	}
}
