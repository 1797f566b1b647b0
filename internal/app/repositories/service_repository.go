package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/stagemed/stagemed/internal/app/models"
	"github.com/stagemed/stagemed/internal/pkg/apperrors"
)

// ServiceRepository handles database operations for medical services
type ServiceRepository struct {
	db *pgxpool.Pool
}

// NewServiceRepository creates a new service repository
func NewServiceRepository(db *pgxpool.Pool) *ServiceRepository {
	return &ServiceRepository{
		db: db,
	}
}

const serviceColumns = `id, name, description, code, establishment_id, chief_id, capacity, is_active, created_at`

func scanService(row pgx.Row) (*models.Service, error) {
	var s models.Service
	err := row.Scan(
		&s.ID,
		&s.Name,
		&s.Description,
		&s.Code,
		&s.EstablishmentID,
		&s.ChiefID,
		&s.Capacity,
		&s.IsActive,
		&s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrServiceNotFound
		}
		return nil, fmt.Errorf("error scanning service: %w", err)
	}
	return &s, nil
}

// Create inserts a new service (code stored uppercase by the service layer)
func (r *ServiceRepository) Create(ctx context.Context, s *models.Service) error {
	query := `
		INSERT INTO services (name, description, code, establishment_id, capacity)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, is_active, created_at
	`

	err := r.db.QueryRow(ctx, query,
		s.Name,
		s.Description,
		s.Code,
		s.EstablishmentID,
		s.Capacity,
	).Scan(&s.ID, &s.IsActive, &s.CreatedAt)
	if err != nil {
		return err
	}

	return nil
}

// GetByID retrieves a service by ID
func (r *ServiceRepository) GetByID(ctx context.Context, id int64) (*models.Service, error) {
	query := `SELECT ` + serviceColumns + ` FROM services WHERE id = $1`
	return scanService(r.db.QueryRow(ctx, query, id))
}

// GetAll lists every service with its establishment, newest first
func (r *ServiceRepository) GetAll(ctx context.Context) ([]*models.Service, error) {
	query := `
		SELECT s.id, s.name, s.description, s.code, s.establishment_id, s.chief_id,
		       s.capacity, s.is_active, s.created_at,
		       e.name, e.city, e.type
		FROM services s
		JOIN establishments e ON e.id = s.establishment_id
		ORDER BY s.created_at DESC
	`
	return r.queryServicesWithEstablishment(ctx, query)
}

// GetActive lists active services with their establishment, sorted by name
func (r *ServiceRepository) GetActive(ctx context.Context) ([]*models.Service, error) {
	query := `
		SELECT s.id, s.name, s.description, s.code, s.establishment_id, s.chief_id,
		       s.capacity, s.is_active, s.created_at,
		       e.name, e.city, e.type
		FROM services s
		JOIN establishments e ON e.id = s.establishment_id
		WHERE s.is_active = TRUE
		ORDER BY s.name
	`
	return r.queryServicesWithEstablishment(ctx, query)
}

// GetByEstablishment lists the services of one establishment
func (r *ServiceRepository) GetByEstablishment(ctx context.Context, establishmentID int64) ([]*models.Service, error) {
	query := `SELECT ` + serviceColumns + ` FROM services WHERE establishment_id = $1 ORDER BY name`

	rows, err := r.db.Query(ctx, query, establishmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var services []*models.Service
	for rows.Next() {
		s, err := scanService(rows)
		if err != nil {
			return nil, err
		}
		services = append(services, s)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return services, nil
}

func (r *ServiceRepository) queryServicesWithEstablishment(ctx context.Context, query string, args ...interface{}) ([]*models.Service, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var services []*models.Service
	for rows.Next() {
		var s models.Service
		var e models.Establishment
		if err := rows.Scan(
			&s.ID,
			&s.Name,
			&s.Description,
			&s.Code,
			&s.EstablishmentID,
			&s.ChiefID,
			&s.Capacity,
			&s.IsActive,
			&s.CreatedAt,
			&e.Name,
			&e.City,
			&e.Type,
		); err != nil {
			return nil, fmt.Errorf("error scanning service: %w", err)
		}
		e.ID = s.EstablishmentID
		s.Establishment = &e
		services = append(services, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return services, nil
}

// AssignChief records the chief leading the service
func (r *ServiceRepository) AssignChief(ctx context.Context, serviceID, chiefID int64) error {
	tag, err := r.db.Exec(ctx, `UPDATE services SET chief_id = $1 WHERE id = $2`, chiefID, serviceID)
	if err != nil {
		return fmt.Errorf("error assigning service chief: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrServiceNotFound
	}
	return nil
}

// CountAll counts every service
func (r *ServiceRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM services`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting services: %w", err)
	}
	return count, nil
}

// CountActive counts active services
func (r *ServiceRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM services WHERE is_active = TRUE`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting active services: %w", err)
	}
	return count, nil
}

// CountWithoutActiveInternships counts services that have no active internship
func (r *ServiceRepository) CountWithoutActiveInternships(ctx context.Context) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM services s
		WHERE NOT EXISTS (
			SELECT 1 FROM internships i
			WHERE i.service_id = s.id AND i.is_active = TRUE
		)
	`

	var count int64
	err := r.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting services without internships: %w", err)
	}
	return count, nil
}
