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

// EstablishmentRepository handles database operations for establishments
type EstablishmentRepository struct {
	db *pgxpool.Pool
}

// NewEstablishmentRepository creates a new establishment repository
func NewEstablishmentRepository(db *pgxpool.Pool) *EstablishmentRepository {
	return &EstablishmentRepository{
		db: db,
	}
}

const establishmentColumns = `id, name, street, city, postal_code, country, phone, email, type, is_active, created_at`

func scanEstablishmentRow(row pgx.Row) (*models.Establishment, error) {
	var e models.Establishment
	err := row.Scan(
		&e.ID,
		&e.Name,
		&e.Street,
		&e.City,
		&e.PostalCode,
		&e.Country,
		&e.Phone,
		&e.Email,
		&e.Type,
		&e.IsActive,
		&e.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEstablishmentNotFound
		}
		return nil, fmt.Errorf("error scanning establishment: %w", err)
	}
	return &e, nil
}

// Create inserts a new establishment
func (r *EstablishmentRepository) Create(ctx context.Context, e *models.Establishment) error {
	query := `
		INSERT INTO establishments (name, street, city, postal_code, phone, email, type)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, country, is_active, created_at
	`

	err := r.db.QueryRow(ctx, query,
		e.Name,
		e.Street,
		e.City,
		e.PostalCode,
		e.Phone,
		e.Email,
		e.Type,
	).Scan(&e.ID, &e.Country, &e.IsActive, &e.CreatedAt)
	if err != nil {
		return err
	}

	return nil
}

// GetByID retrieves an establishment by ID
func (r *EstablishmentRepository) GetByID(ctx context.Context, id int64) (*models.Establishment, error) {
	query := `SELECT ` + establishmentColumns + ` FROM establishments WHERE id = $1`
	return scanEstablishmentRow(r.db.QueryRow(ctx, query, id))
}

// GetAll lists every establishment, newest first
func (r *EstablishmentRepository) GetAll(ctx context.Context) ([]*models.Establishment, error) {
	query := `SELECT ` + establishmentColumns + ` FROM establishments ORDER BY created_at DESC`
	return r.queryEstablishments(ctx, query)
}

// GetActive lists active establishments sorted by name
func (r *EstablishmentRepository) GetActive(ctx context.Context) ([]*models.Establishment, error) {
	query := `SELECT ` + establishmentColumns + ` FROM establishments WHERE is_active = TRUE ORDER BY name`
	return r.queryEstablishments(ctx, query)
}

// GetRecent lists the most recently created establishments
func (r *EstablishmentRepository) GetRecent(ctx context.Context, limit int) ([]*models.Establishment, error) {
	query := `SELECT ` + establishmentColumns + ` FROM establishments ORDER BY created_at DESC LIMIT $1`
	return r.queryEstablishments(ctx, query, limit)
}

func (r *EstablishmentRepository) queryEstablishments(ctx context.Context, query string, args ...interface{}) ([]*models.Establishment, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var establishments []*models.Establishment
	for rows.Next() {
		e, err := scanEstablishmentRow(rows)
		if err != nil {
			return nil, err
		}
		establishments = append(establishments, e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return establishments, nil
}

// CountAll counts every establishment
func (r *EstablishmentRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM establishments`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting establishments: %w", err)
	}
	return count, nil
}

// CountActive counts active establishments
func (r *EstablishmentRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM establishments WHERE is_active = TRUE`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting active establishments: %w", err)
	}
	return count, nil
}
