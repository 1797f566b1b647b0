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

// ProfileRepository handles database operations for the doctor, service
// chief and dean role profiles.
type ProfileRepository struct {
	db *pgxpool.Pool
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{
		db: db,
	}
}

const doctorColumns = `id, user_id, first_name, last_name, specialty, phone, license_number, establishment_id, service_id, is_active`

func scanDoctor(row pgx.Row) (*models.Doctor, error) {
	var doctor models.Doctor
	err := row.Scan(
		&doctor.ID,
		&doctor.UserID,
		&doctor.FirstName,
		&doctor.LastName,
		&doctor.Specialty,
		&doctor.Phone,
		&doctor.LicenseNumber,
		&doctor.EstablishmentID,
		&doctor.ServiceID,
		&doctor.IsActive,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrDoctorNotFound
		}
		return nil, fmt.Errorf("error scanning doctor: %w", err)
	}
	return &doctor, nil
}

// CreateDoctor inserts a new doctor profile
func (r *ProfileRepository) CreateDoctor(ctx context.Context, doctor *models.Doctor) error {
	query := `
		INSERT INTO doctors (user_id, first_name, last_name, specialty, phone, license_number, establishment_id, service_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		doctor.UserID,
		doctor.FirstName,
		doctor.LastName,
		doctor.Specialty,
		doctor.Phone,
		doctor.LicenseNumber,
		doctor.EstablishmentID,
		doctor.ServiceID,
	).Scan(&doctor.ID)
	if err != nil {
		return err
	}

	return nil
}

// GetDoctorByUserID retrieves a doctor by the owning user ID
func (r *ProfileRepository) GetDoctorByUserID(ctx context.Context, userID int64) (*models.Doctor, error) {
	query := `SELECT ` + doctorColumns + ` FROM doctors WHERE user_id = $1`
	return scanDoctor(r.db.QueryRow(ctx, query, userID))
}

// CountDoctors counts every doctor
func (r *ProfileRepository) CountDoctors(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM doctors`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting doctors: %w", err)
	}
	return count, nil
}

const chiefColumns = `id, user_id, first_name, last_name, phone, service_id, establishment_id, is_active`

func scanChief(row pgx.Row) (*models.ServiceChief, error) {
	var chief models.ServiceChief
	err := row.Scan(
		&chief.ID,
		&chief.UserID,
		&chief.FirstName,
		&chief.LastName,
		&chief.Phone,
		&chief.ServiceID,
		&chief.EstablishmentID,
		&chief.IsActive,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrChiefNotFound
		}
		return nil, fmt.Errorf("error scanning service chief: %w", err)
	}
	return &chief, nil
}

// CreateChief inserts a new service chief profile
func (r *ProfileRepository) CreateChief(ctx context.Context, chief *models.ServiceChief) error {
	query := `
		INSERT INTO service_chiefs (user_id, first_name, last_name, phone, service_id, establishment_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		chief.UserID,
		chief.FirstName,
		chief.LastName,
		chief.Phone,
		chief.ServiceID,
		chief.EstablishmentID,
	).Scan(&chief.ID)
	if err != nil {
		return err
	}

	return nil
}

// GetChiefByUserID retrieves a service chief by the owning user ID
func (r *ProfileRepository) GetChiefByUserID(ctx context.Context, userID int64) (*models.ServiceChief, error) {
	query := `SELECT ` + chiefColumns + ` FROM service_chiefs WHERE user_id = $1`
	return scanChief(r.db.QueryRow(ctx, query, userID))
}

// GetChiefByID retrieves a service chief by ID
func (r *ProfileRepository) GetChiefByID(ctx context.Context, id int64) (*models.ServiceChief, error) {
	query := `SELECT ` + chiefColumns + ` FROM service_chiefs WHERE id = $1`
	return scanChief(r.db.QueryRow(ctx, query, id))
}

// CountChiefs counts every service chief
func (r *ProfileRepository) CountChiefs(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM service_chiefs`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting service chiefs: %w", err)
	}
	return count, nil
}

// CreateDean inserts a new dean profile
func (r *ProfileRepository) CreateDean(ctx context.Context, dean *models.Dean) error {
	query := `
		INSERT INTO deans (user_id, first_name, last_name, phone)
		VALUES ($1, $2, $3, $4)
		RETURNING id, title
	`

	err := r.db.QueryRow(ctx, query,
		dean.UserID,
		dean.FirstName,
		dean.LastName,
		dean.Phone,
	).Scan(&dean.ID, &dean.Title)
	if err != nil {
		return err
	}

	return nil
}

// GetDeanByUserID retrieves a dean by the owning user ID
func (r *ProfileRepository) GetDeanByUserID(ctx context.Context, userID int64) (*models.Dean, error) {
	query := `
		SELECT id, user_id, first_name, last_name, phone, title, is_active
		FROM deans
		WHERE user_id = $1
	`

	var dean models.Dean
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&dean.ID,
		&dean.UserID,
		&dean.FirstName,
		&dean.LastName,
		&dean.Phone,
		&dean.Title,
		&dean.IsActive,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrDeanNotFound
		}
		return nil, fmt.Errorf("error scanning dean: %w", err)
	}
	return &dean, nil
}
