package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/stagemed/stagemed/internal/app/models"
	"github.com/stagemed/stagemed/internal/app/models/dto"
	"github.com/stagemed/stagemed/internal/pkg/apperrors"
	"github.com/stagemed/stagemed/internal/pkg/helpers"
)

// ApplicationRepository handles database operations for internship applications
type ApplicationRepository struct {
	db *pgxpool.Pool
}

// NewApplicationRepository creates a new application repository
func NewApplicationRepository(db *pgxpool.Pool) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

const applicationColumns = `id, student_id, internship_id, status, applied_at, processed_at, processed_by, rejection_reason, notes`

func scanApplication(row pgx.Row) (*models.Application, error) {
	var a models.Application
	var rejectionReason, notes *string
	err := row.Scan(
		&a.ID,
		&a.StudentID,
		&a.InternshipID,
		&a.Status,
		&a.AppliedAt,
		&a.ProcessedAt,
		&a.ProcessedBy,
		&rejectionReason,
		&notes,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("error scanning application: %w", err)
	}
	a.RejectionReason = helpers.StringOrEmpty(rejectionReason)
	a.Notes = helpers.StringOrEmpty(notes)
	return &a, nil
}

// Create inserts a new pending application. A duplicate (student,
// internship) pair violates applications_student_internship_key.
func (r *ApplicationRepository) Create(ctx context.Context, a *models.Application) error {
	query := `
		INSERT INTO applications (student_id, internship_id, status)
		VALUES ($1, $2, $3)
		RETURNING id, applied_at
	`

	err := r.db.QueryRow(ctx, query, a.StudentID, a.InternshipID, a.Status).
		Scan(&a.ID, &a.AppliedAt)
	if err != nil {
		return err
	}

	return nil
}

// GetByID retrieves an application by ID
func (r *ApplicationRepository) GetByID(ctx context.Context, id int64) (*models.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE id = $1`
	return scanApplication(r.db.QueryRow(ctx, query, id))
}

// GetByStudentAndInternship retrieves the application a student made to an internship
func (r *ApplicationRepository) GetByStudentAndInternship(ctx context.Context, studentID, internshipID int64) (*models.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE student_id = $1 AND internship_id = $2`
	return scanApplication(r.db.QueryRow(ctx, query, studentID, internshipID))
}

// Update persists the mutable fields of an application
func (r *ApplicationRepository) Update(ctx context.Context, a *models.Application) error {
	query := `
		UPDATE applications
		SET status = $1, processed_at = $2, processed_by = $3, rejection_reason = $4, notes = $5
		WHERE id = $6
	`

	tag, err := r.db.Exec(ctx, query,
		a.Status,
		a.ProcessedAt,
		a.ProcessedBy,
		helpers.GetContentNullString(a.RejectionReason),
		helpers.GetContentNullString(a.Notes),
		a.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating application: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrApplicationNotFound
	}
	return nil
}

// ListByStudent retrieves a student's applications with their internship,
// optionally filtered by status, newest first
func (r *ApplicationRepository) ListByStudent(ctx context.Context, studentID int64, status string, offset uint64, limit int) ([]*models.Application, int64, error) {
	query := squirrel.Select(
		"a.id", "a.student_id", "a.internship_id", "a.status", "a.applied_at",
		"a.processed_at", "a.processed_by", "a.rejection_reason", "a.notes",
		"i.title", "i.start_date", "i.end_date", "i.duration",
		"COUNT(*) OVER()").
		From("applications a").
		Join("internships i ON i.id = a.internship_id").
		Where("a.student_id = ?", studentID).
		OrderBy("a.applied_at DESC").
		Limit(uint64(limit)).
		Offset(offset).
		PlaceholderFormat(squirrel.Dollar)

	if status != "" {
		query = query.Where("a.status = ?", status)
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var applications []*models.Application
	var total int64
	for rows.Next() {
		var a models.Application
		var i models.Internship
		var rejectionReason, notes *string
		if err := rows.Scan(
			&a.ID, &a.StudentID, &a.InternshipID, &a.Status, &a.AppliedAt,
			&a.ProcessedAt, &a.ProcessedBy, &rejectionReason, &notes,
			&i.Title, &i.StartDate, &i.EndDate, &i.Duration,
			&total,
		); err != nil {
			return nil, 0, fmt.Errorf("error scanning application: %w", err)
		}
		a.RejectionReason = helpers.StringOrEmpty(rejectionReason)
		a.Notes = helpers.StringOrEmpty(notes)
		i.ID = a.InternshipID
		a.Internship = &i
		applications = append(applications, &a)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return applications, total, nil
}

// ListByChief retrieves the applications on a chief's internships with
// student and internship context, optionally filtered
func (r *ApplicationRepository) ListByChief(ctx context.Context, chiefID int64, status string, internshipID int64) ([]*models.Application, error) {
	query := squirrel.Select(
		"a.id", "a.student_id", "a.internship_id", "a.status", "a.applied_at",
		"a.processed_at", "a.processed_by", "a.rejection_reason", "a.notes",
		"st.matricule", "st.first_name", "st.last_name", "st.level",
		"i.title", "i.start_date", "i.end_date").
		From("applications a").
		Join("internships i ON i.id = a.internship_id").
		Join("students st ON st.id = a.student_id").
		Where("i.chief_id = ?", chiefID).
		OrderBy("a.applied_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if status != "" {
		query = query.Where("a.status = ?", status)
	}
	if internshipID > 0 {
		query = query.Where("a.internship_id = ?", internshipID)
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	return collectChiefApplications(rows)
}

// ListUrgentByChief retrieves pending applications older than the given
// time on a chief's internships
func (r *ApplicationRepository) ListUrgentByChief(ctx context.Context, chiefID int64, olderThan time.Time, limit int) ([]*models.Application, error) {
	query := squirrel.Select(
		"a.id", "a.student_id", "a.internship_id", "a.status", "a.applied_at",
		"a.processed_at", "a.processed_by", "a.rejection_reason", "a.notes",
		"st.matricule", "st.first_name", "st.last_name", "st.level",
		"i.title", "i.start_date", "i.end_date").
		From("applications a").
		Join("internships i ON i.id = a.internship_id").
		Join("students st ON st.id = a.student_id").
		Where("i.chief_id = ?", chiefID).
		Where("a.status = ?", models.ApplicationPending).
		Where("a.applied_at <= ?", olderThan).
		OrderBy("a.applied_at ASC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	return collectChiefApplications(rows)
}

func collectChiefApplications(rows pgx.Rows) ([]*models.Application, error) {
	var applications []*models.Application
	for rows.Next() {
		var a models.Application
		var st models.Student
		var i models.Internship
		var rejectionReason, notes *string
		if err := rows.Scan(
			&a.ID, &a.StudentID, &a.InternshipID, &a.Status, &a.AppliedAt,
			&a.ProcessedAt, &a.ProcessedBy, &rejectionReason, &notes,
			&st.Matricule, &st.FirstName, &st.LastName, &st.Level,
			&i.Title, &i.StartDate, &i.EndDate,
		); err != nil {
			return nil, fmt.Errorf("error scanning application: %w", err)
		}
		a.RejectionReason = helpers.StringOrEmpty(rejectionReason)
		a.Notes = helpers.StringOrEmpty(notes)
		st.ID = a.StudentID
		i.ID = a.InternshipID
		a.Student = &st
		a.Internship = &i
		applications = append(applications, &a)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return applications, nil
}

// GetOwnedByChief retrieves an application only when it belongs to one of
// the chief's internships
func (r *ApplicationRepository) GetOwnedByChief(ctx context.Context, id, chiefID int64) (*models.Application, error) {
	query := `
		SELECT a.id, a.student_id, a.internship_id, a.status, a.applied_at,
		       a.processed_at, a.processed_by, a.rejection_reason, a.notes
		FROM applications a
		JOIN internships i ON i.id = a.internship_id
		WHERE a.id = $1 AND i.chief_id = $2
	`
	return scanApplication(r.db.QueryRow(ctx, query, id, chiefID))
}

// CountByStudentAndStatus counts a student's applications, all of them when
// status is empty
func (r *ApplicationRepository) CountByStudentAndStatus(ctx context.Context, studentID int64, status string) (int64, error) {
	query := squirrel.Select("COUNT(*)").
		From("applications").
		Where("student_id = ?", studentID).
		PlaceholderFormat(squirrel.Dollar)

	if status != "" {
		query = query.Where("status = ?", status)
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("error building SQL: %w", err)
	}

	var count int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting applications: %w", err)
	}
	return count, nil
}

// CountByChiefAndStatus counts applications on a chief's internships by status
func (r *ApplicationRepository) CountByChiefAndStatus(ctx context.Context, chiefID int64, status string) (int64, error) {
	query := squirrel.Select("COUNT(*)").
		From("applications a").
		Join("internships i ON i.id = a.internship_id").
		Where("i.chief_id = ?", chiefID).
		PlaceholderFormat(squirrel.Dollar)

	if status != "" {
		query = query.Where("a.status = ?", status)
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("error building SQL: %w", err)
	}

	var count int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting applications: %w", err)
	}
	return count, nil
}

// CountByStatus counts every application in the given status
func (r *ApplicationRepository) CountByStatus(ctx context.Context, status models.ApplicationStatus) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM applications WHERE status = $1`, status).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting applications: %w", err)
	}
	return count, nil
}

// ListAcceptedByServiceAndEstablishment retrieves accepted applications on
// internships in the given service and establishment, with student and
// internship context. Doctors use this to list their supervised students.
func (r *ApplicationRepository) ListAcceptedByServiceAndEstablishment(ctx context.Context, serviceID, establishmentID int64) ([]*models.Application, error) {
	query := `
		SELECT a.id, a.student_id, a.internship_id, a.status, a.applied_at,
		       a.processed_at, a.processed_by, a.rejection_reason, a.notes,
		       st.matricule, st.first_name, st.last_name, st.level,
		       i.title, i.start_date, i.end_date
		FROM applications a
		JOIN internships i ON i.id = a.internship_id
		JOIN students st ON st.id = a.student_id
		WHERE a.status = $1 AND i.service_id = $2 AND i.establishment_id = $3
		ORDER BY a.applied_at DESC
	`

	rows, err := r.db.Query(ctx, query, models.ApplicationAccepted, serviceID, establishmentID)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	return collectChiefApplications(rows)
}

// GetAcceptedByStudent retrieves the student's current accepted application
// with its internship, nil when there is none
func (r *ApplicationRepository) GetAcceptedByStudent(ctx context.Context, studentID int64) (*models.Application, error) {
	query := `
		SELECT a.id, a.student_id, a.internship_id, a.status, a.applied_at,
		       a.processed_at, a.processed_by, a.rejection_reason, a.notes,
		       i.title, i.start_date, i.end_date, i.duration
		FROM applications a
		JOIN internships i ON i.id = a.internship_id
		WHERE a.student_id = $1 AND a.status = $2
		LIMIT 1
	`

	var a models.Application
	var i models.Internship
	var rejectionReason, notes *string
	err := r.db.QueryRow(ctx, query, studentID, models.ApplicationAccepted).Scan(
		&a.ID, &a.StudentID, &a.InternshipID, &a.Status, &a.AppliedAt,
		&a.ProcessedAt, &a.ProcessedBy, &rejectionReason, &notes,
		&i.Title, &i.StartDate, &i.EndDate, &i.Duration,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error scanning application: %w", err)
	}
	a.RejectionReason = helpers.StringOrEmpty(rejectionReason)
	a.Notes = helpers.StringOrEmpty(notes)
	i.ID = a.InternshipID
	a.Internship = &i
	return &a, nil
}

// StudentStats returns a student's application counts by status
func (r *ApplicationRepository) StudentStats(ctx context.Context, studentID int64) (dto.ApplicationStats, error) {
	query := `
		SELECT COUNT(*) FILTER (WHERE status = 'pending'),
		       COUNT(*) FILTER (WHERE status = 'accepted'),
		       COUNT(*) FILTER (WHERE status = 'rejected'),
		       COUNT(*)
		FROM applications
		WHERE student_id = $1
	`

	var stats dto.ApplicationStats
	err := r.db.QueryRow(ctx, query, studentID).Scan(
		&stats.Pending,
		&stats.Accepted,
		&stats.Rejected,
		&stats.Total,
	)
	if err != nil {
		return stats, fmt.Errorf("error loading application stats: %w", err)
	}
	return stats, nil
}
