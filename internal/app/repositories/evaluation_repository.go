package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/stagemed/stagemed/internal/app/models"
	"github.com/stagemed/stagemed/internal/pkg/apperrors"
	"github.com/stagemed/stagemed/internal/pkg/helpers"
)

// EvaluationRepository handles database operations for evaluations
type EvaluationRepository struct {
	db *pgxpool.Pool
}

// NewEvaluationRepository creates a new evaluation repository
func NewEvaluationRepository(db *pgxpool.Pool) *EvaluationRepository {
	return &EvaluationRepository{db: db}
}

const evaluationColumns = `id, application_id, student_id, internship_id, doctor_id, chief_id,
	attendance, practical_skills, professional_behavior, doctor_comments,
	chief_validation, chief_comments, chief_validated_at,
	final_score, status, submitted_at, certificate_generated, certificate_path`

func scanEvaluation(row pgx.Row) (*models.Evaluation, error) {
	var e models.Evaluation
	var doctorComments, chiefComments, certificatePath *string
	err := row.Scan(
		&e.ID, &e.ApplicationID, &e.StudentID, &e.InternshipID, &e.DoctorID, &e.ChiefID,
		&e.Attendance, &e.PracticalSkills, &e.ProfessionalBehavior, &doctorComments,
		&e.ChiefValidation, &chiefComments, &e.ChiefValidatedAt,
		&e.FinalScore, &e.Status, &e.SubmittedAt, &e.CertificateGenerated, &certificatePath,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEvaluationNotFound
		}
		return nil, fmt.Errorf("error scanning evaluation: %w", err)
	}
	e.DoctorComments = helpers.StringOrEmpty(doctorComments)
	e.ChiefComments = helpers.StringOrEmpty(chiefComments)
	e.CertificatePath = helpers.StringOrEmpty(certificatePath)
	return &e, nil
}

// Create inserts a new draft evaluation. A duplicate (application, doctor)
// pair violates evaluations_application_doctor_key.
func (r *EvaluationRepository) Create(ctx context.Context, e *models.Evaluation) error {
	query := `
		INSERT INTO evaluations (application_id, student_id, internship_id, doctor_id, chief_id, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		e.ApplicationID,
		e.StudentID,
		e.InternshipID,
		e.DoctorID,
		e.ChiefID,
		e.Status,
	).Scan(&e.ID)
	if err != nil {
		return err
	}

	return nil
}

// GetByID retrieves an evaluation by ID
func (r *EvaluationRepository) GetByID(ctx context.Context, id int64) (*models.Evaluation, error) {
	query := `SELECT ` + evaluationColumns + ` FROM evaluations WHERE id = $1`
	return scanEvaluation(r.db.QueryRow(ctx, query, id))
}

// GetByApplicationAndDoctor retrieves the evaluation a doctor opened on an
// application, nil when none exists yet
func (r *EvaluationRepository) GetByApplicationAndDoctor(ctx context.Context, applicationID, doctorID int64) (*models.Evaluation, error) {
	query := `SELECT ` + evaluationColumns + ` FROM evaluations WHERE application_id = $1 AND doctor_id = $2`
	e, err := scanEvaluation(r.db.QueryRow(ctx, query, applicationID, doctorID))
	if err != nil {
		if errors.Is(err, apperrors.ErrEvaluationNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return e, nil
}

// GetOwnedByDoctor retrieves an evaluation only when it belongs to the doctor
func (r *EvaluationRepository) GetOwnedByDoctor(ctx context.Context, id, doctorID int64) (*models.Evaluation, error) {
	query := `SELECT ` + evaluationColumns + ` FROM evaluations WHERE id = $1 AND doctor_id = $2`
	return scanEvaluation(r.db.QueryRow(ctx, query, id, doctorID))
}

// GetOwnedByChief retrieves an evaluation only when it belongs to the chief
// and sits in the given status
func (r *EvaluationRepository) GetOwnedByChief(ctx context.Context, id, chiefID int64, status models.EvaluationStatus) (*models.Evaluation, error) {
	query := `SELECT ` + evaluationColumns + ` FROM evaluations WHERE id = $1 AND chief_id = $2 AND status = $3`
	return scanEvaluation(r.db.QueryRow(ctx, query, id, chiefID, status))
}

// Update persists the mutable fields of an evaluation
func (r *EvaluationRepository) Update(ctx context.Context, e *models.Evaluation) error {
	query := `
		UPDATE evaluations
		SET attendance = $1, practical_skills = $2, professional_behavior = $3,
		    doctor_comments = $4, chief_validation = $5, chief_comments = $6,
		    chief_validated_at = $7, final_score = $8, status = $9, submitted_at = $10,
		    certificate_generated = $11, certificate_path = $12
		WHERE id = $13
	`

	tag, err := r.db.Exec(ctx, query,
		e.Attendance,
		e.PracticalSkills,
		e.ProfessionalBehavior,
		helpers.GetContentNullString(e.DoctorComments),
		e.ChiefValidation,
		helpers.GetContentNullString(e.ChiefComments),
		e.ChiefValidatedAt,
		e.FinalScore,
		e.Status,
		e.SubmittedAt,
		e.CertificateGenerated,
		helpers.GetContentNullString(e.CertificatePath),
		e.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating evaluation: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrEvaluationNotFound
	}
	return nil
}

// listWithContext retrieves evaluations with student, internship and doctor
// context. The base filter column and value select the owner.
func (r *EvaluationRepository) listWithContext(ctx context.Context, ownerColumn string, ownerID int64, status string, limit int) ([]*models.Evaluation, error) {
	query := squirrel.Select(
		"ev.id", "ev.application_id", "ev.student_id", "ev.internship_id", "ev.doctor_id", "ev.chief_id",
		"ev.attendance", "ev.practical_skills", "ev.professional_behavior", "ev.doctor_comments",
		"ev.chief_validation", "ev.chief_comments", "ev.chief_validated_at",
		"ev.final_score", "ev.status", "ev.submitted_at", "ev.certificate_generated", "ev.certificate_path",
		"st.matricule", "st.first_name", "st.last_name",
		"i.title", "i.start_date", "i.end_date",
		"d.first_name", "d.last_name", "d.specialty").
		From("evaluations ev").
		Join("students st ON st.id = ev.student_id").
		Join("internships i ON i.id = ev.internship_id").
		Join("doctors d ON d.id = ev.doctor_id").
		Where(ownerColumn+" = ?", ownerID).
		OrderBy("ev.submitted_at DESC NULLS LAST").
		PlaceholderFormat(squirrel.Dollar)

	if status != "" {
		query = query.Where("ev.status = ?", status)
	}
	if limit > 0 {
		query = query.Limit(uint64(limit))
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

	var evaluations []*models.Evaluation
	for rows.Next() {
		var e models.Evaluation
		var st models.Student
		var i models.Internship
		var d models.Doctor
		var doctorComments, chiefComments, certificatePath *string
		if err := rows.Scan(
			&e.ID, &e.ApplicationID, &e.StudentID, &e.InternshipID, &e.DoctorID, &e.ChiefID,
			&e.Attendance, &e.PracticalSkills, &e.ProfessionalBehavior, &doctorComments,
			&e.ChiefValidation, &chiefComments, &e.ChiefValidatedAt,
			&e.FinalScore, &e.Status, &e.SubmittedAt, &e.CertificateGenerated, &certificatePath,
			&st.Matricule, &st.FirstName, &st.LastName,
			&i.Title, &i.StartDate, &i.EndDate,
			&d.FirstName, &d.LastName, &d.Specialty,
		); err != nil {
			return nil, fmt.Errorf("error scanning evaluation: %w", err)
		}
		e.DoctorComments = helpers.StringOrEmpty(doctorComments)
		e.ChiefComments = helpers.StringOrEmpty(chiefComments)
		e.CertificatePath = helpers.StringOrEmpty(certificatePath)
		st.ID = e.StudentID
		i.ID = e.InternshipID
		d.ID = e.DoctorID
		e.Student = &st
		e.Internship = &i
		e.Doctor = &d
		evaluations = append(evaluations, &e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return evaluations, nil
}

// ListByStudent retrieves a student's evaluations with context
func (r *EvaluationRepository) ListByStudent(ctx context.Context, studentID int64) ([]*models.Evaluation, error) {
	return r.listWithContext(ctx, "ev.student_id", studentID, "", 0)
}

// ListByDoctor retrieves a doctor's evaluations, optionally filtered by status
func (r *EvaluationRepository) ListByDoctor(ctx context.Context, doctorID int64, status string, limit int) ([]*models.Evaluation, error) {
	return r.listWithContext(ctx, "ev.doctor_id", doctorID, status, limit)
}

// ListByChief retrieves a chief's evaluations, optionally filtered by status
func (r *EvaluationRepository) ListByChief(ctx context.Context, chiefID int64, status string, limit int) ([]*models.Evaluation, error) {
	return r.listWithContext(ctx, "ev.chief_id", chiefID, status, limit)
}

// CountByChiefAndStatus counts a chief's evaluations in the given status
func (r *EvaluationRepository) CountByChiefAndStatus(ctx context.Context, chiefID int64, status models.EvaluationStatus) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM evaluations WHERE chief_id = $1 AND status = $2`,
		chiefID, status).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting evaluations: %w", err)
	}
	return count, nil
}
