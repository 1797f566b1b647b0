package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/stagemed/stagemed/internal/app/models"
	"github.com/stagemed/stagemed/internal/app/models/dto"
	"github.com/stagemed/stagemed/internal/pkg/apperrors"
)

// StudentRepository handles database operations for students and their documents
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
	}
}

const studentColumns = `id, user_id, matricule, first_name, last_name, level, phone, profile_completed, completed_at`

func scanStudent(row pgx.Row) (*models.Student, error) {
	var student models.Student
	err := row.Scan(
		&student.ID,
		&student.UserID,
		&student.Matricule,
		&student.FirstName,
		&student.LastName,
		&student.Level,
		&student.Phone,
		&student.ProfileCompleted,
		&student.CompletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error scanning student: %w", err)
	}
	return &student, nil
}

// Create inserts a new student profile
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	query := `
		INSERT INTO students (user_id, matricule, first_name, last_name, level, phone)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		student.UserID,
		student.Matricule,
		student.FirstName,
		student.LastName,
		student.Level,
		student.Phone,
	).Scan(&student.ID)
	if err != nil {
		return err
	}

	return nil
}

// GetByID retrieves a student by ID
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE id = $1`
	return scanStudent(r.db.QueryRow(ctx, query, id))
}

// GetByUserID retrieves a student by the owning user ID
func (r *StudentRepository) GetByUserID(ctx context.Context, userID int64) (*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE user_id = $1`
	return scanStudent(r.db.QueryRow(ctx, query, userID))
}

// GetByMatricule retrieves a student by matricule (stored uppercase)
func (r *StudentRepository) GetByMatricule(ctx context.Context, matricule string) (*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE matricule = $1`
	return scanStudent(r.db.QueryRow(ctx, query, matricule))
}

// UpdateProfile saves the editable profile fields and the completion state
func (r *StudentRepository) UpdateProfile(ctx context.Context, student *models.Student) error {
	query := `
		UPDATE students
		SET first_name = $1, last_name = $2, level = $3, phone = $4,
		    profile_completed = $5, completed_at = $6
		WHERE id = $7
	`

	tag, err := r.db.Exec(ctx, query,
		student.FirstName,
		student.LastName,
		student.Level,
		student.Phone,
		student.ProfileCompleted,
		student.CompletedAt,
		student.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating student profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}
	return nil
}

// AddDocument attaches an uploaded document to a student
func (r *StudentRepository) AddDocument(ctx context.Context, doc *models.StudentDocument) error {
	query := `
		INSERT INTO student_documents (student_id, name, file_path, original_name, file_size)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, upload_date
	`

	err := r.db.QueryRow(ctx, query,
		doc.StudentID,
		doc.Name,
		doc.FilePath,
		doc.OriginalName,
		doc.FileSize,
	).Scan(&doc.ID, &doc.UploadDate)
	if err != nil {
		return fmt.Errorf("error adding student document: %w", err)
	}

	return nil
}

// GetDocuments lists a student's documents, newest first
func (r *StudentRepository) GetDocuments(ctx context.Context, studentID int64) ([]*models.StudentDocument, error) {
	query := `
		SELECT id, student_id, name, file_path, original_name, file_size, upload_date
		FROM student_documents
		WHERE student_id = $1
		ORDER BY upload_date DESC
	`

	rows, err := r.db.Query(ctx, query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []*models.StudentDocument
	for rows.Next() {
		var doc models.StudentDocument
		if err := rows.Scan(
			&doc.ID,
			&doc.StudentID,
			&doc.Name,
			&doc.FilePath,
			&doc.OriginalName,
			&doc.FileSize,
			&doc.UploadDate,
		); err != nil {
			return nil, err
		}
		docs = append(docs, &doc)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return docs, nil
}

// CountDocuments counts a student's uploaded documents
func (r *StudentRepository) CountDocuments(ctx context.Context, studentID int64) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM student_documents WHERE student_id = $1`, studentID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting student documents: %w", err)
	}
	return count, nil
}

// CountAll counts every student
func (r *StudentRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM students`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting students: %w", err)
	}
	return count, nil
}

// GetRecent lists the most recently created students with their user record
func (r *StudentRepository) GetRecent(ctx context.Context, limit int) ([]*models.Student, error) {
	query := `
		SELECT s.id, s.user_id, s.matricule, s.first_name, s.last_name, s.level, s.phone,
		       s.profile_completed, s.completed_at,
		       u.email, u.is_active, u.created_at
		FROM students s
		JOIN users u ON u.id = s.user_id
		ORDER BY u.created_at DESC
		LIMIT $1
	`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		var student models.Student
		var user models.User
		if err := rows.Scan(
			&student.ID,
			&student.UserID,
			&student.Matricule,
			&student.FirstName,
			&student.LastName,
			&student.Level,
			&student.Phone,
			&student.ProfileCompleted,
			&student.CompletedAt,
			&user.Email,
			&user.IsActive,
			&user.CreatedAt,
		); err != nil {
			return nil, err
		}
		user.ID = student.UserID
		user.Role = models.RoleStudent
		student.User = &user
		students = append(students, &student)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return students, nil
}

// CountByLevel counts students grouped by study level
func (r *StudentRepository) CountByLevel(ctx context.Context) ([]dto.LevelCount, error) {
	query := `
		SELECT level, COUNT(*)
		FROM students
		GROUP BY level
		ORDER BY level
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []dto.LevelCount
	for rows.Next() {
		var lc dto.LevelCount
		if err := rows.Scan(&lc.Level, &lc.Count); err != nil {
			return nil, err
		}
		counts = append(counts, lc)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return counts, nil
}
