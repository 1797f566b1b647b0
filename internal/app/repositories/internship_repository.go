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
)

// InternshipRepository handles database operations for internship postings
type InternshipRepository struct {
	db *pgxpool.Pool
}

// NewInternshipRepository creates a new internship repository
func NewInternshipRepository(db *pgxpool.Pool) *InternshipRepository {
	return &InternshipRepository{db: db}
}

var internshipJoinedColumns = []string{
	"i.id", "i.title", "i.description", "i.service_id", "i.establishment_id", "i.chief_id",
	"i.duration", "i.start_date", "i.end_date", "i.available_places", "i.total_places",
	"i.requirements", "i.skills", "i.is_active", "i.is_published", "i.created_at", "i.published_at",
	"s.name", "s.code",
	"e.name", "e.city", "e.type",
}

func scanJoinedInternship(row pgx.Row, extra ...interface{}) (*models.Internship, error) {
	var i models.Internship
	var svc models.Service
	var est models.Establishment

	dest := []interface{}{
		&i.ID, &i.Title, &i.Description, &i.ServiceID, &i.EstablishmentID, &i.ChiefID,
		&i.Duration, &i.StartDate, &i.EndDate, &i.AvailablePlaces, &i.TotalPlaces,
		&i.Requirements, &i.Skills, &i.IsActive, &i.IsPublished, &i.CreatedAt, &i.PublishedAt,
		&svc.Name, &svc.Code,
		&est.Name, &est.City, &est.Type,
	}
	dest = append(dest, extra...)

	if err := row.Scan(dest...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrInternshipNotFound
		}
		return nil, fmt.Errorf("error scanning internship: %w", err)
	}

	svc.ID = i.ServiceID
	est.ID = i.EstablishmentID
	i.Service = &svc
	i.Establishment = &est
	return &i, nil
}

// Create inserts a new internship posting
func (r *InternshipRepository) Create(ctx context.Context, i *models.Internship) error {
	query := squirrel.Insert("internships").
		Columns("title", "description", "service_id", "establishment_id", "chief_id",
			"duration", "start_date", "end_date", "available_places", "total_places",
			"requirements", "skills", "is_published", "published_at").
		Values(i.Title, i.Description, i.ServiceID, i.EstablishmentID, i.ChiefID,
			i.Duration, i.StartDate, i.EndDate, i.AvailablePlaces, i.TotalPlaces,
			i.Requirements, i.Skills, i.IsPublished, i.PublishedAt).
		Suffix("RETURNING id, is_active, created_at").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&i.ID, &i.IsActive, &i.CreatedAt)
	if err != nil {
		return err
	}

	return nil
}

// GetByID retrieves an internship with its service and establishment
func (r *InternshipRepository) GetByID(ctx context.Context, id int64) (*models.Internship, error) {
	query := squirrel.Select(internshipJoinedColumns...).
		From("internships i").
		Join("services s ON s.id = i.service_id").
		Join("establishments e ON e.id = i.establishment_id").
		Where("i.id = ?", id).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	return scanJoinedInternship(r.db.QueryRow(ctx, sql, args...))
}

// ListPublished retrieves published active internships starting in the
// future, with filtering and pagination. The total count rides along via a
// window function.
func (r *InternshipRepository) ListPublished(ctx context.Context, filter dto.InternshipFilter, offset uint64, limit int) ([]*models.Internship, int64, error) {
	query := squirrel.Select(internshipJoinedColumns...).
		Column("COUNT(*) OVER()").
		From("internships i").
		Join("services s ON s.id = i.service_id").
		Join("establishments e ON e.id = i.establishment_id").
		Where("i.is_active = TRUE").
		Where("i.is_published = TRUE").
		Where("i.start_date >= ?", time.Now()).
		OrderBy("i.created_at DESC").
		Limit(uint64(limit)).
		Offset(offset).
		PlaceholderFormat(squirrel.Dollar)

	if filter.ServiceID > 0 {
		query = query.Where("i.service_id = ?", filter.ServiceID)
	}
	if filter.EstablishmentID > 0 {
		query = query.Where("i.establishment_id = ?", filter.EstablishmentID)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where(squirrel.Or{
			squirrel.Expr("i.title ILIKE ?", pattern),
			squirrel.Expr("i.description ILIKE ?", pattern),
		})
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

	var internships []*models.Internship
	var total int64
	for rows.Next() {
		i, err := scanJoinedInternship(rows, &total)
		if err != nil {
			return nil, 0, err
		}
		internships = append(internships, i)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return internships, total, nil
}

// ListByChief retrieves a chief's internships, newest first
func (r *InternshipRepository) ListByChief(ctx context.Context, chiefID int64, activeOnly bool) ([]*models.Internship, error) {
	query := squirrel.Select(internshipJoinedColumns...).
		From("internships i").
		Join("services s ON s.id = i.service_id").
		Join("establishments e ON e.id = i.establishment_id").
		Where("i.chief_id = ?", chiefID).
		OrderBy("i.created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if activeOnly {
		query = query.Where("i.is_active = TRUE").Where("i.is_published = TRUE")
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

	var internships []*models.Internship
	for rows.Next() {
		i, err := scanJoinedInternship(rows)
		if err != nil {
			return nil, err
		}
		internships = append(internships, i)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return internships, nil
}

// ListRecommended retrieves published active internships starting in the future
func (r *InternshipRepository) ListRecommended(ctx context.Context, limit int) ([]*models.Internship, error) {
	query := squirrel.Select(internshipJoinedColumns...).
		From("internships i").
		Join("services s ON s.id = i.service_id").
		Join("establishments e ON e.id = i.establishment_id").
		Where("i.is_active = TRUE").
		Where("i.is_published = TRUE").
		Where("i.start_date >= ?", time.Now()).
		OrderBy("i.created_at DESC").
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

	var internships []*models.Internship
	for rows.Next() {
		i, err := scanJoinedInternship(rows)
		if err != nil {
			return nil, err
		}
		internships = append(internships, i)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return internships, nil
}

// DecrementAvailablePlaces takes one place off the posting. No floor check,
// mirrors the accept flow which runs this as an independent write.
func (r *InternshipRepository) DecrementAvailablePlaces(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE internships SET available_places = available_places - 1 WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error decrementing available places: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrInternshipNotFound
	}
	return nil
}

// CountByChief counts a chief's active published internships
func (r *InternshipRepository) CountByChief(ctx context.Context, chiefID int64) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM internships WHERE chief_id = $1 AND is_active = TRUE AND is_published = TRUE`,
		chiefID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting internships: %w", err)
	}
	return count, nil
}

// CountAll counts every internship
func (r *InternshipRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM internships`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting internships: %w", err)
	}
	return count, nil
}

// CountActive counts active published internships
func (r *InternshipRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM internships WHERE is_active = TRUE AND is_published = TRUE`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting active internships: %w", err)
	}
	return count, nil
}

// StatsByEstablishment counts internships per establishment
func (r *InternshipRepository) StatsByEstablishment(ctx context.Context) ([]dto.EstablishmentStat, error) {
	query := `
		SELECT e.id, e.name,
		       COUNT(i.id),
		       COUNT(i.id) FILTER (WHERE i.is_active = TRUE)
		FROM establishments e
		LEFT JOIN internships i ON i.establishment_id = e.id
		GROUP BY e.id, e.name
		ORDER BY e.name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []dto.EstablishmentStat
	for rows.Next() {
		var s dto.EstablishmentStat
		if err := rows.Scan(&s.ID, &s.Name, &s.InternshipCount, &s.ActiveCount); err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return stats, nil
}

// StatsByService counts internships per service
func (r *InternshipRepository) StatsByService(ctx context.Context) ([]dto.ServiceStat, error) {
	query := `
		SELECT s.id, s.name, s.code,
		       COUNT(i.id),
		       COUNT(i.id) FILTER (WHERE i.is_active = TRUE AND i.is_published = TRUE)
		FROM services s
		LEFT JOIN internships i ON i.service_id = s.id
		GROUP BY s.id, s.name, s.code
		ORDER BY s.name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []dto.ServiceStat
	for rows.Next() {
		var s dto.ServiceStat
		if err := rows.Scan(&s.ID, &s.Name, &s.Code, &s.InternshipCount, &s.ActiveInternships); err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return stats, nil
}

// MonthlyTrends counts internships created per month since the given time
func (r *InternshipRepository) MonthlyTrends(ctx context.Context, since time.Time) ([]dto.MonthlyTrend, error) {
	query := `
		SELECT EXTRACT(YEAR FROM created_at)::int,
		       EXTRACT(MONTH FROM created_at)::int,
		       COUNT(*)
		FROM internships
		WHERE created_at >= $1
		GROUP BY 1, 2
		ORDER BY 1, 2
	`

	rows, err := r.db.Query(ctx, query, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var trends []dto.MonthlyTrend
	for rows.Next() {
		var t dto.MonthlyTrend
		if err := rows.Scan(&t.Year, &t.Month, &t.Count); err != nil {
			return nil, err
		}
		trends = append(trends, t)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return trends, nil
}
