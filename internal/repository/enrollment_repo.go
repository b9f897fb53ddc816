package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"bpo-website/internal/models"
)

// ErrNotConfigured is returned when no database URL was configured.
var ErrNotConfigured = errors.New("database is not configured")

const maxEnrollmentList = 100

type EnrollmentRepo struct {
	pool *pgxpool.Pool
}

// NewEnrollmentRepo accepts a nil pool; every call then fails with
// ErrNotConfigured.
func NewEnrollmentRepo(pool *pgxpool.Pool) *EnrollmentRepo {
	return &EnrollmentRepo{pool: pool}
}

func (r *EnrollmentRepo) Create(ctx context.Context, e *models.Enrollment) error {
	if r.pool == nil {
		return ErrNotConfigured
	}

	e.ID = uuid.New()
	e.Status = models.StatusPending

	query := `INSERT INTO enrollments (id, first_name, last_name, email, phone, company,
		training_program, training_type, experience_level, preferred_start_date, message, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, email, created_at`

	err := r.pool.QueryRow(ctx, query,
		e.ID, e.FirstName, e.LastName, e.Email, e.Phone, e.Company,
		e.TrainingProgram, e.TrainingType, e.ExperienceLevel, e.PreferredStartDate, e.Message, e.Status,
	).Scan(&e.ID, &e.Email, &e.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert enrollment: %w", err)
	}
	return nil
}

func (r *EnrollmentRepo) List(ctx context.Context, f models.EnrollmentFilter) ([]*models.Enrollment, error) {
	if r.pool == nil {
		return nil, ErrNotConfigured
	}

	query, args := buildEnrollmentQuery(f)
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list enrollments: %w", err)
	}
	defer rows.Close()

	var out []*models.Enrollment
	for rows.Next() {
		e := &models.Enrollment{}
		if err := rows.Scan(
			&e.ID, &e.FirstName, &e.LastName, &e.Email, &e.Phone, &e.Company,
			&e.TrainingProgram, &e.TrainingType, &e.ExperienceLevel, &e.PreferredStartDate,
			&e.Message, &e.Status, &e.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func buildEnrollmentQuery(f models.EnrollmentFilter) (string, []interface{}) {
	var args []interface{}
	argIdx := 1
	where := "WHERE 1=1"

	if f.Status != "" {
		where += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, f.Status)
		argIdx++
	}
	if f.Email != "" {
		where += fmt.Sprintf(" AND email = $%d", argIdx)
		args = append(args, f.Email)
		argIdx++
	}

	limit := f.Limit
	if limit <= 0 || limit > maxEnrollmentList {
		limit = maxEnrollmentList
	}
	args = append(args, limit)

	query := `SELECT id, first_name, last_name, email, phone, company, training_program,
		training_type, experience_level, preferred_start_date, message, status, created_at
		FROM enrollments ` + where + fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", argIdx)
	return query, args
}
