package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/app/models/dto"
	"github.com/campushub/backend/internal/pkg/apperrors"
	"github.com/campushub/backend/internal/pkg/dberrors"
)

// IEnrollmentRepository defines storage operations for enrollments
type IEnrollmentRepository interface {
	Create(ctx context.Context, enrollment *models.Enrollment) error
	List(ctx context.Context, filter dto.EnrollmentFilter) ([]*models.Enrollment, error)
	Exists(ctx context.Context, studentID, courseID int64) (bool, error)
}

// EnrollmentRepository handles database operations for enrollments
type EnrollmentRepository struct {
	db *pgxpool.Pool
}

// NewEnrollmentRepository creates a new enrollment repository
func NewEnrollmentRepository(db *pgxpool.Pool) *EnrollmentRepository {
	return &EnrollmentRepository{db: db}
}

// Create creates a new enrollment. The unique constraint on
// (student_id, course_id) converts a concurrent duplicate insert into
// the same conflict the preemptive check reports.
func (r *EnrollmentRepository) Create(ctx context.Context, enrollment *models.Enrollment) error {
	query := `
		INSERT INTO enrollments (student_id, course_id)
		VALUES ($1, $2)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query, enrollment.StudentID, enrollment.CourseID).
		Scan(&enrollment.ID, &enrollment.CreatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrAlreadyEnrolled
		}
		return fmt.Errorf("error creating enrollment: %w", err)
	}

	return nil
}

// List retrieves enrollments matching the optional filters, ordered by ID
func (r *EnrollmentRepository) List(ctx context.Context, filter dto.EnrollmentFilter) ([]*models.Enrollment, error) {
	query := `SELECT id, student_id, course_id, created_at FROM enrollments WHERE 1=1`
	args := []interface{}{}

	if filter.StudentID != nil {
		args = append(args, *filter.StudentID)
		query += fmt.Sprintf(" AND student_id = $%d", len(args))
	}
	if filter.CourseID != nil {
		args = append(args, *filter.CourseID)
		query += fmt.Sprintf(" AND course_id = $%d", len(args))
	}
	query += " ORDER BY id"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing enrollments: %w", err)
	}
	defer rows.Close()

	var enrollments []*models.Enrollment
	for rows.Next() {
		var enrollment models.Enrollment
		if err := rows.Scan(
			&enrollment.ID,
			&enrollment.StudentID,
			&enrollment.CourseID,
			&enrollment.CreatedAt,
		); err != nil {
			return nil, err
		}
		enrollments = append(enrollments, &enrollment)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return enrollments, nil
}

// Exists checks whether the student is already enrolled in the course
func (r *EnrollmentRepository) Exists(ctx context.Context, studentID, courseID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM enrollments WHERE student_id = $1 AND course_id = $2)`,
		studentID, courseID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking enrollment existence: %w", err)
	}

	return exists, nil
}
