package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/pkg/apperrors"
	"github.com/campushub/backend/internal/pkg/dberrors"
)

// IGradeRepository defines storage operations for grades
type IGradeRepository interface {
	Create(ctx context.Context, grade *models.Grade) error
	GetByID(ctx context.Context, id int64) (*models.Grade, error)
	ListByAssignment(ctx context.Context, assignmentID int64) ([]*models.Grade, error)
	Update(ctx context.Context, grade *models.Grade) error
	Exists(ctx context.Context, assignmentID, studentID int64) (bool, error)
}

// GradeRepository handles database operations for grades
type GradeRepository struct {
	db *pgxpool.Pool
}

// NewGradeRepository creates a new grade repository
func NewGradeRepository(db *pgxpool.Pool) *GradeRepository {
	return &GradeRepository{db: db}
}

const gradeColumns = `id, assignment_id, student_id, graded_by_id, grade_value, feedback, is_finalized, graded_at`

func scanGrade(row pgx.Row) (*models.Grade, error) {
	var grade models.Grade
	err := row.Scan(
		&grade.ID,
		&grade.AssignmentID,
		&grade.StudentID,
		&grade.GradedByID,
		&grade.GradeValue,
		&grade.Feedback,
		&grade.IsFinalized,
		&grade.GradedAt,
	)
	if err != nil {
		return nil, err
	}
	return &grade, nil
}

// Create creates a new grade. One grade per (assignment, student) is
// enforced at the storage layer.
func (r *GradeRepository) Create(ctx context.Context, grade *models.Grade) error {
	query := `
		INSERT INTO grades (assignment_id, student_id, graded_by_id, grade_value, feedback, is_finalized)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, graded_at
	`

	err := r.db.QueryRow(ctx, query,
		grade.AssignmentID, grade.StudentID, grade.GradedByID,
		grade.GradeValue, grade.Feedback, grade.IsFinalized,
	).Scan(&grade.ID, &grade.GradedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrGradeAlreadyExists
		}
		return fmt.Errorf("error creating grade: %w", err)
	}

	return nil
}

// GetByID retrieves a grade by ID
func (r *GradeRepository) GetByID(ctx context.Context, id int64) (*models.Grade, error) {
	query := `SELECT ` + gradeColumns + ` FROM grades WHERE id = $1`

	grade, err := scanGrade(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrGradeNotFound
		}
		return nil, fmt.Errorf("error retrieving grade: %w", err)
	}

	return grade, nil
}

// ListByAssignment retrieves the grades of an assignment, ordered by ID
func (r *GradeRepository) ListByAssignment(ctx context.Context, assignmentID int64) ([]*models.Grade, error) {
	query := `SELECT ` + gradeColumns + ` FROM grades WHERE assignment_id = $1 ORDER BY id`

	rows, err := r.db.Query(ctx, query, assignmentID)
	if err != nil {
		return nil, fmt.Errorf("error listing grades: %w", err)
	}
	defer rows.Close()

	var grades []*models.Grade
	for rows.Next() {
		grade, err := scanGrade(rows)
		if err != nil {
			return nil, err
		}
		grades = append(grades, grade)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return grades, nil
}

// Update persists all mutable fields of an existing grade
func (r *GradeRepository) Update(ctx context.Context, grade *models.Grade) error {
	query := `
		UPDATE grades
		SET grade_value = $1, feedback = $2, is_finalized = $3, graded_by_id = $4, graded_at = NOW()
		WHERE id = $5
	`

	cmdTag, err := r.db.Exec(ctx, query,
		grade.GradeValue, grade.Feedback, grade.IsFinalized, grade.GradedByID, grade.ID)
	if err != nil {
		return fmt.Errorf("error updating grade: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrGradeNotFound
	}

	return nil
}

// Exists checks whether a grade already exists for the assignment and student
func (r *GradeRepository) Exists(ctx context.Context, assignmentID, studentID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM grades WHERE assignment_id = $1 AND student_id = $2)`,
		assignmentID, studentID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking grade existence: %w", err)
	}

	return exists, nil
}
