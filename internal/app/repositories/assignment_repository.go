package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/pkg/apperrors"
)

// IAssignmentRepository defines storage operations for assignments
type IAssignmentRepository interface {
	Create(ctx context.Context, assignment *models.Assignment) error
	GetByID(ctx context.Context, id int64) (*models.Assignment, error)
	ListByCourse(ctx context.Context, courseID int64) ([]*models.Assignment, error)
	Update(ctx context.Context, assignment *models.Assignment) error
	Delete(ctx context.Context, id int64) error
}

// AssignmentRepository handles database operations for assignments
type AssignmentRepository struct {
	db *pgxpool.Pool
}

// NewAssignmentRepository creates a new assignment repository
func NewAssignmentRepository(db *pgxpool.Pool) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

// Create creates a new assignment
func (r *AssignmentRepository) Create(ctx context.Context, assignment *models.Assignment) error {
	query := `
		INSERT INTO assignments (course_id, title, description, due_date)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		assignment.CourseID, assignment.Title, assignment.Description, assignment.DueDate,
	).Scan(&assignment.ID)
	if err != nil {
		return fmt.Errorf("error creating assignment: %w", err)
	}

	return nil
}

// GetByID retrieves an assignment by ID
func (r *AssignmentRepository) GetByID(ctx context.Context, id int64) (*models.Assignment, error) {
	query := `SELECT id, course_id, title, description, due_date FROM assignments WHERE id = $1`

	var assignment models.Assignment
	err := r.db.QueryRow(ctx, query, id).Scan(
		&assignment.ID,
		&assignment.CourseID,
		&assignment.Title,
		&assignment.Description,
		&assignment.DueDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAssignmentNotFound
		}
		return nil, fmt.Errorf("error retrieving assignment: %w", err)
	}

	return &assignment, nil
}

// ListByCourse retrieves the assignments of a course, ordered by ID
func (r *AssignmentRepository) ListByCourse(ctx context.Context, courseID int64) ([]*models.Assignment, error) {
	query := `
		SELECT id, course_id, title, description, due_date
		FROM assignments
		WHERE course_id = $1
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query, courseID)
	if err != nil {
		return nil, fmt.Errorf("error listing assignments: %w", err)
	}
	defer rows.Close()

	var assignments []*models.Assignment
	for rows.Next() {
		var assignment models.Assignment
		if err := rows.Scan(
			&assignment.ID,
			&assignment.CourseID,
			&assignment.Title,
			&assignment.Description,
			&assignment.DueDate,
		); err != nil {
			return nil, err
		}
		assignments = append(assignments, &assignment)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return assignments, nil
}

// Update persists all mutable fields of an existing assignment
func (r *AssignmentRepository) Update(ctx context.Context, assignment *models.Assignment) error {
	query := `
		UPDATE assignments
		SET title = $1, description = $2, due_date = $3
		WHERE id = $4
	`

	cmdTag, err := r.db.Exec(ctx, query,
		assignment.Title, assignment.Description, assignment.DueDate, assignment.ID)
	if err != nil {
		return fmt.Errorf("error updating assignment: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAssignmentNotFound
	}

	return nil
}

// Delete removes an assignment by ID. Grades cascade at the storage layer.
func (r *AssignmentRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM assignments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting assignment: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAssignmentNotFound
	}

	return nil
}
