package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/app/models/dto"
	"github.com/campushub/backend/internal/pkg/apperrors"
	"github.com/campushub/backend/internal/pkg/dberrors"
)

// ICourseRepository defines storage operations for courses
type ICourseRepository interface {
	Create(ctx context.Context, course *models.Course) error
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	List(ctx context.Context, filter dto.CourseFilter) ([]*models.Course, error)
	ListByTeacher(ctx context.Context, teacherID int64) ([]*models.Course, error)
	Update(ctx context.Context, course *models.Course) error
	Delete(ctx context.Context, id int64) error

	CodeTaken(ctx context.Context, code string, excludeID int64) (bool, error)
}

// CourseRepository handles database operations for courses
type CourseRepository struct {
	db *pgxpool.Pool
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{db: db}
}

const courseColumns = `id, code, name, description, department_id, teacher_id, semester, credits`

func scanCourse(row pgx.Row) (*models.Course, error) {
	var course models.Course
	err := row.Scan(
		&course.ID,
		&course.Code,
		&course.Name,
		&course.Description,
		&course.DepartmentID,
		&course.TeacherID,
		&course.Semester,
		&course.Credits,
	)
	if err != nil {
		return nil, err
	}
	return &course, nil
}

// Create creates a new course
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	query := `
		INSERT INTO courses (code, name, description, department_id, teacher_id, semester, credits)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		course.Code, course.Name, course.Description,
		course.DepartmentID, course.TeacherID, course.Semester, course.Credits,
	).Scan(&course.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrCourseCodeExists
		}
		return fmt.Errorf("error creating course: %w", err)
	}

	return nil
}

// GetByID retrieves a course by ID
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses WHERE id = $1`

	course, err := scanCourse(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}

	return course, nil
}

// List retrieves courses matching the optional filters, ordered by ID
func (r *CourseRepository) List(ctx context.Context, filter dto.CourseFilter) ([]*models.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses WHERE 1=1`
	args := []interface{}{}

	if filter.DepartmentID != nil {
		args = append(args, *filter.DepartmentID)
		query += fmt.Sprintf(" AND department_id = $%d", len(args))
	}
	if filter.TeacherID != nil {
		args = append(args, *filter.TeacherID)
		query += fmt.Sprintf(" AND teacher_id = $%d", len(args))
	}
	if filter.Semester != nil {
		args = append(args, *filter.Semester)
		query += fmt.Sprintf(" AND semester = $%d", len(args))
	}
	query += " ORDER BY id"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing courses: %w", err)
	}
	defer rows.Close()

	var courses []*models.Course
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, err
		}
		courses = append(courses, course)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return courses, nil
}

// ListByTeacher retrieves the courses assigned to a teacher, ordered by ID
func (r *CourseRepository) ListByTeacher(ctx context.Context, teacherID int64) ([]*models.Course, error) {
	teacher := teacherID
	return r.List(ctx, dto.CourseFilter{TeacherID: &teacher})
}

// Update persists all mutable fields of an existing course
func (r *CourseRepository) Update(ctx context.Context, course *models.Course) error {
	query := `
		UPDATE courses
		SET code = $1, name = $2, description = $3, department_id = $4,
		    teacher_id = $5, semester = $6, credits = $7
		WHERE id = $8
	`

	cmdTag, err := r.db.Exec(ctx, query,
		course.Code, course.Name, course.Description, course.DepartmentID,
		course.TeacherID, course.Semester, course.Credits, course.ID,
	)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrCourseCodeExists
		}
		return fmt.Errorf("error updating course: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}

// Delete removes a course by ID. Enrollments, assignments (with their
// grades) and attendance cascade at the storage layer.
func (r *CourseRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting course: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}

// CodeTaken checks if a different course already holds the given code.
// excludeID is 0 for create paths.
func (r *CourseRepository) CodeTaken(ctx context.Context, code string, excludeID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM courses WHERE code = $1 AND id != $2)`,
		code, excludeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking course code uniqueness: %w", err)
	}

	return exists, nil
}
