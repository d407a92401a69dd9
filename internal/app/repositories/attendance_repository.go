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

// IAttendanceRepository defines storage operations for attendance records
type IAttendanceRepository interface {
	Create(ctx context.Context, attendance *models.Attendance) error
	ListByCourse(ctx context.Context, courseID int64, filter dto.AttendanceFilter) ([]*models.Attendance, error)
	Exists(ctx context.Context, courseID, studentID int64, date string, period *string) (bool, error)
}

// AttendanceRepository handles database operations for attendance
type AttendanceRepository struct {
	db *pgxpool.Pool
}

// NewAttendanceRepository creates a new attendance repository
func NewAttendanceRepository(db *pgxpool.Pool) *AttendanceRepository {
	return &AttendanceRepository{db: db}
}

// Create creates a new attendance record. One record per
// (course, student, date, period) is enforced at the storage layer.
func (r *AttendanceRepository) Create(ctx context.Context, attendance *models.Attendance) error {
	query := `
		INSERT INTO attendance (course_id, student_id, date, status, marked_by_id, period)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		attendance.CourseID, attendance.StudentID, attendance.Date,
		attendance.Status, attendance.MarkedByID, attendance.Period,
	).Scan(&attendance.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrAttendanceAlreadyMarked
		}
		return fmt.Errorf("error creating attendance record: %w", err)
	}

	return nil
}

// ListByCourse retrieves attendance records of a course matching the
// optional filters, ordered by date then ID
func (r *AttendanceRepository) ListByCourse(ctx context.Context, courseID int64, filter dto.AttendanceFilter) ([]*models.Attendance, error) {
	query := `
		SELECT id, course_id, student_id, date, status, marked_by_id, period
		FROM attendance
		WHERE course_id = $1
	`
	args := []interface{}{courseID}

	if filter.StudentID != nil {
		args = append(args, *filter.StudentID)
		query += fmt.Sprintf(" AND student_id = $%d", len(args))
	}
	if filter.Date != nil {
		args = append(args, *filter.Date)
		query += fmt.Sprintf(" AND date = $%d", len(args))
	}
	query += " ORDER BY date, id"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing attendance records: %w", err)
	}
	defer rows.Close()

	var records []*models.Attendance
	for rows.Next() {
		var record models.Attendance
		if err := rows.Scan(
			&record.ID,
			&record.CourseID,
			&record.StudentID,
			&record.Date,
			&record.Status,
			&record.MarkedByID,
			&record.Period,
		); err != nil {
			return nil, err
		}
		records = append(records, &record)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// Exists checks whether attendance is already marked for the student in
// the course on the given date and period
func (r *AttendanceRepository) Exists(ctx context.Context, courseID, studentID int64, date string, period *string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(
			SELECT 1 FROM attendance
			WHERE course_id = $1 AND student_id = $2 AND date = $3
			  AND period IS NOT DISTINCT FROM $4
		)`,
		courseID, studentID, date, period).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking attendance existence: %w", err)
	}

	return exists, nil
}
