package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/app/models/dto"
	"github.com/campushub/backend/internal/pkg/apperrors"
)

// IBookingRepository defines storage operations for resource bookings
type IBookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, id int64) (*models.Booking, error)
	List(ctx context.Context, filter dto.BookingFilter) ([]*models.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status models.BookingStatus) error
	Delete(ctx context.Context, id int64) error

	HasApprovedOverlap(ctx context.Context, resourceID int64, start, end time.Time, excludeID int64) (bool, error)
}

// BookingRepository handles database operations for bookings
type BookingRepository struct {
	db *pgxpool.Pool
}

// NewBookingRepository creates a new booking repository
func NewBookingRepository(db *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{db: db}
}

const bookingColumns = `id, resource_id, booked_by_id, start_time, end_time, purpose, status`

func scanBooking(row pgx.Row) (*models.Booking, error) {
	var booking models.Booking
	err := row.Scan(
		&booking.ID,
		&booking.ResourceID,
		&booking.BookedByID,
		&booking.StartTime,
		&booking.EndTime,
		&booking.Purpose,
		&booking.Status,
	)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// Create creates a new booking
func (r *BookingRepository) Create(ctx context.Context, booking *models.Booking) error {
	query := `
		INSERT INTO bookings (resource_id, booked_by_id, start_time, end_time, purpose, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		booking.ResourceID, booking.BookedByID, booking.StartTime,
		booking.EndTime, booking.Purpose, booking.Status,
	).Scan(&booking.ID)
	if err != nil {
		return fmt.Errorf("error creating booking: %w", err)
	}

	return nil
}

// GetByID retrieves a booking by ID
func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*models.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	booking, err := scanBooking(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrBookingNotFound
		}
		return nil, fmt.Errorf("error retrieving booking: %w", err)
	}

	return booking, nil
}

// List retrieves bookings matching the optional filters, ordered by start time
func (r *BookingRepository) List(ctx context.Context, filter dto.BookingFilter) ([]*models.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE 1=1`
	args := []interface{}{}

	if filter.ResourceID != nil {
		args = append(args, *filter.ResourceID)
		query += fmt.Sprintf(" AND resource_id = $%d", len(args))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if filter.BookedByID != nil {
		args = append(args, *filter.BookedByID)
		query += fmt.Sprintf(" AND booked_by_id = $%d", len(args))
	}
	query += " ORDER BY start_time, id"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing bookings: %w", err)
	}
	defer rows.Close()

	var bookings []*models.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, booking)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return bookings, nil
}

// UpdateStatus resolves a booking to the given status
func (r *BookingRepository) UpdateStatus(ctx context.Context, id int64, status models.BookingStatus) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE bookings SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("error updating booking status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrBookingNotFound
	}

	return nil
}

// Delete removes a booking by ID
func (r *BookingRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting booking: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrBookingNotFound
	}

	return nil
}

// HasApprovedOverlap checks whether an approved booking of the resource
// overlaps the [start, end) range. excludeID is 0 for create paths.
func (r *BookingRepository) HasApprovedOverlap(ctx context.Context, resourceID int64, start, end time.Time, excludeID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(
			SELECT 1 FROM bookings
			WHERE resource_id = $1 AND status = $2 AND id != $3
			  AND start_time < $5 AND end_time > $4
		)`,
		resourceID, models.BookingApproved, excludeID, start, end).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking booking overlap: %w", err)
	}

	return exists, nil
}
