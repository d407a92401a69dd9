package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/app/models/dto"
	"github.com/campushub/backend/internal/app/repositories/repotest"
	"github.com/campushub/backend/internal/pkg/apperrors"
)

func newTestBookingService(store *repotest.Store) *BookingService {
	return NewBookingService(store.Bookings(), store.Resources(), newTestAuthz(store))
}

func bookingRange(day int, fromHour, toHour int) (time.Time, time.Time) {
	base := time.Date(2026, 9, day, 0, 0, 0, 0, time.UTC)
	return base.Add(time.Duration(fromHour) * time.Hour), base.Add(time.Duration(toHour) * time.Hour)
}

func TestCreateBooking(t *testing.T) {
	store := repotest.NewStore()
	teacher := seedTeacher(store, "Teacher", "t@example.com")
	student := seedStudent(store, "Student", "s@example.com")
	lab := store.SeedResource(&models.Resource{Name: "Lab", Type: "lab", IsActive: true})
	closed := store.SeedResource(&models.Resource{Name: "Closed Hall", Type: "classroom", IsActive: false})
	svc := newTestBookingService(store)
	ctx := context.Background()

	t.Run("teacher books an active resource", func(t *testing.T) {
		start, end := bookingRange(1, 9, 11)
		booking, err := svc.CreateBooking(ctx, teacher, &dto.CreateBookingRequest{
			ResourceID: lab.ID, StartTime: start, EndTime: end,
		})
		require.NoError(t, err)
		assert.Equal(t, models.BookingPending, booking.Status)
		assert.Equal(t, teacher.ID, booking.BookedByID)
	})

	t.Run("students may not book", func(t *testing.T) {
		start, end := bookingRange(1, 9, 11)
		_, err := svc.CreateBooking(ctx, student, &dto.CreateBookingRequest{
			ResourceID: lab.ID, StartTime: start, EndTime: end,
		})
		assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	})

	t.Run("inactive resource is invalid", func(t *testing.T) {
		start, end := bookingRange(1, 9, 11)
		_, err := svc.CreateBooking(ctx, teacher, &dto.CreateBookingRequest{
			ResourceID: closed.ID, StartTime: start, EndTime: end,
		})
		assert.ErrorIs(t, err, apperrors.ErrBadResource)
	})

	t.Run("inverted time range is invalid", func(t *testing.T) {
		start, end := bookingRange(1, 11, 9)
		_, err := svc.CreateBooking(ctx, teacher, &dto.CreateBookingRequest{
			ResourceID: lab.ID, StartTime: start, EndTime: end,
		})
		assert.ErrorIs(t, err, apperrors.ErrBadTimeRange)
	})

	t.Run("overlap with an approved booking conflicts", func(t *testing.T) {
		start, end := bookingRange(2, 9, 11)
		store.SeedBooking(&models.Booking{
			ResourceID: lab.ID, BookedByID: teacher.ID,
			StartTime: start, EndTime: end, Status: models.BookingApproved,
		})

		overlapStart, overlapEnd := bookingRange(2, 10, 12)
		_, err := svc.CreateBooking(ctx, teacher, &dto.CreateBookingRequest{
			ResourceID: lab.ID, StartTime: overlapStart, EndTime: overlapEnd,
		})
		assert.ErrorIs(t, err, apperrors.ErrBookingOverlap)

		// Pending bookings do not block; back-to-back ranges do not
		// overlap.
		adjacentStart, adjacentEnd := bookingRange(2, 11, 13)
		_, err = svc.CreateBooking(ctx, teacher, &dto.CreateBookingRequest{
			ResourceID: lab.ID, StartTime: adjacentStart, EndTime: adjacentEnd,
		})
		assert.NoError(t, err)
	})
}

func TestResolveBooking(t *testing.T) {
	store := repotest.NewStore()
	teacher := seedTeacher(store, "Teacher", "t@example.com")
	lab := store.SeedResource(&models.Resource{Name: "Lab", Type: "lab", IsActive: true})
	svc := newTestBookingService(store)
	ctx := context.Background()

	start, end := bookingRange(3, 9, 11)
	first := store.SeedBooking(&models.Booking{
		ResourceID: lab.ID, BookedByID: teacher.ID,
		StartTime: start, EndTime: end, Status: models.BookingPending,
	})
	second := store.SeedBooking(&models.Booking{
		ResourceID: lab.ID, BookedByID: teacher.ID,
		StartTime: start, EndTime: end, Status: models.BookingPending,
	})

	t.Run("approve", func(t *testing.T) {
		resolved, err := svc.ResolveBooking(ctx, first.ID, &dto.UpdateBookingStatusRequest{Status: "approved"})
		require.NoError(t, err)
		assert.Equal(t, models.BookingApproved, resolved.Status)
	})

	t.Run("approval re-checks overlap", func(t *testing.T) {
		_, err := svc.ResolveBooking(ctx, second.ID, &dto.UpdateBookingStatusRequest{Status: "approved"})
		assert.ErrorIs(t, err, apperrors.ErrBookingOverlap)
	})

	t.Run("rejection ignores overlap", func(t *testing.T) {
		resolved, err := svc.ResolveBooking(ctx, second.ID, &dto.UpdateBookingStatusRequest{Status: "rejected"})
		require.NoError(t, err)
		assert.Equal(t, models.BookingRejected, resolved.Status)
	})

	t.Run("resolved bookings cannot be resolved again", func(t *testing.T) {
		_, err := svc.ResolveBooking(ctx, first.ID, &dto.UpdateBookingStatusRequest{Status: "rejected"})
		assert.ErrorIs(t, err, apperrors.ErrBookingNotPending)
	})
}

func TestListBookings_Visibility(t *testing.T) {
	store := repotest.NewStore()
	admin := seedAdmin(store)
	teacher := seedTeacher(store, "Teacher", "t@example.com")
	other := seedTeacher(store, "Other", "o@example.com")
	lab := store.SeedResource(&models.Resource{Name: "Lab", Type: "lab", IsActive: true})
	svc := newTestBookingService(store)
	ctx := context.Background()

	start, end := bookingRange(4, 9, 11)
	store.SeedBooking(&models.Booking{ResourceID: lab.ID, BookedByID: teacher.ID, StartTime: start, EndTime: end, Status: models.BookingPending})
	store.SeedBooking(&models.Booking{ResourceID: lab.ID, BookedByID: other.ID, StartTime: start, EndTime: end, Status: models.BookingPending})

	all, err := svc.ListBookings(ctx, admin, dto.BookingFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	own, err := svc.ListBookings(ctx, teacher, dto.BookingFilter{})
	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.Equal(t, teacher.ID, own[0].BookedByID)
}

func TestDeleteBooking(t *testing.T) {
	store := repotest.NewStore()
	admin := seedAdmin(store)
	teacher := seedTeacher(store, "Teacher", "t@example.com")
	other := seedTeacher(store, "Other", "o@example.com")
	lab := store.SeedResource(&models.Resource{Name: "Lab", Type: "lab", IsActive: true})
	svc := newTestBookingService(store)
	ctx := context.Background()

	start, end := bookingRange(5, 9, 11)
	pending := store.SeedBooking(&models.Booking{ResourceID: lab.ID, BookedByID: teacher.ID, StartTime: start, EndTime: end, Status: models.BookingPending})
	approved := store.SeedBooking(&models.Booking{ResourceID: lab.ID, BookedByID: teacher.ID, StartTime: start, EndTime: end, Status: models.BookingApproved})

	t.Run("booker deletes own pending booking", func(t *testing.T) {
		assert.NoError(t, svc.DeleteBooking(ctx, teacher, pending.ID))
	})

	t.Run("booker cannot delete a resolved booking", func(t *testing.T) {
		assert.ErrorIs(t, svc.DeleteBooking(ctx, teacher, approved.ID), apperrors.ErrBookingNotPending)
	})

	t.Run("others are forbidden", func(t *testing.T) {
		assert.ErrorIs(t, svc.DeleteBooking(ctx, other, approved.ID), apperrors.ErrPermissionDenied)
	})

	t.Run("admin deletes anything", func(t *testing.T) {
		assert.NoError(t, svc.DeleteBooking(ctx, admin, approved.ID))
	})
}
