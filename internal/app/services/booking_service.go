package services

import (
	"context"
	"fmt"

	"github.com/campushub/backend/internal/app/auth"
	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/app/models/dto"
	"github.com/campushub/backend/internal/app/repositories"
	"github.com/campushub/backend/internal/pkg/apperrors"
)

// BookingService handles the resource booking lifecycle: pending on
// creation, resolved to approved or rejected by an admin. Overlap
// against approved bookings is checked both at creation and again at
// approval.
type BookingService struct {
	bookingRepo  repositories.IBookingRepository
	resourceRepo repositories.IResourceRepository
	authz        *auth.AuthorizationService
}

// NewBookingService creates a new booking service
func NewBookingService(
	bookingRepo repositories.IBookingRepository,
	resourceRepo repositories.IResourceRepository,
	authz *auth.AuthorizationService,
) *BookingService {
	return &BookingService{
		bookingRepo:  bookingRepo,
		resourceRepo: resourceRepo,
		authz:        authz,
	}
}

// CreateBooking reserves a resource for the actor. The resource must
// exist and be active, the time range must be well formed, and the
// range must not overlap an approved booking of the same resource.
func (s *BookingService) CreateBooking(ctx context.Context, actor *models.User, req *dto.CreateBookingRequest) (*models.Booking, error) {
	if err := s.authz.RequireRole(actor, models.RoleTeacher, models.RoleHOD, models.RoleAdmin); err != nil {
		return nil, err
	}

	resource, err := s.resourceRepo.GetByID(ctx, req.ResourceID)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, apperrors.ErrBadResource
		}
		return nil, err
	}
	if !resource.IsActive {
		return nil, apperrors.ErrBadResource
	}
	if !req.EndTime.After(req.StartTime) {
		return nil, apperrors.ErrBadTimeRange
	}

	overlap, err := s.bookingRepo.HasApprovedOverlap(ctx, req.ResourceID, req.StartTime, req.EndTime, 0)
	if err != nil {
		return nil, fmt.Errorf("error checking booking overlap: %w", err)
	}
	if overlap {
		return nil, apperrors.ErrBookingOverlap
	}

	booking := &models.Booking{
		ResourceID: req.ResourceID,
		BookedByID: actor.ID,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		Purpose:    req.Purpose,
		Status:     models.BookingPending,
	}
	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, err
	}

	return booking, nil
}

// ListBookings retrieves bookings. Admins see everything, filtered;
// other actors only their own.
func (s *BookingService) ListBookings(ctx context.Context, actor *models.User, filter dto.BookingFilter) ([]*models.Booking, error) {
	if actor.Role != models.RoleAdmin {
		filter.BookedByID = &actor.ID
	}
	return s.bookingRepo.List(ctx, filter)
}

// ResolveBooking approves or rejects a pending booking. Approval
// re-checks overlap since other bookings may have been approved in the
// meantime.
func (s *BookingService) ResolveBooking(ctx context.Context, id int64, req *dto.UpdateBookingStatusRequest) (*models.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking.Status != models.BookingPending {
		return nil, apperrors.ErrBookingNotPending
	}

	status := models.BookingStatus(req.Status)
	if status == models.BookingApproved {
		overlap, err := s.bookingRepo.HasApprovedOverlap(ctx, booking.ResourceID, booking.StartTime, booking.EndTime, booking.ID)
		if err != nil {
			return nil, fmt.Errorf("error checking booking overlap: %w", err)
		}
		if overlap {
			return nil, apperrors.ErrBookingOverlap
		}
	}

	if err := s.bookingRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	booking.Status = status

	return booking, nil
}

// DeleteBooking removes a booking. Admins may delete any booking; the
// booker only while it is still pending.
func (s *BookingService) DeleteBooking(ctx context.Context, actor *models.User, id int64) error {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if actor.Role != models.RoleAdmin {
		if booking.BookedByID != actor.ID {
			return apperrors.ErrPermissionDenied
		}
		if booking.Status != models.BookingPending {
			return apperrors.ErrBookingNotPending
		}
	}
	return s.bookingRepo.Delete(ctx, id)
}
