package services

import (
	"context"
	"fmt"
	"time"

	"github.com/campushub/backend/internal/app/auth"
	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/app/models/dto"
	"github.com/campushub/backend/internal/app/repositories"
	"github.com/campushub/backend/internal/pkg/apperrors"
)

// AttendanceService handles per-day attendance marking for courses
type AttendanceService struct {
	attendanceRepo repositories.IAttendanceRepository
	authz          *auth.AuthorizationService
}

// NewAttendanceService creates a new attendance service
func NewAttendanceService(attendanceRepo repositories.IAttendanceRepository, authz *auth.AuthorizationService) *AttendanceService {
	return &AttendanceService{attendanceRepo: attendanceRepo, authz: authz}
}

// MarkAttendance records attendance for a student on a course the
// actor owns. The student must hold role student and be enrolled, and
// each (course, student, date, period) tuple may only be marked once.
// The marking identity is the actor.
func (s *AttendanceService) MarkAttendance(ctx context.Context, actor *models.User, courseID int64, req *dto.MarkAttendanceRequest) (*models.Attendance, error) {
	if _, err := s.authz.RequireCourseOwnership(ctx, actor, courseID); err != nil {
		return nil, err
	}
	if _, err := s.authz.ValidateStudentRef(ctx, req.StudentID); err != nil {
		return nil, err
	}
	if err := s.authz.RequireEnrollment(ctx, req.StudentID, courseID); err != nil {
		return nil, err
	}

	marked, err := s.attendanceRepo.Exists(ctx, courseID, req.StudentID, req.Date, req.Period)
	if err != nil {
		return nil, fmt.Errorf("error checking attendance: %w", err)
	}
	if marked {
		return nil, apperrors.ErrAttendanceAlreadyMarked
	}

	// Binding already enforced the 2006-01-02 layout.
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date", apperrors.ErrValidationFailed)
	}

	attendance := &models.Attendance{
		CourseID:   courseID,
		StudentID:  req.StudentID,
		Date:       date,
		Status:     req.Status,
		MarkedByID: actor.ID,
		Period:     req.Period,
	}
	if err := s.attendanceRepo.Create(ctx, attendance); err != nil {
		return nil, err
	}

	return attendance, nil
}

// ListAttendance retrieves attendance records of a course the actor
// owns, matching the optional filters
func (s *AttendanceService) ListAttendance(ctx context.Context, actor *models.User, courseID int64, filter dto.AttendanceFilter) ([]*models.Attendance, error) {
	if _, err := s.authz.RequireCourseOwnership(ctx, actor, courseID); err != nil {
		return nil, err
	}
	return s.attendanceRepo.ListByCourse(ctx, courseID, filter)
}
