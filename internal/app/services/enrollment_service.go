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

// EnrollmentService handles student enrollment into courses
type EnrollmentService struct {
	enrollmentRepo repositories.IEnrollmentRepository
	authz          *auth.AuthorizationService
}

// NewEnrollmentService creates a new enrollment service
func NewEnrollmentService(enrollmentRepo repositories.IEnrollmentRepository, authz *auth.AuthorizationService) *EnrollmentService {
	return &EnrollmentService{enrollmentRepo: enrollmentRepo, authz: authz}
}

// CreateEnrollment enrolls a student into a course. The referenced
// identity must hold role student and the course must exist; the
// (student, course) pair may only be enrolled once.
func (s *EnrollmentService) CreateEnrollment(ctx context.Context, req *dto.CreateEnrollmentRequest) (*models.Enrollment, error) {
	if _, err := s.authz.ValidateStudentRef(ctx, req.StudentID); err != nil {
		return nil, err
	}
	if _, err := s.authz.ValidateCourseRef(ctx, req.CourseID); err != nil {
		return nil, err
	}

	exists, err := s.enrollmentRepo.Exists(ctx, req.StudentID, req.CourseID)
	if err != nil {
		return nil, fmt.Errorf("error checking enrollment: %w", err)
	}
	if exists {
		return nil, apperrors.ErrAlreadyEnrolled
	}

	enrollment := &models.Enrollment{
		StudentID: req.StudentID,
		CourseID:  req.CourseID,
	}
	if err := s.enrollmentRepo.Create(ctx, enrollment); err != nil {
		return nil, err
	}

	return enrollment, nil
}

// ListEnrollments retrieves enrollments matching the optional filters
func (s *EnrollmentService) ListEnrollments(ctx context.Context, filter dto.EnrollmentFilter) ([]*models.Enrollment, error) {
	return s.enrollmentRepo.List(ctx, filter)
}
