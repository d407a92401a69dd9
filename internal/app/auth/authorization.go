// Package auth holds the authorization and referential-integrity rule
// set. Route handlers never decide permissions themselves; services call
// into this layer after the authentication middleware has resolved the
// actor.
package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/app/repositories"
	"github.com/campushub/backend/internal/pkg/apperrors"
)

// AuthorizationService evaluates role gates, ownership narrowing and
// referential validation against current store state. Checks are
// evaluated in a fixed order so a request failing several categories
// always reports the same failure: role gate, then ownership, then
// referential existence, then uniqueness (uniqueness stays in the
// services next to the insert it guards).
type AuthorizationService struct {
	userRepo       repositories.IUserRepository
	departmentRepo repositories.IDepartmentRepository
	courseRepo     repositories.ICourseRepository
	enrollmentRepo repositories.IEnrollmentRepository
}

// NewAuthorizationService creates a new AuthorizationService
func NewAuthorizationService(
	userRepo repositories.IUserRepository,
	departmentRepo repositories.IDepartmentRepository,
	courseRepo repositories.ICourseRepository,
	enrollmentRepo repositories.IEnrollmentRepository,
) *AuthorizationService {
	return &AuthorizationService{
		userRepo:       userRepo,
		departmentRepo: departmentRepo,
		courseRepo:     courseRepo,
		enrollmentRepo: enrollmentRepo,
	}
}

// RequireRole checks the actor's role against the allowed set
func (s *AuthorizationService) RequireRole(actor *models.User, allowed ...models.RoleType) error {
	for _, role := range allowed {
		if actor.Role == role {
			return nil
		}
	}
	return apperrors.ErrPermissionDenied
}

// RequireCourseOwnership resolves a course the actor wants to act on.
// Admins may act on any course; teachers and HODs only on courses they
// teach. An existing but unowned course reports ErrNotCourseOwner (403),
// never not-found: the actor is allowed to learn the course exists.
func (s *AuthorizationService) RequireCourseOwnership(ctx context.Context, actor *models.User, courseID int64) (*models.Course, error) {
	// Role gate comes before the course lookup so an unqualified role
	// gets 403 even for an absent course.
	if actor.Role != models.RoleAdmin && !actor.Role.CanTeach() {
		return nil, apperrors.ErrPermissionDenied
	}

	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		if errors.Is(err, apperrors.ErrCourseNotFound) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error resolving course for ownership check: %w", err)
	}

	if actor.Role == models.RoleAdmin {
		return course, nil
	}
	if course.TeacherID != actor.ID {
		return nil, apperrors.ErrNotCourseOwner
	}

	return course, nil
}

// ValidateDepartmentRef checks that department_id references an existing
// department
func (s *AuthorizationService) ValidateDepartmentRef(ctx context.Context, departmentID int64) error {
	_, err := s.departmentRepo.GetByID(ctx, departmentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrDepartmentNotFound) {
			return apperrors.ErrBadDepartment
		}
		return fmt.Errorf("error validating department reference: %w", err)
	}
	return nil
}

// ValidateTeacherRef checks that teacher_id references an identity with
// a teaching role
func (s *AuthorizationService) ValidateTeacherRef(ctx context.Context, teacherID int64) error {
	teacher, err := s.userRepo.GetByID(ctx, teacherID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return apperrors.ErrBadTeacher
		}
		return fmt.Errorf("error validating teacher reference: %w", err)
	}
	if !teacher.Role.CanTeach() {
		return apperrors.ErrBadTeacher
	}
	return nil
}

// ValidateStudentRef checks that student_id references an identity with
// role student
func (s *AuthorizationService) ValidateStudentRef(ctx context.Context, studentID int64) (*models.User, error) {
	student, err := s.userRepo.GetByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrBadStudent
		}
		return nil, fmt.Errorf("error validating student reference: %w", err)
	}
	if student.Role != models.RoleStudent {
		return nil, apperrors.ErrBadStudent
	}
	return student, nil
}

// ValidateCourseRef checks that course_id references an existing course
func (s *AuthorizationService) ValidateCourseRef(ctx context.Context, courseID int64) (*models.Course, error) {
	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		if errors.Is(err, apperrors.ErrCourseNotFound) {
			return nil, apperrors.ErrBadCourse
		}
		return nil, fmt.Errorf("error validating course reference: %w", err)
	}
	return course, nil
}

// RequireEnrollment checks that the student is enrolled in the course
func (s *AuthorizationService) RequireEnrollment(ctx context.Context, studentID, courseID int64) error {
	enrolled, err := s.enrollmentRepo.Exists(ctx, studentID, courseID)
	if err != nil {
		return fmt.Errorf("error checking enrollment: %w", err)
	}
	if !enrolled {
		return apperrors.ErrNotEnrolled
	}
	return nil
}
